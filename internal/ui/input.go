package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/michaelg29/glpong/internal/scene"
)

// KeyToControl maps a key event to the paddle it drives and the movement
// direction. W/S control the left paddle, the arrow keys the right one.
func KeyToControl(key tcell.Key, r rune) (scene.Side, scene.Direction) {
	switch key {
	case tcell.KeyUp:
		return scene.SideRight, scene.DirUp
	case tcell.KeyDown:
		return scene.SideRight, scene.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return scene.SideLeft, scene.DirUp
		case 's', 'S':
			return scene.SideLeft, scene.DirDown
		}
	}
	return scene.SideLeft, scene.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsResetKey returns true if the key should restart the match
func IsResetKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}
