package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/michaelg29/glpong/internal/scene"
)

const (
	BallChar   = '\u2b24' // ⬤
	PaddleChar = '\u2588' // █
)

// Renderer is the render sink: it receives a frame snapshot each tick
// and presents it, feeding nothing back into the simulation.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame draws one frame. flash, when non-empty, is shown centered
// over the court (the scoring banner).
func (r *Renderer) RenderGame(frame scene.Frame, flash string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	if screenW < 4 || screenH < 4 {
		r.screen.Show()
		return
	}

	// Map court coordinates to screen cells; top row is the scoreboard,
	// bottom row the status bar
	scaleX := float64(screenW) / frame.CourtWidth
	scaleY := float64(screenH-2) / frame.CourtHeight

	// Court background
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(frame, screenW)

	// Paddles
	for _, p := range frame.Paddles {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if p.Side == scene.SideRight {
			style = tcell.StyleDefault.Foreground(tcell.ColorBlue)
		}

		w := int(p.Width * scaleX)
		if w < 1 {
			w = 1
		}
		h := int(p.Height * scaleY)
		if h < 1 {
			h = 1
		}
		left := int(p.X*scaleX) - w/2
		top := int(p.Y*scaleY) + 1 - h/2
		for dy := 0; dy < h; dy++ {
			py := top + dy
			if py < 1 || py >= screenH-1 {
				continue
			}
			for dx := 0; dx < w; dx++ {
				r.screen.SetCell(left+dx, py, style, PaddleChar)
			}
		}
	}

	// Ball, tinted by rally speed
	ballX := int(frame.Ball.X * scaleX)
	ballY := int(frame.Ball.Y*scaleY) + 1
	if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY < screenH-1 {
		speed := math.Hypot(frame.Ball.VX, frame.Ball.VY)
		base := 0.22 * math.Hypot(frame.CourtWidth, frame.CourtHeight)
		heat := (speed - base) / base
		r.screen.SetCell(ballX, ballY, BallStyle(heat), BallChar)
	}

	// Scoring banner
	if flash != "" {
		flashX := (screenW - len(flash)) / 2
		flashStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.DrawText(flashX, screenH/2, flash, flashStyle)
	}

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := fmt.Sprintf(" Tick: %d | w/s left, arrows right | 'r' reset | 'q' quit", frame.Tick)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

// renderScoreboard draws the score line at top center
func (r *Renderer) renderScoreboard(frame scene.Frame, screenW int) {
	text := fmt.Sprintf("[ LEFT %d - %d RIGHT ]", frame.LeftScore, frame.RightScore)
	x := (screenW - len(text)) / 2
	style := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(x, 0, text, style)
}
