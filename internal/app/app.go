package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/michaelg29/glpong/internal/config"
	"github.com/michaelg29/glpong/internal/game"
	"github.com/michaelg29/glpong/internal/scene"
	"github.com/michaelg29/glpong/internal/ui"
)

// App is the main application controller that owns the frame loop.
// Everything runs single-threaded: each frame samples input, advances
// the simulation once, then renders.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	state    *game.State

	scoreLog *log.Logger
	logFile  *os.File

	// Court units per terminal cell, fixed at startup, used to map
	// terminal resize events onto court resizes
	unitsPerCellX float64
	unitsPerCellY float64

	flash      string
	flashTicks int

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run initializes the screen, sets up signal handling, and drives the
// frame loop until quit.
func (a *App) Run() error {
	if err := a.initScoreLog(); err != nil {
		return err
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	a.state = game.NewState(float64(a.cfg.Width), float64(a.cfg.Height))

	w, h := a.screen.Size()
	if w > 0 && h > 0 {
		a.unitsPerCellX = float64(a.cfg.Width) / float64(w)
		a.unitsPerCellY = float64(a.cfg.Height) / float64(h)
	}

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// initScoreLog opens the score log sink. Scores go to a file because
// tcell owns the terminal while the game runs.
func (a *App) initScoreLog() error {
	if a.cfg.LogPath == "" {
		a.scoreLog = log.New(io.Discard, "", 0)
		return nil
	}

	f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open score log: %w", err)
	}
	a.logFile = f
	a.scoreLog = log.New(f, "", log.LstdFlags)
	return nil
}

// mainLoop runs the per-frame sequence: events, physics step, render.
func (a *App) mainLoop() error {
	// Feed screen events through a channel so the frame loop stays
	// single-threaded
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			a.step(dt)
		}
	}
}

// step advances the simulation one frame and renders it.
func (a *App) step(dt float64) {
	side, scored := a.state.Update(dt)
	if scored {
		a.scoreLog.Printf("%s side scores", side)
		a.flash = fmt.Sprintf("%s SCORES!", strings.ToUpper(side.String()))
		a.flashTicks = a.cfg.FPS // banner stays up roughly one second
	}

	if a.flashTicks > 0 {
		a.flashTicks--
		if a.flashTicks == 0 {
			a.flash = ""
		}
	}

	a.renderer.RenderGame(a.state.Snapshot(), a.flash)
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if ui.IsResetKey(ev.Key(), ev.Rune()) {
			a.state.Reset()
			a.flash = ""
			a.flashTicks = 0
			return false
		}
		side, dir := ui.KeyToControl(ev.Key(), ev.Rune())
		if dir != scene.DirNone {
			a.state.SetDirection(side, dir)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		if w > 0 && h > 0 && a.unitsPerCellX > 0 {
			a.state.Resize(float64(w)*a.unitsPerCellX, float64(h)*a.unitsPerCellY)
		}
		a.screen.Clear()
	}

	return false
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.screen != nil {
		a.screen.Fini()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	signal.Stop(a.sigChan)
}
