package config

import (
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultWidth  = 800 // court units
	DefaultHeight = 600
	DefaultFPS    = 60

	MinWidth  = 200
	MinHeight = 150
	MaxFPS    = 240
)

// Config holds the application configuration
type Config struct {
	Width   int
	Height  int
	FPS     int
	LogPath string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("glpong", flag.ContinueOnError)

	width := fs.Int("width", DefaultWidth, "court width in units")
	height := fs.Int("height", DefaultHeight, "court height in units")
	fps := fs.Int("fps", DefaultFPS, "target frames per second")
	logPath := fs.String("log", "", "file to append score events to")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validate court dimensions: the court must fit two paddles with room
	// for the ball to travel between them
	if *width < MinWidth {
		return nil, fmt.Errorf("court width must be at least %d, got %d", MinWidth, *width)
	}
	if *height < MinHeight {
		return nil, fmt.Errorf("court height must be at least %d, got %d", MinHeight, *height)
	}

	// Validate frame rate
	if *fps < 1 || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, *fps)
	}

	cfg := &Config{
		Width:   *width,
		Height:  *height,
		FPS:     *fps,
		LogPath: *logPath,
	}

	return cfg, nil
}
