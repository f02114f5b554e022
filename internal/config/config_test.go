package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("expected width %d, got %d", DefaultWidth, cfg.Width)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("expected height %d, got %d", DefaultHeight, cfg.Height)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.LogPath != "" {
		t.Errorf("expected empty log path, got '%s'", cfg.LogPath)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--width", "1024", "--height", "768", "--fps", "30", "--log", "scores.log"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Width)
	}
	if cfg.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Height)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if cfg.LogPath != "scores.log" {
		t.Errorf("expected log path 'scores.log', got '%s'", cfg.LogPath)
	}
}

func TestParseArgs_InvalidWidth(t *testing.T) {
	args := []string{"--width", "100"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for width below minimum")
	}
}

func TestParseArgs_InvalidHeight(t *testing.T) {
	args := []string{"--height", "50"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for height below minimum")
	}
}

func TestParseArgs_InvalidFPSZero(t *testing.T) {
	args := []string{"--fps", "0"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for fps 0")
	}
}

func TestParseArgs_InvalidFPSTooHigh(t *testing.T) {
	args := []string{"--fps", "1000"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for fps above maximum")
	}
}

func TestParseArgs_ValidBoundaries(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"minimum court", []string{"--width", "200", "--height", "150"}},
		{"minimum fps", []string{"--fps", "1"}},
		{"maximum fps", []string{"--fps", "240"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultWidth != 800 {
		t.Errorf("expected DefaultWidth 800, got %d", DefaultWidth)
	}
	if DefaultHeight != 600 {
		t.Errorf("expected DefaultHeight 600, got %d", DefaultHeight)
	}
	if DefaultFPS != 60 {
		t.Errorf("expected DefaultFPS 60, got %d", DefaultFPS)
	}
}
