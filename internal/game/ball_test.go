package game

import (
	"math"
	"testing"
)

func TestBall_Move(t *testing.T) {
	ball := NewBall(10.0, 20.0)
	ball.VX = 100.0
	ball.VY = -50.0

	ball.Move(0.5)

	if ball.X != 60.0 {
		t.Errorf("expected X=60.0, got %f", ball.X)
	}
	if ball.Y != -5.0 {
		t.Errorf("expected Y=-5.0, got %f", ball.Y)
	}
}

func TestBall_Move_ZeroDt(t *testing.T) {
	ball := NewBall(10.0, 20.0)
	ball.VX = 100.0
	ball.VY = 100.0

	ball.Move(0)

	if ball.X != 10.0 || ball.Y != 20.0 {
		t.Errorf("expected position unchanged with dt=0, got (%f, %f)", ball.X, ball.Y)
	}
}

func TestBall_BounceVertical(t *testing.T) {
	ball := NewBall(10.0, 20.0)
	ball.VX = 50.0
	ball.VY = 30.0

	ball.BounceVertical()

	if ball.VX != 50.0 {
		t.Errorf("expected VX=50.0 (unchanged), got %f", ball.VX)
	}
	if ball.VY != -30.0 {
		t.Errorf("expected VY=-30.0, got %f", ball.VY)
	}
}

func TestBall_BounceHorizontal(t *testing.T) {
	ball := NewBall(10.0, 20.0)
	ball.VX = 50.0
	ball.VY = 30.0

	ball.BounceHorizontal()

	if ball.VX != -50.0 {
		t.Errorf("expected VX=-50.0, got %f", ball.VX)
	}
	if ball.VY != 30.0 {
		t.Errorf("expected VY=30.0 (unchanged), got %f", ball.VY)
	}
}

func TestBall_Speed(t *testing.T) {
	ball := NewBall(0, 0)
	ball.VX = 30.0
	ball.VY = 40.0

	speed := ball.Speed()

	// 3-4-5 triangle
	if speed != 50.0 {
		t.Errorf("expected speed=50.0, got %f", speed)
	}
}

func TestBall_Reset(t *testing.T) {
	ball := NewBall(100.0, 100.0)
	ball.VX = -321.0
	ball.VY = -77.0

	centerX := 400.0
	centerY := 300.0

	// Launch right
	ball.Reset(centerX, centerY, true)

	if ball.X != centerX {
		t.Errorf("expected X=%f, got %f", centerX, ball.X)
	}
	if ball.Y != centerY {
		t.Errorf("expected Y=%f, got %f", centerY, ball.Y)
	}
	if ball.VX != InitialBallSpeedX {
		t.Errorf("expected VX=%f when launching right, got %f", InitialBallSpeedX, ball.VX)
	}
	if ball.VY != InitialBallSpeedY {
		t.Errorf("expected VY=%f after reset, got %f", InitialBallSpeedY, ball.VY)
	}

	// Launch left: prior motion must not carry over
	ball.VY = -999.0
	ball.Reset(centerX, centerY, false)

	if ball.VX != -InitialBallSpeedX {
		t.Errorf("expected VX=%f when launching left, got %f", -InitialBallSpeedX, ball.VX)
	}
	if ball.VY != InitialBallSpeedY {
		t.Errorf("expected VY=%f after reset, got %f", InitialBallSpeedY, ball.VY)
	}

	if math.Abs(ball.Speed()-math.Hypot(InitialBallSpeedX, InitialBallSpeedY)) > 0.001 {
		t.Errorf("expected initial speed after reset, got %f", ball.Speed())
	}
}
