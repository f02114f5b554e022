package game

import "github.com/michaelg29/glpong/internal/scene"

const (
	PaddleWidth     = 20.0
	PaddleHeight    = 100.0
	PaddleInsetX    = 35.0  // fixed distance from the side wall to the paddle center
	PaddleSpeed     = 300.0 // court units per second
	MovementTimeout = 8     // frames to keep moving after last key event (~133ms at 60Hz)
)

type Paddle struct {
	Side scene.Side
	X    float64 // fixed, re-derived on court resize
	Y    float64
	VY   float64 // this frame's input-derived velocity

	Direction     scene.Direction
	MovementTicks int // countdown for movement timeout
}

func NewPaddle(side scene.Side, courtWidth, courtHeight float64) *Paddle {
	x := PaddleInsetX
	if side == scene.SideRight {
		x = courtWidth - PaddleInsetX
	}
	return &Paddle{Side: side, X: x, Y: courtHeight / 2}
}

func (p *Paddle) HalfWidth() float64 {
	return PaddleWidth / 2
}

func (p *Paddle) HalfHeight() float64 {
	return PaddleHeight / 2
}

// MinY is the highest center position the paddle may take. The ball
// radius is part of the margin so the ball can always squeeze past.
func (p *Paddle) MinY() float64 {
	return p.HalfHeight() + BallRadius
}

// MaxY is the lowest center position for the given court height.
func (p *Paddle) MaxY(courtHeight float64) float64 {
	return courtHeight - p.HalfHeight() - BallRadius
}

func (p *Paddle) SetDirection(dir scene.Direction) {
	p.Direction = dir
	if dir != scene.DirNone {
		p.MovementTicks = MovementTimeout // reset timeout on new input
	}
}

// Sample converts the held direction into this frame's velocity.
// Velocity is withheld once the paddle already sits at the bound it is
// pushing against, so integration never carries it out of the court.
func (p *Paddle) Sample(courtHeight float64) {
	switch p.Direction {
	case scene.DirUp:
		p.VY = -PaddleSpeed
		if p.Y <= p.MinY() {
			p.VY = 0
		}
	case scene.DirDown:
		p.VY = PaddleSpeed
		if p.Y >= p.MaxY(courtHeight) {
			p.VY = 0
		}
	default:
		p.VY = 0
	}

	// Decrement movement timeout and stop when it expires
	if p.MovementTicks > 0 {
		p.MovementTicks--
		if p.MovementTicks == 0 {
			p.Direction = scene.DirNone
		}
	}
}

// Move integrates the paddle position over dt seconds and clamps it
// into the court.
func (p *Paddle) Move(dt, courtHeight float64) {
	p.Y += p.VY * dt
	p.Clamp(courtHeight)
}

// Clamp forces the paddle center back into its legal range. Also used
// after a court resize.
func (p *Paddle) Clamp(courtHeight float64) {
	if p.Y < p.MinY() {
		p.Y = p.MinY()
	}
	if max := p.MaxY(courtHeight); p.Y > max {
		p.Y = max
	}
}

func (p *Paddle) TopY() float64 {
	return p.Y - p.HalfHeight()
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.HalfHeight()
}
