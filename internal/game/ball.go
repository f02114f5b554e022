package game

import "math"

const (
	BallRadius        = 8.0
	InitialBallSpeedX = 150.0 // court units per second
	InitialBallSpeedY = 150.0
)

type Ball struct {
	X, Y   float64
	VX, VY float64
}

func NewBall(x, y float64) *Ball {
	return &Ball{X: x, Y: y}
}

// Move advances the ball by its velocity over dt seconds
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// BounceVertical reverses vertical direction (wall or paddle edge bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// BounceHorizontal reverses horizontal direction (paddle face bounce)
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Reset places the ball at the given center and relaunches it with the
// initial velocity. The horizontal sign points away from the wall the
// ball just exited, the vertical component restarts at the initial
// magnitude regardless of prior motion.
func (b *Ball) Reset(centerX, centerY float64, launchRight bool) {
	b.X = centerX
	b.Y = centerY

	if launchRight {
		b.VX = InitialBallSpeedX
	} else {
		b.VX = -InitialBallSpeedX
	}
	b.VY = InitialBallSpeedY
}
