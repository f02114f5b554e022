package game

import (
	"math"

	"github.com/michaelg29/glpong/internal/scene"
)

// resolvePaddleHit tests the ball against the candidate paddle and, on
// contact, rebounds it off the paddle's face, its top/bottom edge, or a
// rounded corner. Reports whether a contact was resolved.
//
// The candidate is picked by which half of the court the ball is in:
// at these speeds the ball cannot reach the far paddle while past the
// midline.
func (s *State) resolvePaddleHit() bool {
	b := s.Ball
	p := s.Left
	if b.X >= s.Width/2 {
		p = s.Right
	}

	dx := math.Abs(b.X - p.X)
	dy := math.Abs(b.Y - p.Y)

	// Broad phase: ball circle cannot touch the paddle rectangle
	if dx > p.HalfWidth()+BallRadius || dy > p.HalfHeight()+BallRadius {
		return false
	}

	// Horizontal difference oriented so "in front of the paddle" is
	// positive, used to classify corner contacts
	frontDX := b.X - p.X
	if p.Side == scene.SideRight {
		frontDX = p.X - b.X
	}

	switch {
	case dx >= p.HalfWidth()-BallRadius && dx <= p.HalfWidth():
		// Face hit: long flat side
		b.BounceHorizontal()
	case dy >= p.HalfHeight()-BallRadius && dy <= p.HalfHeight():
		// Edge hit: top or bottom
		b.BounceVertical()
	default:
		// Corner: circle-distance test against the nearest corner
		cornerDX := dx - p.HalfWidth()
		cornerDY := dy - p.HalfHeight()
		if cornerDX*cornerDX+cornerDY*cornerDY > BallRadius*BallRadius {
			return false
		}
		// Resolve along the axis the contact point is closer to: when
		// the vertical excess is the smaller term the contact behaves
		// like a face hit, otherwise like an edge hit
		if cornerDY < frontDX-p.HalfWidth() {
			b.BounceHorizontal()
		} else {
			b.BounceVertical()
		}
	}

	// A moving paddle imparts momentum, and every contact speeds the
	// rally up
	b.VX *= SpeedIncrement
	b.VY += PaddleInfluence * p.VY

	return true
}
