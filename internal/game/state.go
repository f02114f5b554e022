package game

import "github.com/michaelg29/glpong/internal/scene"

// Constants for collision resolution
const (
	SpeedIncrement  = 1.05 // horizontal speed-up per paddle hit
	PaddleInfluence = 0.3  // share of paddle velocity transferred to the ball
	CooldownFrames  = 10   // frames to suppress repeat paddle collisions

	noCooldown = -1 // sentinel: no suppression active
)

// State owns the complete simulation state for one match. It is mutated
// exclusively by the frame loop, one Update per rendered frame.
type State struct {
	Width, Height float64
	Ball          *Ball
	Left          *Paddle
	Right         *Paddle
	LeftScore     int
	RightScore    int
	Tick          int

	cooldown int
}

// NewState creates a match on a court of the given dimensions with the
// ball served from the center toward the right side.
func NewState(width, height float64) *State {
	s := &State{
		Width:    width,
		Height:   height,
		Ball:     NewBall(width/2, height/2),
		Left:     NewPaddle(scene.SideLeft, width, height),
		Right:    NewPaddle(scene.SideRight, width, height),
		cooldown: noCooldown,
	}
	s.Ball.Reset(width/2, height/2, true)
	return s
}

// Paddle returns the paddle for the given side.
func (s *State) Paddle(side scene.Side) *Paddle {
	if side == scene.SideLeft {
		return s.Left
	}
	return s.Right
}

// SetDirection records an input direction for one paddle. The velocity
// itself is derived when the next frame is sampled.
func (s *State) SetDirection(side scene.Side, dir scene.Direction) {
	s.Paddle(side).SetDirection(dir)
}

// Update advances the simulation by one frame of dt seconds and reports
// whether a point was scored and by whom. Order matters: collisions are
// tested against pre-integration positions, then positions integrate.
func (s *State) Update(dt float64) (scene.Side, bool) {
	s.Tick++

	s.Left.Sample(s.Height)
	s.Right.Sample(s.Height)

	b := s.Ball

	// Wall bounce (top/bottom), checked every frame
	if b.Y-BallRadius <= 0 || b.Y+BallRadius >= s.Height {
		b.BounceVertical()
	}

	// Scoring (left/right walls): unconditional reset, not a bounce
	var scorer scene.Side
	scored := false
	if b.X-BallRadius <= 0 {
		scorer = scene.SideRight
		scored = true
		s.RightScore++
		b.Reset(s.Width/2, s.Height/2, true)
	} else if b.X+BallRadius >= s.Width {
		scorer = scene.SideLeft
		scored = true
		s.LeftScore++
		b.Reset(s.Width/2, s.Height/2, false)
	}

	// Paddle collision, debounced so one contact is not resolved twice
	// while ball and paddle still geometrically overlap
	if s.cooldown == noCooldown || s.cooldown >= CooldownFrames {
		if s.resolvePaddleHit() {
			s.cooldown = 0
		}
	}
	if s.cooldown != noCooldown {
		s.cooldown++
	}

	// Integration
	s.Left.Move(dt, s.Height)
	s.Right.Move(dt, s.Height)
	b.Move(dt)

	return scorer, scored
}

// Resize applies new court dimensions. The right paddle keeps its fixed
// inset from the new right wall and both paddles are clamped back into
// bounds.
func (s *State) Resize(width, height float64) {
	s.Width = width
	s.Height = height
	s.Right.X = width - PaddleInsetX
	s.Left.Clamp(height)
	s.Right.Clamp(height)
}

// Reset restarts the match: scores zeroed, paddles recentred, ball
// served from the center.
func (s *State) Reset() {
	s.LeftScore = 0
	s.RightScore = 0
	s.Tick = 0
	s.cooldown = noCooldown

	for _, p := range []*Paddle{s.Left, s.Right} {
		p.Y = s.Height / 2
		p.VY = 0
		p.Direction = scene.DirNone
		p.MovementTicks = 0
	}
	s.Ball.Reset(s.Width/2, s.Height/2, true)
}

// Snapshot produces the per-frame drawable state for the render sink.
func (s *State) Snapshot() scene.Frame {
	return scene.Frame{
		Tick: s.Tick,
		Ball: scene.BallState{
			X: s.Ball.X, Y: s.Ball.Y,
			VX: s.Ball.VX, VY: s.Ball.VY,
			Radius: BallRadius,
		},
		Paddles: [2]scene.PaddleState{
			{Side: scene.SideLeft, X: s.Left.X, Y: s.Left.Y, Width: PaddleWidth, Height: PaddleHeight},
			{Side: scene.SideRight, X: s.Right.X, Y: s.Right.Y, Width: PaddleWidth, Height: PaddleHeight},
		},
		LeftScore:   s.LeftScore,
		RightScore:  s.RightScore,
		CourtWidth:  s.Width,
		CourtHeight: s.Height,
	}
}
