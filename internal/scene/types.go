package scene

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Side identifies one half of the court
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// BallState is the ball as the renderer sees it
type BallState struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Radius float64
}

// PaddleState is a paddle as the renderer sees it
type PaddleState struct {
	Side   Side
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Frame is the complete per-frame snapshot handed to the render sink.
// The renderer reads it and feeds nothing back into the simulation.
type Frame struct {
	Tick        int
	Ball        BallState
	Paddles     [2]PaddleState
	LeftScore   int
	RightScore  int
	CourtWidth  float64
	CourtHeight float64
}
