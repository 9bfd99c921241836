package fractal

// Animation tracks the per-frame iteration cap. The cap walks up to
// MaxIterations and back down to zero, one step per frame.
type Animation struct {
	MaxIterations int
	Iterations    int
	Sign          int
}

// NewAnimation starts at a cap of zero, counting up.
func NewAnimation(maxIterations int) *Animation {
	return &Animation{MaxIterations: maxIterations, Sign: 1}
}

// Advance moves the cap one step and reverses direction at either end.
func (a *Animation) Advance() {
	a.Iterations = max(0, min(a.Iterations+a.Sign, a.MaxIterations))
	if a.Iterations == a.MaxIterations || a.Iterations == 0 {
		a.Sign = -a.Sign
	}
}

// Reset returns to a cap of zero, counting up.
func (a *Animation) Reset() {
	a.Iterations = 0
	a.Sign = 1
}

// Period is the number of frames in one full up-and-down cycle.
func (a *Animation) Period() int {
	return 2 * a.MaxIterations
}
