package scroll

// AnimatedScalar is the position state of one scroll axis.
//
// Target is where the axis is headed, Static is the non-animated copy of
// Target, Cache is Target as it was immediately before its latest mutation,
// and Literal is the value the animation driver last reported.
type AnimatedScalar struct {
	target  float64
	cache   float64
	static  float64
	literal float64
}

// NewAnimatedScalar returns a scalar resting at v.
func NewAnimatedScalar(v float64) AnimatedScalar {
	return AnimatedScalar{target: v, cache: v, static: v, literal: v}
}

// Target returns the destination value.
func (s AnimatedScalar) Target() float64 { return s.target }

// Cache returns the target value before the latest SetTarget.
func (s AnimatedScalar) Cache() float64 { return s.cache }

// Static returns the non-animated copy of the target.
func (s AnimatedScalar) Static() float64 { return s.static }

// Literal returns the last interpolated value.
func (s AnimatedScalar) Literal() float64 { return s.literal }

// SetTarget caches the old target and moves to v.
func (s *AnimatedScalar) SetTarget(v float64) {
	s.cache = s.target
	s.target = v
	s.static = v
}

// SetLiteral records the interpolated value for the current frame.
func (s *AnimatedScalar) SetLiteral(v float64) {
	s.literal = v
}

// Jump sets the target and puts the literal on it in one discrete step.
func (s *AnimatedScalar) Jump(v float64) {
	s.SetTarget(v)
	s.literal = v
}

// Animating reports whether the literal has not yet reached the target.
func (s AnimatedScalar) Animating() bool {
	return s.target != s.literal
}

// Difference is the full distance of the current motion.
func (s AnimatedScalar) Difference() float64 {
	return s.static - s.cache
}

// Remaining is the distance still to travel.
func (s AnimatedScalar) Remaining() float64 {
	return s.static - s.literal
}

// Progress is the distance already travelled.
func (s AnimatedScalar) Progress() float64 {
	return s.Difference() - s.Remaining()
}

// Normalized is Progress as a fraction of Difference. A motion of zero
// length counts as finished.
func (s AnimatedScalar) Normalized() float64 {
	difference := s.Difference()
	if difference == 0 {
		return 1
	}
	return s.Progress() / difference
}
