package options

// WithEpsilon returns a [VoronoiOptionsFunc] that sets the Epsilon tolerance used by
// box-inclusion, segment-intersection and point-equality checks.
//
// A negative epsilon is treated as 0 (no adjustment). If this option isn't supplied,
// the vector2 and box comparisons use 0 (exact), while fortune.Construct uses
// [DefaultEpsilon].
func WithEpsilon(epsilon float64) VoronoiOptionsFunc {
	return func(opts *VoronoiOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		opts.Epsilon = epsilon
	}
}
