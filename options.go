package vpath

import "github.com/gogpu/vpath/internal/flatten"

// DefaultTolerance is the flattening tolerance used by [Path.Length]
// unless overridden with [WithTolerance].
const DefaultTolerance = flatten.DefaultTolerance

// PathOption configures a Path during creation.
//
// Example:
//
//	// Keyframe with a known vertex count
//	p := vpath.NewPath(vpath.WithCapacity(13, 6))
//
//	// More accurate lengths for trim paths
//	p := vpath.NewPath(vpath.WithTolerance(0.005))
type PathOption func(*pathOptions)

// pathOptions holds optional configuration for Path creation.
type pathOptions struct {
	points    int
	elements  int
	tolerance float64
}

// defaultPathOptions returns the default path options.
func defaultPathOptions() pathOptions {
	return pathOptions{
		tolerance: DefaultTolerance,
	}
}

// WithCapacity preallocates room for the given number of points and
// elements.
func WithCapacity(points, elements int) PathOption {
	return func(o *pathOptions) {
		o.points = max(points, 0)
		o.elements = max(elements, 0)
	}
}

// WithTolerance sets the maximum deviation allowed when curves are
// flattened to measure their length. Non-positive values are ignored.
func WithTolerance(tolerance float64) PathOption {
	return func(o *pathOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}
