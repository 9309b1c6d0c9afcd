// Package cache memoizes generated shape paths.
//
// Animated content regenerates the same stars, polygons and rounded
// rectangles on many frames. [Shapes] keeps the generated geometry keyed by
// its parameters and hands out copy-on-write copies of it, so a hit costs a
// reference count increment and no geometry is duplicated unless the caller
// mutates its copy.
//
//	shapes := cache.New[StarKey](256)
//	p := shapes.GetOrBuild(key, func(p *vpath.Path) {
//		p.AddPolystar(key.Points, key.Inner, key.Outer, 0, 0, 0, 0, 0, vpath.CW)
//	})
//	defer p.Release()
//
// # Thread Safety
//
// Shapes is safe for concurrent use and must not be copied after creation.
// Each returned path is an independent handle owned by the caller.
package cache
