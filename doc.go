// Package fold computes the shading of a folding panel.
//
// # Overview
//
// A fold widget rotates a panel around its top or bottom edge. Each frame
// the host hands the panel's screen bounds, its rotation in degrees and the
// hinge edge (Gravity) to a Shading, which draws on a surface.Surface:
//
//   - a flat darkening overlay whose alpha grows as a top-hinged panel
//     folds away (ShadowIntensity)
//   - for GlanceShading, a slice of a secondary "glance" image that peeks
//     from behind a bottom-hinged panel near the end of its rotation
//     (GlanceShading.GlancePlacement)
//
// # Quick Start
//
//	l := loader.New(loader.FSSource(os.DirFS("assets")))
//	sh := fold.NewGlanceShading(ctx, l, "glance.png")
//	defer sh.Close()
//
//	// per frame, on the render goroutine
//	sh.PreDraw(s, bounds, rotation, fold.GravityBottom)
//	// ... draw the panel content ...
//	sh.PostDraw(s, bounds, rotation, fold.GravityBottom)
//
// # Rotation
//
// Rotation is meaningful in (-90, 0) for GravityTop and (0, 90) for
// GravityBottom, 0 being flat. Values outside those open ranges, NaN, and
// unknown gravities produce no effect. All evaluation functions are total:
// they never return errors and never block.
//
// # Coordinate System
//
// Bounds are image.Rectangle values in device pixels: origin top-left,
// Y increasing down, Max exclusive.
package fold
