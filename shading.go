package fold

import (
	"image"
	"image/color"

	"github.com/gogpu/fold/surface"
)

// Shading draws the fold effect of one panel.
//
// The host calls PreDraw before drawing the panel content and PostDraw
// after it, once per frame, on the render goroutine. Both calls receive
// the panel's current screen bounds, rotation in degrees and hinge edge.
type Shading interface {
	PreDraw(s surface.Surface, bounds image.Rectangle, rotation float64, gravity Gravity)
	PostDraw(s surface.Surface, bounds image.Rectangle, rotation float64, gravity Gravity)
}

// Frame is the result of evaluating a shading for one frame.
type Frame struct {
	// Shadow is the overlay color to composite over Bounds, or nil when no
	// overlay is needed.
	Shadow color.Color

	// Bounds is the panel rectangle the frame was evaluated for.
	Bounds image.Rectangle

	// Glance is the image to blit from Src into Dst, or nil.
	Glance image.Image
	Src    image.Rectangle
	Dst    image.Rectangle
}

// glancePaint is how the glance image is blitted: filtered and dithered,
// never anti-aliased.
var glancePaint = surface.DrawImageOptions{
	Filter:    surface.FilterBilinear,
	Dither:    true,
	AntiAlias: false,
}

// Apply draws the frame: the shadow overlay first, then the glance.
func (f *Frame) Apply(s surface.Surface) {
	if f.Shadow != nil {
		s.FillRect(f.Bounds, f.Shadow)
	}
	if f.Glance != nil {
		opts := glancePaint
		s.DrawImage(f.Glance, f.Src, f.Dst, &opts)
	}
}

// SimpleShading darkens the panel as it folds and draws nothing else.
// A top-hinged panel darkens toward -90 degrees, a bottom-hinged one
// toward 90.
type SimpleShading struct {
	opts options
}

// NewSimpleShading creates a shadow-only shading.
func NewSimpleShading(opts ...Option) *SimpleShading {
	return &SimpleShading{opts: newOptions(opts)}
}

// Evaluate computes the frame without drawing it.
func (sh *SimpleShading) Evaluate(bounds image.Rectangle, rotation float64, gravity Gravity) Frame {
	return Frame{
		Shadow: sh.opts.shadowPaint(simpleIntensity(rotation, gravity)),
		Bounds: bounds,
	}
}

// PreDraw does nothing.
func (sh *SimpleShading) PreDraw(surface.Surface, image.Rectangle, float64, Gravity) {}

// PostDraw paints the shadow overlay over bounds.
func (sh *SimpleShading) PostDraw(s surface.Surface, bounds image.Rectangle, rotation float64, gravity Gravity) {
	f := sh.Evaluate(bounds, rotation, gravity)
	f.Apply(s)
}
