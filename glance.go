package fold

import (
	"context"
	"errors"
	"image"
	"sync/atomic"

	"github.com/gogpu/fold/surface"
)

// errNilImage is recorded when a loader reports success without an image.
var errNilImage = errors.New("fold: loader returned nil image")

// glance is the loaded image together with its bounds, captured once so
// that evaluation never calls back into the image.
type glance struct {
	img    image.Image
	bounds image.Rectangle
}

// GlanceShading shades a folding panel and reveals a glance image behind
// bottom-hinged panels.
//
// The glance image is requested once at construction. Until the load
// completes, and forever if it fails, GlanceShading behaves as a plain
// shadow shading. The image reference is handed over atomically, so the
// render goroutine may evaluate frames while the load completes.
//
// GlanceShading is safe for concurrent use.
type GlanceShading struct {
	opts     options
	resource string

	glance  atomic.Pointer[glance]
	state   atomic.Uint32
	settled atomic.Bool // the first completion claims it
	err     error       // written before state becomes StateFailed

	closed atomic.Bool
	cancel context.CancelFunc
}

// NewGlanceShading creates a shading and asks l to load resource as its
// glance image. The load runs under a context derived from ctx that Close
// cancels.
func NewGlanceShading(ctx context.Context, l ImageLoader, resource string, opts ...Option) *GlanceShading {
	ctx, cancel := context.WithCancel(ctx)
	g := &GlanceShading{
		opts:     newOptions(opts),
		resource: resource,
		cancel:   cancel,
	}

	Logger().Debug("fold: requesting glance", "resource", resource)
	l.RequestLoad(ctx, resource, g.complete)
	return g
}

// complete is the load callback. Only the first completion is accepted,
// and none after Close.
func (g *GlanceShading) complete(img image.Image, err error) {
	if g.closed.Load() {
		Logger().Debug("fold: glance load finished after close", "resource", g.resource)
		return
	}
	if err == nil && img == nil {
		err = errNilImage
	}

	if !g.settled.CompareAndSwap(false, true) {
		return
	}
	g.cancel() // the load is over; release its context

	if err != nil {
		g.err = err
		g.state.Store(uint32(StateFailed))
		Logger().Warn("fold: glance load failed, glance disabled",
			"resource", g.resource, "error", err)
		return
	}

	b := img.Bounds()
	g.glance.Store(&glance{img: img, bounds: b})
	g.state.Store(uint32(StateLoaded))
	Logger().Info("fold: glance loaded",
		"resource", g.resource, "width", b.Dx(), "height", b.Dy())
}

// State reports where the glance image is in its lifecycle.
func (g *GlanceShading) State() LoadState {
	return LoadState(g.state.Load())
}

// Err returns the load error once State is StateFailed, and nil otherwise.
func (g *GlanceShading) Err() error {
	if g.State() != StateFailed {
		return nil
	}
	return g.err
}

// Glance returns the glance image, or nil if it is not loaded.
func (g *GlanceShading) Glance() image.Image {
	if gl := g.glance.Load(); gl != nil {
		return gl.img
	}
	return nil
}

// Close cancels a pending load and drops its completion if it still
// arrives. An image that already loaded stays usable. Close is idempotent.
func (g *GlanceShading) Close() error {
	if g.closed.Swap(true) {
		return nil
	}
	g.cancel()
	return nil
}

// ShadowIntensity returns the overlay intensity for the frame.
func (g *GlanceShading) ShadowIntensity(rotation float64, gravity Gravity) float64 {
	return ShadowIntensity(rotation, gravity)
}

// GlancePlacement returns where the glance image shows this frame: src in
// the image's coordinate space and dst inside bounds. ok is false when no
// glance is visible. When ok, both rectangles are non-empty and contained
// in their spaces, so src can be blitted to dst without further clipping.
func (g *GlanceShading) GlancePlacement(bounds image.Rectangle, rotation float64, gravity Gravity) (src, dst image.Rectangle, ok bool) {
	gl := g.glance.Load()
	if gl == nil {
		return image.Rectangle{}, image.Rectangle{}, false
	}
	return gl.place(bounds, rotation, gravity, &g.opts)
}

// Evaluate computes the frame without drawing it.
func (g *GlanceShading) Evaluate(bounds image.Rectangle, rotation float64, gravity Gravity) Frame {
	f := Frame{
		Shadow: g.opts.shadowPaint(ShadowIntensity(rotation, gravity)),
		Bounds: bounds,
	}
	// Load once: the placement and the blit must see the same image.
	if gl := g.glance.Load(); gl != nil {
		if src, dst, ok := gl.place(bounds, rotation, gravity, &g.opts); ok {
			f.Glance, f.Src, f.Dst = gl.img, src, dst
		}
	}
	return f
}

// PreDraw does nothing.
func (g *GlanceShading) PreDraw(surface.Surface, image.Rectangle, float64, Gravity) {}

// PostDraw paints the shadow overlay and then the visible part of the
// glance image.
func (g *GlanceShading) PostDraw(s surface.Surface, bounds image.Rectangle, rotation float64, gravity Gravity) {
	f := g.Evaluate(bounds, rotation, gravity)
	f.Apply(s)
}

// place maps the glance into bounds for a bottom-hinged panel rotated
// inside (0, 90).
//
// The glance is scaled to the panel width. Its top sits at
// bounds.Height()*(rotation-center)/width below the panel top, so it is
// above the panel before the reveal center and scrolls down through the
// panel over one reveal width. Intermediate distances are truncated
// toward zero.
func (gl *glance) place(bounds image.Rectangle, rotation float64, gravity Gravity, o *options) (src, dst image.Rectangle, ok bool) {
	if gravity != GravityBottom || !(rotation > 0 && rotation < 90) {
		return image.Rectangle{}, image.Rectangle{}, false
	}

	bw, bh := bounds.Dx(), bounds.Dy()
	gw, gh := gl.bounds.Dx(), gl.bounds.Dy()
	if bw <= 0 || bh <= 0 || gw <= 0 || gh <= 0 {
		return image.Rectangle{}, image.Rectangle{}, false
	}

	aspect := float64(gw) / float64(bw)
	distance := int(float64(bh) * ((rotation - o.revealCenter) / o.revealWidth))
	distanceOnGlance := int(float64(distance) * aspect)

	scaledGlanceHeight := int(float64(gh) / aspect)
	dst = image.Rect(bounds.Min.X, bounds.Min.Y+distance, bounds.Max.X, bounds.Min.Y+distance+scaledGlanceHeight)
	dst = dst.Intersect(bounds)
	if dst.Empty() {
		return image.Rectangle{}, image.Rectangle{}, false
	}

	scaledBoundsHeight := int(float64(bh) * aspect)
	src = image.Rect(0, -distanceOnGlance, gw, -distanceOnGlance+scaledBoundsHeight)
	src = src.Intersect(image.Rect(0, 0, gw, gh))
	if src.Empty() {
		return image.Rectangle{}, image.Rectangle{}, false
	}

	return src.Add(gl.bounds.Min), dst, true
}
