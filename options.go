package fold

import "image/color"

// Calibrated design parameters. They are tuned by eye and have no
// derivation beyond reproducing the intended look.
const (
	// ShadowMaxAlpha is the overlay alpha (of 255) at full intensity.
	ShadowMaxAlpha = 192

	// RevealCenter is the rotation, in degrees, at which the top of the
	// glance image lines up with the top of the panel.
	RevealCenter = 60.0

	// RevealWidth is the rotation span, in degrees, over which the glance
	// image scrolls by one panel height.
	RevealWidth = 15.0
)

// ShadowColor is the default overlay color. Its alpha is ignored; the
// overlay alpha always comes from the shadow intensity.
var ShadowColor color.Color = color.Black

// Option configures a shading during creation.
//
// Example:
//
//	sh := fold.NewSimpleShading(fold.WithShadowMaxAlpha(128))
type Option func(*options)

// options holds optional configuration shared by all shadings.
type options struct {
	shadowColor    color.Color
	shadowMaxAlpha uint8
	revealCenter   float64
	revealWidth    float64
}

// defaultOptions returns the calibrated defaults.
func defaultOptions() options {
	return options{
		shadowColor:    ShadowColor,
		shadowMaxAlpha: ShadowMaxAlpha,
		revealCenter:   RevealCenter,
		revealWidth:    RevealWidth,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithShadowColor sets the overlay color. Its alpha is ignored; the
// overlay alpha always comes from the shadow intensity. nil is ignored.
func WithShadowColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.shadowColor = c
		}
	}
}

// WithShadowMaxAlpha sets the overlay alpha at full intensity.
func WithShadowMaxAlpha(a uint8) Option {
	return func(o *options) {
		o.shadowMaxAlpha = a
	}
}

// WithRevealWindow moves the glance reveal window. A non-positive width
// is ignored since the window width divides the rotation offset.
func WithRevealWindow(center, width float64) Option {
	return func(o *options) {
		if width > 0 {
			o.revealCenter = center
			o.revealWidth = width
		}
	}
}

// shadowPaint returns the overlay color for the given intensity, or nil
// when the overlay would be fully transparent.
func (o *options) shadowPaint(intensity float64) color.Color {
	alpha := ShadowAlpha(intensity, o.shadowMaxAlpha)
	if alpha == 0 {
		return nil
	}
	c := color.NRGBAModel.Convert(o.shadowColor).(color.NRGBA)
	c.A = alpha
	return c
}
