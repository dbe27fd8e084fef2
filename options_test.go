package fold

import (
	"image/color"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.shadowMaxAlpha != ShadowMaxAlpha {
		t.Errorf("shadowMaxAlpha = %d, want %d", o.shadowMaxAlpha, ShadowMaxAlpha)
	}
	if o.revealCenter != RevealCenter || o.revealWidth != RevealWidth {
		t.Errorf("reveal window = (%v, %v), want (%v, %v)", o.revealCenter, o.revealWidth, RevealCenter, RevealWidth)
	}
	if o.shadowColor != ShadowColor {
		t.Errorf("shadowColor = %v, want ShadowColor", o.shadowColor)
	}
	want := color.NRGBA{A: ShadowMaxAlpha}
	if got := o.shadowPaint(1); got != want {
		t.Errorf("shadowPaint(1) = %v, want %v", got, want)
	}
}

func TestWithRevealWindowRejectsNonPositiveWidth(t *testing.T) {
	o := newOptions([]Option{WithRevealWindow(30, 0), WithRevealWindow(30, -5)})
	if o.revealCenter != RevealCenter || o.revealWidth != RevealWidth {
		t.Errorf("reveal window = (%v, %v), want defaults", o.revealCenter, o.revealWidth)
	}
}

func TestWithShadowColorNil(t *testing.T) {
	o := newOptions([]Option{WithShadowColor(nil)})
	if o.shadowColor != ShadowColor {
		t.Errorf("shadowColor = %v, want ShadowColor", o.shadowColor)
	}
}

func TestShadowPaintIgnoresColorAlpha(t *testing.T) {
	o := newOptions([]Option{WithShadowColor(color.NRGBA{R: 10, G: 20, B: 30, A: 5})})
	got := o.shadowPaint(0.5)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 96}
	if got != want {
		t.Errorf("shadowPaint(0.5) = %v, want %v", got, want)
	}
	if o.shadowPaint(0) != nil {
		t.Error("shadowPaint(0) should be nil")
	}
}

func TestGravity(t *testing.T) {
	tests := []struct {
		in   string
		want Gravity
		ok   bool
		name string
	}{
		{"top", GravityTop, true, "Top"},
		{"bottom", GravityBottom, true, "Bottom"},
		{"left", 0, false, "Unknown"},
		{"TOP", 0, false, "Unknown"},
	}
	for _, tt := range tests {
		g, ok := ParseGravity(tt.in)
		if g != tt.want || ok != tt.ok {
			t.Errorf("ParseGravity(%q) = (%v, %v), want (%v, %v)", tt.in, g, ok, tt.want, tt.ok)
		}
		if got := g.String(); got != tt.name {
			t.Errorf("Gravity(%d).String() = %q, want %q", g, got, tt.name)
		}
	}
}
