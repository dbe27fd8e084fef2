package loader

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// webp1x1 is a 1x1 lossless WebP image.
const webp1x1 = "UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 128, 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	src := testImage(6, 4)

	tests := []struct {
		format string
		encode func(io.Writer, image.Image) error
	}{
		{"png", png.Encode},
		{"jpeg", func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }},
		{"gif", func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) }},
		{"bmp", bmp.Encode},
		{"tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, src); err != nil {
				t.Fatalf("encode: %v", err)
			}

			img, format, err := Decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}
			if got := img.Bounds().Size(); got != (image.Point{6, 4}) {
				t.Errorf("size = %v, want (6,4)", got)
			}
		})
	}
}

func TestDecodeConfigWebP(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString(webp1x1)
	if err != nil {
		t.Fatalf("base64: %v", err)
	}

	cfg, format, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if format != "webp" {
		t.Errorf("format = %q, want webp", format)
	}
	if cfg.Width != 1 || cfg.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", cfg.Width, cfg.Height)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader(nil)); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decode(empty) error = %v, want ErrEmptyData", err)
	}
	if _, _, err := Decode(strings.NewReader("definitely not an image")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode(garbage) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, _, err := DecodeConfig(bytes.NewReader(nil)); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeConfig(empty) error = %v, want ErrEmptyData", err)
	}
	if _, _, err := DecodeConfig(strings.NewReader("nope")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeConfig(garbage) error = %v, want ErrUnsupportedFormat", err)
	}

	// A valid PNG signature followed by junk is a decode error, not an
	// unknown format.
	data := encodePNG(t, testImage(4, 4))
	_, _, err := Decode(bytes.NewReader(data[:20]))
	if err == nil || errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode(truncated png) error = %v, want a decode error", err)
	}
}

func TestImageBytes(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want int64
	}{
		{"rgba", image.NewRGBA(image.Rect(0, 0, 10, 5)), 200},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 10, 5)), 200},
		{"gray", image.NewGray(image.Rect(0, 0, 10, 5)), 50},
		{"paletted", image.NewPaletted(image.Rect(0, 0, 10, 5), color.Palette{color.Black, color.White}), 58},
		{"other", image.NewRGBA64(image.Rect(0, 0, 10, 5)), 200},
	}
	for _, tt := range tests {
		if got := imageBytes(tt.img); got != tt.want {
			t.Errorf("imageBytes(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
