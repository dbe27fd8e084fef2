package main

import (
	"context"
	"image"
	"image/gif"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/fold"
)

func testRenderer(t *testing.T, gravity fold.Gravity) *renderer {
	t.Helper()
	glance := image.NewRGBA(image.Rect(0, 0, 64, 128))
	l := fold.ImageLoaderFunc(func(_ context.Context, _ string, cb fold.LoadCallback) {
		cb(glance, nil)
	})
	sh := fold.NewGlanceShading(context.Background(), l, "glance.png")
	t.Cleanup(func() { _ = sh.Close() })

	return &renderer{width: 32, height: 64, gravity: gravity, shading: sh}
}

func TestRendererRotation(t *testing.T) {
	bottom := testRenderer(t, fold.GravityBottom)
	if got := bottom.rotation(0, 5); got != 0 {
		t.Errorf("first bottom rotation = %v, want 0", got)
	}
	if got := bottom.rotation(4, 5); got != 90 {
		t.Errorf("last bottom rotation = %v, want 90", got)
	}

	top := testRenderer(t, fold.GravityTop)
	if got := top.rotation(2, 5); got != -45 {
		t.Errorf("middle top rotation = %v, want -45", got)
	}
}

func TestRendererPanelBounds(t *testing.T) {
	r := testRenderer(t, fold.GravityBottom)

	if got := r.panelBounds(0); got != image.Rect(0, 0, 32, 64) {
		t.Errorf("flat bounds = %v, want full frame", got)
	}
	got := r.panelBounds(60)
	want := int(64 * math.Cos(math.Pi/3))
	if got.Max.Y != 64 || got.Dy() != want {
		t.Errorf("bounds at 60 = %v, want height %d anchored at the bottom", got, want)
	}

	r.gravity = fold.GravityTop
	if got := r.panelBounds(-60); got.Min.Y != 0 {
		t.Errorf("top-hinged bounds = %v, want anchored at the top", got)
	}
}

func TestRendererWritePNGs(t *testing.T) {
	r := testRenderer(t, fold.GravityBottom)
	dir := filepath.Join(t.TempDir(), "frames")

	if err := r.writePNGs(dir, 3); err != nil {
		t.Fatalf("writePNGs() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("wrote %d frames, want 3", len(entries))
	}
}

func TestRendererWriteGIF(t *testing.T) {
	r := testRenderer(t, fold.GravityTop)
	path := filepath.Join(t.TempDir(), "fold.gif")

	if err := r.writeGIF(path, 4); err != nil {
		t.Fatalf("writeGIF() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("gif.DecodeAll: %v", err)
	}
	if len(anim.Image) != 4 {
		t.Errorf("frames = %d, want 4", len(anim.Image))
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing glance", nil},
		{"bad gravity", []string{"-glance", "g.png", "-gravity", "left"}},
		{"too few frames", []string{"-glance", "g.png", "-frames", "1"}},
		{"empty frame", []string{"-glance", "g.png", "-width", "0"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args); err == nil {
				t.Errorf("run(%q) = nil, want an error", tt.args)
			}
		})
	}
}

func TestRunWritesGIF(t *testing.T) {
	dir := t.TempDir()
	glancePath := filepath.Join(dir, "glance.png")
	f, err := os.Create(glancePath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 32))); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "fold.gif")
	args := []string{"-glance", glancePath, "-width", "16", "-height", "32", "-frames", "3", "-out", out}
	if err := run(args); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRunMissingPanel(t *testing.T) {
	dir := t.TempDir()
	args := []string{"-glance", filepath.Join(dir, "g.png"), "-panel", filepath.Join(dir, "p.png"), "-out", filepath.Join(dir, "f.gif")}
	if err := run(args); err == nil {
		t.Error("run() with a missing panel = nil, want an error")
	}
}
