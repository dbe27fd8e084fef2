// Command folddemo renders a fold animation with a glance image.
//
// It sweeps a panel from flat to fully folded, shading every frame with
// fold.GlanceShading, and writes either an animated GIF or a directory of
// PNG frames.
//
//	folddemo -glance cover.png -panel page.png -gravity bottom -out fold.gif
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fold"
	"github.com/gogpu/fold/loader"
	"github.com/gogpu/fold/surface"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run parses args and renders the animation. Deferred cleanup always runs
// before it returns.
func run(args []string) error {
	flags := flag.NewFlagSet("folddemo", flag.ContinueOnError)
	var (
		glancePath = flags.String("glance", "", "glance image revealed behind the panel (required)")
		panelPath  = flags.String("panel", "", "panel content image (default: solid color)")
		width      = flags.Int("width", 240, "frame width")
		height     = flags.Int("height", 320, "frame height")
		frames     = flags.Int("frames", 24, "number of frames")
		gravityArg = flags.String("gravity", "bottom", "hinge edge: top or bottom")
		output     = flags.String("out", "fold.gif", "output .gif file, or a directory for PNG frames")
		verbose    = flags.Bool("v", false, "debug logging")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *verbose {
		fold.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *glancePath == "" {
		return errors.New("-glance is required")
	}
	gravity, ok := fold.ParseGravity(*gravityArg)
	if !ok {
		return fmt.Errorf("invalid -gravity %q: want top or bottom", *gravityArg)
	}
	if *frames < 2 {
		return fmt.Errorf("-frames must be at least 2, got %d", *frames)
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", *width, *height)
	}

	ctx := context.Background()
	l := loader.New(osSource())
	defer l.Close()

	sh := fold.NewGlanceShading(ctx, l, *glancePath)
	defer sh.Close()

	var panel image.Image
	if *panelPath != "" {
		var err error
		if panel, err = l.Load(ctx, *panelPath); err != nil {
			return fmt.Errorf("load panel: %w", err)
		}
	}

	// The demo wants the glance from the first frame on.
	l.Wait()
	if sh.State() == fold.StateFailed {
		log.Printf("Glance unavailable, rendering shadow only: %v", sh.Err())
	}

	r := &renderer{
		width:   *width,
		height:  *height,
		gravity: gravity,
		shading: sh,
		panel:   panel,
	}

	var err error
	if strings.EqualFold(filepath.Ext(*output), ".gif") {
		err = r.writeGIF(*output, *frames)
	} else {
		err = r.writePNGs(*output, *frames)
	}
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	log.Printf("Demo saved to %s (%d frames, %dx%d)\n", *output, *frames, *width, *height)
	return nil
}

// osSource treats resource names as operating system paths.
func osSource() loader.Source {
	return loader.SourceFunc(func(ctx context.Context, name string) (io.ReadCloser, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(filepath.Clean(name))
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}

type renderer struct {
	width, height int
	gravity       fold.Gravity
	shading       fold.Shading
	panel         image.Image
}

// rotation returns the rotation of frame i of n, sweeping from flat to
// folded in the direction the gravity folds.
func (r *renderer) rotation(i, n int) float64 {
	t := float64(i) / float64(n-1)
	if r.gravity == fold.GravityTop {
		return -90 * t
	}
	return 90 * t
}

// panelBounds projects the panel at the given rotation: it keeps its
// width and shrinks toward the hinge edge.
func (r *renderer) panelBounds(rotation float64) image.Rectangle {
	h := int(float64(r.height) * math.Cos(rotation*math.Pi/180))
	if r.gravity == fold.GravityTop {
		return image.Rect(0, 0, r.width, h)
	}
	return image.Rect(0, r.height-h, r.width, r.height)
}

func (r *renderer) drawFrame(s surface.Surface, rotation float64) {
	s.Clear(color.White)

	bounds := r.panelBounds(rotation)
	r.shading.PreDraw(s, bounds, rotation, r.gravity)
	if r.panel != nil {
		s.DrawImage(r.panel, r.panel.Bounds(), bounds, &surface.DrawImageOptions{
			Filter: surface.FilterBilinear,
			Dither: true,
		})
	} else {
		s.FillRect(bounds, color.RGBA{R: 0x3b, G: 0x6e, B: 0xa5, A: 0xff})
	}
	r.shading.PostDraw(s, bounds, rotation, r.gravity)
}

func (r *renderer) writeGIF(path string, n int) error {
	anim := &gif.GIF{}
	for i := 0; i < n; i++ {
		s := surface.NewPalettedSurface(r.width, r.height, palette.Plan9)
		r.drawFrame(s, r.rotation(i, n))
		anim.Image = append(anim.Image, s.Paletted())
		anim.Delay = append(anim.Delay, 4)
		_ = s.Close()
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	return f.Close()
}

func (r *renderer) writePNGs(dir string, n int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	s := surface.NewImageSurface(r.width, r.height)
	defer s.Close()

	for i := 0; i < n; i++ {
		r.drawFrame(s, r.rotation(i, n))
		name := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
		if err := savePNG(name, s.Snapshot()); err != nil {
			return err
		}
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
