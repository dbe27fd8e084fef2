package loader

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode errors.
var (
	// ErrEmptyData is returned when a resource has no bytes.
	ErrEmptyData = errors.New("loader: empty data")

	// ErrUnsupportedFormat is returned when no registered decoder
	// recognizes the data.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")
)

// Decode decodes an image from r, auto-detecting the format.
// It returns the image and the registered format name.
func Decode(r io.Reader) (image.Image, string, error) {
	br, err := peekReader(r)
	if err != nil {
		return nil, "", err
	}

	img, format, err := image.Decode(br)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("loader: decode: %w", err)
	}
	return img, format, nil
}

// DecodeConfig returns the dimensions and format of an encoded image
// without decoding its pixels.
func DecodeConfig(r io.Reader) (image.Config, string, error) {
	br, err := peekReader(r)
	if err != nil {
		return image.Config{}, "", err
	}

	cfg, format, err := image.DecodeConfig(br)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return image.Config{}, "", ErrUnsupportedFormat
		}
		return image.Config{}, "", fmt.Errorf("loader: decode config: %w", err)
	}
	return cfg, format, nil
}

// peekReader buffers r and reports ErrEmptyData when it has no bytes.
func peekReader(r io.Reader) (*bufio.Reader, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyData
		}
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	return br, nil
}

// imageBytes estimates the memory held by a decoded image.
func imageBytes(img image.Image) int64 {
	switch m := img.(type) {
	case *image.RGBA:
		return int64(len(m.Pix))
	case *image.NRGBA:
		return int64(len(m.Pix))
	case *image.Gray:
		return int64(len(m.Pix))
	case *image.Paletted:
		return int64(len(m.Pix)) + int64(len(m.Palette))*4
	case *image.YCbCr:
		return int64(len(m.Y) + len(m.Cb) + len(m.Cr))
	}
	b := img.Bounds()
	return int64(b.Dx()) * int64(b.Dy()) * 4
}
