package fold

import (
	"context"
	"image"
)

// LoadCallback receives the outcome of an image load. Exactly one of img
// and err is non-nil.
type LoadCallback func(img image.Image, err error)

// ImageLoader loads images by resource name.
//
// RequestLoad must call cb exactly once, either before returning or later
// from any goroutine. The loader decides where resources come from
// (files, embedded assets, HTTP, a cache).
type ImageLoader interface {
	RequestLoad(ctx context.Context, resource string, cb LoadCallback)
}

// ImageLoaderFunc adapts a function to the ImageLoader interface.
type ImageLoaderFunc func(ctx context.Context, resource string, cb LoadCallback)

// RequestLoad calls f.
func (f ImageLoaderFunc) RequestLoad(ctx context.Context, resource string, cb LoadCallback) {
	f(ctx, resource, cb)
}

// LoadState is the lifecycle state of a glance image.
type LoadState uint32

const (
	// StateUnloaded means the load has been requested but not completed.
	StateUnloaded LoadState = iota

	// StateLoaded means the image is available.
	StateLoaded

	// StateFailed means the load failed. It is terminal: the glance is
	// never drawn and the load is never retried.
	StateFailed
)

// String returns a string representation of the state.
func (s LoadState) String() string {
	switch s {
	case StateUnloaded:
		return "Unloaded"
	case StateLoaded:
		return "Loaded"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
