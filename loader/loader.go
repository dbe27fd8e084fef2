package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/fold"
)

// ErrClosed is returned for requests made after Close.
var ErrClosed = errors.New("loader: closed")

// DefaultConcurrency is the default number of decodes in flight.
const DefaultConcurrency = 4

var _ fold.ImageLoader = (*Loader)(nil)

// Option configures a Loader.
type Option func(*options)

type options struct {
	cacheBytes  int64
	concurrency int64
}

func defaultOptions() options {
	return options{
		cacheBytes:  DefaultCacheBytes,
		concurrency: DefaultConcurrency,
	}
}

// WithCacheBytes sets the decoded-image cache budget in bytes.
// Zero or a negative value disables caching.
func WithCacheBytes(n int64) Option {
	return func(o *options) {
		o.cacheBytes = n
	}
}

// WithConcurrency bounds the number of concurrent reads and decodes.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = int64(n)
		}
	}
}

// Loader loads and caches images from a Source.
//
// Loader is safe for concurrent use.
type Loader struct {
	src   Source
	cache *imageCache // nil when caching is disabled
	sem   *semaphore.Weighted
	group singleflight.Group

	// ctx bounds every shared fetch. Close cancels it; a single caller
	// giving up never does.
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex // guards closed against wg.Add
	closed bool
	wg     sync.WaitGroup
}

// New creates a loader reading from src.
func New(src Source, opts ...Option) *Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		src:    src,
		sem:    semaphore.NewWeighted(o.concurrency),
		ctx:    ctx,
		cancel: cancel,
	}
	if o.cacheBytes > 0 {
		l.cache = newImageCache(o.cacheBytes)
	}
	return l
}

// Load loads resource synchronously.
//
// Concurrent loads of the same resource share one read and decode. The
// shared work runs under the loader's own context, so a caller whose ctx
// ends only abandons its wait and never fails the other callers.
func (l *Loader) Load(ctx context.Context, resource string) (image.Image, error) {
	l.mu.RLock()
	closed := l.closed
	l.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}
	return l.load(ctx, resource)
}

// RequestLoad loads resource on a new goroutine and passes the result to
// cb. After Close, cb receives ErrClosed before RequestLoad returns.
func (l *Loader) RequestLoad(ctx context.Context, resource string, cb fold.LoadCallback) {
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		cb(nil, ErrClosed)
		return
	}
	l.wg.Add(1)
	l.mu.RUnlock()

	go func() {
		defer l.wg.Done()
		img, err := l.load(ctx, resource)
		if err != nil {
			fold.Logger().Warn("loader: load failed", "resource", resource, "error", err)
		}
		cb(img, err)
	}()
}

func (l *Loader) load(ctx context.Context, resource string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.cache != nil {
		if img, ok := l.cache.get(resource); ok {
			fold.Logger().Debug("loader: cache hit", "resource", resource)
			return img, nil
		}
	}

	ch := l.group.DoChan(resource, func() (any, error) {
		return l.fetch(l.ctx, resource)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			fold.Logger().Debug("loader: shared load", "resource", resource)
		}
		return res.Val.(image.Image), nil
	}
}

// fetch reads and decodes resource, holding one concurrency slot.
func (l *Loader) fetch(ctx context.Context, resource string) (image.Image, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("loader: %s: %w", resource, err)
	}
	defer l.sem.Release(1)

	// A flight that finished while this one was starting has filled the cache.
	if l.cache != nil {
		if img, ok := l.cache.peek(resource); ok {
			return img, nil
		}
	}

	rc, err := l.src.Open(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", resource, err)
	}
	defer func() { _ = rc.Close() }()

	img, format, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", resource, err)
	}

	b := img.Bounds()
	fold.Logger().Debug("loader: decoded",
		"resource", resource, "format", format, "width", b.Dx(), "height", b.Dy())

	if l.cache != nil && !l.cache.set(resource, img) {
		fold.Logger().Debug("loader: image exceeds cache budget", "resource", resource)
	}
	return img, nil
}

// Wait blocks until every RequestLoad issued so far has delivered its
// callback.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close rejects new requests with ErrClosed, cancels reads in flight and
// waits for pending requests to deliver their callbacks. Close is
// idempotent.
func (l *Loader) Close() error {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
	return nil
}

// Stats returns cache statistics. All counters are zero when caching is
// disabled.
func (l *Loader) Stats() CacheStats {
	if l.cache == nil {
		return CacheStats{}
	}
	return l.cache.stats()
}
