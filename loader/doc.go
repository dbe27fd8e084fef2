// Package loader loads glance images for fold shadings.
//
// Loader implements fold.ImageLoader. It reads resources from a Source,
// decodes them, and keeps decoded images in a byte-budgeted LRU cache so
// that several panels sharing one glance image decode it once.
//
// # Sources
//
//   - FSSource reads from any fs.FS: os.DirFS, embed.FS, fstest.MapFS
//   - HTTPSource fetches resources relative to a base URL
//
// # Formats
//
// Decode understands PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image.
//
// # Concurrency
//
// RequestLoad runs each load on its own goroutine and never blocks the
// caller. Concurrent requests for the same resource share a single read
// and decode, and the number of decodes in flight is bounded (see
// WithConcurrency). Loads are not retried and have no timeout of their
// own; cancel the request context to abandon one.
//
// Example:
//
//	l := loader.New(loader.FSSource(os.DirFS("assets")), loader.WithCacheBytes(32<<20))
//	defer l.Close()
//
//	sh := fold.NewGlanceShading(ctx, l, "glance.webp")
package loader
