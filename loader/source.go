package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// ErrNotFound is returned when a source has no such resource.
var ErrNotFound = errors.New("loader: resource not found")

// Source opens encoded image resources by name.
type Source interface {
	Open(ctx context.Context, resource string) (io.ReadCloser, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, resource string) (io.ReadCloser, error)

// Open calls f.
func (f SourceFunc) Open(ctx context.Context, resource string) (io.ReadCloser, error) {
	return f(ctx, resource)
}

// FSSource returns a Source reading from fsys. Resource names are
// slash-separated paths; a leading slash is ignored.
func FSSource(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) Open(ctx context.Context, resource string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := path.Clean(strings.TrimPrefix(resource, "/"))
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("loader: invalid resource %q: %w", resource, fs.ErrInvalid)
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, resource)
		}
		return nil, err
	}
	return f, nil
}

// HTTPSource returns a Source that fetches resources relative to baseURL.
// If client is nil, http.DefaultClient is used.
func HTTPSource(baseURL string, client *http.Client) (Source, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("loader: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{base: base, client: client}, nil
}

type httpSource struct {
	base   *url.URL
	client *http.Client
}

func (s *httpSource) Open(ctx context.Context, resource string) (io.ReadCloser, error) {
	ref, err := url.Parse(resource)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid resource %q: %w", resource, err)
	}
	u := s.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("loader: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loader: GET %s: %w", u, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("loader: GET %s: %s", u, resp.Status)
	}
	return resp.Body, nil
}
