package fetcher

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

var (
	plainContentTypes = map[string]struct{}{
		"application/xml":          {},
		"text/xml":                 {},
		"application/rss+xml":      {},
		"text/plain":               {},
		"application/octet-stream": {},
	}
	compressedContentTypes = map[string]struct{}{
		"application/zip":    {},
		"application/gzip":   {},
		"application/x-gzip": {},
	}
)

// Option configures Fetcher.
type Option func(f *Fetcher)

// WithRateLimit makes Fetcher wait for limiter before every request.
// The same limiter can be shared by many fetchers.
func WithRateLimit(limiter *rate.Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = limiter
	}
}

// Fetcher builds http requests and fetches files via http.
type Fetcher struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    client,
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchFile returns ReadCloser with file fetched from provided url or error.
// Exceeding ctx deadline or client timeout, also while reading returned body, results in ErrTimeout.
// The caller is responsible for closing returned ReadCloser.
func (f *Fetcher) FetchFile(ctx context.Context, url string) (io.ReadCloser, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: can't wait for rate limiter: %w", ErrTimeout, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/xml, text/xml")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", classify(ctx, err))
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrStatusNotOK, resp.Status)
	}

	body := &deadlineReadCloser{ctx: ctx, body: resp.Body}

	contentType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %q", ErrContentTypeNotSupported, resp.Header.Get("Content-Type"))
	}

	_, compressed := compressedContentTypes[contentType]
	if _, plain := plainContentTypes[contentType]; !plain && !compressed {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %q", ErrContentTypeNotSupported, contentType)
	}

	if compressed || strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return decompressResponse(body)
	}
	return body, nil
}

// classify wraps timeout errors with ErrTimeout.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}

// deadlineReadCloser classifies errors of reading response body.
type deadlineReadCloser struct {
	ctx  context.Context
	body io.ReadCloser
}

func (r *deadlineReadCloser) Read(p []byte) (int, error) {
	n, err := r.body.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, classify(r.ctx, err)
	}
	return n, err
}

func (r *deadlineReadCloser) Close() error {
	return r.body.Close()
}

// decompressResponse returns io.ReadCloser with decompressed http response and error.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		_ = response.Close()
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps decompressed Reader and compressed ReadCloser.
// It reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

// Read reads uncompressed bytes from underlying Reader into p.
// Returns number of read bytes and error.
func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

// Close closes underlying compressed ReadCloser.
func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}
