// Package http provides an HTTP-based implementation of veritext.Fetcher.
// It retrieves pages as served, without executing JavaScript, which is
// the right choice for server-rendered output; client-rendered pages
// need the rod fetcher instead.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mstolarz/veritext"
)

// DefaultFetchTimeout bounds a single page fetch. Kept consistent with
// rod.DefaultFetchTimeout.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies verification traffic in server logs.
const userAgent = "veritext/1.0"

// Ensure Fetcher implements veritext.Fetcher at compile time.
var _ veritext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML with plain GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-fetch timeout. Defaults to
// DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML served at url. Non-200 responses become
// coded errors so the CLI can report a missing page distinctly from a
// server failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", veritext.Errorf(veritext.EINVALID, "invalid url %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", veritext.Errorf(veritext.EUNAUTHORIZED, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode == http.StatusNotFound:
		return "", veritext.Errorf(veritext.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", veritext.Errorf(veritext.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. A no-op here; the interface exists for the
// browser fetcher, which owns a process.
func (f *Fetcher) Close() error {
	return nil
}
