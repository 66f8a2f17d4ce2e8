package status

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// DefaultPath is where the publication pipeline writes the daily status.
const DefaultPath = "/data/publish/3i-atlas/daily-status.json"

// Source opens the raw status document.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FSSource reads the status file from the site root. The path is fixed at
// construction; a leading "/" is accepted and stripped.
type FSSource struct {
	fsys fs.FS
	name string
}

// NewFSSource creates a Source reading urlPath from fsys.
func NewFSSource(fsys fs.FS, urlPath string) *FSSource {
	return &FSSource{fsys: fsys, name: strings.TrimPrefix(urlPath, "/")}
}

// Open implements Source.
func (s *FSSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fsys.Open(s.name)
}

// HTTPSource fetches the status document from an absolute URL.
type HTTPSource struct {
	client *http.Client
	url    string
}

// DefaultHTTPTimeout bounds a single status fetch.
const DefaultHTTPTimeout = 5 * time.Second

// NewHTTPSource creates a Source fetching url. A nil client gets one with
// DefaultHTTPTimeout.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &HTTPSource{client: client, url: url}
}

// Open implements Source. Responses outside 2xx return ErrUnexpectedStatus.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp.Body, nil
}
