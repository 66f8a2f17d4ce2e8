package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trizel-ai/trizel/pkg/storage"
)

const (
	// DefaultReportPath is where the report is written relative to the working directory.
	DefaultReportPath = "contrast-report.json"

	// DefaultReportPrefix is the object key prefix used by StoragePublisher.
	DefaultReportPrefix = "audits"
)

// EncodeReport renders results as a two-space indented JSON array.
func EncodeReport(results []Result) ([]byte, error) {
	if results == nil {
		results = []Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteReport writes results to path, replacing any previous report. The
// file is written to a temporary sibling first and renamed into place.
func WriteReport(path string, results []Result) error {
	data, err := EncodeReport(results)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWriteReport, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".contrast-report-*.json")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	return nil
}

// Publisher ships a finished report somewhere durable and returns where.
type Publisher interface {
	Publish(ctx context.Context, report Report) (string, error)
}

// StoragePublisher uploads reports to object storage.
type StoragePublisher struct {
	store  storage.Storage
	prefix string
}

// NewStoragePublisher creates a publisher writing under prefix
// (DefaultReportPrefix when empty).
func NewStoragePublisher(store storage.Storage, prefix string) *StoragePublisher {
	if prefix == "" {
		prefix = DefaultReportPrefix
	}
	return &StoragePublisher{store: store, prefix: prefix}
}

// Key returns the object key for a report finished at t.
func (p *StoragePublisher) Key(t time.Time) string {
	return fmt.Sprintf("%s/%s-contrast-report.json", p.prefix, t.UTC().Format("20060102T150405Z"))
}

// Publish uploads the report JSON and returns its URL.
func (p *StoragePublisher) Publish(ctx context.Context, report Report) (string, error) {
	data, err := EncodeReport(report.Results)
	if err != nil {
		return "", fmt.Errorf("audit: encode report: %w", err)
	}
	info, err := p.store.Put(ctx, bytes.NewReader(data), int64(len(data)),
		storage.WithKey(p.Key(report.FinishedAt)),
		storage.WithContentType("application/json"),
	)
	if err != nil {
		return "", fmt.Errorf("audit: publish report: %w", err)
	}
	return p.store.URL(info.Key), nil
}

var _ Publisher = (*StoragePublisher)(nil)
