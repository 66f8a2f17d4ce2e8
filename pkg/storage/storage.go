package storage

import (
	"context"
	"io"
)

// Storage stores and retrieves objects by key.
type Storage interface {
	// Put uploads size bytes from r. The key is generated unless WithKey is given.
	Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error)
	// Get returns ErrNotFound when the key does not exist.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// URL returns the public URL of key.
	URL(key string) string
}

// Config holds S3-compatible storage settings.
type Config struct {
	Bucket    string `env:"BUCKET"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	// Endpoint is set for S3-compatible services (MinIO, R2, Spaces).
	Endpoint string `env:"ENDPOINT"`
	Region   string `env:"REGION" envDefault:"us-east-1"`
	// PublicURL is a CDN or custom domain prefix for URL.
	PublicURL  string `env:"PUBLIC_URL"`
	DefaultACL ACL    `env:"ACL" envDefault:"private"`
	PathStyle  bool   `env:"PATH_STYLE"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

// FileInfo describes a stored object.
type FileInfo struct {
	Key         string
	ContentType string
	ACL         ACL
	Size        int64
}

// ACL is a canned object access policy.
type ACL string

const (
	ACLPrivate    ACL = "private"
	ACLPublicRead ACL = "public-read"
)

const DefaultRegion = "us-east-1"

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.DefaultACL == "" {
		c.DefaultACL = ACLPrivate
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
