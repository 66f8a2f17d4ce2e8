package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultContentType = "application/octet-stream"

// S3Storage stores objects in one S3-compatible bucket (AWS, MinIO, R2).
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// New validates cfg and builds the client. No request is made.
func New(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		// MinIO and R2 reject the SDK's default trailing checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		}
	})
	return &S3Storage{client: client, cfg: cfg}, nil
}

// Put uploads size bytes from r. Readers that cannot seek are buffered
// first because the SDK needs to rewind the body on retry.
func (s *S3Storage) Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error) {
	o := &putOptions{acl: s.cfg.DefaultACL, contentType: defaultContentType}
	for _, opt := range opts {
		opt(o)
	}

	body, err := seekable(r)
	if err != nil {
		return nil, err
	}

	key := o.objectKey()
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        s.bucket(),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(o.contentType),
		ACL:           o.cannedACL(),
	})
	if err != nil {
		return nil, classify(err, ErrUploadFailed)
	}
	return &FileInfo{Key: key, Size: size, ContentType: o.contentType, ACL: o.acl}, nil
}

// Get streams the object under key; the caller must close it.
func (s *S3Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: s.bucket(), Key: aws.String(key)})
	if err != nil {
		return nil, classify(err, ErrNotFound)
	}
	return out.Body, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: s.bucket(), Key: aws.String(key)})
	if err != nil {
		return classify(err, ErrDeleteFailed)
	}
	return nil
}

// URL is where key can be fetched: under PublicURL if set, else under the
// custom endpoint, else the AWS virtual-hosted address.
func (s *S3Storage) URL(key string) string {
	switch {
	case s.cfg.PublicURL != "":
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	case s.cfg.Endpoint == "":
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	case s.cfg.PathStyle:
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	default:
		return strings.TrimSuffix(s.cfg.Endpoint, "/") + "/" + key
	}
}

func (s *S3Storage) bucket() *string { return aws.String(s.cfg.Bucket) }

func seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("storage: read input: %w", err)
	}
	return bytes.NewReader(data), nil
}

var _ Storage = (*S3Storage)(nil)
