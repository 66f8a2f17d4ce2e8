package storage

import (
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Option adjusts a single Put.
type Option func(*putOptions)

type putOptions struct {
	key         string
	prefix      string
	contentType string
	acl         ACL
}

// WithKey stores the object under key instead of a generated UUID name.
func WithKey(key string) Option {
	return func(o *putOptions) { o.key = key }
}

// WithPrefix puts generated names under prefix, e.g. "audits". It has no
// effect together with WithKey.
func WithPrefix(prefix string) Option {
	return func(o *putOptions) { o.prefix = prefix }
}

// WithContentType sets Content-Type; application/octet-stream otherwise.
func WithContentType(ct string) Option {
	return func(o *putOptions) { o.contentType = ct }
}

// WithACL overrides Config.DefaultACL for one object.
func WithACL(acl ACL) Option {
	return func(o *putOptions) { o.acl = acl }
}

// objectKey returns the explicit key or a fresh UUID name whose extension
// follows the content type (".bin" when unknown).
func (o *putOptions) objectKey() string {
	if o.key != "" {
		return o.key
	}
	name := uuid.NewString() + o.extension()
	prefix := strings.Trim(path.Clean("/"+strings.TrimSpace(o.prefix)), "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func (o *putOptions) extension() string {
	if o.contentType == defaultContentType {
		return ".bin"
	}
	exts, err := mime.ExtensionsByType(o.contentType)
	if err != nil || len(exts) == 0 {
		return ".bin"
	}
	return exts[0]
}

func (o *putOptions) cannedACL() types.ObjectCannedACL {
	if o.acl == ACLPublicRead {
		return types.ObjectCannedACLPublicRead
	}
	return types.ObjectCannedACLPrivate
}
