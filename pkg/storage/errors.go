package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrInvalidConfig indicates a missing bucket or credentials.
	ErrInvalidConfig = errors.New("storage: invalid configuration")
	ErrNotFound      = errors.New("storage: object not found")
	ErrNoBucket      = errors.New("storage: bucket does not exist")
	ErrAccessDenied  = errors.New("storage: access denied")
	ErrUploadFailed  = errors.New("storage: upload failed")
	ErrDeleteFailed  = errors.New("storage: delete failed")
)

// apiCodes maps S3 error codes to sentinels. Credential problems surface as
// access errors so a misconfigured publisher reads the same as a denied one.
var apiCodes = map[string]error{
	"NoSuchKey":             ErrNotFound,
	"NotFound":              ErrNotFound,
	"NoSuchBucket":          ErrNoBucket,
	"AccessDenied":          ErrAccessDenied,
	"Forbidden":             ErrAccessDenied,
	"InvalidAccessKeyId":    ErrAccessDenied,
	"SignatureDoesNotMatch": ErrAccessDenied,
}

// classify wraps err with the sentinel for its S3 error code, or with op
// when the code is unknown.
func classify(err, op error) error {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if sentinel, ok := apiCodes[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}
	return fmt.Errorf("%w: %w", op, err)
}
