// Package storage uploads objects to S3-compatible buckets.
//
// The audit command uses it to publish contrast reports next to the local
// report file:
//
//	store, err := storage.New(storage.Config{
//	    Bucket:    "trizel-reports",
//	    AccessKey: os.Getenv("AUDIT_S3_ACCESS_KEY"),
//	    SecretKey: os.Getenv("AUDIT_S3_SECRET_KEY"),
//	    Endpoint:  "https://minio.internal:9000",
//	    PathStyle: true,
//	})
//	info, err := store.Put(ctx, bytes.NewReader(report), int64(len(report)),
//	    storage.WithKey("audits/20250601T120000Z-contrast-report.json"),
//	    storage.WithContentType("application/json"),
//	)
//
// S3 API failures are mapped to [ErrNotFound], [ErrAccessDenied] or the
// operation's own sentinel.
package storage
