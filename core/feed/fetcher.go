package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"marketsync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Fetcher retrieves the raw remnants archive.
type Fetcher interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// NewFetcher builds the fetcher matching the configured source. The storage
// client may be nil for the http source.
func NewFetcher(cfg Config, client storage.Client) (Fetcher, error) {
	switch cfg.Source {
	case SourceHTTP:
		return NewHTTPFetcher(cfg), nil
	case SourceS3:
		if client == nil {
			return nil, fmt.Errorf("s3 feed source requires a storage client")
		}
		return NewS3Fetcher(client, cfg.Bucket, cfg.Object), nil
	default:
		return nil, fmt.Errorf("unknown feed source %q", cfg.Source)
	}
}

// HTTPFetcher downloads the archive from the merchant's public URL.
type HTTPFetcher struct {
	url  string
	http *http.Client
}

// NewHTTPFetcher creates a fetcher for the configured URL.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	return &HTTPFetcher{
		url:  cfg.URL,
		http: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFeedUnavailable, resp.Status)
	}
	return resp.Body, nil
}

// S3Fetcher reads the archive from an object storage bucket.
type S3Fetcher struct {
	client storage.Client
	bucket string
	object string
}

// NewS3Fetcher creates a fetcher for the given bucket and object key.
func NewS3Fetcher(client storage.Client, bucket, object string) *S3Fetcher {
	return &S3Fetcher{client: client, bucket: bucket, object: object}
}

func (f *S3Fetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	exists, err := f.client.BucketExists(ctx, f.bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %q does not exist", ErrFeedUnavailable, f.bucket)
	}

	obj, err := f.client.GetObject(ctx, f.bucket, f.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	return obj, nil
}
