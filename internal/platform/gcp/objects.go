package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

// ObjectReader downloads whole objects from Cloud Storage.
type ObjectReader interface {
	// ReadObject returns at most limit bytes; limit <= 0 means unbounded.
	ReadObject(ctx context.Context, bucket, object string, limit int64) ([]byte, error)
	Close() error
}

type objectReader struct {
	log    *logger.Logger
	client *storage.Client
}

// NewObjectReader uses application default credentials, or the emulator when
// STORAGE_EMULATOR_HOST is set.
func NewObjectReader(ctx context.Context, log *logger.Logger) (ObjectReader, error) {
	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadOnly)}
	if emu := strings.TrimSpace(os.Getenv("STORAGE_EMULATOR_HOST")); emu != "" {
		opts = []option.ClientOption{option.WithoutAuthentication()}
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &objectReader{log: log.With("client", "GCSObjectReader"), client: client}, nil
}

func (o *objectReader) ReadObject(ctx context.Context, bucket, object string, limit int64) ([]byte, error) {
	r, err := o.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("gs://%s/%s: object does not exist", bucket, object)
		}
		return nil, fmt.Errorf("open gs://%s/%s: %w", bucket, object, err)
	}
	defer r.Close()

	var src io.Reader = r
	if limit > 0 {
		src = io.LimitReader(r, limit)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read gs://%s/%s: %w", bucket, object, err)
	}
	return data, nil
}

func (o *objectReader) Close() error { return o.client.Close() }

// ParseGSURL splits gs://bucket/path/to/object.
func ParseGSURL(raw string) (bucket, object string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Scheme != "gs" {
		return "", "", fmt.Errorf("not a gs:// url: %q", raw)
	}
	bucket = u.Host
	object = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || object == "" {
		return "", "", fmt.Errorf("gs url needs bucket and object: %q", raw)
	}
	return bucket, object, nil
}
