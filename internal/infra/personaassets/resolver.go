package personaassets

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Resolver turns a persona image reference into a URL a browser can load.
type Resolver interface {
	Resolve(ctx context.Context, ref string) string
}

// Static joins references onto a fixed base URL.
type Static struct {
	base string
}

// NewStatic builds a resolver rooted at base.
func NewStatic(base string) Static {
	return Static{base: strings.TrimRight(strings.TrimSpace(base), "/")}
}

// Resolve returns absolute references unchanged.
func (s Static) Resolve(_ context.Context, ref string) string {
	if ref == "" || isAbsolute(ref) {
		return ref
	}
	return s.base + "/" + strings.TrimLeft(ref, "/")
}

type presigner interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// Bucket issues short lived presigned URLs for images kept in an S3-compatible bucket.
type Bucket struct {
	client   presigner
	bucket   string
	ttl      time.Duration
	fallback Static
	logger   *slog.Logger
}

// NewBucket connects to the bucket endpoint. Presign failures degrade to fallback.
func NewBucket(endpoint, accessKey, secretKey, bucket, region string, ttl time.Duration, fallback Static, logger *slog.Logger) (*Bucket, error) {
	useSSL := strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "https")
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init persona asset client: %w", err)
	}
	return &Bucket{
		client:   client,
		bucket:   bucket,
		ttl:      ttl,
		fallback: fallback,
		logger:   logger.With("component", "personaassets.bucket"),
	}, nil
}

// Resolve presigns a GET for ref. Signing is local, so no request is made.
func (b *Bucket) Resolve(ctx context.Context, ref string) string {
	if ref == "" || isAbsolute(ref) {
		return ref
	}
	signed, err := b.client.PresignedGetObject(ctx, b.bucket, strings.TrimLeft(ref, "/"), b.ttl, nil)
	if err != nil {
		b.logger.Warn("presign persona image failed", "ref", ref, "error", err)
		return b.fallback.Resolve(ctx, ref)
	}
	return signed.String()
}

var (
	_ Resolver = Static{}
	_ Resolver = (*Bucket)(nil)
)

func isAbsolute(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}
