package filestore

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNoFileRef means the record has no stored file reference at all.
	ErrNoFileRef = errors.New("filestore: record has no file reference")
	// ErrNotConfigured means the reference is a storage path but no signer
	// or bucket is configured to turn it into a URL.
	ErrNotConfigured = errors.New("filestore: file store not configured")
)

// Signer issues a time-limited URL for a private object.
type Signer interface {
	SignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}

// Resolver turns a record's stored file reference into a viewable link.
// Absolute HTTP(S) URLs pass through unchanged; anything else is treated as
// an object key in the configured bucket and presigned.
type Resolver struct {
	signer Signer
	bucket string
	ttl    time.Duration
}

func NewResolver(signer Signer, bucket string, ttl time.Duration) *Resolver {
	return &Resolver{signer: signer, bucket: bucket, ttl: ttl}
}

// TTL reports the signed-URL lifetime, for callers that display expiry.
func (r *Resolver) TTL() time.Duration { return r.ttl }

// ResolveLink resolves ref to a URL. The upstream pipeline sometimes stores
// keys with a redundant leading "<bucket>/" segment; that prefix is stripped
// before signing.
func (r *Resolver) ResolveLink(ctx context.Context, ref string) (string, bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false, ErrNoFileRef
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ref, false, nil
	}

	if r.signer == nil || r.bucket == "" {
		return "", false, ErrNotConfigured
	}

	key := strings.TrimPrefix(ref, "/")
	key = strings.TrimPrefix(key, r.bucket+"/")

	url, err := r.signer.SignedURL(ctx, r.bucket, key, r.ttl)
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}
