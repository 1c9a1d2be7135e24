// Package storage abstracts where uploaded recipe images live. Handlers and
// services only see URLs; the S3 wiring stays here.
package storage

import "context"

// ImageStore uploads image blobs and returns publicly reachable HTTPS URLs.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}
