package ports

import (
	"context"
	"io"
)

// ObjectStore is the image host. The core never interprets the stored
// object; resource documents keep only the returned URL string.
type ObjectStore interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
