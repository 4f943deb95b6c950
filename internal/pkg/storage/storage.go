package storage

import (
	"context"
	"io"
	"time"
)

// Storage abstracts where gift media lives: banner images, product
// previews and the animation assets themselves.
type Storage interface {
	// Upload stores an object and returns its public URL
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)

	// Download opens an object for reading
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// GetPresignedDownloadURL returns a time-limited URL, used to hand a
	// purchased asset to the customer without exposing the bucket
	GetPresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// Delete removes an object
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is present
	Exists(ctx context.Context, key string) (bool, error)

	// GetStorageType returns the backend type
	GetStorageType() string
}

// DefaultPresignExpiry is how long an asset download link stays valid
const DefaultPresignExpiry = 15 * time.Minute

// StorageType backend identifier
type StorageType string

const (
	StorageTypeLocal StorageType = "local" // local filesystem
	StorageTypeOSS   StorageType = "oss"   // Aliyun OSS
)

// ContentTypeByExt maps a filename to its Content-Type, covering the
// animation formats the store sells alongside plain web media.
func ContentTypeByExt(ext string) string {
	types := map[string]string{
		".svga": "application/octet-stream",
		".pag":  "application/octet-stream",
		".vap":  "video/mp4",
		".json": "application/json",
		".mp4":  "video/mp4",
		".webm": "video/webm",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
	}
	if ct, ok := types[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
