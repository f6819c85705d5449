package port

import (
	"context"
	"io"

	"github.com/ardenpalme/app/internal/core/domain"
)

// Object is a payload read back from storage. The caller closes Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectStorage persists, retrieves and deletes binary payloads by opaque
// key. Failures are reported as *domain.StorageError; a missing key wraps
// domain.ErrObjectNotFound.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// MediaProbe derives metadata and thumbnails from a payload on local disk.
type MediaProbe interface {
	Metadata(ctx context.Context, path, contentType string) (domain.MediaMetadata, error)
	VideoThumbnail(ctx context.Context, path string) ([]byte, error)
}
