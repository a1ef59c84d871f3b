package ports

import (
	"context"
	"io"
)

// BlobStore define el puerto de salida para guardar archivos (PDFs de medición).
// Las implementaciones (sistema de archivos, S3) deben devolver domain.ErrNotFound
// cuando la clave no existe.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}
