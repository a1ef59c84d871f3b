// Package storage implementa el puerto BlobStore sobre el sistema de archivos local
// o un bucket S3 compatible (AWS S3, MinIO).
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhoicas/tank-inventory-api/internal/application/ports"
	"github.com/jhoicas/tank-inventory-api/pkg/config"
)

// New construye el store según STORAGE_DRIVER.
func New(ctx context.Context, cfg config.StorageConfig) (ports.BlobStore, error) {
	switch cfg.Driver {
	case "", "fs":
		return NewFSStore(cfg.FSRoot)
	case "s3":
		return NewS3Store(ctx, S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
	}
	return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
}

// sanitizeKey evita claves vacías, absolutas o que escapen de la raíz.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("storage: clave vacía")
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("storage: clave inválida %q", key)
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("storage: clave absoluta %q", key)
	}
	return filepath.ToSlash(filepath.Clean(key)), nil
}
