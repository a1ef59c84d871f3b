package measurement

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/application/ports"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/pkg/jwt"
)

// Constantes de almacenamiento de mediciones.
const (
	ContentTypePDF = "application/pdf"
	KeyPrefix      = "measurements/"
	DownloadPath   = "/api/uploads/"
	linkIssuer     = "tank-inventory"
)

// Config parámetros del caso de uso.
type Config struct {
	MaxBytes   int64
	LinkSecret string
	LinkTTL    time.Duration
}

// UploadUseCase guarda PDFs de medición y emite enlaces de descarga firmados.
// La extracción de datos del PDF queda del lado del cliente.
type UploadUseCase struct {
	store ports.BlobStore
	cfg   Config
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(store ports.BlobStore, cfg Config) *UploadUseCase {
	return &UploadUseCase{store: store, cfg: cfg}
}

// Upload valida tipo y tamaño, guarda el archivo bajo measurements/<uuid>.pdf y devuelve
// la clave, el enlace firmado y el checksum BLAKE2b-256 del contenido.
func (uc *UploadUseCase) Upload(ctx context.Context, userID, contentType string, body io.Reader, size int64) (*dto.UploadResponse, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != ContentTypePDF {
		return nil, domain.NewValidationError("file", "solo se aceptan archivos PDF")
	}
	if size > uc.cfg.MaxBytes {
		return nil, uc.tooLarge()
	}

	data, err := io.ReadAll(io.LimitReader(body, uc.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	if int64(len(data)) > uc.cfg.MaxBytes {
		return nil, uc.tooLarge()
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, domain.NewValidationError("file", "el contenido no es un PDF")
	}

	key := KeyPrefix + uuid.New().String() + ".pdf"
	if err := uc.store.Put(ctx, key, ContentTypePDF, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, fmt.Errorf("guardar archivo: %w", err)
	}
	url, err := uc.Link(key, userID)
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(data)
	return &dto.UploadResponse{
		Path:     key,
		URL:      url,
		Checksum: hex.EncodeToString(sum[:]),
		Size:     int64(len(data)),
	}, nil
}

// Link firma un enlace de descarga para una clave ya guardada.
func (uc *UploadUseCase) Link(key, userID string) (string, error) {
	token, err := jwt.Generate(uc.cfg.LinkSecret, key, userID, linkIssuer, uc.cfg.LinkTTL)
	if err != nil {
		return "", fmt.Errorf("firmar enlace: %w", err)
	}
	return DownloadPath + token, nil
}

// Open valida el token del enlace y abre el archivo. El llamador debe cerrar el reader.
func (uc *UploadUseCase) Open(ctx context.Context, token string) (io.ReadCloser, string, error) {
	key, err := jwt.Parse(uc.cfg.LinkSecret, token)
	if err != nil {
		return nil, "", domain.NewValidationError("token", "enlace inválido o expirado")
	}
	rc, err := uc.store.Get(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return rc, key, nil
}

func (uc *UploadUseCase) tooLarge() error {
	return domain.NewValidationError("file", fmt.Sprintf("el archivo supera el máximo de %d MB", uc.cfg.MaxBytes/(1024*1024)))
}
