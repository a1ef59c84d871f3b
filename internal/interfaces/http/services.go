package http

import (
	"context"
	"io"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
)

// Los handlers dependen de estas interfaces; los casos de uso de application las satisfacen.

type TankService interface {
	Create(ctx context.Context, userID string, in dto.CreateTankRequest) (*dto.TankResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TankResponse, error)
	List(ctx context.Context) (*dto.TankListResponse, error)
	Update(ctx context.Context, userID, id string, in dto.UpdateTankRequest) (*dto.TankResponse, error)
	Reset(ctx context.Context, userID, id string, in dto.ResetTankRequest) (*dto.TankResponse, error)
}

type ProjectionService interface {
	ProjectTank(ctx context.Context, tankID string) (*dto.ProjectionResponse, error)
	ProjectAll(ctx context.Context) (*dto.TankListResponse, error)
	Timeline(ctx context.Context, tankID string, horizonDays int) (*dto.TimelineResponse, error)
}

type ReportService interface {
	Generate(ctx context.Context, tankID string) ([]byte, string, error)
}

type MovementService interface {
	Create(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error)
	Update(ctx context.Context, userID, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error)
	Delete(ctx context.Context, userID, id string) error
	GetByID(ctx context.Context, id string) (*dto.MovementResponse, error)
	List(ctx context.Context, tankID string) (*dto.MovementListResponse, error)
}

type PropertyService interface {
	Create(ctx context.Context, userID string, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	List(ctx context.Context) (*dto.PropertyListResponse, error)
	Update(ctx context.Context, userID, id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type UserService interface {
	List(ctx context.Context) (*dto.UserListResponse, error)
}

type AuditService interface {
	List(ctx context.Context, in dto.AuditListRequest) (*dto.AuditListResponse, error)
}

type UploadService interface {
	Upload(ctx context.Context, userID, contentType string, body io.Reader, size int64) (*dto.UploadResponse, error)
	Open(ctx context.Context, token string) (io.ReadCloser, string, error)
}

// MovementRecorder recibe eventos del ciclo de vida de movimientos (métricas).
type MovementRecorder interface {
	RecordMovement(movementType, event string)
}

type noopRecorder struct{}

func (noopRecorder) RecordMovement(string, string) {}
