package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

// Auditor registra cambios en la bitácora sin propagar errores.
type Auditor interface {
	Record(ctx context.Context, action entity.AuditAction, entityType entity.AuditEntityType,
		entityID, userID string, old, new any, description string)
}

var _ Auditor = (*AuditUseCase)(nil)

// AuditUseCase escritura y consulta de la bitácora de auditoría.
type AuditUseCase struct {
	repo repository.AuditLogRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditLogRepository, log zerolog.Logger) *AuditUseCase {
	return &AuditUseCase{repo: repo, log: log, now: time.Now}
}

// Record guarda una entrada. Si falla solo se registra en el log: la operación auditada ya se completó.
func (uc *AuditUseCase) Record(ctx context.Context, action entity.AuditAction, entityType entity.AuditEntityType,
	entityID, userID string, old, new any, description string) {
	if userID == "" {
		userID = entity.SystemUserID
	}
	entry := &entity.AuditEntry{
		ID:          uuid.New().String(),
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		UserID:      userID,
		Timestamp:   uc.now().UTC(),
		Changes:     entity.AuditChanges{Old: old, New: new},
		Description: description,
	}
	// La entrada se guarda aunque el request original se cancele.
	if err := uc.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		uc.log.Error().Err(err).
			Str("action", string(action)).
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("no se pudo registrar la auditoría")
	}
}

// List consulta la bitácora con filtros y paginación (timestamp descendente).
func (uc *AuditUseCase) List(ctx context.Context, in dto.AuditListRequest) (*dto.AuditListResponse, error) {
	switch entity.AuditEntityType(in.EntityType) {
	case "", entity.AuditEntityTank, entity.AuditEntityMovement, entity.AuditEntityProperty:
	default:
		return nil, domain.NewValidationError("entity_type", "debe ser tank, movement o property")
	}
	page := in.PageRequest
	page.DefaultPage()

	list, total, err := uc.repo.List(ctx, repository.AuditFilter{
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.NewAuditEntryResponse(e))
	}
	return &dto.AuditListResponse{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}
