package dto

import "time"

// AuditListRequest filtros de GET /api/audit-log.
type AuditListRequest struct {
	PageRequest
	EntityType string `query:"entity_type"`
	EntityID   string `query:"entity_id"`
}

// AuditChangesDTO instantáneas antes/después.
type AuditChangesDTO struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// AuditEntryResponse entrada de la bitácora.
type AuditEntryResponse struct {
	ID          string          `json:"id"`
	Action      string          `json:"action"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	UserID      string          `json:"user_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Changes     AuditChangesDTO `json:"changes"`
	Description string          `json:"description,omitempty"`
}

// AuditListResponse página de la bitácora.
type AuditListResponse struct {
	Items []AuditEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
