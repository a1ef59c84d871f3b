package entity

import "time"

// AuditAction acción registrada en la bitácora.
type AuditAction string

// Acciones auditables.
const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionReset  AuditAction = "reset"
)

// AuditEntityType tipo de entidad auditada.
type AuditEntityType string

// Entidades auditables.
const (
	AuditEntityTank     AuditEntityType = "tank"
	AuditEntityMovement AuditEntityType = "movement"
	AuditEntityProperty AuditEntityType = "property"
)

// AuditChanges instantáneas antes/después de la operación (se serializan como JSON).
type AuditChanges struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// AuditEntry entrada de la bitácora de auditoría.
type AuditEntry struct {
	ID          string
	Action      AuditAction
	EntityType  AuditEntityType
	EntityID    string
	UserID      string
	Timestamp   time.Time
	Changes     AuditChanges
	Description string
}
