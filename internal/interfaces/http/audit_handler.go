package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
)

// AuditHandler consulta de la bitácora.
type AuditHandler struct {
	uc AuditService
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc AuditService) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Consultar bitácora de auditoría
// @Tags         audit
// @Produce      json
// @Param        entity_type  query  string  false  "tank | movement | property"
// @Param        entity_id    query  string  false  "ID de la entidad"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Límite"  default(50)
// @Success      200  {object}  dto.AuditListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/audit-log [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var in dto.AuditListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
