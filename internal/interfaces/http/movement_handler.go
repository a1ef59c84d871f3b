package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/infrastructure/metrics"
)

// MovementHandler maneja movimientos programados y completados.
type MovementHandler struct {
	uc       MovementService
	recorder MovementRecorder
}

// NewMovementHandler construye el handler. recorder puede ser nil.
func NewMovementHandler(uc MovementService, recorder MovementRecorder) *MovementHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &MovementHandler{uc: uc, recorder: recorder}
}

// List godoc
// @Summary      Listar movimientos
// @Description  Con tank_id filtra por tanque e informa volume_change sobre ese tanque.
// @Tags         movements
// @Produce      json
// @Param        tank_id  query  string  false  "ID del tanque"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("tank_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento
// @Description  Si date viene informado el movimiento queda completado y afecta los tanques.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string  false  "Usuario"
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.RecordMovement(out.Type, metrics.MovementCreated)
	if out.Status == dto.MovementStatusCompleted {
		h.recorder.RecordMovement(out.Type, metrics.MovementCompleted)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar movimiento
// @Description  Informar date completa un movimiento pendiente. Un movimiento completado no admite cambios de volumen, tanques ni fecha.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        X-User-ID  header  string  false  "Usuario"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [patch]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if in.Date != nil && out.Status == dto.MovementStatusCompleted {
		h.recorder.RecordMovement(out.Type, metrics.MovementCompleted)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         movements
// @Param        id   path  string  true  "ID del movimiento"
// @Param        X-User-ID  header  string  false  "Usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
