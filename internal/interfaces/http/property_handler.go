package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
)

// PropertyHandler maneja el catálogo de propiedades medibles.
type PropertyHandler struct {
	uc PropertyService
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc PropertyService) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// List godoc
// @Summary      Listar propiedades
// @Tags         properties
// @Produce      json
// @Success      200  {object}  dto.PropertyListResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear propiedad
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string  false  "Usuario"
// @Param        body  body  dto.CreatePropertyRequest  true  "Nombre y unidad"
// @Success      201   {object}  dto.PropertyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar propiedad
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la propiedad"
// @Param        X-User-ID  header  string  false  "Usuario"
// @Param        body  body  dto.UpdatePropertyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PropertyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [patch]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar propiedad
// @Tags         properties
// @Param        id   path  string  true  "ID de la propiedad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
