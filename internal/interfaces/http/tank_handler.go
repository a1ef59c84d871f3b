package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
)

// TankHandler maneja tanques, su proyección y su reporte.
type TankHandler struct {
	tanks       TankService
	projections ProjectionService
	reports     ReportService
}

// NewTankHandler construye el handler.
func NewTankHandler(tanks TankService, projections ProjectionService, reports ReportService) *TankHandler {
	return &TankHandler{tanks: tanks, projections: projections, reports: reports}
}

// List godoc
// @Summary      Listar tanques
// @Description  Con projected=true cada tanque incluye projected_volume.
// @Tags         tanks
// @Produce      json
// @Param        projected  query  bool  false  "Incluir volumen proyectado"
// @Success      200  {object}  dto.TankListResponse
// @Router       /api/tanks [get]
func (h *TankHandler) List(c *fiber.Ctx) error {
	var (
		out *dto.TankListResponse
		err error
	)
	if c.QueryBool("projected", false) {
		out, err = h.projections.ProjectAll(c.Context())
	} else {
		out, err = h.tanks.List(c.Context())
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tanque
// @Tags         tanks
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string  false  "Usuario"
// @Param        body  body  dto.CreateTankRequest  true  "Datos del tanque"
// @Success      201   {object}  dto.TankResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tanks [post]
func (h *TankHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTankRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.tanks.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tanque
// @Tags         tanks
// @Produce      json
// @Param        id   path  string  true  "ID del tanque"
// @Success      200  {object}  dto.TankResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanks/{id} [get]
func (h *TankHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.tanks.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tanque
// @Tags         tanks
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tanque"
// @Param        X-User-ID  header  string  false  "Usuario"
// @Param        body  body  dto.UpdateTankRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TankResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tanks/{id} [patch]
func (h *TankHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTankRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.tanks.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Reiniciar valores del tanque desde una medición
// @Tags         tanks
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tanque"
// @Param        X-User-ID  header  string  false  "Usuario"
// @Param        body  body  dto.ResetTankRequest  true  "Volumen y propiedades medidos"
// @Success      200   {object}  dto.TankResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tanks/{id}/reset [post]
func (h *TankHandler) Reset(c *fiber.Ctx) error {
	var in dto.ResetTankRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.tanks.Reset(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Projection godoc
// @Summary      Estado proyectado del tanque
// @Description  Aplica los movimientos pendientes en orden de ejecución sobre el estado actual.
// @Tags         tanks
// @Produce      json
// @Param        id   path  string  true  "ID del tanque"
// @Success      200  {object}  dto.ProjectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanks/{id}/projection [get]
func (h *TankHandler) Projection(c *fiber.Ctx) error {
	out, err := h.projections.ProjectTank(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Timeline godoc
// @Summary      Serie de nivel del tanque
// @Tags         tanks
// @Produce      json
// @Param        id            path   string  true   "ID del tanque"
// @Param        horizon_days  query  int     false  "Días hacia adelante"  default(30)
// @Success      200  {object}  dto.TimelineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanks/{id}/timeline [get]
func (h *TankHandler) Timeline(c *fiber.Ctx) error {
	out, err := h.projections.Timeline(c.Context(), c.Params("id"), c.QueryInt("horizon_days", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del tanque
// @Tags         tanks
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del tanque"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanks/{id}/report.pdf [get]
func (h *TankHandler) Report(c *fiber.Ctx) error {
	pdf, filename, err := h.reports.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
