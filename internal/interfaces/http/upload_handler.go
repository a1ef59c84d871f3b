package http

import (
	"path"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/application/measurement"
)

// UploadHandler subida y descarga de PDFs de medición.
type UploadHandler struct {
	uc UploadService
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc UploadService) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir PDF de medición
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-User-ID  header    string  false  "Usuario"
// @Param        file       formData  file    true   "PDF (máx. 10 MB)"
// @Success      201  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/uploads/pdf [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	out, err := h.uc.Upload(c.Context(), GetUserID(c), fh.Header.Get(fiber.HeaderContentType), f, fh.Size)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Download godoc
// @Summary      Descargar PDF por enlace firmado
// @Tags         uploads
// @Produce      application/pdf
// @Param        token  path  string  true  "Token del enlace"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/uploads/{token} [get]
func (h *UploadHandler) Download(c *fiber.Ctx) error {
	rc, key, err := h.uc.Open(c.Context(), c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, measurement.ContentTypePDF)
	c.Set(fiber.HeaderContentDisposition, "inline; filename=\""+path.Base(key)+"\"")
	// fasthttp cierra el stream cuando termina de enviarlo.
	return c.SendStream(rc)
}
