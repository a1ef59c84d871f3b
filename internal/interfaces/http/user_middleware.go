package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// HeaderUserID cabecera con el usuario que origina la petición.
const HeaderUserID = "X-User-ID"

// LocalUserID clave en c.Locals.
const LocalUserID = "user_id"

// UserMiddleware toma el usuario de X-User-ID (sin autenticación); si falta usa "system".
func UserMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(HeaderUserID))
		if userID == "" {
			userID = entity.SystemUserID
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el usuario del contexto (después de UserMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return entity.SystemUserID
	}
	s, _ := v.(string)
	return s
}
