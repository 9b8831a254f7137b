package middleware

import (
	"airsoft-manager-backend/internal/config"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// JWTMiddleware verifies the admin bearer token and exposes the username via
// c.Locals("admin_username").
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		ContextKey:   "user",
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token := c.Locals("user").(*jwt.Token)
			claims := token.Claims.(jwt.MapClaims)
			username, ok := claims["sub"].(string)
			if !ok || username == "" {
				return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
			}
			c.Locals("admin_username", username)
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
}

func GetAdminUsername(c *fiber.Ctx) (string, error) {
	username, ok := c.Locals("admin_username").(string)
	if !ok || username == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}
	return username, nil
}
