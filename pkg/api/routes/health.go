package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sawaari/sawaari/pkg/database"
)

func Healthcheck(c *fiber.Ctx) error {
	if err := database.Healthcheck(); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"status": "error",
			"error":  "Database not connected",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
