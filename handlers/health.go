package handlers

import (
	"notes-app/app"

	"github.com/gofiber/fiber/v2"
)

// Health reports whether the store answers queries
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Repo.CountNotes(c.UserContext())
		if err != nil {
			a.Logger.Error("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}

		return success(c, fiber.Map{
			"status": "ok",
			"notes":  count,
		})
	}
}
