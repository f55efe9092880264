package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fdcrail/railmanager/pkg/validator"
)

func ConflictsRouter(router fiber.Router) {
	router.Get("/", getConflicts)
}

// getConflicts is the validate-now trigger: every call recomputes the
// full report from the current train set.
func getConflicts(c *fiber.Ctx) error {
	conflicts := validator.Validate(manager.Trains.All(), manager.Graph)

	return c.JSON(fiber.Map{
		"count":     len(conflicts),
		"conflicts": conflicts,
	})
}
