package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"golang.org/x/exp/slices"
)

func TrainsRouter(router fiber.Router) {
	router.Get("/", listTrains)
	router.Get("/:id", getTrain)
	router.Delete("/:id", removeTrain)
}

func listTrains(c *fiber.Ctx) error {
	trains := manager.Trains.All()

	// Optional repeated ?line= filters.
	if lineIDs := c.Context().QueryArgs().PeekMulti("line"); len(lineIDs) > 0 {
		var filters []string
		for _, lineID := range lineIDs {
			filters = append(filters, string(lineID))
		}

		filtered := trains[:0:0]
		for _, train := range trains {
			if slices.Contains(filters, train.LineID) {
				filtered = append(filtered, train)
			}
		}
		trains = filtered
	}

	trainsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, trains)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce Trains",
		})
	}

	return c.JSON(trainsReduced)
}

func getTrain(c *fiber.Ctx) error {
	train := manager.Trains.ByID(c.Params("id"))
	if train == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Train matching Train Identifier",
		})
	}

	trainReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, train)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce Train",
		})
	}

	return c.JSON(trainReduced)
}

func removeTrain(c *fiber.Ctx) error {
	if err := manager.Trains.Remove(c.Params("id")); err != nil {
		return mutationError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
