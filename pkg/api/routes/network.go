package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fdcrail/railmanager/pkg/railnet"
)

func NetworkRouter(router fiber.Router) {
	router.Get("/", getNetwork)
	router.Post("/nodes", addNode)
	router.Delete("/nodes/:id", removeNode)
	router.Post("/edges", addEdge)
	router.Delete("/edges/:id", removeEdge)
}

func getNetwork(c *fiber.Ctx) error {
	return c.JSON(manager.Graph)
}

func addNode(c *fiber.Ctx) error {
	var node railnet.Node
	if err := c.BodyParser(&node); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse Node body",
		})
	}

	if err := manager.Graph.AddNode(&node); err != nil {
		return mutationError(c, err)
	}

	return c.JSON(node)
}

func removeNode(c *fiber.Ctx) error {
	id := c.Params("id")

	var err error
	if c.QueryBool("cascade") {
		err = manager.Graph.RemoveNodeCascade(id)
	} else {
		err = manager.Graph.RemoveNode(id)
	}

	if err != nil {
		return mutationError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func addEdge(c *fiber.Ctx) error {
	var edge railnet.Edge
	if err := c.BodyParser(&edge); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse Edge body",
		})
	}

	if err := manager.Graph.AddEdge(&edge); err != nil {
		return mutationError(c, err)
	}

	return c.JSON(edge)
}

func removeEdge(c *fiber.Ctx) error {
	if err := manager.Graph.RemoveEdge(c.Params("id")); err != nil {
		return mutationError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func mutationError(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnprocessableEntity
	if errors.Is(err, railnet.ErrNotFound) {
		status = fiber.StatusNotFound
	} else if errors.Is(err, railnet.ErrDuplicateID) {
		status = fiber.StatusConflict
	}

	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
