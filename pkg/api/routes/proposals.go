package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fdcrail/railmanager/pkg/proposal"
)

func ProposalsRouter(router fiber.Router) {
	router.Get("/candidates", getCandidates)
	router.Post("/accept", acceptProposals)
}

func getCandidates(c *fiber.Ctx) error {
	synthesizer := &proposal.Synthesizer{
		Graph: manager.Graph,
		Proposer: proposal.PathProposer{
			FrequencyMinutes: c.QueryInt("frequency"),
			MaxCandidates:    c.QueryInt("count", 25),
		},
	}

	var filter *proposal.AreaFilter
	if expression := c.Query("area"); expression != "" {
		var err error
		filter, err = proposal.CompileAreaFilter(expression)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	candidates, err := synthesizer.Candidates(filter)
	if err != nil {
		c.SendStatus(fiber.StatusUnprocessableEntity)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(candidates)
}

type acceptProposalsRequest struct {
	Proposals    []proposal.ProposedLine `json:"proposals"`
	SampleTrains bool                    `json:"sampletrains"`
}

func acceptProposals(c *fiber.Ctx) error {
	var request acceptProposalsRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse proposal acceptance body",
		})
	}

	summary, err := manager.AcceptProposals(request.Proposals, request.SampleTrains)
	if err != nil {
		status := fiber.StatusUnprocessableEntity
		if errors.Is(err, proposal.ErrInvalidProposal) {
			status = fiber.StatusBadRequest
		}

		c.SendStatus(status)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"summary": summary,
	})
}
