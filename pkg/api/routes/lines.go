package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	iso8601 "github.com/senseyeio/duration"

	"github.com/fdcrail/railmanager/pkg/timetable"
)

func LinesRouter(router fiber.Router) {
	router.Get("/", listLines)
	router.Get("/:id", getLine)
	router.Delete("/:id", removeLine)
	router.Get("/:id/trains", getLineTrains)
	router.Post("/:id/trains", generateLineTrains)
}

func listLines(c *fiber.Ctx) error {
	linesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, manager.Lines.All())
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce Lines",
		})
	}

	return c.JSON(linesReduced)
}

func getLine(c *fiber.Ctx) error {
	line := manager.Lines.ByID(c.Params("id"))
	if line == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Line matching Line Identifier",
		})
	}

	lineReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, line)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce Line",
		})
	}

	return c.JSON(lineReduced)
}

func removeLine(c *fiber.Ctx) error {
	if err := manager.RemoveLine(c.Params("id")); err != nil {
		return mutationError(c, err)
	}

	swept := 0
	if c.QueryBool("sweeporphans") {
		swept = manager.SweepOrphanTrains()
	}

	return c.JSON(fiber.Map{
		"swepttrains": swept,
	})
}

// getLineTrains lists a line's trains, optionally narrowed to departures
// within an ISO8601 window (e.g. ?start=06:00&window=PT2H).
func getLineTrains(c *fiber.Ctx) error {
	line := manager.Lines.ByID(c.Params("id"))
	if line == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Line matching Line Identifier",
		})
	}

	windowStart := timetable.DayTime{}
	windowEnd := timetable.DayTime{Hour: 23, Minute: 59}

	if startQuery := c.Query("start"); startQuery != "" {
		parsed, err := timetable.ParseDayTime(startQuery)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		windowStart = parsed
	}

	if windowQuery := c.Query("window"); windowQuery != "" {
		windowDuration, err := iso8601.ParseISO8601(windowQuery)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Window must be an ISO8601 duration",
			})
		}

		reference := time.Date(2000, 1, 1, windowStart.Hour, windowStart.Minute, 0, 0, time.UTC)
		shifted := windowDuration.Shift(reference)
		windowEnd = timetable.NewDayTime(shifted.Hour(), shifted.Minute())
	}

	var departures []*timetable.Train
	for _, train := range manager.Trains.All() {
		if train.LineID != line.ID {
			continue
		}
		if train.DepartureTime.Before(windowStart) || !train.DepartureTime.Before(windowEnd) {
			continue
		}

		departures = append(departures, train)
	}

	trainsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, departures)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce Trains",
		})
	}

	return c.JSON(trainsReduced)
}

func generateLineTrains(c *fiber.Ctx) error {
	line := manager.Lines.ByID(c.Params("id"))
	if line == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Line matching Line Identifier",
		})
	}

	frequency := c.QueryInt("frequency", line.FrequencyMinutes)

	generator := &timetable.Generator{Trains: manager.Trains}
	generated, err := generator.Generate(line, frequency, timetable.DefaultOperatingWindow)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"generated": len(generated),
	})
}
