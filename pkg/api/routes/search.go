package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/sawaari/sawaari/pkg/search"
	"github.com/sawaari/sawaari/pkg/util"
)

var searchEngine = search.NewEngine()

func SearchRouter(router fiber.Router) {
	router.Get("/", searchTransport)
	router.Get("/next", nextDeparture)
}

func enquiryParams(c *fiber.Ctx) (search.Params, error) {
	params := search.Params{
		Source:        c.Query("source"),
		Destination:   c.Query("destination"),
		TransportType: c.Query("type"),
		Date:          c.Query("date"),
		StartTime:     c.Query("start_time"),
		EndTime:       c.Query("end_time"),
	}

	if params.Source == "" || params.Destination == "" {
		return params, errors.New("Source and destination are required")
	}

	if params.Date != "" {
		if _, err := util.ParseDate(params.Date); err != nil {
			return params, errors.New("Parameter date should be formatted YYYY-MM-DD")
		}
	}

	return params, nil
}

func searchTransport(c *fiber.Ctx) error {
	params, err := enquiryParams(c)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	results, err := searchEngine.Search(params)
	if err != nil {
		if errors.Is(err, search.ErrMissingLocation) {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		log.Error().Err(err).Msg("Transport search failed")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not complete the search",
		})
	}

	if len(results) == 0 {
		return c.JSON(fiber.Map{
			"results": []any{},
			"message": "No transport found for this route",
		})
	}

	resultsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, results)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not serialise search results",
		})
	}

	return c.JSON(fiber.Map{
		"results": resultsReduced,
	})
}

func nextDeparture(c *fiber.Ctx) error {
	params, err := enquiryParams(c)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := searchEngine.NextDeparture(params)
	if err != nil {
		log.Error().Err(err).Msg("Next departure lookup failed")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not fetch the next option",
		})
	}

	if result == nil {
		return c.JSON(fiber.Map{
			"message": "No transport found for this route",
		})
	}

	resultReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, result)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not serialise search result",
		})
	}

	return c.JSON(resultReduced)
}
