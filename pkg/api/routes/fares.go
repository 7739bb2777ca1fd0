package routes

import (
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/sawaari/sawaari/pkg/search"
)

func FaresRouter(router fiber.Router) {
	router.Get("/", listFares)
}

// listFares is the fare-only enquiry: the same search pipeline, with
// the cheapest-by-distance option first and the availability detail
// stripped out of the response.
func listFares(c *fiber.Ctx) error {
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

		log.Error().Err(err).Msg("Fare lookup failed")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not fetch fares",
		})
	}

	if len(results) == 0 {
		return c.JSON(fiber.Map{
			"fares":   []any{},
			"message": "No fare information found for this route",
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})

	faresReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, results)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not serialise fares",
		})
	}

	return c.JSON(fiber.Map{
		"fares": faresReduced,
	})
}
