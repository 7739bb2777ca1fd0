package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sawaari/sawaari/pkg/dataaggregator"
	"github.com/sawaari/sawaari/pkg/dataaggregator/query"
	"github.com/sawaari/sawaari/pkg/transit"
)

func StationsRouter(router fiber.Router) {
	router.Get("/", listStations)
	router.Get("/:identifier", getStation)
}

func listStations(c *fiber.Ctx) error {
	stations, err := dataaggregator.Lookup[[]transit.Station](query.StationList{
		NameFilter: c.Query("name"),
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not list stations",
		})
	}

	return c.JSON(stations)
}

func getStation(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	station, err := dataaggregator.Lookup[*transit.Station](query.Station{
		PrimaryIdentifier: identifier,
	})
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching Station Identifier",
		})
	}

	return c.JSON(station)
}
