package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sawaari/sawaari/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/enquiry")

	group.Get("version", routes.APIVersion)
	group.Get("health", routes.Healthcheck)

	routes.StationsRouter(group.Group("/stations"))

	routes.SearchRouter(group.Group("/search"))

	routes.FaresRouter(group.Group("/fares"))

	return webApp.Listen(listen)
}
