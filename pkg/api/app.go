package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stationboard/stationboard/pkg/api/routes"
	"github.com/stationboard/stationboard/pkg/fleet"
)

func SetupServer(listen string, snapshot *fleet.Snapshot) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), snapshot)

	return webApp.Listen(listen)
}
