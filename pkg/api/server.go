package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fdcrail/railmanager/pkg/api/routes"
	"github.com/fdcrail/railmanager/pkg/timetable"
)

func SetupServer(listen string, manager *timetable.Manager) error {
	routes.Setup(manager)

	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	networkGroup := webApp.Group("/network")
	routes.NetworkRouter(networkGroup)

	routesGroup := webApp.Group("/routes")
	routes.RoutingRouter(routesGroup)

	proposalsGroup := webApp.Group("/proposals")
	routes.ProposalsRouter(proposalsGroup)

	linesGroup := webApp.Group("/lines")
	routes.LinesRouter(linesGroup)

	trainsGroup := webApp.Group("/trains")
	routes.TrainsRouter(trainsGroup)

	conflictsGroup := webApp.Group("/conflicts")
	routes.ConflictsRouter(conflictsGroup)

	return webApp.Listen(listen)
}
