package router

import (
	"table-booking-webapp/handlers"
	"table-booking-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, logger zerolog.Logger) {
	//Profiler under /debug/pprof/
	app.Use(pprof.New())

	api := app.Group("/", middleware.RequestID(), middleware.RequestLogger(logger), recover.New())
	api.Get("/health", h.GetHealth)
	api.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//Pages
	api.Get("/", h.Home)
	restaurants := api.Group("/restaurants")
	restaurants.Get("/", h.Restaurants)
	restaurants.Get("/:id/confirmation", h.GetConfirmationPage)

	//JSON
	v1 := api.Group("/api/v1")
	v1.Get("/restaurants", h.ListRestaurants)
	v1.Get("/restaurants/:id", h.GetRestaurant)
	v1.Get("/restaurants/:id/confirmation", h.GetConfirmation)
	v1.Get("/dates/format", h.FormatDate)
}
