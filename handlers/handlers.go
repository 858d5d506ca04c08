package handlers

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"table-booking-webapp/dateformat"
	"table-booking-webapp/database"
	"table-booking-webapp/modal"
)

const siteTitle = "Бронирование столиков в ресторанах"

// Handlers serves the booking confirmation dialog. Everything it holds is
// read-only after construction.
type Handlers struct {
	catalog   *database.Catalog
	formatter *dateformat.Formatter
	populator *modal.Populator
	pages     *template.Template
	logger    zerolog.Logger
}

func New(catalog *database.Catalog, formatter *dateformat.Formatter, pages *template.Template, logger zerolog.Logger) *Handlers {
	return &Handlers{
		catalog:   catalog,
		formatter: formatter,
		populator: modal.NewPopulator(formatter, modal.DefaultBindings),
		pages:     pages,
		logger:    logger,
	}
}

func (h *Handlers) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "ok",
		"data":    fiber.Map{"restaurants": h.catalog.Len()}})
}

func respondSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"status": "success", "message": message, "data": data})
}
