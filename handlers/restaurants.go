package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handlers) ListRestaurants(c *fiber.Ctx) error {
	return respondSuccess(c, "restaurants found", h.catalog.GetRestaurants())
}

func (h *Handlers) GetRestaurant(c *fiber.Ctx) error {
	restaurant, err := h.catalog.GetRestaurant(c.Params("id"))
	if err != nil {
		return h.raiseRestaurantError(c, err)
	}
	return respondSuccess(c, "restaurant found", restaurant)
}
