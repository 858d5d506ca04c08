package handlers

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"table-booking-webapp/database"
	"table-booking-webapp/errors"
	"table-booking-webapp/metrics"
	"table-booking-webapp/model"
	"table-booking-webapp/page"
)

// GetConfirmationPage renders the booking confirmation dialog for the
// restaurant, filled from the people_number and desired_datetime query
// parameters.
func (h *Handlers) GetConfirmationPage(c *fiber.Ctx) error {
	restaurant, err := h.catalog.GetRestaurant(c.Params("id"))
	if err != nil {
		return h.raiseRestaurantError(c, err)
	}

	var markup bytes.Buffer
	err = h.pages.ExecuteTemplate(&markup, "confirmation", pageContext{
		PageTitle:      siteTitle,
		RestaurantName: restaurant.Name,
	})
	if err != nil {
		metrics.IncConfirmationRendered("template_error")
		return errors.RaiseInternalServerError(c, fmt.Sprintf("template error: %v", err))
	}

	doc, err := page.ParseHTML(&markup)
	if err != nil {
		metrics.IncConfirmationRendered("template_error")
		return errors.RaiseInternalServerError(c, fmt.Sprintf("template error: %v", err))
	}

	requestURL, err := h.requestURL(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed url: %v", err))
	}

	confirmation, err := h.populator.Populate(page.Context{URL: requestURL, Document: doc}, restaurant.Id, restaurant.Name)
	if err != nil {
		h.logger.Error().Err(err).Str("restaurant_id", restaurant.Id).Msg("confirmation dialog does not match bindings")
		metrics.IncConfirmationRendered("binding_error")
		return errors.RaiseInternalServerError(c, fmt.Sprintf("confirmation dialog error: %v", err))
	}
	h.observe(confirmation)

	var out bytes.Buffer
	if err = doc.Render(&out); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("render error: %v", err))
	}

	c.Type("html", "utf-8")
	return c.Send(out.Bytes())
}

// GetConfirmation returns the values the dialog would be filled with, for
// callers that populate it in the browser.
func (h *Handlers) GetConfirmation(c *fiber.Ctx) error {
	restaurant, err := h.catalog.GetRestaurant(c.Params("id"))
	if err != nil {
		return h.raiseRestaurantError(c, err)
	}

	requestURL, err := h.requestURL(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed url: %v", err))
	}

	confirmation := h.populator.Build(requestURL, restaurant.Id, restaurant.Name)
	h.observe(confirmation)

	return respondSuccess(c, "confirmation built", confirmation)
}

func (h *Handlers) requestURL(c *fiber.Ctx) (*url.URL, error) {
	return url.ParseRequestURI(c.OriginalURL())
}

func (h *Handlers) raiseRestaurantError(c *fiber.Ctx, err error) error {
	if goerrors.Is(err, database.ErrRestaurantNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("restaurant %v not found", c.Params("id")))
	}
	return errors.RaiseInternalServerError(c, fmt.Sprintf("catalog error: %v", err))
}

func (h *Handlers) observe(confirmation model.Confirmation) {
	outcome := "ok"
	if len(confirmation.Degraded) > 0 {
		outcome = "degraded"
	}
	metrics.IncConfirmationRendered(outcome)

	for _, field := range confirmation.Degraded {
		metrics.IncDegradedField(field.Field, field.Reason)
		h.logger.Debug().
			Str("restaurant_id", confirmation.RestaurantId).
			Str("field", field.Field).
			Str("reason", field.Reason).
			Msg("confirmation field degraded")
	}
}
