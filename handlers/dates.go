package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"table-booking-webapp/errors"
)

// FormatDate renders the ms query parameter (milliseconds since the epoch)
// the same way the confirmation dialog does.
func (h *Handlers) FormatDate(c *fiber.Ctx) error {
	raw := c.Query("ms")
	if raw == "" {
		return errors.RaiseBadRequestError(c, "ms query parameter is required")
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("ms must be an integer: %v", err))
	}

	return respondSuccess(c, "date formatted", fiber.Map{
		"ms":        ms,
		"formatted": h.formatter.Format(ms),
	})
}
