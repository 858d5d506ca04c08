package handlers

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"table-booking-webapp/errors"
	"table-booking-webapp/modal"
	"table-booking-webapp/page"
)

const (
	restaurantsTitle = "Выбор ресторана"
	errorTitle       = "Произошла ошибка"
)

var ErrFindAvailableRestaurants = goerrors.New("missing required datetime or people number")

// pageContext is what every page template is executed with.
type pageContext struct {
	PageTitle      string
	RestaurantName string
	Restaurants    []restaurantLink

	ErrorCode int
	ErrorText string
}

type restaurantLink struct {
	Name string
	Href string
}

// Home renders the start page where the visitor enters the party size and
// the desired date and time.
func (h *Handlers) Home(c *fiber.Ctx) error {
	return h.renderPage(c, fiber.StatusOK, "home", pageContext{PageTitle: siteTitle})
}

// Restaurants lists the catalog with links that open the confirmation dialog
// carrying the visitor's query unchanged.
func (h *Handlers) Restaurants(c *fiber.Ctx) error {
	requestURL, err := h.requestURL(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed url: %v", err))
	}

	if page.QueryParamFrom(requestURL, modal.PeopleNumberParam).Value == "" ||
		page.QueryParamFrom(requestURL, modal.DesiredDatetimeParam).Value == "" {
		return h.renderPage(c, fiber.StatusBadRequest, "error", pageContext{
			PageTitle: errorTitle,
			ErrorCode: fiber.StatusBadRequest,
			ErrorText: ErrFindAvailableRestaurants.Error(),
		})
	}

	restaurants := h.catalog.GetRestaurants()
	links := make([]restaurantLink, 0, len(restaurants))
	for _, restaurant := range restaurants {
		links = append(links, restaurantLink{
			Name: restaurant.Name,
			Href: "/restaurants/" + url.PathEscape(restaurant.Id) + "/confirmation?" + requestURL.RawQuery,
		})
	}

	return h.renderPage(c, fiber.StatusOK, "restaurants", pageContext{
		PageTitle:   restaurantsTitle,
		Restaurants: links,
	})
}

func (h *Handlers) renderPage(c *fiber.Ctx, status int, name string, data pageContext) error {
	var out bytes.Buffer
	if err := h.pages.ExecuteTemplate(&out, name, data); err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("page template failed")
		return errors.RaiseInternalServerError(c, fmt.Sprintf("template error: %v", err))
	}

	c.Type("html", "utf-8")
	return c.Status(status).Send(out.Bytes())
}
