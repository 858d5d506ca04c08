package model

import "table-booking-webapp/page"

// Reasons a confirmation field was rendered from degraded input.
const (
	ReasonMissing     = "missing"
	ReasonUnparseable = "unparseable"
	ReasonNotANumber  = "not_a_number"
)

// BookingRequestParams are the query parameters the restaurant search page
// forwards to the confirmation dialog.
type BookingRequestParams struct {
	PeopleNumber    page.QueryParam
	DesiredDatetime page.QueryParam
}

type DegradedField struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Confirmation holds every value written into the booking confirmation dialog.
type Confirmation struct {
	RestaurantId         string          `json:"restaurant_id"`
	FormAction           string          `json:"form_action"`
	Title                string          `json:"title"`
	PeopleLabel          string          `json:"people_label"`
	PeopleNumber         string          `json:"people_number"`
	DesiredDatetimeLabel string          `json:"desired_datetime_label"`
	DesiredDatetime      string          `json:"desired_datetime"`
	Degraded             []DegradedField `json:"degraded,omitempty"`
}
