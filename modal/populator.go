package modal

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"table-booking-webapp/dateformat"
	"table-booking-webapp/model"
	"table-booking-webapp/page"
)

const (
	PeopleNumberParam    = "people_number"
	DesiredDatetimeParam = "desired_datetime"
)

const (
	formActionTemplate    = "/restaurants/%s/booked"
	titleTemplate         = "Подтверждение брони в ресторане «%s»"
	peopleLabelTemplate   = "Количество человек: %s"
	datetimeLabelTemplate = "Желаемое дата и время посещения: %s"
)

// Bindings are the ids of the dialog elements the populator writes to.
type Bindings struct {
	Form          string
	Title         string
	PeopleLabel   string
	DatetimeLabel string
	PeopleInput   string
	DatetimeInput string
}

var DefaultBindings = Bindings{
	Form:          "makeBookingForm",
	Title:         "bookingModalTitle",
	PeopleLabel:   "people_number_label",
	DatetimeLabel: "desired_datetime_label",
	PeopleInput:   "people_number_input",
	DatetimeInput: "desired_datetime_input",
}

// A number input only accepts a valid floating-point number; anything else
// leaves it empty.
var floatingPoint = regexp.MustCompile(`^-?(\d+|\d*\.\d+)([eE][-+]?\d+)?$`)

// Populator fills the booking confirmation dialog from the page URL.
type Populator struct {
	formatter *dateformat.Formatter
	bindings  Bindings
}

func NewPopulator(formatter *dateformat.Formatter, bindings Bindings) *Populator {
	return &Populator{formatter: formatter, bindings: bindings}
}

func ParamsFromURL(u *url.URL) model.BookingRequestParams {
	return model.BookingRequestParams{
		PeopleNumber:    page.QueryParamFrom(u, PeopleNumberParam),
		DesiredDatetime: page.QueryParamFrom(u, DesiredDatetimeParam),
	}
}

// Populate derives the dialog contents for the restaurant from pc.URL and
// writes them into pc.Document.
func (p *Populator) Populate(pc page.Context, restaurantId, restaurantName string) (model.Confirmation, error) {
	confirmation := p.Build(pc.URL, restaurantId, restaurantName)
	if err := p.Apply(pc.Document, confirmation); err != nil {
		return confirmation, err
	}
	return confirmation, nil
}

// Build computes the dialog contents. Missing or malformed parameters never
// fail; they are rendered as degraded text and listed in Degraded.
func (p *Populator) Build(u *url.URL, restaurantId, restaurantName string) model.Confirmation {
	params := ParamsFromURL(u)

	c := model.Confirmation{
		RestaurantId: restaurantId,
		FormAction:   fmt.Sprintf(formActionTemplate, url.PathEscape(restaurantId)),
		Title:        fmt.Sprintf(titleTemplate, restaurantName),
	}

	people := params.PeopleNumber
	c.PeopleLabel = fmt.Sprintf(peopleLabelTemplate, people)
	switch {
	case !people.Present:
		c.Degraded = append(c.Degraded, model.DegradedField{Field: PeopleNumberParam, Reason: model.ReasonMissing})
	case !floatingPoint.MatchString(people.Value):
		c.Degraded = append(c.Degraded, model.DegradedField{Field: PeopleNumberParam, Reason: model.ReasonNotANumber})
	default:
		c.PeopleNumber = people.Value
	}

	desired := params.DesiredDatetime
	ts := dateformat.Epoch
	if desired.Present {
		ts = dateformat.Parse(desired.Value, p.formatter.Location())
	}
	switch {
	case !desired.Present:
		c.Degraded = append(c.Degraded, model.DegradedField{Field: DesiredDatetimeParam, Reason: model.ReasonMissing})
	case !ts.Valid():
		c.Degraded = append(c.Degraded, model.DegradedField{Field: DesiredDatetimeParam, Reason: model.ReasonUnparseable})
	}
	c.DesiredDatetime = p.formatter.FormatTimestamp(ts)
	c.DesiredDatetimeLabel = fmt.Sprintf(datetimeLabelTemplate, c.DesiredDatetime)

	return c
}

// Apply writes c into doc. Every bound element is looked up first, so a
// missing one leaves doc untouched.
func (p *Populator) Apply(doc page.Document, c model.Confirmation) error {
	if doc == nil {
		return errors.New("confirmation dialog: no document")
	}

	ids := []string{
		p.bindings.Form,
		p.bindings.Title,
		p.bindings.PeopleLabel,
		p.bindings.PeopleInput,
		p.bindings.DatetimeLabel,
		p.bindings.DatetimeInput,
	}
	elements := make([]page.Element, len(ids))
	var errs []error
	for i, id := range ids {
		el, err := doc.Element(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		elements[i] = el
	}
	if len(errs) > 0 {
		return fmt.Errorf("confirmation dialog: %w", errors.Join(errs...))
	}

	form, title, peopleLabel, peopleInput, datetimeLabel, datetimeInput :=
		elements[0], elements[1], elements[2], elements[3], elements[4], elements[5]

	form.SetAttribute("action", c.FormAction)
	title.SetText(c.Title)
	peopleLabel.SetText(c.PeopleLabel)
	peopleInput.SetValue(c.PeopleNumber)
	datetimeLabel.SetText(c.DesiredDatetimeLabel)
	datetimeInput.SetValue(c.DesiredDatetime)

	return nil
}
