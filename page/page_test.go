package page

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestQueryParamFrom(t *testing.T) {
	u := mustURL(t, "/restaurants/42/confirmation?people_number=4&desired_datetime=2023-03-05T20:00")

	p := QueryParamFrom(u, "people_number")
	assert.True(t, p.Present)
	assert.Equal(t, "4", p.Value)
	assert.Equal(t, "4", p.String())

	assert.Equal(t, "2023-03-05T20:00", QueryParamFrom(u, "desired_datetime").Value)
}

func TestQueryParamFrom_Absent(t *testing.T) {
	p := QueryParamFrom(mustURL(t, "/?desired_datetime=2023-03-05T20:00"), "people_number")
	assert.False(t, p.Present)
	assert.Equal(t, "null", p.String())

	assert.False(t, QueryParamFrom(nil, "people_number").Present)
}

func TestQueryParamFrom_Decoding(t *testing.T) {
	u := mustURL(t, "/?name=%D0%9B%D1%83%D0%BD%D0%B0+bar&n=1&n=2&flag")

	assert.Equal(t, "Луна bar", QueryParamFrom(u, "name").Value)
	assert.Equal(t, "1", QueryParamFrom(u, "n").Value)

	flag := QueryParamFrom(u, "flag")
	assert.True(t, flag.Present)
	assert.Equal(t, "", flag.String())
}

func TestQueryParamFrom_KeepsValuesNetURLWouldDrop(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{"semicolon", "/?people_number=4;5&desired_datetime=2023-03-05T20:00", "4;5"},
		{"bare percent", "/?people_number=100%&desired_datetime=2023-03-05T20:00", "100%"},
		{"short escape", "/?people_number=4%2", "4%2"},
		{"bad escape next to a good one", "/?people_number=%zz%34", "%zz4"},
		{"escaped key", "/?people%5Fnumber=6", "6"},
		{"empty pairs are skipped", "/?&&people_number=7&", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := QueryParamFrom(mustURL(t, tt.rawURL), "people_number")
			assert.True(t, p.Present)
			assert.Equal(t, tt.expected, p.String())
		})
	}
}

func TestQueryParamFrom_InvalidUTF8IsReplaced(t *testing.T) {
	p := QueryParamFrom(mustURL(t, "/?name=%FFok"), "name")
	assert.Equal(t, "�ok", p.Value)
}

const fixture = `<!DOCTYPE html><html><body>
<form id="f" action="/old"><h5 id="title">Old <b>title</b></h5><input id="in" type="number"></form>
</body></html>`

func TestHTMLDocument(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(fixture))
	require.NoError(t, err)

	form, err := doc.Element("f")
	require.NoError(t, err)
	form.SetAttribute("action", "/restaurants/42/booked")

	title, err := doc.Element("title")
	require.NoError(t, err)
	title.SetText("«Luna» <script>")

	input, err := doc.Element("in")
	require.NoError(t, err)
	input.SetValue("4")

	var out bytes.Buffer
	require.NoError(t, doc.Render(&out))
	rendered := out.String()

	assert.Contains(t, rendered, `action="/restaurants/42/booked"`)
	assert.NotContains(t, rendered, `/old`)
	assert.Contains(t, rendered, `<h5 id="title">«Luna» &lt;script&gt;</h5>`)
	assert.Contains(t, rendered, `<input id="in" type="number" value="4"/>`)
}

func TestHTMLDocument_MissingElement(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(fixture))
	require.NoError(t, err)

	_, err = doc.Element("nope")
	assert.True(t, errors.Is(err, ErrElementNotFound))
	assert.Contains(t, err.Error(), "#nope")
}
