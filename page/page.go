// Package page is the page context a dialog is populated against: the URL the
// page was requested with and access to its elements by id.
package page

import (
	"errors"
	"net/url"
	"strings"
)

var ErrElementNotFound = errors.New("element not found")

// nullText is how an absent query parameter reads when interpolated into text.
const nullText = "null"

type Element interface {
	SetAttribute(name, value string)
	// SetText replaces the element's children with a single text node.
	SetText(text string)
	// SetValue sets the current value of a form control.
	SetValue(value string)
}

type Document interface {
	// Element returns the element with the given id or an error wrapping
	// ErrElementNotFound.
	Element(id string) (Element, error)
}

type Context struct {
	URL      *url.URL
	Document Document
}

// QueryParam is a single query-string value that may be absent.
type QueryParam struct {
	Name    string
	Value   string
	Present bool
}

// String returns the value, or "null" when the parameter is absent.
func (p QueryParam) String() string {
	if !p.Present {
		return nullText
	}
	return p.Value
}

// QueryParamFrom looks up name in u's query string. Only the first value of a
// repeated key is used; a key without "=" is present with an empty value.
// Pairs are split on "&" alone and malformed escapes are kept verbatim, so
// "4;5" and "100%" read back as written.
func QueryParamFrom(u *url.URL, name string) QueryParam {
	p := QueryParam{Name: name}
	if u == nil {
		return p
	}

	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decodeComponent(key) != name {
			continue
		}
		p.Value = decodeComponent(value)
		p.Present = true
		return p
	}
	return p
}

// decodeComponent turns "+" into a space and decodes every well-formed %XX
// escape. A "%" not followed by two hex digits stays as it is.
func decodeComponent(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
