package page

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// HTMLDocument is a Document over a parsed HTML tree. It is not safe for
// concurrent use; parse one per request.
type HTMLDocument struct {
	root *html.Node
}

func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

func (d *HTMLDocument) Element(id string) (Element, error) {
	if n := findByID(d.root, id); n != nil {
		return &htmlElement{node: n}, nil
	}
	return nil, fmt.Errorf("#%s: %w", id, ErrElementNotFound)
}

func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

type htmlElement struct {
	node *html.Node
}

func (e *htmlElement) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *htmlElement) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetValue writes the value attribute, which is what a server-rendered
// control starts out with.
func (e *htmlElement) SetValue(value string) {
	e.SetAttribute("value", value)
}
