package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Data attributes the page runtime reads to dispatch actions.
const (
	ActionAttr = "data-action"
	TargetAttr = "data-target"
)

// Render writes n as HTML.
func Render(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, Lower(n)); err != nil {
		return fmt.Errorf("render view: %w", err)
	}
	return nil
}

// RenderDocument writes n as a complete document behind an HTML5 doctype.
func RenderDocument(w io.Writer, n *Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	if n != nil {
		doc.AppendChild(Lower(n))
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// Component adapts n to a templ component.
func Component(n *Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Render(w, n)
	})
}

// Lower converts n into an x/net/html tree. Attributes come out in key
// order, followed by the action attributes.
func Lower(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, k := range n.Attrs.Keys() {
		if k == ActionAttr || k == TargetAttr {
			continue
		}
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	if n.Action.Kind != NoAction {
		el.Attr = append(el.Attr, html.Attribute{Key: ActionAttr, Val: n.Action.Kind.String()})
		if n.Action.Target != "" {
			el.Attr = append(el.Attr, html.Attribute{Key: TargetAttr, Val: n.Action.Target})
		}
	}
	for _, c := range n.Children {
		el.AppendChild(Lower(c))
	}
	return el
}
