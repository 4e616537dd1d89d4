// Package view defines the renderer-agnostic visual tree that the page is
// composed into.
//
// A tree is made of element nodes (a tag, attributes, children) and text
// leaves. Interactive elements declare an Action instead of carrying
// callbacks; the host that mounts the tree (the HTML runtime, or the
// headless host in package dom) decides how to dispatch it.
package view

import (
	"sort"
	"strings"
)

// ActionKind names an interaction a node declares.
type ActionKind int

const (
	// NoAction leaves the host's default behavior untouched.
	NoAction ActionKind = iota
	// ScrollTo suppresses navigation and smooth-scrolls to Action.Target.
	ScrollTo
	// ScrollTop suppresses navigation and smooth-scrolls to the top.
	ScrollTop
	// SuppressDefault cancels activation and does nothing else.
	SuppressDefault
	// DiscardSubmit cancels a form submission and drops its data.
	DiscardSubmit
	// ToggleMenu suppresses navigation and flips the navigation menu.
	ToggleMenu
	// CloseMenu suppresses navigation and closes the navigation menu.
	CloseMenu
)

var actionNames = map[ActionKind]string{
	ScrollTo:        "scroll-to",
	ScrollTop:       "scroll-top",
	SuppressDefault: "suppress",
	DiscardSubmit:   "discard-submit",
	ToggleMenu:      "toggle-menu",
	CloseMenu:       "close-menu",
}

// String returns the wire name used in data-action attributes.
func (k ActionKind) String() string {
	return actionNames[k]
}

// Action is an interaction bound to a node.
type Action struct {
	Kind   ActionKind
	Target string
}

// Attrs holds element attributes. Rendering emits them in key order.
type Attrs map[string]string

// Keys returns the attribute names sorted.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Node is an element or, when Tag is empty, a text leaf.
type Node struct {
	Tag      string
	Text     string
	Attrs    Attrs
	Children []*Node
	Action   Action
}

// El builds an element node. Nil children are dropped so conditional
// branches can pass nil.
func El(tag string, attrs Attrs, children ...*Node) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Text builds a text leaf.
func Text(s string) *Node {
	return &Node{Text: s}
}

// C builds an element with only a class attribute.
func C(tag, class string, children ...*Node) *Node {
	var attrs Attrs
	if class != "" {
		attrs = Attrs{"class": class}
	}
	return El(tag, attrs, children...)
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// ID returns the element id attribute, if any.
func (n *Node) ID() string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs["id"]
}

// Attr returns the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// On binds an action to n and returns n.
func (n *Node) On(a Action) *Node {
	n.Action = a
	return n
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// FindAll returns every node under root matching pred, in document order.
func FindAll(root *Node, pred func(*Node) bool) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// HasAction matches nodes bound to the given action kind.
func HasAction(kind ActionKind) func(*Node) bool {
	return func(n *Node) bool { return n.Action.Kind == kind }
}

// TextContent concatenates every text leaf under n.
func TextContent(n *Node) string {
	var b strings.Builder
	Walk(n, func(c *Node) bool {
		if c.IsText() {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}
