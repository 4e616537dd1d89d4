// Package sections renders the five page sections. Each renderer is a pure
// function of its table (or of the inline copy in package content).
package sections

import "github.com/wisdomalbert/portfolio/internal/view"

func txt(tag, class, s string) *view.Node {
	return view.C(tag, class, view.Text(s))
}

func br() *view.Node {
	return view.El("br", nil)
}

func scrollLink(id, class string, children ...*view.Node) *view.Node {
	return view.El("a", view.Attrs{"href": "#" + id, "class": class}, children...).
		On(view.Action{Kind: view.ScrollTo, Target: id})
}

func img(src, alt, class string) *view.Node {
	return view.El("img", view.Attrs{"src": src, "alt": alt, "class": class, "loading": "lazy"})
}

func section(id, class string, children ...*view.Node) *view.Node {
	attrs := view.Attrs{"class": class}
	if id != "" {
		attrs["id"] = id
	}
	return view.El("section", attrs, children...)
}
