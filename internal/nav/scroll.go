// Package nav implements in-page navigation: the smooth-scroll helper and
// the navigation bar with its menu and scrolled-past-threshold state.
package nav

import "github.com/wisdomalbert/portfolio/internal/view"

// Alignment selects which edge of a target lines up with the viewport.
type Alignment int

const (
	// AlignStart puts the target's top edge at the viewport top.
	AlignStart Alignment = iota
)

// Document resolves section identifiers in the mounted tree.
type Document interface {
	ElementByID(id string) (*view.Node, bool)
}

// Viewport performs scroll animations. Both calls are fire-and-forget.
type Viewport interface {
	SmoothScrollIntoView(el *view.Node, align Alignment)
	SmoothScrollTo(offset float64)
}

// Outcome reports what handling an activation did. SuppressDefault tells
// the host to cancel its own navigation for the event.
type Outcome struct {
	SuppressDefault bool
	Scrolled        bool
}

// ScrollTo smooth-scrolls vp so the element with id is at the top. A
// missing element is not an error: nothing scrolls. Default navigation is
// always suppressed.
func ScrollTo(doc Document, vp Viewport, id string) Outcome {
	out := Outcome{SuppressDefault: true}
	if doc == nil || vp == nil {
		return out
	}
	el, ok := doc.ElementByID(id)
	if !ok || el == nil {
		return out
	}
	vp.SmoothScrollIntoView(el, AlignStart)
	out.Scrolled = true
	return out
}

// ScrollTop smooth-scrolls vp back to offset zero.
func ScrollTop(vp Viewport) Outcome {
	if vp == nil {
		return Outcome{SuppressDefault: true}
	}
	vp.SmoothScrollTo(0)
	return Outcome{SuppressDefault: true, Scrolled: true}
}
