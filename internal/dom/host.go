package dom

import (
	"github.com/wisdomalbert/portfolio/internal/nav"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// Host mounts a page into a Window and dispatches user activations the
// way the browser runtime does.
type Host struct {
	build    func(nav.State) *view.Node
	win      *Window
	bar      *nav.Bar
	doc      *Document
	rendered nav.State
}

// NewHost prepares a host. build renders the page for a bar state.
func NewHost(build func(nav.State) *view.Node, win *Window) *Host {
	return &Host{build: build, win: win, bar: nav.NewBar()}
}

// Mount renders the page and subscribes the bar to the window.
func (h *Host) Mount() error {
	if err := h.bar.Mount(h.win); err != nil {
		return err
	}
	h.rendered = h.bar.State()
	h.doc = NewDocument(h.build(h.rendered))
	return nil
}

// Unmount releases the bar's scroll subscription.
func (h *Host) Unmount() {
	h.bar.Unmount()
}

// Bar returns the mounted navigation bar.
func (h *Host) Bar() *nav.Bar {
	return h.bar
}

// Window returns the host window.
func (h *Host) Window() *Window {
	return h.win
}

// Document returns the page as rendered for the current bar state.
func (h *Host) Document() *Document {
	if s := h.bar.State(); h.doc == nil || s != h.rendered {
		h.rendered = s
		h.doc = NewDocument(h.build(s))
	}
	return h.doc
}

// Click activates n.
func (h *Host) Click(n *view.Node) nav.Outcome {
	var out nav.Outcome
	switch n.Action.Kind {
	case view.ScrollTo:
		if n.Attrs[nav.CloseMenuAttr] == "true" {
			out = h.bar.Activate(liveDocument{h}, h.win, n.Action.Target)
		} else {
			out = nav.ScrollTo(h.Document(), h.win, n.Action.Target)
		}
	case view.ScrollTop:
		out = nav.ScrollTop(h.win)
	case view.ToggleMenu:
		h.bar.ToggleMenu()
		out = nav.Outcome{SuppressDefault: true}
	case view.CloseMenu:
		h.bar.CloseMenu()
		out = nav.Outcome{SuppressDefault: true}
	case view.SuppressDefault, view.DiscardSubmit:
		out = nav.Outcome{SuppressDefault: true}
	}
	if !out.SuppressDefault {
		if href, ok := n.Attr("href"); ok {
			h.win.Navigate(href)
		}
	}
	return out
}

// Submit submits form. A discarding form suppresses the navigation.
func (h *Host) Submit(form *view.Node) nav.Outcome {
	if form.Action.Kind == view.DiscardSubmit {
		return nav.Outcome{SuppressDefault: true}
	}
	target, _ := form.Attr("action")
	h.win.Navigate(target)
	return nav.Outcome{}
}

// liveDocument resolves ids against the tree rendered for the bar state at
// lookup time.
type liveDocument struct {
	h *Host
}

func (d liveDocument) ElementByID(id string) (*view.Node, bool) {
	return d.h.Document().ElementByID(id)
}
