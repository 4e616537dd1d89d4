package dom

import (
	"sync"

	"github.com/wisdomalbert/portfolio/internal/nav"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// ScrollCall is one recorded smooth-scroll animation. Target is nil for
// offset scrolls.
type ScrollCall struct {
	Target *view.Node
	Offset float64
	Align  nav.Alignment
}

// Window is a headless browser window: a scroll signal source and a
// viewport that records animations instead of running them.
type Window struct {
	mu          sync.Mutex
	offset      float64
	nextID      int
	listeners   map[int]func(float64)
	scrolls     []ScrollCall
	navigations []string
}

// NewWindow returns a window scrolled to the top.
func NewWindow() *Window {
	return &Window{listeners: make(map[int]func(float64))}
}

// Subscribe registers fn for scroll signals.
func (w *Window) Subscribe(fn func(offset float64)) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.listeners, id)
			w.mu.Unlock()
		})
	}
}

// Listeners returns the number of live scroll listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Scroll moves the window to offset and dispatches the scroll signal.
func (w *Window) Scroll(offset float64) {
	w.mu.Lock()
	w.offset = offset
	fns := make([]func(float64), 0, len(w.listeners))
	for _, fn := range w.listeners {
		fns = append(fns, fn)
	}
	w.mu.Unlock()
	for _, fn := range fns {
		fn(offset)
	}
}

// Offset returns the current vertical scroll offset.
func (w *Window) Offset() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.offset
}

// SmoothScrollIntoView records an animation towards el.
func (w *Window) SmoothScrollIntoView(el *view.Node, align nav.Alignment) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scrolls = append(w.scrolls, ScrollCall{Target: el, Align: align})
}

// SmoothScrollTo records an animation towards offset.
func (w *Window) SmoothScrollTo(offset float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scrolls = append(w.scrolls, ScrollCall{Offset: offset})
}

// Scrolls returns the recorded animations.
func (w *Window) Scrolls() []ScrollCall {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]ScrollCall(nil), w.scrolls...)
}

// Navigate records a default navigation to url.
func (w *Window) Navigate(url string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.navigations = append(w.navigations, url)
}

// Navigations returns the recorded default navigations.
func (w *Window) Navigations() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.navigations...)
}

// Reset clears recorded side effects.
func (w *Window) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scrolls = nil
	w.navigations = nil
}
