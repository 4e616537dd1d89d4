package nav

import (
	"errors"
	"sync"
)

// ErrMounted is returned when mounting a bar that is already mounted.
var ErrMounted = errors.New("nav bar already mounted")

// ScrollSource delivers vertical scroll offsets. Subscribe returns a
// cancel func that releases the listener.
type ScrollSource interface {
	Subscribe(fn func(offset float64)) (cancel func())
}

// Bar is a mounted navigation bar. It owns one scroll subscription for
// the time between Mount and Unmount.
type Bar struct {
	mu     sync.Mutex
	state  State
	cancel func()
}

// NewBar returns an unmounted bar in the initial state.
func NewBar() *Bar {
	return &Bar{}
}

// Mount subscribes the bar to src.
func (b *Bar) Mount(src ScrollSource) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		return ErrMounted
	}
	b.cancel = src.Subscribe(b.onScroll)
	return nil
}

// Unmount releases the scroll subscription. Calling it on an unmounted
// bar does nothing.
func (b *Bar) Unmount() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Mounted reports whether the bar holds a subscription.
func (b *Bar) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel != nil
}

// State returns a snapshot of the bar state.
func (b *Bar) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// ToggleMenu handles the menu button.
func (b *Bar) ToggleMenu() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = b.state.ToggleMenu()
	return b.state
}

// CloseMenu handles the overlay close button.
func (b *Bar) CloseMenu() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = b.state.CloseMenu()
	return b.state
}

// Activate handles a section link: the overlay closes, then the viewport
// scrolls to id. doc is consulted only after the menu is closed.
func (b *Bar) Activate(doc Document, vp Viewport, id string) Outcome {
	b.mu.Lock()
	b.state = b.state.CloseMenu()
	b.mu.Unlock()
	return ScrollTo(doc, vp, id)
}

func (b *Bar) onScroll(offset float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = b.state.WithOffset(offset)
}
