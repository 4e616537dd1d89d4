package nav

import (
	"net/url"
	"strconv"
)

// ScrollThreshold is the vertical offset in pixels past which the bar
// switches to its scrolled treatment.
const ScrollThreshold = 20

// MenuParam is the query parameter carrying the menu flag.
const MenuParam = "menu"

// Query parameter names and values carrying a State.
const (
	queryScrolled = "scrolled"
	menuOpen      = "open"
	menuClosed    = "closed"
)

// State is the bar's transient UI state. The zero value is the initial
// state: menu closed, not scrolled. The two flags never affect each other.
type State struct {
	MenuOpen bool
	Scrolled bool
}

// ToggleMenu flips MenuOpen.
func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// CloseMenu forces MenuOpen off.
func (s State) CloseMenu() State {
	s.MenuOpen = false
	return s
}

// WithOffset recomputes Scrolled for a vertical scroll offset.
func (s State) WithOffset(offset float64) State {
	s.Scrolled = offset > ScrollThreshold
	return s
}

// Query encodes s as URL query values.
func (s State) Query() url.Values {
	q := url.Values{}
	q.Set(MenuParam, MenuValue(s.MenuOpen))
	q.Set(queryScrolled, strconv.FormatBool(s.Scrolled))
	return q
}

// StateURL returns a query-only URL that reloads the current page with the
// bar in state s.
func StateURL(s State) string {
	return "?" + s.Query().Encode()
}

// MenuValue returns the data-menu value for the menu flag.
func MenuValue(open bool) string {
	if open {
		return menuOpen
	}
	return menuClosed
}

// ParseState decodes a State from query values. Unknown or missing values
// fall back to the initial state for that flag.
func ParseState(q url.Values) State {
	var s State
	s.MenuOpen = q.Get(MenuParam) == menuOpen
	if v, err := strconv.ParseBool(q.Get(queryScrolled)); err == nil {
		s.Scrolled = v
	}
	return s
}
