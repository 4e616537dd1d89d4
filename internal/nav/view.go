package nav

import (
	"strconv"

	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/icons"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// Element ids and attributes the page runtime looks up.
const (
	ElementID = "site-nav"
	MenuID    = "site-nav-menu"
	MenuAttr  = "data-menu"

	// CloseMenuAttr marks section links that close the menu before
	// scrolling.
	CloseMenuAttr = "data-close-menu"
)

// Class sets for the two scroll treatments. The runtime swaps them on
// scroll without a round trip.
const (
	baseClass     = "fixed w-full z-50 transition-all duration-700"
	scrolledClass = "glass-nav py-4 shadow-2xl"
	topClass      = "bg-transparent py-8"
)

// CTALabel is the desktop call-to-action text.
const CTALabel = "Get In Touch"

// View renders the bar in state s.
func View(s State, links []content.NavLink) *view.Node {
	treatment := topClass
	if s.Scrolled {
		treatment = scrolledClass
	}
	return view.El("nav", view.Attrs{
		"id":                    ElementID,
		"class":                 baseClass + " " + treatment,
		"data-scroll-threshold": strconv.Itoa(ScrollThreshold),
		"data-scrolled":         strconv.FormatBool(s.Scrolled),
		MenuAttr:                MenuValue(s.MenuOpen),
		"data-class-top":        topClass,
		"data-class-scrolled":   scrolledClass,
	},
		view.C("div", "max-w-7xl mx-auto px-8",
			view.C("div", "flex justify-between items-center",
				logo(),
				desktopLinks(links),
				menuButton(s),
			),
		),
		overlay(s, links),
	)
}

func logo() *view.Node {
	return view.C("div", "flex items-center gap-3 cursor-pointer group",
		view.C("div", "w-12 h-12 bg-blue-600 rounded-2xl flex items-center justify-center text-white font-black italic shadow-lg shadow-blue-500/20 group-hover:rotate-12 transition-transform",
			view.Text(content.BrandMark)),
		view.C("div", "flex flex-col",
			view.C("span", "text-xl font-black tracking-tighter text-white",
				view.Text(content.BrandName),
				view.C("span", "text-blue-500", view.Text(".")),
			),
			view.C("span", "text-[10px] font-bold text-blue-400 tracking-widest uppercase opacity-80",
				view.Text(content.BrandTagline)),
		),
	).On(view.Action{Kind: view.ScrollTop})
}

func desktopLinks(links []content.NavLink) *view.Node {
	list := view.C("div", "hidden md:flex items-center space-x-12")
	for _, l := range links {
		list.Children = append(list.Children, view.El("a", view.Attrs{
			"href":  l.Href(),
			"class": "text-slate-400 hover:text-white font-bold text-xs uppercase tracking-[0.2em] transition-all relative overflow-hidden group py-2",
		},
			view.Text(l.Label),
			view.C("span", "absolute bottom-0 left-0 w-full h-0.5 bg-blue-500 -translate-x-full group-hover:translate-x-0 transition-transform duration-300"),
		).On(scrollAction(l.ID)))
	}
	list.Children = append(list.Children, view.El("a", view.Attrs{
		"href":  "#" + content.SectionContact,
		"class": "bg-blue-600 text-white px-8 py-3 rounded-2xl font-black text-sm hover:bg-white hover:text-blue-600 transition-all shadow-xl shadow-blue-900/20",
	}, view.Text(CTALabel)).On(scrollAction(content.SectionContact)))
	return list
}

func menuButton(s State) *view.Node {
	return view.El("a", view.Attrs{
		"href":              StateURL(s.ToggleMenu()),
		"role":              "button",
		"class":             "md:hidden text-white focus:outline-none bg-slate-800 p-2 rounded-xl",
		"aria-label":        menuLabel(s.MenuOpen),
		"aria-expanded":     strconv.FormatBool(s.MenuOpen),
		"aria-controls":     MenuID,
		"data-label-open":   menuLabel(true),
		"data-label-closed": menuLabel(false),
	},
		menuIcon("menu", icons.Menu, !s.MenuOpen),
		menuIcon("close", icons.Close, s.MenuOpen),
	).On(view.Action{Kind: view.ToggleMenu})
}

func menuLabel(open bool) string {
	if open {
		return "Close menu"
	}
	return "Open menu"
}

// menuIcon wraps a glyph the runtime shows or hides with the menu.
func menuIcon(name string, g icons.Glyph, visible bool) *view.Node {
	class := "block"
	if !visible {
		class = "hidden"
	}
	return view.El("span", view.Attrs{"data-menu-icon": name, "class": class}, g.Node(""))
}

// overlay is always rendered so the runtime can open it without a
// round trip; it is hidden while the menu is closed.
func overlay(s State, links []content.NavLink) *view.Node {
	class := "md:hidden bg-slate-950 absolute top-0 left-0 w-full h-screen p-12 flex flex-col justify-center space-y-8 animate-in slide-in-from-right duration-500"
	if !s.MenuOpen {
		class += " hidden"
	}
	closed := StateURL(s.CloseMenu())
	panel := view.El("div", view.Attrs{
		"id":          MenuID,
		"class":       class,
		"aria-hidden": strconv.FormatBool(!s.MenuOpen),
	}, view.El("a", view.Attrs{
		"href":       closed,
		"role":       "button",
		"class":      "absolute top-8 right-8 text-white",
		"aria-label": menuLabel(true),
	}, icons.Close.Node("w-10 h-10")).On(view.Action{Kind: view.CloseMenu}))
	for _, l := range links {
		panel.Children = append(panel.Children, view.El("a", view.Attrs{
			"href":        closed + l.Href(),
			"class":       "text-6xl font-black tracking-tighter text-white hover:text-blue-500 transition-colors",
			CloseMenuAttr: "true",
		}, view.Text(l.Label)).On(scrollAction(l.ID)))
	}
	return panel
}

func scrollAction(id string) view.Action {
	return view.Action{Kind: view.ScrollTo, Target: id}
}
