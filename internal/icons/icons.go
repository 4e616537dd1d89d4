// Package icons defines the symbolic glyphs used by page content.
//
// Content records carry a Glyph instead of markup so the data tables stay
// independent from the renderer. The renderer resolves each glyph to a
// Lucide icon name at render time.
package icons

import "github.com/wisdomalbert/portfolio/internal/view"

// Glyph identifies a visual icon.
type Glyph int

const (
	Unspecified Glyph = iota
	Cloud
	Code
	Terminal
	ShieldCheck
	Mail
	Phone
	ChevronRight
	Github
	Linkedin
	Instagram
	Menu
	Close
	Zap
	ArrowUpRight
	Globe
	Monitor
	Tablet
	Camera
	Cpu
	Lock
	CheckCircle
)

var lucideNames = map[Glyph]string{
	Cloud:        "cloud",
	Code:         "code",
	Terminal:     "terminal",
	ShieldCheck:  "shield-check",
	Mail:         "mail",
	Phone:        "phone",
	ChevronRight: "chevron-right",
	Github:       "github",
	Linkedin:     "linkedin",
	Instagram:    "instagram",
	Menu:         "menu",
	Close:        "x",
	Zap:          "zap",
	ArrowUpRight: "arrow-up-right",
	Globe:        "globe",
	Monitor:      "monitor",
	Tablet:       "tablet",
	Camera:       "camera",
	Cpu:          "cpu",
	Lock:         "lock",
	CheckCircle:  "circle-check",
}

// LucideName returns the Lucide icon name for g.
func LucideName(g Glyph) (string, bool) {
	name, ok := lucideNames[g]
	return name, ok
}

// LucideNameOrDefault falls back to "sparkle" for unknown glyphs.
func LucideNameOrDefault(g Glyph) string {
	if name, ok := lucideNames[g]; ok {
		return name
	}
	return "sparkle"
}

// String implements fmt.Stringer.
func (g Glyph) String() string {
	return LucideNameOrDefault(g)
}

// Node renders g as an icon placeholder the page runtime swaps for SVG.
func (g Glyph) Node(class string) *view.Node {
	return view.El("i", view.Attrs{
		"data-lucide": LucideNameOrDefault(g),
		"class":       class,
		"aria-hidden": "true",
	})
}
