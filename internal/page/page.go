// Package page composes the navigation bar and the five sections into the
// portfolio page.
package page

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/nav"
	"github.com/wisdomalbert/portfolio/internal/sections"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// Third-party browser scripts the page loads.
const (
	TailwindScript = "https://cdn.tailwindcss.com"
	LucideScript   = "https://unpkg.com/lucide@0.469.0/dist/umd/lucide.min.js"
)

// DefaultTitle is the document title when none is configured.
const DefaultTitle = "Wisdom Albert | Tech Solutions"

// Options controls a render.
type Options struct {
	Nav         nav.State
	Year        int
	Title       string
	AssetPrefix string
}

// DefaultOptions returns options for the current year with assets under
// /static.
func DefaultOptions() Options {
	return Options{
		Year:        time.Now().Year(),
		Title:       DefaultTitle,
		AssetPrefix: "/static",
	}
}

// Build returns the page body: the bar, then the sections in fixed order.
func Build(opts Options) *view.Node {
	return view.C("div", "min-h-screen selection:bg-blue-600 selection:text-white bg-slate-950",
		nav.View(opts.Nav, content.NavLinks()),
		view.C("main", "relative page-float-container",
			sections.Hero(),
			sections.About(),
			sections.Expertise(content.Skills()),
			sections.Experience(content.Experiences(), content.EducationHistory()),
			sections.Contact(opts.Year),
		),
	)
}

// Document renders a complete HTML document around Build(opts).
func Document(opts Options) templ.Component {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	body := view.El("body", view.Attrs{"class": "bg-slate-950 text-white antialiased"},
		Build(opts))
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return view.RenderDocument(w, view.El("html", view.Attrs{"lang": "en"}, head(opts), body))
	})
}

func head(opts Options) *view.Node {
	return view.El("head", nil,
		view.El("meta", view.Attrs{"charset": "utf-8"}),
		view.El("meta", view.Attrs{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
		view.El("meta", view.Attrs{"name": "description", "content": content.OwnerName + " | " + content.BrandTagline}),
		view.El("title", nil, view.Text(opts.Title)),
		view.El("link", view.Attrs{"rel": "stylesheet", "href": opts.AssetPrefix + "/site.css"}),
		script(TailwindScript, false),
		script(LucideScript, true),
		script(opts.AssetPrefix+"/app.js", true),
	)
}

func script(src string, deferred bool) *view.Node {
	attrs := view.Attrs{"src": src}
	if deferred {
		attrs["defer"] = "defer"
	}
	return view.El("script", attrs)
}
