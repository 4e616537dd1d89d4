package sections

import (
	"strconv"

	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/icons"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// ContactFormPath is where the contact form posts when the runtime is not
// there to discard the submission. The server answers 204 so the browser
// stays on the page.
const ContactFormPath = "/contact"

var socialGlyphs = []struct {
	glyph icons.Glyph
	label string
}{
	{icons.Linkedin, "LinkedIn"},
	{icons.Github, "GitHub"},
	{icons.Instagram, "Instagram"},
}

// Contact renders the contact section and the page footer. year is shown
// in the copyright line.
func Contact(year int) *view.Node {
	return section(content.SectionContact, "py-40 bg-slate-950 text-white relative overflow-hidden",
		view.C("div", "max-w-7xl mx-auto px-8 relative z-10",
			view.C("div", "grid lg:grid-cols-2 gap-32 items-center",
				contactChannels(),
				contactForm(),
			),
			footer(year),
		),
	)
}

func contactChannels() *view.Node {
	social := view.C("div", "mt-24 flex gap-8")
	for _, s := range socialGlyphs {
		social.Children = append(social.Children, view.El("a", view.Attrs{
			"href":       "#",
			"aria-label": s.label,
			"class":      "w-16 h-16 bg-slate-900 rounded-3xl flex items-center justify-center hover:bg-blue-600 hover:text-white transition-all hover:-translate-y-3 border border-slate-800 shadow-xl group",
		}, s.glyph.Node("w-6 h-6 group-hover:scale-110")).On(view.Action{Kind: view.SuppressDefault}))
	}
	return view.C("div", "float-layer-1",
		view.C("h2", "text-8xl lg:text-9xl font-black tracking-tighter mb-16 leading-none",
			view.Text("Start The "), br(), txt("span", "text-blue-500 italic", "Phase.")),
		txt("p", "text-2xl text-slate-400 mb-20 max-w-lg font-medium leading-relaxed", content.ContactLead),
		view.C("div", "space-y-12",
			channel("mailto:"+content.Email, icons.Mail, "bg-blue-600 group-hover:rotate-12 shadow-3xl shadow-blue-500/20", "Direct Messaging", content.Email),
			channel("tel:"+content.Phone, icons.Phone, "bg-slate-900 group-hover:-rotate-12 border border-slate-800 shadow-xl", "Voice Consultation", content.Phone),
		),
		social,
	)
}

func channel(href string, glyph icons.Glyph, badge, label, value string) *view.Node {
	return view.El("a", view.Attrs{"href": href, "class": "group block"},
		view.C("div", "flex items-center gap-8",
			view.C("div", "w-20 h-20 rounded-[2.5rem] flex items-center justify-center group-hover:scale-110 transition-all "+badge,
				glyph.Node("w-8 h-8 text-white")),
			view.El("div", nil,
				txt("p", "text-[10px] font-black text-slate-500 uppercase tracking-[0.4em] mb-2", label),
				txt("p", "text-2xl font-black group-hover:text-blue-400 transition-colors", value),
			),
		),
	)
}

func contactForm() *view.Node {
	field := "w-full bg-slate-950 px-10 py-6 rounded-[2rem] border border-slate-800 focus:border-blue-500 focus:ring-4 focus:ring-blue-500/10 placeholder:text-slate-700 font-bold transition-all text-white outline-none"
	label := "text-[10px] font-black uppercase tracking-[0.3em] text-slate-500 ml-6"
	form := view.El("form", view.Attrs{
		"class":  "space-y-12 relative z-10",
		"method": "post",
		"action": ContactFormPath,
	},
		view.C("div", "space-y-4",
			view.El("label", view.Attrs{"for": "contact-name", "class": label}, view.Text("Your Name")),
			view.El("input", view.Attrs{"id": "contact-name", "name": "name", "type": "text", "class": field, "placeholder": "Wisdom Albert"}),
		),
		view.C("div", "space-y-4",
			view.El("label", view.Attrs{"for": "contact-vision", "class": label}, view.Text("Project Vision")),
			view.El("textarea", view.Attrs{"id": "contact-vision", "name": "vision", "rows": "4", "class": field, "placeholder": "What are we building?"}),
		),
		view.El("button", view.Attrs{
			"type":  "submit",
			"class": "w-full bg-blue-600 text-white py-8 rounded-[2.5rem] font-black text-2xl hover:bg-white hover:text-blue-600 transition-all flex items-center justify-center gap-6 group shadow-3xl shadow-blue-500/20",
		},
			view.Text("Confirm Connection"),
			icons.ChevronRight.Node("w-8 h-8 group-hover:translate-x-3 transition-transform"),
		),
	).On(view.Action{Kind: view.DiscardSubmit})

	return view.C("div", "bg-slate-900 p-14 lg:p-20 rounded-[5rem] border border-slate-800 shadow-3xl relative overflow-hidden float-layer-2",
		view.C("div", "absolute top-0 right-0 p-8 opacity-10", icons.Zap.Node("w-40 h-40 text-blue-500")),
		view.C("h3", "text-5xl font-black mb-16 tracking-tighter text-white relative z-10",
			view.Text("Project "), br(), view.Text("Specifications.")),
		form,
	)
}

func footer(year int) *view.Node {
	return view.C("footer", "mt-48 pt-20 border-t border-slate-900 flex flex-col md:flex-row justify-between items-center gap-8",
		view.C("div", "flex items-center gap-4",
			txt("div", "w-12 h-12 bg-slate-900 rounded-2xl flex items-center justify-center font-black italic text-blue-500 text-sm shadow-xl border border-slate-800", content.BrandMark),
			txt("p", "text-slate-600 font-black text-[10px] uppercase tracking-[0.5em]", content.FooterBrand),
		),
		txt("p", "text-slate-700 font-bold text-xs uppercase tracking-[0.3em]",
			"© "+strconv.Itoa(year)+" • "+content.FooterMotto),
	)
}
