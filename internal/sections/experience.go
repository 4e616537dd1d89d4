package sections

import (
	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/icons"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// Experience renders the work history cards, the connectivity card and
// the education strip.
func Experience(exps []content.Experience, edu []content.Education) *view.Node {
	cards := view.C("div", "grid lg:grid-cols-3 gap-8 float-layer-1")
	for _, e := range exps {
		cards.Children = append(cards.Children, experienceCard(e))
	}
	cards.Children = append(cards.Children, connectivityCard())

	strip := view.C("div", "mt-32 p-16 bg-slate-900 rounded-[5rem] border border-slate-800 flex flex-col md:flex-row items-center justify-around gap-16 text-center md:text-left relative overflow-hidden group shadow-2xl float-layer-2",
		view.C("div", "absolute inset-0 bg-blue-600/5 scale-0 group-hover:scale-100 transition-transform duration-1000 rounded-full"))
	for _, e := range edu {
		strip.Children = append(strip.Children, view.C("div", "relative z-10",
			txt("p", "text-blue-500 font-black text-xs uppercase tracking-widest mb-4", e.Year),
			txt("h4", "text-3xl font-black text-white mb-2 leading-tight", e.Degree),
			txt("p", "text-slate-500 font-bold uppercase text-xs tracking-[0.2em]", e.School),
		))
	}

	return section(content.SectionWork, "py-32 bg-slate-950 px-8 relative overflow-hidden",
		view.C("div", "max-w-7xl mx-auto relative z-10",
			view.C("div", "text-center mb-32 float-layer-2",
				txt("span", "text-blue-500 font-black tracking-[0.5em] uppercase text-xs", "Work History"),
				txt("h2", "text-6xl font-black text-white tracking-tighter mt-4", "Professional Milestones."),
			),
			cards,
			strip,
		),
	)
}

func experienceCard(e content.Experience) *view.Node {
	highlights := view.C("div", "space-y-6")
	for _, h := range e.Highlights {
		highlights.Children = append(highlights.Children, view.C("div", "flex gap-4",
			icons.CheckCircle.Node("w-5 h-5 text-blue-500 shrink-0 mt-1"),
			txt("p", "text-slate-400 font-medium leading-relaxed italic", h),
		))
	}
	return view.C("div", "bg-slate-900 p-14 rounded-[4rem] border border-slate-800 flex flex-col justify-between group hover:border-blue-500/30 transition-all duration-500 shadow-xl",
		view.El("div", nil,
			txt("p", "text-blue-500 font-black text-xs uppercase tracking-[0.3em] mb-8", e.Period),
			txt("h3", "text-4xl font-black text-white mb-3 leading-tight group-hover:text-blue-400 transition-colors", e.Role),
			txt("p", "text-slate-500 font-bold uppercase text-[10px] tracking-widest mb-12", e.Company),
			highlights,
		),
		view.C("div", "mt-16 pt-8 border-t border-slate-800 flex items-center justify-between group-hover:border-blue-500/10 transition-all",
			txt("span", "text-blue-500 font-black text-xs uppercase tracking-widest", "Case Details"),
			view.C("div", "w-12 h-12 bg-slate-800 rounded-full flex items-center justify-center group-hover:bg-blue-600 group-hover:text-white transition-all shadow-lg",
				icons.ArrowUpRight.Node("w-5 h-5")),
		),
	)
}

func connectivityCard() *view.Node {
	tags := view.C("div", "flex flex-wrap gap-4")
	for _, loc := range content.Locations() {
		tags.Children = append(tags.Children,
			txt("div", "px-6 py-2 bg-white/10 rounded-full text-[10px] font-black uppercase tracking-widest border border-white/10 backdrop-blur-xl", loc))
	}
	return view.C("div", "bg-gradient-to-br from-indigo-700 via-blue-600 to-blue-500 p-14 rounded-[4rem] flex flex-col justify-center text-white relative overflow-hidden group shadow-3xl shadow-blue-500/30",
		icons.Globe.Node("w-48 h-48 absolute -bottom-10 -right-10 opacity-10 group-hover:scale-125 group-hover:rotate-12 transition-transform duration-1000"),
		view.C("h3", "text-5xl font-black mb-8 tracking-tighter leading-tight",
			view.Text("Global "), br(), view.Text("Connectivity.")),
		txt("p", "text-blue-500 bg-white/90 px-6 py-2 rounded-full inline-block font-black text-xs uppercase tracking-widest mb-10 w-fit", "Based in Nigeria"),
		txt("p", "text-blue-50/80 font-medium mb-12 leading-relaxed text-lg italic", content.ConnectivityLead),
		tags,
	)
}
