package sections

import (
	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/icons"
	"github.com/wisdomalbert/portfolio/internal/view"
)

var statStyles = []struct {
	glyph  icons.Glyph
	border string
	tint   string
	color  string
}{
	{icons.Globe, "hover:border-blue-500", "bg-blue-500/10", "text-blue-400"},
	{icons.Lock, "hover:border-emerald-500", "bg-emerald-500/10", "text-emerald-400"},
}

// About renders the about section.
func About() *view.Node {
	return section(content.SectionAbout, "py-32 bg-slate-950 relative overflow-hidden",
		view.C("div", "max-w-7xl mx-auto px-8 relative z-10",
			view.C("div", "lg:flex items-center gap-24",
				aboutVisual(),
				aboutCopy(),
			),
		),
	)
}

func aboutVisual() *view.Node {
	return view.C("div", "lg:w-1/2 mb-16 lg:mb-0 float-layer-3",
		view.C("div", "relative group",
			view.C("div", "absolute inset-0 bg-emerald-600/10 blur-[100px] -z-10 opacity-50"),
			view.C("div", "rounded-[4rem] shadow-3xl w-full bg-slate-900 border-2 border-slate-800 aspect-[3/4] flex items-center justify-center overflow-hidden relative",
				img(content.CameraImageURL, content.CameraImageAlt, "w-full h-full object-cover group-hover:scale-105 transition-transform duration-1000 opacity-90"),
				view.C("div", "absolute inset-0 bg-slate-950/20"),
				view.C("div", "absolute top-10 left-10 p-6 bg-slate-950/80 backdrop-blur-xl border border-white/10 rounded-3xl",
					icons.Camera.Node("w-10 h-10 text-emerald-400 animate-pulse"),
					view.C("div", "mt-4",
						txt("p", "text-[10px] font-black uppercase text-slate-500 tracking-widest", "System Status"),
						txt("p", "text-emerald-400 font-bold", "ONLINE & SECURE"),
					),
				),
			),
		),
	)
}

func aboutCopy() *view.Node {
	stats := view.C("div", "mt-16 grid grid-cols-2 gap-6")
	for i, s := range content.AboutStats() {
		style := statStyles[i%len(statStyles)]
		stats.Children = append(stats.Children,
			view.C("div", "p-8 bg-slate-900 rounded-3xl border border-slate-800 "+style.border+" transition-all group",
				view.C("div", "w-12 h-12 "+style.tint+" rounded-2xl flex items-center justify-center mb-4 group-hover:scale-110 transition-transform",
					style.glyph.Node(style.color)),
				txt("p", "text-white font-black", s.Value),
				txt("p", "text-slate-500 text-[10px] font-black uppercase tracking-widest", s.Label),
			))
	}
	return view.C("div", "lg:w-1/2 float-layer-1",
		txt("span", "text-blue-500 font-black tracking-[0.4em] uppercase text-xs mb-6 block", content.AboutKicker),
		view.C("h2", "text-5xl lg:text-7xl font-black text-white mb-8 tracking-tighter leading-none",
			view.Text("Engineering "), txt("span", "text-blue-500", "Security"), view.Text(" "), br(),
			view.Text(" & "), txt("span", "text-purple-500 italic", "Efficiency."),
		),
		view.C("div", "space-y-8 text-slate-400 text-xl font-medium leading-relaxed",
			txt("p", "", content.AboutFoundation),
			txt("p", "", content.AboutReach),
		),
		stats,
	)
}
