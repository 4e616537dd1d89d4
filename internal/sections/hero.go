package sections

import (
	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/icons"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// Hero renders the landing block. It carries no section id.
func Hero() *view.Node {
	return section("", "relative pt-48 pb-32 overflow-hidden bg-grid",
		view.C("div", "absolute top-0 right-0 w-[800px] h-[800px] bg-blue-600/10 rounded-full blur-[120px] -z-10 translate-x-1/2 -translate-y-1/2"),
		view.C("div", "absolute bottom-0 left-0 w-[600px] h-[600px] bg-purple-600/10 rounded-full blur-[120px] -z-10 -translate-x-1/2 translate-y-1/2"),
		view.C("div", "max-w-7xl mx-auto px-8 flex flex-col lg:flex-row items-center gap-20",
			heroCopy(),
			heroDevice(),
		),
	)
}

func heroCopy() *view.Node {
	return view.C("div", "lg:w-3/5 float-layer-1",
		view.C("div", "inline-flex items-center gap-3 px-5 py-2 rounded-full bg-blue-500/10 text-blue-400 text-[10px] font-black uppercase tracking-[0.3em] mb-10 border border-blue-500/20",
			icons.Zap.Node("w-3 h-3 animate-pulse"),
			view.Text(content.HeroBadge),
		),
		view.C("h1", "text-7xl lg:text-[110px] font-black text-white leading-[0.85] tracking-tighter mb-10",
			view.Text("Digital "), br(),
			txt("span", "text-gradient", "Infrastructure."), view.Text(" "), br(),
			view.Text("At Scale."),
		),
		view.C("p", "text-xl text-slate-400 font-medium leading-relaxed max-w-xl mb-12",
			view.Text(content.OwnerName+" — "+content.HeroLead),
		),
		view.C("div", "flex flex-wrap gap-6",
			scrollLink(content.SectionContact,
				"bg-blue-600 text-white px-10 py-5 rounded-3xl font-black text-lg hover:bg-white hover:text-blue-600 transition-all flex items-center shadow-2xl shadow-blue-500/20",
				view.Text("Initiate Project "), icons.ArrowUpRight.Node("ml-3 w-6 h-6")),
			scrollLink(content.SectionExpertise,
				"bg-slate-800/50 border-2 border-slate-700 text-white px-10 py-5 rounded-3xl font-black text-lg hover:border-blue-500 transition-all flex items-center backdrop-blur-xl",
				view.Text("View Expertise")),
		),
	)
}

func heroDevice() *view.Node {
	return view.C("div", "lg:w-2/5 relative float-layer-2",
		view.C("div", "float-soft relative z-10",
			view.C("div", "relative group",
				view.C("div", "absolute -inset-4 bg-gradient-to-tr from-blue-600 to-purple-600 rounded-[3.5rem] blur-2xl opacity-20 group-hover:opacity-40 transition-opacity"),
				view.C("div", "relative bg-slate-900 rounded-[3.5rem] overflow-hidden border-[12px] border-slate-950 shadow-3xl aspect-[4/5] w-full max-w-md mx-auto",
					img(content.HeroImageURL, content.HeroImageAlt, "w-full h-full object-cover object-center group-hover:scale-110 transition-transform duration-1000"),
					view.C("div", "absolute inset-0 bg-gradient-to-t from-slate-950 via-slate-950/20 to-transparent"),
					view.C("div", "absolute inset-x-0 bottom-0 p-10 text-white",
						view.C("div", "flex items-center gap-3 mb-4",
							icons.Monitor.Node("text-blue-400 w-5 h-5"),
							icons.Tablet.Node("text-purple-400 w-5 h-5"),
						),
						txt("p", "text-[10px] font-black uppercase tracking-[0.4em] text-blue-400 mb-2", "Modern Stack"),
						txt("p", "text-3xl font-black italic tracking-tighter leading-none", "Cloud Architected Solutions"),
					),
				),
			),
		),
	)
}
