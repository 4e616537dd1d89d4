package sections

import (
	"fmt"

	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/icons"
	"github.com/wisdomalbert/portfolio/internal/view"
)

var meterColors = []string{"bg-blue-500", "bg-purple-500"}

// Expertise renders one card per skill, in table order.
func Expertise(skills []content.Skill) *view.Node {
	grid := view.C("div", "grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6 float-layer-1")
	for _, s := range skills {
		grid.Children = append(grid.Children, skillCard(s))
	}
	return section(content.SectionExpertise, "py-32 bg-slate-950 px-8 relative",
		view.C("div", "max-w-7xl mx-auto",
			view.C("div", "flex flex-col md:flex-row justify-between items-center mb-24 gap-10",
				view.C("div", "max-w-xl text-center md:text-left float-layer-2",
					view.C("h2", "text-6xl font-black tracking-tighter mb-8 leading-tight text-white",
						view.Text("The "), txt("span", "text-blue-500 italic", "Capability"), view.Text(" Deck."),
					),
					txt("p", "text-slate-400 font-medium text-lg leading-relaxed", content.ExpertiseLead),
				),
				meters(content.CapabilityMeters()),
			),
			grid,
		),
	)
}

func meters(ms []content.Meter) *view.Node {
	list := view.C("div", "space-y-6 relative z-10")
	for i, m := range ms {
		pct := fmt.Sprintf("%d%%", m.Percent)
		list.Children = append(list.Children, view.El("div", nil,
			view.C("div", "flex justify-between text-[10px] font-black text-slate-500 uppercase tracking-widest mb-2",
				txt("span", "", m.Label), txt("span", "", pct)),
			view.C("div", "h-2 bg-slate-800 rounded-full overflow-hidden",
				view.El("div", view.Attrs{
					"class": "h-full " + meterColors[i%len(meterColors)],
					"style": "width: " + pct,
				})),
		))
	}
	return view.C("div", "bg-slate-900 p-10 rounded-[3rem] border border-slate-800 md:w-1/3 shadow-inner group overflow-hidden relative float-layer-1",
		view.C("div", "absolute inset-0 bg-gradient-to-br from-blue-600/10 to-transparent translate-y-full group-hover:translate-y-0 transition-transform duration-700"),
		icons.Cpu.Node("w-12 h-12 text-blue-500 mb-6 relative z-10"),
		list,
	)
}

func skillCard(s content.Skill) *view.Node {
	items := view.C("div", "space-y-4")
	for _, it := range s.Items {
		items.Children = append(items.Children,
			view.C("p", "text-sm font-bold text-slate-500 flex items-center gap-4 group-hover:text-slate-300 transition-colors",
				view.C("span", "w-1.5 h-1.5 bg-blue-500 rounded-full"),
				view.Text(it),
			))
	}
	return view.C("div", "bento-card p-12 rounded-[3.5rem] flex flex-col justify-between group h-full hover:bg-slate-900/50 transition-all duration-500 relative overflow-hidden",
		view.C("div", "absolute top-0 right-0 p-4 opacity-5 group-hover:opacity-20 transition-opacity",
			s.Icon.Node("w-6 h-6")),
		view.El("div", nil,
			view.C("div", "w-16 h-16 bg-slate-900 rounded-2xl flex items-center justify-center mb-10 group-hover:bg-blue-600 group-hover:text-white transition-all shadow-xl group-hover:-rotate-6",
				s.Icon.Node("w-6 h-6")),
			txt("h3", "text-2xl font-black mb-8 tracking-tight text-white", s.Category),
			items,
		),
	)
}
