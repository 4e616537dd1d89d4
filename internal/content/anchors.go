package content

// Section identifiers shared by the navigation bar and the sections.
const (
	SectionAbout     = "about"
	SectionExpertise = "expertise"
	SectionWork      = "work"
	SectionContact   = "contact"
)

// NavLink is a labelled link to a section.
type NavLink struct {
	Label string
	ID    string
}

// Href returns the in-page fragment URL for the link.
func (l NavLink) Href() string {
	return "#" + l.ID
}

// NavLinks returns the navigation entries in display order.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "About", ID: SectionAbout},
		{Label: "Expertise", ID: SectionExpertise},
		{Label: "Work", ID: SectionWork},
		{Label: "Contact", ID: SectionContact},
	}
}
