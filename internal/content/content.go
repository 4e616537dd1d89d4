// Package content holds the read-only records the page is built from.
//
// The tables are package literals populated at startup and never mutated.
// Accessors hand out copies so a renderer cannot change what the next one
// sees.
package content

import "github.com/wisdomalbert/portfolio/internal/icons"

// Skill is one expertise card.
type Skill struct {
	Category string      `yaml:"category"`
	Items    []string    `yaml:"items"`
	Icon     icons.Glyph `yaml:"-"`
}

// Experience is one work history card.
type Experience struct {
	Role       string   `yaml:"role"`
	Company    string   `yaml:"company"`
	Period     string   `yaml:"period"`
	Highlights []string `yaml:"highlights"`
}

// Education is one entry of the education strip.
type Education struct {
	Degree string `yaml:"degree"`
	School string `yaml:"school"`
	Year   string `yaml:"year"`
}

var skills = []Skill{
	{
		Category: "Cloud Engineering",
		Items:    []string{"AWS EC2 & S3", "Lambda Computing", "CloudTrail Security", "Infrastructure as Code"},
		Icon:     icons.Cloud,
	},
	{
		Category: "Full-Stack Web",
		Items:    []string{"React & TypeScript", "Tailwind Engine", "Node.js Systems", "API Architecture"},
		Icon:     icons.Code,
	},
	{
		Category: "AI Automation",
		Items:    []string{"Workflow Synthesis", "GenAI Integration", "Process Scripting", "Logic Mapping"},
		Icon:     icons.Terminal,
	},
	{
		Category: "Security Systems",
		Items:    []string{"CCTV Integration", "IP Camera Logic", "Surveillance Tech", "Network Config"},
		Icon:     icons.ShieldCheck,
	},
}

var experiences = []Experience{
	{
		Role:    "Technology Specialist",
		Company: "Freelance / Remote",
		Period:  "2023 - PRESENT",
		Highlights: []string{
			"Engineering cloud solutions for scalable enterprise growth.",
			"Automating business logic through sophisticated AI workflows.",
			"Developing high-conversion web platforms for global clients.",
		},
	},
	{
		Role:    "Digital Ads Strategist",
		Company: "Marketing Projects",
		Period:  "2022 - 2023",
		Highlights: []string{
			"Managed high-budget Meta campaigns with 4x average ROI.",
			"Built custom tracking dashboards for real-time analytics.",
			"Optimized content funnels for niche market segments.",
		},
	},
}

var education = []Education{
	{
		Degree: "Web Systems & Full-Stack Development",
		School: "NIIT Center",
		Year:   "2023 – 2024",
	},
	{
		Degree: "B.Sc. Accounting",
		School: "University of Benin",
		Year:   "2010 – 2016",
	},
}

// Skills returns the expertise table.
func Skills() []Skill {
	out := make([]Skill, len(skills))
	for i, s := range skills {
		s.Items = append([]string(nil), s.Items...)
		out[i] = s
	}
	return out
}

// Experiences returns the work history table.
func Experiences() []Experience {
	out := make([]Experience, len(experiences))
	for i, e := range experiences {
		e.Highlights = append([]string(nil), e.Highlights...)
		out[i] = e
	}
	return out
}

// EducationHistory returns the education table.
func EducationHistory() []Education {
	return append([]Education(nil), education...)
}
