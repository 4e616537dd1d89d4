package content

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTables(t *testing.T) {
	Convey("Given the static tables", t, func() {
		Convey("Then they validate", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("Then every skill has a category and at least one item", func() {
			So(Skills(), ShouldHaveLength, 4)
			for _, s := range Skills() {
				So(strings.TrimSpace(s.Category), ShouldNotBeEmpty)
				So(len(s.Items), ShouldBeGreaterThan, 0)
				for _, it := range s.Items {
					So(strings.TrimSpace(it), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Then every experience has text fields and highlights", func() {
			So(Experiences(), ShouldHaveLength, 2)
			for _, e := range Experiences() {
				So(e.Role, ShouldNotBeEmpty)
				So(e.Company, ShouldNotBeEmpty)
				So(e.Period, ShouldNotBeEmpty)
				So(len(e.Highlights), ShouldBeGreaterThan, 0)
			}
		})

		Convey("Then every education entry is filled in", func() {
			So(EducationHistory(), ShouldHaveLength, 2)
			for _, e := range EducationHistory() {
				So(e.Degree, ShouldNotBeEmpty)
				So(e.School, ShouldNotBeEmpty)
				So(e.Year, ShouldNotBeEmpty)
			}
		})

		Convey("When a caller mutates what it was handed", func() {
			got := Skills()
			got[0].Category = "changed"
			got[0].Items[0] = "changed"
			exps := Experiences()
			exps[0].Highlights[0] = "changed"
			edu := EducationHistory()
			edu[0].School = "changed"

			Convey("Then the tables are unchanged", func() {
				So(Skills()[0].Category, ShouldEqual, "Cloud Engineering")
				So(Skills()[0].Items[0], ShouldEqual, "AWS EC2 & S3")
				So(Experiences()[0].Highlights[0], ShouldStartWith, "Engineering cloud")
				So(EducationHistory()[0].School, ShouldEqual, "NIIT Center")
			})
		})
	})
}

func TestValidateReportsViolations(t *testing.T) {
	Convey("Given a broken skill table", t, func() {
		saved := skills
		skills = []Skill{{Category: " ", Items: nil}}
		Reset(func() { skills = saved })

		err := Validate()

		Convey("Then every violation is reported", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrInvalidContent), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "skill[0]: category is empty")
			So(err.Error(), ShouldContainSubstring, "skill[0]: items has no entries")
			So(err.Error(), ShouldContainSubstring, "unknown icon")
		})
	})

	Convey("Given an experience without highlights", t, func() {
		saved := experiences
		experiences = []Experience{{Role: "r", Company: "c", Period: "p"}}
		Reset(func() { experiences = saved })

		So(Validate(), ShouldNotBeNil)
		So(Validate().Error(), ShouldContainSubstring, "experience[0]: highlights has no entries")
	})
}

func TestNavLinks(t *testing.T) {
	Convey("Given the navigation links", t, func() {
		links := NavLinks()

		Convey("Then they name the four sections in order", func() {
			ids := make([]string, len(links))
			for i, l := range links {
				ids[i] = l.ID
			}
			So(ids, ShouldResemble, []string{SectionAbout, SectionExpertise, SectionWork, SectionContact})
			So(links[3].Label, ShouldEqual, "Contact")
			So(links[0].Href(), ShouldEqual, "#about")
		})
	})
}

// pageCopy only compiles while the copy is declared constant.
const pageCopy = HeroBadge + HeroLead + AboutKicker + AboutFoundation + AboutReach +
	ExpertiseLead + ConnectivityLead + ContactLead

func TestPageCopy(t *testing.T) {
	Convey("Given the section copy", t, func() {
		for _, c := range []string{HeroBadge, HeroLead, AboutKicker, AboutFoundation, AboutReach, ExpertiseLead, ConnectivityLead, ContactLead} {
			So(c, ShouldNotBeBlank)
		}
		So(len(pageCopy), ShouldBeGreaterThan, 0)
	})
}
