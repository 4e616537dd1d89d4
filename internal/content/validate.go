package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wisdomalbert/portfolio/internal/icons"
)

// ErrInvalidContent marks a record that breaks a table invariant.
var ErrInvalidContent = errors.New("invalid content")

// Validate checks every table: required text is non-blank and every
// sequence holds at least one entry. All violations are reported.
func Validate() error {
	var errs []error
	for i, s := range skills {
		errs = append(errs, checkSkill(i, s)...)
	}
	for i, e := range experiences {
		errs = append(errs, checkExperience(i, e)...)
	}
	for i, e := range education {
		errs = append(errs, checkEducation(i, e)...)
	}
	return errors.Join(errs...)
}

func checkSkill(i int, s Skill) []error {
	where := fmt.Sprintf("skill[%d]", i)
	errs := requireText(where, "category", s.Category)
	errs = append(errs, requireItems(where, "items", s.Items)...)
	if _, ok := icons.LucideName(s.Icon); !ok {
		errs = append(errs, fmt.Errorf("%w: %s: unknown icon %d", ErrInvalidContent, where, s.Icon))
	}
	return errs
}

func checkExperience(i int, e Experience) []error {
	where := fmt.Sprintf("experience[%d]", i)
	errs := requireText(where, "role", e.Role)
	errs = append(errs, requireText(where, "company", e.Company)...)
	errs = append(errs, requireText(where, "period", e.Period)...)
	errs = append(errs, requireItems(where, "highlights", e.Highlights)...)
	return errs
}

func checkEducation(i int, e Education) []error {
	where := fmt.Sprintf("education[%d]", i)
	errs := requireText(where, "degree", e.Degree)
	errs = append(errs, requireText(where, "school", e.School)...)
	errs = append(errs, requireText(where, "year", e.Year)...)
	return errs
}

func requireText(where, field, v string) []error {
	if strings.TrimSpace(v) == "" {
		return []error{fmt.Errorf("%w: %s: %s is empty", ErrInvalidContent, where, field)}
	}
	return nil
}

func requireItems(where, field string, items []string) []error {
	if len(items) == 0 {
		return []error{fmt.Errorf("%w: %s: %s has no entries", ErrInvalidContent, where, field)}
	}
	var errs []error
	for j, it := range items {
		errs = append(errs, requireText(where, fmt.Sprintf("%s[%d]", field, j), it)...)
	}
	return errs
}
