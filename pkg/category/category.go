// Package category assigns each deadline to one of the dashboard's
// mutually-exclusive feed sections.
package category

import (
	"fmt"
	"strings"
)

type Category int

const (
	ClubOrSocial Category = iota
	AcademicOrCareer
	Other
)

// Rule pairs a category with the keywords that select it. Rules are evaluated
// in order and the first hit wins, which keeps the tie-break deterministic
// when a title matches keywords from more than one rule.
type Rule struct {
	Category Category
	Keywords []string
}

// DefaultRules returns the ordered rule table used by the dashboard.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: ClubOrSocial,
			Keywords: []string{"meeting", "club", "event", "food"},
		},
		{
			Category: AcademicOrCareer,
			Keywords: []string{"internship", "hiring", "job", "scholarship"},
		},
	}
}

// All returns every category in feed order.
func All() []Category {
	return []Category{ClubOrSocial, AcademicOrCareer, Other}
}

// Classify picks the category for a record from its text fields. Matching is
// case-insensitive substring matching against the title; the description is
// consulted only when the title is absent. Missing text never errors, it
// just lands in Other.
func Classify(title, description string) Category {
	text := strings.TrimSpace(title)
	if text == "" {
		text = strings.TrimSpace(description)
	}
	if text == "" {
		return Other
	}
	text = strings.ToLower(text)
	for _, rule := range DefaultRules() {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}
	return Other
}

// Noun is the short name accepted on the command line.
func (c Category) Noun() string {
	switch c {
	case ClubOrSocial:
		return "social"
	case AcademicOrCareer:
		return "academic"
	default:
		return "other"
	}
}

// Heading is the section title shown above the feed list.
func (c Category) Heading() string {
	switch c {
	case ClubOrSocial:
		return "Club Events / Free Food"
	case AcademicOrCareer:
		return "Academic / Internship / Hiring"
	default:
		return "Everything Else"
	}
}

func (c Category) String() string {
	return c.Noun()
}

// Aliases lists the nouns accepted for each category on the command line.
func (c Category) Aliases() []string {
	switch c {
	case ClubOrSocial:
		return []string{"social", "club", "clubs", "events"}
	case AcademicOrCareer:
		return []string{"academic", "career", "internships", "jobs"}
	default:
		return []string{"other", "misc"}
	}
}

// ForAlias resolves a command-line noun to its category.
func ForAlias(alias string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for _, c := range All() {
		for _, a := range c.Aliases() {
			if a == needle {
				return c, nil
			}
		}
	}
	return Other, fmt.Errorf("category: unknown category %q", alias)
}
