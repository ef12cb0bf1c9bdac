// Package search implements the member directory filter engine: a conjunction
// of per-field substring predicates evaluated case-insensitively over the
// member collection. Pure boolean filtering — no ranking, no pagination; a
// linear scan is the contract, indexing only ever an optimization.
package search

import (
	"strings"

	"ycsmatch_backend/internal/models"
)

// Filters holds the recognized filter options. Empty values impose no
// constraint on their field.
type Filters struct {
	Industry string `form:"industry" json:"industry"`
	Region   string `form:"region" json:"region"`
	Skill    string `form:"skill" json:"skill"`
	Interest string `form:"interest" json:"interest"`
}

// Normalize trims surrounding whitespace from every filter value, so an
// all-whitespace value degrades to "no constraint".
func (f Filters) Normalize() Filters {
	return Filters{
		Industry: strings.TrimSpace(f.Industry),
		Region:   strings.TrimSpace(f.Region),
		Skill:    strings.TrimSpace(f.Skill),
		Interest: strings.TrimSpace(f.Interest),
	}
}

// IsEmpty reports whether no predicate is active.
func (f Filters) IsEmpty() bool {
	return f.Industry == "" && f.Region == "" && f.Skill == "" && f.Interest == ""
}

// Filter returns the order-preserving subsequence of members matching every
// active predicate. An empty filter set returns members unchanged.
func Filter(members []models.User, f Filters) []models.User {
	f = f.Normalize()
	if f.IsEmpty() {
		return members
	}

	matched := make([]models.User, 0, len(members))
	for _, m := range members {
		if Matches(&m, f) {
			matched = append(matched, m)
		}
	}
	return matched
}

// Matches evaluates the conjunction of active predicates against one member.
// Expects f to be normalized.
func Matches(m *models.User, f Filters) bool {
	if f.Industry != "" && !containsFold(m.Industry, f.Industry) {
		return false
	}
	// Region input matches either the region or the city field.
	if f.Region != "" && !containsFold(m.Region, f.Region) && !containsFold(m.City, f.Region) {
		return false
	}
	if f.Skill != "" && !anyContainsFold(m.Skills, f.Skill) {
		return false
	}
	if f.Interest != "" && !anyContainsFold(m.Interests, f.Interest) {
		return false
	}
	return true
}

// containsFold is a case-insensitive substring test. Unicode lowercasing
// covers cased scripts; caseless scripts (Japanese profile text) compare
// verbatim.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}
