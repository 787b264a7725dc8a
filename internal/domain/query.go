package domain

import "strings"

// Detail selects how many provider fields make it into a report.
type Detail int

const (
	DetailNone Detail = iota
	DetailPartial
	DetailFull
)

// String returns the detail level as a lowercase label, used in logs,
// metrics, and history rows.
func (d Detail) String() string {
	switch d {
	case DetailPartial:
		return "partial"
	case DetailFull:
		return "full"
	default:
		return "none"
	}
}

// LocationQuery is a parsed user input: the base city name and the detail
// level its suffix selected. Immutable once built.
type LocationQuery struct {
	Name   string
	Detail Detail
}

// Parse classifies a raw input string by its trailing suffix.
// "++" strips two characters and selects full detail, a single "+" strips one
// and selects partial detail, anything else passes through unchanged.
func Parse(rawInput string) LocationQuery {
	switch {
	case strings.HasSuffix(rawInput, "++"):
		return LocationQuery{Name: rawInput[:len(rawInput)-2], Detail: DetailFull}
	case strings.HasSuffix(rawInput, "+"):
		return LocationQuery{Name: rawInput[:len(rawInput)-1], Detail: DetailPartial}
	default:
		return LocationQuery{Name: rawInput, Detail: DetailNone}
	}
}
