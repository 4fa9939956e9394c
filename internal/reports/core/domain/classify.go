package domain

import "strings"

// Category is the activity class derived from a record's description.
type Category string

const (
	CategoryCreative       Category = "Creative"
	CategoryViewing        Category = "Viewing"
	CategoryAdministrative Category = "Administrative"
	CategoryOther          Category = "Other"
)

// Categories lists all categories in classification priority order.
var Categories = []Category{
	CategoryCreative,
	CategoryViewing,
	CategoryAdministrative,
	CategoryOther,
}

var (
	creativeKeywords       = []string{"create", "modify", "delete", "assign material", "insert", "comment", "rename"}
	viewingKeywords        = []string{"open", "close", "view"}
	administrativeKeywords = []string{"import", "export", "transfer", "copy"}
)

// Classify maps a free-text description to a category. Matching is
// case-insensitive substring matching, and the tiers are checked in strict
// priority order: Creative before Viewing before Administrative. A
// description containing both "export" and "create" is therefore Creative.
func Classify(description string) Category {
	d := strings.ToLower(description)
	switch {
	case containsAny(d, creativeKeywords):
		return CategoryCreative
	case containsAny(d, viewingKeywords):
		return CategoryViewing
	case containsAny(d, administrativeKeywords):
		return CategoryAdministrative
	default:
		return CategoryOther
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
