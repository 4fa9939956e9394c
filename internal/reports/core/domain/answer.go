package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// answerRule pairs a matcher with a response builder. The builder is a pure
// function of the snapshot it is handed at respond time, so the same rule
// yields updated numbers whenever the underlying data changes.
type answerRule struct {
	pattern *regexp.Regexp
	render  func(s *Snapshot) string
}

// The rule table mirrors the assistant's fixed vocabulary. Order matters:
// the first pattern matching anywhere in the query wins.
var answerRules = []answerRule{
	// Greeting and farewell tokens are word-bounded so that e.g. "they"
	// does not trigger the greeting when matching anywhere in the query.
	{answerPattern(`\b(hi|hello|hey)\b`), func(*Snapshot) string {
		return "Hello! Welcome to the project management assistant."
	}},
	{answerPattern(`how are you?`), func(*Snapshot) string {
		return "I'm functioning well, thank you!"
	}},
	{answerPattern(`what is your name?`), func(*Snapshot) string {
		return "I'm the Project Management Assistant."
	}},
	{answerPattern(`what are the main activities of the student?`), func(s *Snapshot) string {
		return fmt.Sprintf("The main activities are: %d creative actions, %d viewing actions, and %d administrative actions.",
			s.Categories.Get(string(CategoryCreative)),
			s.Categories.Get(string(CategoryViewing)),
			s.Categories.Get(string(CategoryAdministrative)))
	}},
	{answerPattern(`are they creative?`), func(s *Snapshot) string {
		return fmt.Sprintf("Yes, the student has performed %d creative actions.", s.Categories.Get(string(CategoryCreative)))
	}},
	{answerPattern(`are they viewing?`), func(s *Snapshot) string {
		return fmt.Sprintf("Yes, the student has performed %d viewing actions.", s.Categories.Get(string(CategoryViewing)))
	}},
	{answerPattern(`are they administrative?`), func(s *Snapshot) string {
		return fmt.Sprintf("Yes, the student has performed %d administrative actions.", s.Categories.Get(string(CategoryAdministrative)))
	}},
	{answerPattern(`how many creative actions?`), func(s *Snapshot) string {
		return fmt.Sprintf("The student has performed %d creative actions.", s.Categories.Get(string(CategoryCreative)))
	}},
	{answerPattern(`how many viewing actions?`), func(s *Snapshot) string {
		return fmt.Sprintf("The student has performed %d viewing actions.", s.Categories.Get(string(CategoryViewing)))
	}},
	{answerPattern(`how many administrative actions?`), func(s *Snapshot) string {
		return fmt.Sprintf("The student has performed %d administrative actions.", s.Categories.Get(string(CategoryAdministrative)))
	}},
	// Canned farewell only; the engine never halts on it. Intercepting the
	// literal exit tokens is the caller's concern.
	{answerPattern(`\b(exit|bye|goodbye)\b`), func(*Snapshot) string {
		return "Thank you for using the Project Management Assistant. Goodbye!"
	}},
	{answerPattern(`what documents were accessed?`), func(s *Snapshot) string {
		return "The documents accessed were: " + strings.Join(s.Documents.Keys(), ", ")
	}},
	{answerPattern(`what tabs were used?`), func(s *Snapshot) string {
		return "The tabs used were: " + strings.Join(s.Tabs.Keys(), ", ")
	}},
	{answerPattern(`how many times was the document opened?`), func(s *Snapshot) string {
		return fmt.Sprintf("The document was opened %d times.", s.Descriptions.Get("Open document"))
	}},
	{answerPattern(`how many times was the document closed?`), func(s *Snapshot) string {
		return fmt.Sprintf("The document was closed %d times.", s.Descriptions.Get("Close document"))
	}},
	{answerPattern(`how many comments were made?`), func(s *Snapshot) string {
		return fmt.Sprintf("%d comments were made.", s.Descriptions.Get("Comment on a Document"))
	}},
	{answerPattern(`how many users interacted with the document?`), func(s *Snapshot) string {
		return fmt.Sprintf("%d unique users interacted with the document.", s.Users.Len())
	}},
}

func answerPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

const answerFallback = "Sorry, I don't have an answer for that. Try one of the suggested questions."

// Respond matches the query against the rule table and renders the first
// hit from the given snapshot. Unmatched input gets the fallback string;
// Respond never fails.
func Respond(query string, s *Snapshot) string {
	for _, rule := range answerRules {
		if rule.pattern.MatchString(query) {
			return rule.render(s)
		}
	}
	return answerFallback
}

// Questions is the fixed closed list offered for selection in clients.
var Questions = []string{
	"What are the main activities of the student?",
	"Are they creative?",
	"Are they viewing?",
	"Are they administrative?",
	"How many creative actions?",
	"How many viewing actions?",
	"How many administrative actions?",
	"What documents were accessed?",
	"What tabs were used?",
	"How many times was the document opened?",
	"How many times was the document closed?",
	"How many comments were made?",
	"How many users interacted with the document?",
}
