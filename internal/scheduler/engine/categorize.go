package engine

import (
	"strings"

	"privassistant/internal/model"
)

// categoryRule maps task-name keywords to a category. Rules are
// checked in order, first hit wins.
type categoryRule struct {
	category model.Category
	keywords []string
}

var categoryRules = []categoryRule{
	{model.CategoryWork, []string{"work", "meeting", "project", "office", "client"}},
	{model.CategoryHealth, []string{"workout", "gym", "exercise", "run", "health"}},
	{model.CategoryEducation, []string{"study", "learn", "read", "course", "homework"}},
	{model.CategorySocial, []string{"family", "friends", "social", "party", "dinner"}},
}

// categoryColors is the fixed color tag per category. Color is a pure
// function of category.
var categoryColors = map[model.Category]string{
	model.CategoryWork:      "bg-blue-500",
	model.CategoryHealth:    "bg-red-500",
	model.CategoryEducation: "bg-purple-500",
	model.CategorySocial:    "bg-yellow-500",
	model.CategoryPersonal:  "bg-green-500",
}

// Categorize maps a task name to one of the five fixed categories, by
// case-insensitive keyword substring. Personal is the default.
func Categorize(name string) model.Category {
	lower := strings.ToLower(name)
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return model.CategoryPersonal
}

// ColorFor returns the fixed color tag for a category.
func ColorFor(c model.Category) string {
	return categoryColors[c]
}
