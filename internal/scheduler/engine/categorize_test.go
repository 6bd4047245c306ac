package engine

import (
	"testing"

	"privassistant/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want model.Category
	}{
		{"Team meeting", model.CategoryWork},
		{"client review", model.CategoryWork},
		{"Morning workout", model.CategoryWork}, // "work" matches inside "workout"
		{"go for a run", model.CategoryHealth},
		{"gym session", model.CategoryHealth},
		{"study algebra", model.CategoryEducation},
		{"read a chapter", model.CategoryEducation},
		{"dinner with friends", model.CategorySocial},
		{"birthday party", model.CategorySocial},
		{"Buy groceries", model.CategoryPersonal},
		{"workout meeting", model.CategoryWork}, // work rules checked first
	}

	for _, tc := range tests {
		if got := Categorize(tc.name); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestColorFor(t *testing.T) {
	want := map[model.Category]string{
		model.CategoryWork:      "bg-blue-500",
		model.CategoryHealth:    "bg-red-500",
		model.CategoryEducation: "bg-purple-500",
		model.CategorySocial:    "bg-yellow-500",
		model.CategoryPersonal:  "bg-green-500",
	}

	seen := map[string]model.Category{}
	for category, color := range want {
		got := ColorFor(category)
		if got != color {
			t.Errorf("ColorFor(%q) = %q, want %q", category, got, color)
		}
		if prev, dup := seen[got]; dup {
			t.Errorf("color %q shared by %q and %q", got, prev, category)
		}
		seen[got] = category
	}
}
