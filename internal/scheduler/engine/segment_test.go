package engine

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			name:   "splits on comma",
			prompt: "Morning workout, study algebra by 3pm",
			want:   []string{"Morning workout", "study algebra by 3pm"},
		},
		{
			name:   "splits on period and newline",
			prompt: "Buy groceries.\nCall mom at 6pm",
			want:   []string{"Buy groceries", "Call mom at 6pm"},
		},
		{
			name:   "drops short fragments",
			prompt: "ab, go, team meeting at 5pm",
			want:   []string{"team meeting at 5pm"},
		},
		{
			name:   "trims surrounding whitespace",
			prompt: "  lunch with friends  ",
			want:   []string{"lunch with friends"},
		},
		{
			name:   "empty prompt",
			prompt: "",
			want:   []string{},
		},
		{
			name:   "only separators",
			prompt: ".,\n.,",
			want:   []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sentences(tc.prompt)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tc.prompt, got, tc.want)
			}
		})
	}
}
