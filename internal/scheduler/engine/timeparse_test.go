package engine

import "testing"

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"5pm", "17:00", true},
		{"5:30pm", "17:30", true},
		{"17:30", "17:30", true},
		{"5", "05:00", true},
		{"12pm", "12:00", true},
		{"12am", "00:00", true},
		{"12:45 am", "00:45", true},
		{"9 AM", "09:00", true},
		{" 7pm ", "19:00", true},
		{"0:05", "00:05", true},
		{"", "", false},
		{"noon", "", false},
		{"99", "", false},
		{"10:75", "", false},
		{"17:30pm", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := NormalizeTime(tc.raw)
			if ok != tc.ok {
				t.Fatalf("NormalizeTime(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
