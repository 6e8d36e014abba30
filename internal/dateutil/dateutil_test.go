package dateutil

import "testing"

func TestNormalizeMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"jan", "January"},
		{"Sept", "September"},
		{"DECEMBER", "December"},
		{"may", "May"},
		{"spring", "Spring"},
		{"  mar  ", "March"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeMonth(tt.input); got != tt.want {
			t.Errorf("NormalizeMonth(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsMonth(t *testing.T) {
	t.Parallel()

	if !IsMonth("feb") || !IsMonth("February") {
		t.Error("IsMonth rejects valid month")
	}
	if IsMonth("spring") || IsMonth("") {
		t.Error("IsMonth accepts non-month")
	}
}

func TestIsPresent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Present", "current", "NOW", "ongoing", " today "} {
		if !IsPresent(s) {
			t.Errorf("IsPresent(%q) = false", s)
		}
	}
	for _, s := range []string{"2024", "past", ""} {
		if IsPresent(s) {
			t.Errorf("IsPresent(%q) = true", s)
		}
	}
}

func TestExtractYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"January 2020", 2020},
		{"2019 - 2021", 2019},
		{"no year here", 0},
		{"room 12345", 0},
	}

	for _, tt := range tests {
		if got := ExtractYear(tt.input); got != tt.want {
			t.Errorf("ExtractYear(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"programming languages", "Programming Languages"},
		{"SOFT SKILLS", "Soft Skills"},
		{"cloud-native tools", "Cloud-native Tools"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.input); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
