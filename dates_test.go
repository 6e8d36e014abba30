package resumeats

import "testing"

func TestStandardizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "abbreviated month range",
			input: "Jan 2020 - Dec 2021",
			want:  "January 2020 - December 2021",
		},
		{
			name:  "abbreviated month to present",
			input: "Jan 2020 - Present",
			want:  "January 2020 - Present",
		},
		{
			name:  "present synonym current",
			input: "Mar 2019 - current",
			want:  "March 2019 - Present",
		},
		{
			name:  "year range without spaces",
			input: "2019-2021",
			want:  "2019 - 2021",
		},
		{
			name:  "year range with en dash",
			input: "2019–2021",
			want:  "2019 - 2021",
		},
		{
			name:  "year to present",
			input: "2020 - now",
			want:  "2020 - Present",
		},
		{
			name:  "single month year",
			input: "sep 2023",
			want:  "September 2023",
		},
		{
			name:  "single year stays bare",
			input: "2022",
			want:  "2022",
		},
		{
			name:  "full month range unchanged",
			input: "January 2020 - December 2021",
			want:  "January 2020 - December 2021",
		},
		{
			name:  "whitespace trimmed",
			input: "  Feb 2021 - Aug 2022  ",
			want:  "February 2021 - August 2022",
		},
		{
			name:  "unrecognized input returned trimmed",
			input: "circa the nineties",
			want:  "circa the nineties",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := StandardizeDate(tt.input)
			if got != tt.want {
				t.Errorf("StandardizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Standardization must be idempotent: running the formatter twice over
// the same resume cannot change dates a second time.
func TestStandardizeDate_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Jan 2020 - Dec 2021",
		"2019-2021",
		"Jan 2020 - Present",
		"sep 2023",
		"2022",
		"unparseable date text",
	}

	for _, input := range inputs {
		once := StandardizeDate(input)
		twice := StandardizeDate(once)
		if once != twice {
			t.Errorf("StandardizeDate not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestValidDateOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "ordered years", start: "January 2020", end: "March 2021", want: true},
		{name: "reversed years", start: "January 2022", end: "March 2020", want: false},
		{name: "same year", start: "January 2020", end: "March 2020", want: true},
		{name: "present end always valid", start: "January 2030", end: "Present", want: true},
		{name: "missing start year", start: "sometime", end: "2020", want: true},
		{name: "missing end year", start: "2020", end: "later", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := validDateOrder(tt.start, tt.end); got != tt.want {
				t.Errorf("validDateOrder(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
