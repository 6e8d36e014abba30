package resumeats

import (
	"reflect"
	"testing"
)

func TestSplitEmphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []textRun
	}{
		{
			name:  "plain text",
			input: "no emphasis here",
			want:  []textRun{{Text: "no emphasis here"}},
		},
		{
			name:  "single emphasized word",
			input: "built with " + emphasisOpen + "Python" + emphasisClose + " daily",
			want: []textRun{
				{Text: "built with "},
				{Text: "Python", Bold: true},
				{Text: " daily"},
			},
		},
		{
			name:  "fully emphasized",
			input: emphasisOpen + "Kubernetes" + emphasisClose,
			want:  []textRun{{Text: "Kubernetes", Bold: true}},
		},
		{
			name:  "adjacent emphasized terms",
			input: emphasisOpen + "Go" + emphasisClose + " and " + emphasisOpen + "Rust" + emphasisClose,
			want: []textRun{
				{Text: "Go", Bold: true},
				{Text: " and "},
				{Text: "Rust", Bold: true},
			},
		},
		{
			name:  "unbalanced open marker tolerated",
			input: "text " + emphasisOpen + "dangling",
			want: []textRun{
				{Text: "text "},
				{Text: "dangling", Bold: true},
			},
		},
		{
			name:  "empty string is a single empty run",
			input: "",
			want:  []textRun{{Text: ""}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitEmphasis(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitEmphasis(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripEmphasis(t *testing.T) {
	t.Parallel()

	input := "uses " + emphasisOpen + "Docker" + emphasisClose + " and " + emphasisOpen + "Kubernetes" + emphasisClose
	want := "uses Docker and Kubernetes"
	if got := stripEmphasis(input); got != want {
		t.Errorf("stripEmphasis() = %q, want %q", got, want)
	}

	plain := "untouched line"
	if got := stripEmphasis(plain); got != plain {
		t.Errorf("stripEmphasis(%q) = %q, want unchanged", plain, got)
	}
}
