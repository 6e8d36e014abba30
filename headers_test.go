package resumeats

import "testing"

func TestStandardizeHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "employment history", input: "Employment History", want: "Experience"},
		{name: "work experience", input: "Work Experience", want: "Experience"},
		{name: "lowercase variant", input: "work history", want: "Experience"},
		{name: "uppercase variant", input: "PROFESSIONAL EXPERIENCE", want: "Experience"},
		{name: "extra whitespace", input: "  Technical   Skills  ", want: "Skills"},
		{name: "trailing colon", input: "Education:", want: "Education"},
		{name: "academic background", input: "Academic Background", want: "Education"},
		{name: "core competencies", input: "Core Competencies", want: "Skills"},
		{name: "profile", input: "Profile", want: "Summary"},
		{name: "objective", input: "Objective", want: "Summary"},
		{name: "licenses", input: "Licenses and Certifications", want: "Certifications"},
		{name: "singular certification", input: "Certification", want: "Certifications"},
		{name: "plural drift", input: "Key Project", want: "Projects"},
		{name: "unknown header title-cased", input: "volunteer work", want: "Volunteer Work"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StandardizeHeader(tt.input); got != tt.want {
				t.Errorf("StandardizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "canonical experience", input: "Experience", want: SectionExperience, wantOK: true},
		{name: "synonym", input: "Employment History", want: SectionExperience, wantOK: true},
		{name: "skills synonym", input: "Areas of Expertise", want: SectionSkills, wantOK: true},
		{name: "unknown header", input: "Volunteer Work", want: "", wantOK: false},
		{name: "empty", input: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ClassifyHeader(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ClassifyHeader(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSectionLabel(t *testing.T) {
	t.Parallel()

	if got := SectionLabel(SectionExperience); got != "Experience" {
		t.Errorf("SectionLabel(experience) = %q, want Experience", got)
	}
	if got := SectionLabel("volunteering"); got != "volunteering" {
		t.Errorf("SectionLabel passes through unknown keys, got %q", got)
	}
}
