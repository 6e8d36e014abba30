package resumeats

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Section keys used across the parser, formatter, and generators.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// validate is the shared validator instance. Struct tag validation only;
// no custom validators are registered, so concurrent use is safe.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ContactInfo holds the candidate's contact details. Name is the only
// required field; the rest are optional and loosely validated.
type ContactInfo struct {
	Name     string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	Phone    string
	LinkedIn string `validate:"omitempty,url"`
	GitHub   string `validate:"omitempty,url"`
	Website  string `validate:"omitempty,url"`
	Location string
}

// ExperienceEntry is one job within the experience section.
// EndDate may be a present synonym ("Present", "Current").
type ExperienceEntry struct {
	Title     string `validate:"required"`
	Company   string `validate:"required"`
	StartDate string
	EndDate   string
	Location  string
	Bullets   []string
}

// EducationEntry is one degree within the education section.
type EducationEntry struct {
	Degree     string `validate:"required"`
	School     string `validate:"required"`
	StartDate  string
	EndDate    string
	Location   string
	GPA        string
	Honors     []string
	Coursework []string
}

// SkillGroup is a named category of skills, e.g. "Languages".
type SkillGroup struct {
	Category string
	Skills   []string
}

// Skills holds either categorized skill groups, a flat uncategorized
// list, or both.
type Skills struct {
	Groups []SkillGroup
	Raw    []string
}

// HasSkills reports whether any skills are present.
func (s Skills) HasSkills() bool {
	return len(s.Raw) > 0 || slices.ContainsFunc(s.Groups, func(g SkillGroup) bool {
		return len(g.Skills) > 0
	})
}

// ProjectEntry is one project within the optional projects section.
type ProjectEntry struct {
	Name         string `validate:"required"`
	Description  string
	Technologies []string
	Bullets      []string
	URL          string `validate:"omitempty,url"`
	Date         string
}

// CertificationEntry is one certification within the optional
// certifications section.
type CertificationEntry struct {
	Name         string `validate:"required"`
	Issuer       string
	Date         string
	Expiry       string
	CredentialID string
	URL          string `validate:"omitempty,url"`
}

// AdditionalSection preserves a section whose heading did not match the
// canonical vocabulary. The body is kept as opaque markdown and rendered
// as formatted text, never against the resume schema.
type AdditionalSection struct {
	Heading  string
	Markdown string
}

// ResumeData is the root aggregate for one parsed resume. It is built
// once by ParseResume, copied (never mutated) by FormatResume, and read
// by the generators.
type ResumeData struct {
	Contact        ContactInfo
	Summary        string
	Experience     []ExperienceEntry
	Education      []EducationEntry
	Skills         Skills
	Projects       []ProjectEntry
	Certifications []CertificationEntry
	Additional     []AdditionalSection
}

// HasProjects reports whether a projects section is present.
func (r *ResumeData) HasProjects() bool { return len(r.Projects) > 0 }

// HasCertifications reports whether a certifications section is present.
func (r *ResumeData) HasCertifications() bool { return len(r.Certifications) > 0 }

// HasSummary reports whether a summary section is present.
func (r *ResumeData) HasSummary() bool { return r.Summary != "" }

// SectionKeys returns the populated canonical section keys in default
// resume order. Additional sections are not included.
func (r *ResumeData) SectionKeys() []string {
	var keys []string
	if r.HasSummary() {
		keys = append(keys, SectionSummary)
	}
	if len(r.Experience) > 0 {
		keys = append(keys, SectionExperience)
	}
	if len(r.Education) > 0 {
		keys = append(keys, SectionEducation)
	}
	if r.Skills.HasSkills() {
		keys = append(keys, SectionSkills)
	}
	if r.HasProjects() {
		keys = append(keys, SectionProjects)
	}
	if r.HasCertifications() {
		keys = append(keys, SectionCertifications)
	}
	return keys
}

// Clone returns a deep copy. The formatter works on a clone so the
// parsed resume is never observed half-formatted.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}
	out := *r

	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, e := range r.Experience {
		e.Bullets = slices.Clone(e.Bullets)
		out.Experience[i] = e
	}

	out.Education = make([]EducationEntry, len(r.Education))
	for i, e := range r.Education {
		e.Honors = slices.Clone(e.Honors)
		e.Coursework = slices.Clone(e.Coursework)
		out.Education[i] = e
	}

	out.Skills.Raw = slices.Clone(r.Skills.Raw)
	out.Skills.Groups = make([]SkillGroup, len(r.Skills.Groups))
	for i, g := range r.Skills.Groups {
		g.Skills = slices.Clone(g.Skills)
		out.Skills.Groups[i] = g
	}

	out.Projects = make([]ProjectEntry, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = slices.Clone(p.Technologies)
		p.Bullets = slices.Clone(p.Bullets)
		out.Projects[i] = p
	}

	out.Certifications = slices.Clone(r.Certifications)
	out.Additional = slices.Clone(r.Additional)
	return &out
}

// Validate checks structural invariants: required contact name, non-empty
// title/company per experience entry, degree/school per education entry,
// and loose format checks on optional email/URL fields.
func (r *ResumeData) Validate() error {
	if err := validate.Struct(&r.Contact); err != nil {
		return fmt.Errorf("contact: %w", err)
	}
	for i := range r.Experience {
		if err := validate.Struct(&r.Experience[i]); err != nil {
			return fmt.Errorf("experience[%d]: %w", i, err)
		}
	}
	for i := range r.Education {
		if err := validate.Struct(&r.Education[i]); err != nil {
			return fmt.Errorf("education[%d]: %w", i, err)
		}
	}
	for i := range r.Projects {
		if err := validate.Struct(&r.Projects[i]); err != nil {
			return fmt.Errorf("projects[%d]: %w", i, err)
		}
	}
	for i := range r.Certifications {
		if err := validate.Struct(&r.Certifications[i]); err != nil {
			return fmt.Errorf("certifications[%d]: %w", i, err)
		}
	}
	return nil
}
