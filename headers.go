package resumeats

import (
	"strings"

	"github.com/alnah/go-resumeats/internal/dateutil"
)

// canonicalHeaders maps section keys to their ATS-standard display labels.
var canonicalHeaders = map[string]string{
	SectionSummary:        "Summary",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionSkills:         "Skills",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
}

// headerSynonyms maps lowercase header variants to section keys. Lookup
// is case-insensitive and tolerant of trailing pluralization.
var headerSynonyms = map[string]string{
	// Summary
	"summary": SectionSummary, "professional summary": SectionSummary,
	"executive summary": SectionSummary, "profile": SectionSummary,
	"professional profile": SectionSummary, "career summary": SectionSummary,
	"overview": SectionSummary, "objective": SectionSummary,
	"career objective": SectionSummary, "professional objective": SectionSummary,
	"about": SectionSummary, "about me": SectionSummary,

	// Experience
	"experience": SectionExperience, "work experience": SectionExperience,
	"professional experience": SectionExperience, "employment": SectionExperience,
	"employment history": SectionExperience, "work history": SectionExperience,
	"career history": SectionExperience, "professional background": SectionExperience,
	"positions held": SectionExperience, "relevant experience": SectionExperience,

	// Education
	"education": SectionEducation, "academic background": SectionEducation,
	"academic history": SectionEducation, "educational background": SectionEducation,
	"academic qualifications": SectionEducation, "qualifications": SectionEducation,
	"academic credentials": SectionEducation, "degrees": SectionEducation,
	"education and training": SectionEducation, "formal education": SectionEducation,

	// Skills
	"skills": SectionSkills, "technical skills": SectionSkills,
	"core competencies": SectionSkills, "competencies": SectionSkills,
	"areas of expertise": SectionSkills, "expertise": SectionSkills,
	"capabilities": SectionSkills, "proficiencies": SectionSkills,
	"technical proficiencies": SectionSkills, "key skills": SectionSkills,
	"skill set": SectionSkills, "technologies": SectionSkills,

	// Projects
	"projects": SectionProjects, "key projects": SectionProjects,
	"notable projects": SectionProjects, "project experience": SectionProjects,
	"selected projects": SectionProjects, "project portfolio": SectionProjects,
	"personal projects": SectionProjects, "side projects": SectionProjects,

	// Certifications
	"certifications": SectionCertifications, "certificates": SectionCertifications,
	"professional certifications": SectionCertifications, "licenses": SectionCertifications,
	"licenses and certifications": SectionCertifications, "credentials": SectionCertifications,
	"professional credentials": SectionCertifications, "accreditations": SectionCertifications,
}

// StandardizeHeader maps a header variant to its canonical ATS label.
// Lookup is case-insensitive and whitespace-insensitive, and retries with
// a trailing "s" stripped. Unknown headers are returned title-cased, not
// rejected.
func StandardizeHeader(raw string) string {
	cleaned := cleanHeader(raw)
	if cleaned == "" {
		return cleaned
	}

	if key, ok := headerKey(cleaned); ok {
		return canonicalHeaders[key]
	}
	return dateutil.TitleCase(cleaned)
}

// SectionLabel returns the display label for a canonical section key,
// or the key itself if it is not canonical.
func SectionLabel(key string) string {
	if label, ok := canonicalHeaders[key]; ok {
		return label
	}
	return key
}

// ClassifyHeader maps a header variant to its section key. Returns
// ("", false) for headers outside the canonical vocabulary.
func ClassifyHeader(raw string) (string, bool) {
	return headerKey(cleanHeader(raw))
}

func headerKey(cleaned string) (string, bool) {
	lower := strings.ToLower(cleaned)
	if key, ok := headerSynonyms[lower]; ok {
		return key, true
	}
	// Tolerate pluralization drift: "Certification" vs "Certifications".
	if singular, found := strings.CutSuffix(lower, "s"); found {
		if key, ok := headerSynonyms[singular]; ok {
			return key, true
		}
	}
	if key, ok := headerSynonyms[lower+"s"]; ok {
		return key, true
	}
	return "", false
}

// cleanHeader collapses internal whitespace and strips stray punctuation.
func cleanHeader(raw string) string {
	cleaned := strings.Join(strings.Fields(raw), " ")
	return strings.Trim(cleaned, ":.-_ ")
}
