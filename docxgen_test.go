package resumeats

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// docxOnly returns output settings for DOCX generation alone.
func docxOnly() OutputConfig {
	out := DefaultOutputConfig()
	out.EnabledFormats = []string{FormatDOCX}
	return out
}

func generateDOCX(t *testing.T, markdown string, opts ...Option) []byte {
	t.Helper()

	opts = append([]Option{WithOutput(docxOnly())}, opts...)
	conv, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), Input{Markdown: markdown})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !result.Ok() {
		t.Fatalf("Convert() format errors = %v", result.Errors)
	}
	return result.DOCX
}

// docxPart extracts one named part from a DOCX archive.
func docxPart(t *testing.T, data []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("opening DOCX archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s not found in archive", name)
	return ""
}

func TestDOCXGeneration_Archive(t *testing.T) {
	t.Parallel()

	data := generateDOCX(t, sampleResume)

	if err := ValidateDOCX(data); err != nil {
		t.Fatalf("ValidateDOCX() = %v", err)
	}

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	} {
		docxPart(t, data, part)
	}
}

func TestDOCXGeneration_DocumentContent(t *testing.T) {
	t.Parallel()

	data := generateDOCX(t, sampleResume)
	docXML := docxPart(t, data, "word/document.xml")

	for _, want := range []string{
		"Jane Doe",
		`<w:pStyle w:val="ResumeTitle"/>`,
		`<w:pStyle w:val="SectionHeading"/>`,
		`<w:pStyle w:val="EntryHeader"/>`,
		`<w:pStyle w:val="BulletItem"/>`,
		"Senior Software Engineer",
		"• Led migration of a legacy monolith to microservices",
	} {
		if !strings.Contains(docXML, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

// The document body must be styled paragraphs only: tables, images, and
// text boxes all break ATS extraction.
func TestDOCXGeneration_NoATSTraps(t *testing.T) {
	t.Parallel()

	data := generateDOCX(t, sampleResume+`
## Volunteer Work

Organized workshops.

- Taught Go
`)
	docXML := docxPart(t, data, "word/document.xml")

	for _, forbidden := range []string{"<w:tbl>", "<w:pic>", "<w:txbxContent>", "<w:drawing>"} {
		if strings.Contains(docXML, forbidden) {
			t.Errorf("document.xml contains forbidden element %s", forbidden)
		}
	}
}

// Emphasized skills become bold runs in the skills paragraph instead of
// leaking marker bytes into a plain join.
func TestDOCXGeneration_SkillEmphasisBoldRuns(t *testing.T) {
	t.Parallel()

	rules := DefaultATSRules()
	rules.OptimizeKeywords = true
	rules.KeywordEmphasis = map[string]int{"Python": 1}

	data := generateDOCX(t, sampleResume, WithRules(rules))
	document := docxPart(t, data, "word/document.xml")

	boldRun := `<w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">Python</w:t></w:r>`
	if !strings.Contains(document, boldRun) {
		t.Error("emphasized skill not rendered as a bold run")
	}
	if strings.ContainsAny(document, emphasisOpen+emphasisClose) {
		t.Error("emphasis control characters leaked into document.xml")
	}

	core := docxPart(t, data, "docProps/core.xml")
	if strings.ContainsAny(core, emphasisOpen+emphasisClose) {
		t.Error("emphasis control characters leaked into core properties")
	}
	if !strings.Contains(core, "Python") {
		t.Error("keyword list lost the emphasized skill")
	}
}

func TestDOCXGeneration_StylesFromTable(t *testing.T) {
	t.Parallel()

	data := generateDOCX(t, sampleResume)
	stylesXML := docxPart(t, data, "word/styles.xml")

	// The professional table uses Arial throughout.
	if !strings.Contains(stylesXML, `w:ascii="Arial"`) {
		t.Errorf("styles.xml missing table font: %s", stylesXML[:min(len(stylesXML), 200)])
	}
	for _, styleID := range []string{
		"ResumeTitle", "ContactInfo", "SectionHeading",
		"EntryHeader", "DateLocation", "BodyText", "BulletItem",
	} {
		if !strings.Contains(stylesXML, `w:styleId="`+styleID+`"`) {
			t.Errorf("styles.xml missing style %s", styleID)
		}
	}
}

func TestDOCXGeneration_CoreProperties(t *testing.T) {
	t.Parallel()

	data := generateDOCX(t, sampleResume)
	coreXML := docxPart(t, data, "docProps/core.xml")

	for _, want := range []string{
		"<dc:title>Jane Doe - Resume</dc:title>",
		"<dc:creator>Jane Doe</dc:creator>",
		"<dc:subject>Professional Resume</dc:subject>",
		"Go, Python, SQL",
	} {
		if !strings.Contains(coreXML, want) {
			t.Errorf("core.xml missing %q", want)
		}
	}
}

func TestParseStyleTable_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "{{{"},
		{name: "missing font", yaml: "styles:\n  title:\n    size_pt: 18\n"},
		{
			name: "missing role",
			yaml: "font: Arial\nstyles:\n  title:\n    size_pt: 18\n",
		},
		{
			name: "zero size",
			yaml: "font: Arial\nstyles:\n" +
				"  title: {size_pt: 0}\n  contact: {size_pt: 10}\n  heading: {size_pt: 12}\n" +
				"  entry: {size_pt: 11}\n  meta: {size_pt: 10}\n  body: {size_pt: 11}\n  bullet: {size_pt: 11}\n",
		},
		{
			name: "unknown field rejected",
			yaml: "font: Arial\ncolumns: 2\nstyles: {}\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := parseStyleTable(tt.yaml); !errors.Is(err, ErrInvalidStyleTable) {
				t.Errorf("parseStyleTable() error = %v, want ErrInvalidStyleTable", err)
			}
		})
	}
}

func TestKeywordsFromSkills(t *testing.T) {
	t.Parallel()

	s := Skills{
		Groups: []SkillGroup{{Category: "Langs", Skills: []string{"Go", "Python", "SQL", "Rust", "C", "Java", "Ruby", "PHP"}}},
		Raw:    []string{"Docker", "Kubernetes", "Terraform", "Ansible"},
	}
	got := keywordsFromSkills(s)
	if n := len(strings.Split(got, ", ")); n != 10 {
		t.Errorf("keyword count = %d, want capped at 10: %q", n, got)
	}
}
