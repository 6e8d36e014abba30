package resumeats

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-resumeats/internal/yamlutil"
)

// Style table roles. Each maps one resume element kind to a paragraph
// style definition.
const (
	docxRoleTitle   = "title"   // candidate name
	docxRoleContact = "contact" // contact line
	docxRoleHeading = "heading" // section headings
	docxRoleEntry   = "entry"   // entry header (title | company)
	docxRoleMeta    = "meta"    // date and location line
	docxRoleBody    = "body"    // plain text
	docxRoleBullet  = "bullet"  // bullet lines
)

// docxRoles lists all required roles in styles.xml emission order.
var docxRoles = []string{
	docxRoleTitle, docxRoleContact, docxRoleHeading,
	docxRoleEntry, docxRoleMeta, docxRoleBody, docxRoleBullet,
}

// docxRoleStyleIDs maps roles to the style IDs used in document.xml.
var docxRoleStyleIDs = map[string]string{
	docxRoleTitle:   "ResumeTitle",
	docxRoleContact: "ContactInfo",
	docxRoleHeading: "SectionHeading",
	docxRoleEntry:   "EntryHeader",
	docxRoleMeta:    "DateLocation",
	docxRoleBody:    "BodyText",
	docxRoleBullet:  "BulletItem",
}

// docxStyleTable is the parsed YAML style table.
type docxStyleTable struct {
	Font   string                  `yaml:"font"`
	Styles map[string]docxStyleDef `yaml:"styles"`
}

// docxStyleDef is one paragraph style definition.
type docxStyleDef struct {
	SizePt        int     `yaml:"size_pt"`
	Bold          bool    `yaml:"bold"`
	Italic        bool    `yaml:"italic"`
	AllCaps       bool    `yaml:"all_caps"`
	Color         string  `yaml:"color"`
	SpaceBeforePt int     `yaml:"space_before_pt"`
	SpaceAfterPt  int     `yaml:"space_after_pt"`
	IndentIn      float64 `yaml:"indent_in"`
}

// parseStyleTable parses and validates a YAML style table. Unknown
// fields, missing roles, and unusable sizes are all ErrInvalidStyleTable.
func parseStyleTable(yamlText string) (*docxStyleTable, error) {
	var table docxStyleTable
	if err := yamlutil.UnmarshalStrict([]byte(yamlText), &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyleTable, err)
	}
	if strings.TrimSpace(table.Font) == "" {
		return nil, fmt.Errorf("%w: missing font", ErrInvalidStyleTable)
	}
	for _, role := range docxRoles {
		def, ok := table.Styles[role]
		if !ok {
			return nil, fmt.Errorf("%w: missing style role %q", ErrInvalidStyleTable, role)
		}
		if def.SizePt <= 0 {
			return nil, fmt.Errorf("%w: role %q: size_pt must be positive", ErrInvalidStyleTable, role)
		}
	}
	return &table, nil
}

// docxGenerator renders a formatted resume to a DOCX archive.
type docxGenerator interface {
	Generate(f *FormattedResume) ([]byte, error)
}

// styledDOCXGenerator is the default docxGenerator. The document body is
// styled paragraphs only, one linear column for ATS extraction.
type styledDOCXGenerator struct {
	table    *docxStyleTable
	pageSize string
	margins  Margins

	// now is swappable for deterministic core.xml timestamps in tests.
	now func() time.Time
}

// newDOCXGenerator parses the style table and captures page settings.
func newDOCXGenerator(styleTableYAML string, output OutputConfig) (*styledDOCXGenerator, error) {
	table, err := parseStyleTable(styleTableYAML)
	if err != nil {
		return nil, err
	}
	return &styledDOCXGenerator{
		table:    table,
		pageSize: output.PDFPageSize,
		margins:  output.DOCXMargins,
		now:      time.Now,
	}, nil
}

// Generate renders the resume as a DOCX archive.
func (g *styledDOCXGenerator) Generate(f *FormattedResume) ([]byte, error) {
	paragraphs := buildDOCXParagraphs(f)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"docProps/core.xml", buildCoreProps(f.Resume.Contact.Name+" - Resume", f.Resume.Contact.Name, keywordsFromSkills(f.Resume.Skills), g.now())},
		{"docProps/app.xml", docxAppProps},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", buildStylesXML(g.table)},
		{"word/document.xml", buildDocumentXML(paragraphs, g.pageSize, g.margins)},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("%w: creating %s: %v", ErrDOCXGeneration, part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("%w: writing %s: %v", ErrDOCXGeneration, part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
	}
	return buf.Bytes(), nil
}

// buildDOCXParagraphs flattens the resume into the linear paragraph
// sequence: title, contact, then sections in order with additional
// sections last.
func buildDOCXParagraphs(f *FormattedResume) []docxParagraph {
	r := f.Resume
	b := &docxBuilder{}

	b.add(docxRoleTitle, plainRun(r.Contact.Name))
	if line := contactLineText(r.Contact); line != "" {
		b.add(docxRoleContact, plainRun(line))
	}

	for _, key := range f.SectionOrder {
		b.section(r, key)
	}
	for _, a := range r.Additional {
		b.additionalSection(a)
	}

	return b.paragraphs
}

type docxBuilder struct {
	paragraphs []docxParagraph
}

func (b *docxBuilder) add(role string, runs []textRun) {
	b.paragraphs = append(b.paragraphs, docxParagraph{
		StyleID: docxRoleStyleIDs[role],
		Runs:    runs,
	})
}

func (b *docxBuilder) addText(role, text string) {
	if text != "" {
		b.add(role, splitEmphasis(text))
	}
}

func (b *docxBuilder) heading(key string) {
	b.add(docxRoleHeading, plainRun(SectionLabel(key)))
}

func (b *docxBuilder) entryHeader(primary, secondary string) {
	runs := []textRun{{Text: primary, Bold: true}}
	if secondary != "" {
		runs = append(runs, textRun{Text: " | " + secondary})
	}
	b.add(docxRoleEntry, runs)
}

func (b *docxBuilder) metaLine(dates, location string) {
	line := dates
	if location != "" {
		if line != "" {
			line += " | "
		}
		line += location
	}
	if line != "" {
		b.add(docxRoleMeta, plainRun(line))
	}
}

func (b *docxBuilder) section(r *ResumeData, key string) {
	b.heading(key)

	switch key {
	case SectionSummary:
		b.addText(docxRoleBody, r.Summary)

	case SectionExperience:
		for _, e := range r.Experience {
			b.entryHeader(e.Title, e.Company)
			b.metaLine(joinDates(e.StartDate, e.EndDate), e.Location)
			for _, bullet := range e.Bullets {
				b.addText(docxRoleBullet, bullet)
			}
		}

	case SectionEducation:
		for _, e := range r.Education {
			b.entryHeader(e.Degree, e.School)
			b.metaLine(joinDates(e.StartDate, e.EndDate), e.Location)
			if e.GPA != "" {
				b.addText(docxRoleBody, "GPA: "+e.GPA)
			}
			for _, h := range e.Honors {
				b.addText(docxRoleBody, h)
			}
			if len(e.Coursework) > 0 {
				b.addText(docxRoleBody, "Coursework: "+strings.Join(e.Coursework, ", "))
			}
		}

	case SectionSkills:
		// Skill entries may carry emphasis markers; the joined list is
		// split into runs so emphasized skills become bold runs.
		for _, group := range r.Skills.Groups {
			runs := []textRun{{Text: group.Category + ": ", Bold: true}}
			runs = append(runs, splitEmphasis(strings.Join(group.Skills, ", "))...)
			b.add(docxRoleBody, runs)
		}
		if len(r.Skills.Raw) > 0 {
			b.addText(docxRoleBody, strings.Join(r.Skills.Raw, ", "))
		}

	case SectionProjects:
		for _, p := range r.Projects {
			b.entryHeader(p.Name, displayURL(p.URL))
			b.metaLine(p.Date, "")
			b.addText(docxRoleBody, p.Description)
			if len(p.Technologies) > 0 {
				b.addText(docxRoleBody, "Technologies: "+strings.Join(p.Technologies, ", "))
			}
			for _, bullet := range p.Bullets {
				b.addText(docxRoleBullet, bullet)
			}
		}

	case SectionCertifications:
		for _, c := range r.Certifications {
			b.entryHeader(c.Name, c.Issuer)
			b.metaLine(certDates(c), "")
			if c.CredentialID != "" {
				b.addText(docxRoleBody, "Credential ID: "+c.CredentialID)
			}
		}
	}
}

// additionalSection flattens raw markdown into plain paragraphs. List
// markers become bullet-styled lines; other markdown syntax is dropped
// to keep the body paragraph-only.
func (b *docxBuilder) additionalSection(a AdditionalSection) {
	b.add(docxRoleHeading, plainRun(a.Heading))
	for _, line := range strings.Split(a.Markdown, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || line == "---" || strings.HasPrefix(line, "```"):
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			b.addText(docxRoleBullet, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "#"):
			b.addText(docxRoleEntry, strings.TrimSpace(strings.TrimLeft(line, "# ")))
		default:
			b.addText(docxRoleBody, line)
		}
	}
}

// contactLineText joins contact fields with pipes, matching the HTML
// contact line.
func contactLineText(c ContactInfo) string {
	var parts []string
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Phone != "" {
		parts = append(parts, displayPhone(c.Phone))
	}
	if c.Location != "" {
		parts = append(parts, c.Location)
	}
	for _, link := range []string{c.LinkedIn, c.GitHub, c.Website} {
		if link != "" {
			parts = append(parts, displayURL(link))
		}
	}
	return strings.Join(parts, " | ")
}

// keywordsFromSkills builds the core-properties keyword list from the
// first few skills, the fields ATS metadata indexing cares about.
// Emphasis markers never belong in metadata.
func keywordsFromSkills(s Skills) string {
	var keywords []string
	for _, g := range s.Groups {
		keywords = append(keywords, g.Skills...)
	}
	keywords = append(keywords, s.Raw...)
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}
	return stripEmphasis(strings.Join(keywords, ", "))
}

func plainRun(text string) []textRun {
	return []textRun{{Text: text}}
}

// Compile-time interface check.
var _ docxGenerator = (*styledDOCXGenerator)(nil)
