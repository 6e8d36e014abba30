package resumeats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// htmlGenerator renders a formatted resume to a standalone HTML document.
type htmlGenerator interface {
	Generate(f *FormattedResume) (string, error)
}

// additionalRenderer renders additional-section markdown bodies. Raw
// HTML in the source is escaped by goldmark's default policy; code
// fences get syntax highlighting.
var additionalRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
			highlighting.WithFormatOptions(
				chromahtml.TabWidth(4),
			),
		),
	),
)

// templateHTMLGenerator is the default htmlGenerator. It executes the
// resume template against a view model with a theme stylesheet and
// generated print CSS inlined, producing a self-contained document.
type templateHTMLGenerator struct {
	tmpl     *template.Template
	themeCSS string
	printCSS string
}

// newHTMLGenerator parses the template and captures the stylesheets.
func newHTMLGenerator(tmplText, themeCSS string, output OutputConfig) (*templateHTMLGenerator, error) {
	tmpl, err := template.New("resume").Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template: %v", ErrHTMLGeneration, err)
	}
	return &templateHTMLGenerator{
		tmpl:     tmpl,
		themeCSS: themeCSS,
		printCSS: buildPrintCSS(output),
	}, nil
}

// View model types consumed by the resume template.
type (
	htmlDoc struct {
		Title        string
		Name         string
		Author       string
		JSONLD       template.JS
		ThemeCSS     template.CSS
		PrintCSS     template.CSS
		ContactItems []contactItem
		Sections     []sectionView
	}

	contactItem struct {
		Text string
		Href string
	}

	sectionView struct {
		Key         string
		Heading     string
		Summary     template.HTML
		Entries     []entryView
		SkillGroups []skillGroupView
		RawSkills   template.HTML
		Raw         template.HTML
	}

	entryView struct {
		Primary   string
		Secondary string
		Dates     string
		Location  string
		Details   []template.HTML
		Bullets   []template.HTML
	}

	skillGroupView struct {
		Category string
		Skills   template.HTML
	}
)

// Generate renders the formatted resume to an HTML string.
func (g *templateHTMLGenerator) Generate(f *FormattedResume) (string, error) {
	doc, err := g.buildDoc(f)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLGeneration, err)
	}
	return buf.String(), nil
}

func (g *templateHTMLGenerator) buildDoc(f *FormattedResume) (*htmlDoc, error) {
	r := f.Resume

	jsonld, err := buildJSONLD(r)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", ErrHTMLGeneration, err)
	}

	doc := &htmlDoc{
		Title:        r.Contact.Name + " - Resume",
		Name:         r.Contact.Name,
		Author:       r.Contact.Name,
		JSONLD:       template.JS(jsonld), // #nosec G203 -- output of json.Marshal
		ThemeCSS:     template.CSS(g.themeCSS),
		PrintCSS:     template.CSS(g.printCSS),
		ContactItems: buildContactItems(r.Contact),
	}

	for _, key := range f.SectionOrder {
		doc.Sections = append(doc.Sections, buildSectionView(r, key))
	}
	for _, a := range r.Additional {
		section, err := buildAdditionalView(a)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc, nil
}

func buildSectionView(r *ResumeData, key string) sectionView {
	view := sectionView{Key: key, Heading: SectionLabel(key)}

	switch key {
	case SectionSummary:
		view.Summary = runsToHTML(r.Summary)

	case SectionExperience:
		for _, e := range r.Experience {
			view.Entries = append(view.Entries, entryView{
				Primary:   e.Title,
				Secondary: e.Company,
				Dates:     joinDates(e.StartDate, e.EndDate),
				Location:  e.Location,
				Bullets:   runsToHTMLList(e.Bullets),
			})
		}

	case SectionEducation:
		for _, e := range r.Education {
			entry := entryView{
				Primary:   e.Degree,
				Secondary: e.School,
				Dates:     joinDates(e.StartDate, e.EndDate),
				Location:  e.Location,
			}
			if e.GPA != "" {
				entry.Details = append(entry.Details, escapeHTML("GPA: "+e.GPA))
			}
			for _, h := range e.Honors {
				entry.Details = append(entry.Details, escapeHTML(h))
			}
			if len(e.Coursework) > 0 {
				entry.Details = append(entry.Details, escapeHTML("Coursework: "+strings.Join(e.Coursework, ", ")))
			}
			view.Entries = append(view.Entries, entry)
		}

	case SectionSkills:
		// Skill entries may carry emphasis markers, so the joined lists go
		// through run conversion like bullets do.
		for _, group := range r.Skills.Groups {
			view.SkillGroups = append(view.SkillGroups, skillGroupView{
				Category: group.Category,
				Skills:   runsToHTML(strings.Join(group.Skills, ", ")),
			})
		}
		view.RawSkills = runsToHTML(strings.Join(r.Skills.Raw, ", "))

	case SectionProjects:
		for _, p := range r.Projects {
			entry := entryView{
				Primary:   p.Name,
				Secondary: displayURL(p.URL),
				Dates:     p.Date,
			}
			if p.Description != "" {
				entry.Details = append(entry.Details, runsToHTML(p.Description))
			}
			if len(p.Technologies) > 0 {
				entry.Details = append(entry.Details, escapeHTML("Technologies: "+strings.Join(p.Technologies, ", ")))
			}
			entry.Bullets = runsToHTMLList(p.Bullets)
			view.Entries = append(view.Entries, entry)
		}

	case SectionCertifications:
		for _, c := range r.Certifications {
			entry := entryView{
				Primary:   c.Name,
				Secondary: c.Issuer,
				Dates:     certDates(c),
			}
			if c.CredentialID != "" {
				entry.Details = append(entry.Details, escapeHTML("Credential ID: "+c.CredentialID))
			}
			view.Entries = append(view.Entries, entry)
		}
	}

	return view
}

func buildAdditionalView(a AdditionalSection) (sectionView, error) {
	var buf bytes.Buffer
	if err := additionalRenderer.Convert([]byte(a.Markdown), &buf); err != nil {
		return sectionView{}, fmt.Errorf("%w: rendering section %q: %v", ErrHTMLGeneration, a.Heading, err)
	}
	return sectionView{
		Key:     "additional",
		Heading: a.Heading,
		Raw:     template.HTML(buf.String()), // #nosec G203 -- goldmark escapes raw HTML
	}, nil
}

// buildContactItems produces the contact line in canonical order. Links
// get hrefs; plain values (phone, location) do not.
func buildContactItems(c ContactInfo) []contactItem {
	var items []contactItem
	if c.Email != "" {
		items = append(items, contactItem{Text: c.Email, Href: "mailto:" + c.Email})
	}
	if c.Phone != "" {
		items = append(items, contactItem{Text: displayPhone(c.Phone)})
	}
	if c.Location != "" {
		items = append(items, contactItem{Text: c.Location})
	}
	for _, link := range []string{c.LinkedIn, c.GitHub, c.Website} {
		if link != "" {
			items = append(items, contactItem{Text: displayURL(link), Href: link})
		}
	}
	return items
}

// buildJSONLD renders schema.org Person metadata for the document head.
func buildJSONLD(r *ResumeData) (string, error) {
	person := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     r.Contact.Name,
	}
	if r.Contact.Email != "" {
		person["email"] = r.Contact.Email
	}
	if r.Contact.Phone != "" {
		person["telephone"] = r.Contact.Phone
	}
	if r.Contact.Website != "" {
		person["url"] = r.Contact.Website
	}
	if r.Contact.Location != "" {
		person["address"] = r.Contact.Location
	}
	if len(r.Experience) > 0 {
		person["jobTitle"] = r.Experience[0].Title
	}
	if len(r.Education) > 0 {
		person["alumniOf"] = r.Education[0].School
	}

	out, err := json.Marshal(person)
	return string(out), err
}

// runsToHTML converts marked text to escaped HTML with <strong> around
// emphasized runs.
func runsToHTML(s string) template.HTML {
	var sb strings.Builder
	for _, run := range splitEmphasis(s) {
		escaped := template.HTMLEscapeString(run.Text)
		if run.Bold {
			sb.WriteString("<strong>" + escaped + "</strong>")
		} else {
			sb.WriteString(escaped)
		}
	}
	return template.HTML(sb.String()) // #nosec G203 -- runs are escaped above
}

func runsToHTMLList(lines []string) []template.HTML {
	var out []template.HTML
	for _, line := range lines {
		out = append(out, runsToHTML(line))
	}
	return out
}

func escapeHTML(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s)) // #nosec G203
}

// joinDates joins a start and end date for display.
func joinDates(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}

// certDates joins a certification's issue and expiry dates.
func certDates(c CertificationEntry) string {
	switch {
	case c.Date != "" && c.Expiry != "":
		return c.Date + " - Expires " + c.Expiry
	case c.Expiry != "":
		return "Expires " + c.Expiry
	default:
		return c.Date
	}
}

// displayPhone formats a 10-digit US number as (XXX) XXX-XXXX and an
// 11-digit number starting with 1 as +1 (XXX) XXX-XXXX. Anything else
// is returned unchanged.
func displayPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:])
	default:
		return phone
	}
}

// displayURL strips the scheme, "www.", and a trailing slash for
// display text. The href keeps the full URL.
func displayURL(url string) string {
	display := url
	for _, prefix := range []string{"https://", "http://"} {
		display = strings.TrimPrefix(display, prefix)
	}
	display = strings.TrimPrefix(display, "www.")
	return strings.TrimSuffix(display, "/")
}

// Compile-time interface check.
var _ htmlGenerator = (*templateHTMLGenerator)(nil)
