package resumeats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-resumeats/internal/dateutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// resumeParser is the shared goldmark instance used for AST parsing.
// GFM matches the dialect resumes are typically written in.
var resumeParser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// parseState is the accumulator threaded through the block walk. All
// section-boundary tracking lives here rather than in renderer state, so
// each block handler is a pure function of (state, block).
type parseState struct {
	resume   *ResumeData
	warnings []string

	section string // current canonical section key; "" before first H2
	addl    int    // index into resume.Additional, -1 when not in one

	// Index of the open entry in the current section, -1 when none.
	entry int

	// True until the first section heading after the H1 is seen.
	scanningContact bool

	sectionFlags
}

// ParseResume turns raw markdown into a ResumeData. It returns non-fatal
// field warnings alongside the result. It fails with ErrInvalidEncoding
// on non-UTF-8 input, ErrMissingName when no level-1 heading exists, and
// ErrMissingSection when any of the experience, education, or skills
// sections is entirely absent.
func ParseResume(markdown string) (*ResumeData, []string, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, nil, ErrEmptyMarkdown
	}
	if !utf8.ValidString(markdown) {
		return nil, nil, ErrInvalidEncoding
	}

	source := []byte(markdown)
	doc := resumeParser.Parser().Parse(text.NewReader(source))

	st := &parseState{
		resume: &ResumeData{},
		addl:   -1,
		entry:  -1,
	}

	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		st.consume(block, source)
	}

	if st.resume.Contact.Name == "" {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidMarkdown, ErrMissingName)
	}
	for _, required := range []string{SectionExperience, SectionEducation, SectionSkills} {
		if !st.sawSection(required) {
			return nil, nil, fmt.Errorf("%w: %w: %q", ErrInvalidMarkdown, ErrMissingSection, required)
		}
	}

	return st.resume, st.warnings, nil
}

// sawSection reports whether a section heading was encountered, even if
// it ended up empty. Present-but-empty is not an error for optional
// sections; the three required ones are checked by ParseResume.
func (st *parseState) sawSection(key string) bool {
	switch key {
	case SectionExperience:
		return st.seenExperience
	case SectionEducation:
		return st.seenEducation
	case SectionSkills:
		return st.seenSkills
	}
	return false
}

// consume dispatches one top-level block to the appropriate handler.
func (st *parseState) consume(block ast.Node, src []byte) {
	switch b := block.(type) {
	case *ast.Heading:
		st.handleHeading(b, src)
	case *ast.Paragraph:
		st.handleParagraph(b, src)
	case *ast.List:
		st.handleList(b, src)
	default:
		// Thematic breaks, block quotes, and code fences outside known
		// sections only matter for additional sections, which keep raw
		// markdown.
		if st.addl >= 0 {
			st.appendAdditional(reconstructMarkdown(block, src))
		}
	}
}

func (st *parseState) handleHeading(h *ast.Heading, src []byte) {
	headingText := strings.TrimSpace(nodeText(h, src))

	switch {
	case h.Level == 1:
		if st.resume.Contact.Name == "" {
			st.resume.Contact.Name = headingText
			st.scanningContact = true
		}

	case h.Level == 2:
		st.startSection(headingText)

	case h.Level == 3:
		st.startEntry(headingText)

	default:
		// Level 4+ structure inside an entry is flattened to a plain
		// bullet, never modeled as a sub-entry.
		st.appendBullet(headingText)
	}
}

// sectionFlags records which required sections appeared at all, even if
// empty, for the required-section check.
type sectionFlags struct {
	seenExperience bool
	seenEducation  bool
	seenSkills     bool
}

func (st *parseState) startSection(heading string) {
	st.scanningContact = false
	st.entry = -1
	st.addl = -1

	key, ok := ClassifyHeader(heading)
	if !ok {
		st.resume.Additional = append(st.resume.Additional, AdditionalSection{Heading: heading})
		st.addl = len(st.resume.Additional) - 1
		st.section = ""
		return
	}

	st.section = key
	switch key {
	case SectionExperience:
		st.seenExperience = true
	case SectionEducation:
		st.seenEducation = true
	case SectionSkills:
		st.seenSkills = true
	}
}

// startEntry opens a new entry for the current section from a level-3
// heading such as "Staff Engineer | Acme Corp".
func (st *parseState) startEntry(heading string) {
	if st.addl >= 0 {
		st.appendAdditional("### " + heading)
		return
	}

	first, second := splitPipePair(heading)
	switch st.section {
	case SectionExperience:
		st.resume.Experience = append(st.resume.Experience, ExperienceEntry{Title: first, Company: second})
		st.entry = len(st.resume.Experience) - 1
	case SectionEducation:
		st.resume.Education = append(st.resume.Education, EducationEntry{Degree: first, School: second})
		st.entry = len(st.resume.Education) - 1
	case SectionProjects:
		st.resume.Projects = append(st.resume.Projects, ProjectEntry{Name: heading})
		st.entry = len(st.resume.Projects) - 1
	case SectionCertifications:
		st.resume.Certifications = append(st.resume.Certifications, CertificationEntry{Name: first, Issuer: second})
		st.entry = len(st.resume.Certifications) - 1
	default:
		st.warnf("ignoring entry heading %q outside an entry section", heading)
	}
}

func (st *parseState) handleParagraph(p *ast.Paragraph, src []byte) {
	switch {
	case st.scanningContact:
		for _, line := range paragraphLines(p, src) {
			st.scanContactLine(line)
		}

	case st.addl >= 0:
		st.appendAdditional(nodeText(p, src))

	case st.section == SectionSummary:
		st.appendSummary(nodeText(p, src))

	case st.section == SectionExperience && st.entry >= 0:
		entry := &st.resume.Experience[st.entry]
		line := nodeText(p, src)
		firstParagraph := entry.StartDate == "" && entry.EndDate == "" && len(entry.Bullets) == 0
		if firstParagraph && looksLikeDate(line) {
			dates, location := splitDateLocation(line)
			entry.StartDate, entry.EndDate = splitDateRange(dates)
			entry.Location = location
		} else {
			if firstParagraph {
				st.warnf("experience %q: no date line found, treating %.40q as a bullet", entry.Title, line)
			}
			entry.Bullets = append(entry.Bullets, strings.TrimSpace(line))
		}

	case st.section == SectionEducation && st.entry >= 0:
		st.handleEducationLine(nodeText(p, src))

	case st.section == SectionProjects && st.entry >= 0:
		st.handleProjectLine(p, src)

	case st.section == SectionCertifications && st.entry >= 0:
		st.handleCertificationLine(nodeText(p, src))

	case st.section == SectionSkills:
		for _, line := range paragraphLines(p, src) {
			st.handleSkillLine(line)
		}

	default:
		// Text outside any recognized context is skipped, not an error.
		st.warnf("ignoring text outside a recognized section: %.40q", nodeText(p, src))
	}
}

func (st *parseState) handleList(list *ast.List, src []byte) {
	if st.addl >= 0 {
		st.appendAdditional(reconstructMarkdown(list, src))
		return
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		itemText := strings.TrimSpace(listItemText(item, src))
		if itemText == "" {
			continue
		}
		switch st.section {
		case SectionExperience, SectionProjects:
			st.appendBullet(itemText)
		case SectionEducation:
			st.handleEducationLine(itemText)
		case SectionSkills:
			st.handleSkillLine(itemText)
		case SectionCertifications:
			st.appendCertificationItem(itemText)
		case SectionSummary:
			st.appendSummary(itemText)
		default:
			st.warnf("ignoring list item outside a recognized section: %.40q", itemText)
		}
	}
}

// appendBullet adds a bullet to the open experience or project entry.
func (st *parseState) appendBullet(bullet string) {
	bullet = strings.TrimSpace(bullet)
	if bullet == "" {
		return
	}
	switch st.section {
	case SectionExperience:
		if st.entry >= 0 {
			e := &st.resume.Experience[st.entry]
			e.Bullets = append(e.Bullets, bullet)
		}
	case SectionProjects:
		if st.entry >= 0 {
			p := &st.resume.Projects[st.entry]
			p.Bullets = append(p.Bullets, bullet)
		}
	}
}

func (st *parseState) appendSummary(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if st.resume.Summary == "" {
		st.resume.Summary = s
		return
	}
	st.resume.Summary += " " + s
}

func (st *parseState) appendAdditional(raw string) {
	if raw == "" || st.addl < 0 {
		return
	}
	section := &st.resume.Additional[st.addl]
	if section.Markdown != "" {
		section.Markdown += "\n\n"
	}
	section.Markdown += raw
}

// handleEducationLine routes a line inside an education entry using
// prefix heuristics: date/location lines, GPA, coursework, and honors.
func (st *parseState) handleEducationLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || st.entry < 0 {
		return
	}
	entry := &st.resume.Education[st.entry]

	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, "gpa"):
		entry.GPA = strings.TrimSpace(strings.TrimLeft(line[3:], ":. "))

	case strings.HasPrefix(lower, "coursework:"), strings.HasPrefix(lower, "relevant coursework:"):
		_, items, _ := strings.Cut(line, ":")
		for _, course := range strings.Split(items, ",") {
			if course = strings.TrimSpace(course); course != "" {
				entry.Coursework = append(entry.Coursework, course)
			}
		}

	case entry.StartDate == "" && entry.EndDate == "" && looksLikeDate(line):
		dates, location := splitDateLocation(line)
		entry.StartDate, entry.EndDate = splitDateRange(dates)
		entry.Location = location

	default:
		entry.Honors = append(entry.Honors, line)
	}
}

// handleProjectLine fills project fields: a "Technologies:" line, a URL
// line, or free-form description text.
func (st *parseState) handleProjectLine(p *ast.Paragraph, src []byte) {
	entry := &st.resume.Projects[st.entry]
	for _, line := range paragraphLines(p, src) {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case line == "":
		case strings.HasPrefix(lower, "technologies:"), strings.HasPrefix(lower, "tech:"):
			_, items, _ := strings.Cut(line, ":")
			for _, tech := range strings.Split(items, ",") {
				if tech = strings.TrimSpace(tech); tech != "" {
					entry.Technologies = append(entry.Technologies, tech)
				}
			}
		case strings.HasPrefix(lower, "url:"), strings.HasPrefix(lower, "link:"):
			_, url, _ := strings.Cut(line, ":")
			entry.URL = strings.TrimSpace(url)
		case entry.Date == "" && looksLikeDate(line):
			entry.Date = line
		case entry.Description == "":
			entry.Description = line
		default:
			entry.Description += " " + line
		}
	}
}

// handleCertificationLine fills the date line of an open certification
// entry: "June 2023 | Expires June 2026".
func (st *parseState) handleCertificationLine(line string) {
	entry := &st.resume.Certifications[st.entry]
	dates, extra := splitDateLocation(strings.TrimSpace(line))
	if entry.Date == "" {
		entry.Date = dates
	}
	if extra != "" {
		lower := strings.ToLower(extra)
		if cut, found := strings.CutPrefix(lower, "expires"); found {
			entry.Expiry = strings.TrimSpace(extra[len(extra)-len(cut):])
		} else if strings.HasPrefix(lower, "id") {
			_, id, _ := strings.Cut(extra, ":")
			entry.CredentialID = strings.TrimSpace(id)
		}
	}
}

// appendCertificationItem parses one certification list item of the form
// "Name | Issuer | Date" or "Name - Issuer (Date)".
func (st *parseState) appendCertificationItem(item string) {
	var cert CertificationEntry
	if strings.Contains(item, "|") {
		parts := strings.Split(item, "|")
		cert.Name = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			cert.Issuer = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			cert.Date = strings.TrimSpace(parts[2])
		}
	} else {
		name, rest, _ := strings.Cut(item, " - ")
		cert.Name = strings.TrimSpace(name)
		if open := strings.LastIndex(rest, "("); open >= 0 && strings.HasSuffix(rest, ")") {
			cert.Date = strings.TrimSpace(rest[open+1 : len(rest)-1])
			rest = rest[:open]
		}
		cert.Issuer = strings.TrimSpace(rest)
	}
	if cert.Name == "" {
		st.warnf("skipping unparsable certification %q", item)
		return
	}
	st.resume.Certifications = append(st.resume.Certifications, cert)
}

// handleSkillLine parses one skills line: "**Category**: a, b" yields a
// group; anything else yields raw skills.
func (st *parseState) handleSkillLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	category, items, ok := splitSkillCategory(line)
	if !ok {
		for _, skill := range strings.Split(line, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				st.resume.Skills.Raw = append(st.resume.Skills.Raw, skill)
			}
		}
		return
	}

	group := SkillGroup{Category: category}
	for _, skill := range strings.Split(items, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			group.Skills = append(group.Skills, skill)
		}
	}
	st.resume.Skills.Groups = append(st.resume.Skills.Groups, group)
}

// splitSkillCategory recognizes "**Category**: item, item" lines. The
// bold markers may already be resolved to plain text by nodeText, so both
// the starred and bare "Category: items" forms are accepted as long as
// the category part is a short label.
func splitSkillCategory(line string) (category, items string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if after, found := strings.CutPrefix(trimmed, "**"); found {
		category, items, found = strings.Cut(after, "**")
		if !found {
			return "", "", false
		}
		items = strings.TrimLeft(items, ": ")
		return strings.TrimSpace(category), items, category != ""
	}

	category, items, found := strings.Cut(trimmed, ":")
	if !found {
		return "", "", false
	}
	category = strings.TrimSpace(category)
	// A category is a short label; a sentence containing ":" is not one.
	if category == "" || strings.Count(category, " ") > 3 {
		return "", "", false
	}
	return category, strings.TrimSpace(items), true
}

// scanContactLine matches one contact line against key:value and
// pipe-delimited patterns. Unrecognized tokens are skipped silently.
func (st *parseState) scanContactLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	for _, token := range strings.Split(line, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		st.assignContactToken(token)
	}
}

// assignContactToken classifies one contact token, either "Key: value"
// or a bare value recognized by shape.
func (st *parseState) assignContactToken(token string) {
	contact := &st.resume.Contact

	if key, value, found := strings.Cut(token, ":"); found && !strings.Contains(key, "/") {
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "email", "e-mail":
			contact.Email = value
			return
		case "phone", "tel", "mobile":
			contact.Phone = value
			return
		case "linkedin":
			contact.LinkedIn = normalizeURL(value)
			return
		case "github":
			contact.GitHub = normalizeURL(value)
			return
		case "website", "web", "portfolio":
			contact.Website = normalizeURL(value)
			return
		case "location", "address":
			contact.Location = value
			return
		}
		// Unknown key; fall through to shape matching on the whole token.
	}

	lower := strings.ToLower(token)
	switch {
	case strings.Contains(token, "@") && !strings.Contains(token, " "):
		contact.Email = token
	case strings.Contains(lower, "linkedin.com"):
		contact.LinkedIn = normalizeURL(token)
	case strings.Contains(lower, "github.com"):
		contact.GitHub = normalizeURL(token)
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "www."):
		contact.Website = normalizeURL(token)
	case looksLikePhone(token):
		contact.Phone = token
	case contact.Location == "" && strings.Contains(token, ","):
		contact.Location = token
	default:
		st.warnf("unrecognized contact token %q", token)
	}
}

func (st *parseState) warnf(format string, args ...any) {
	st.warnings = append(st.warnings, fmt.Sprintf(format, args...))
}

// looksLikePhone reports whether s is mostly digits and phone punctuation
// with at least 7 digits.
func looksLikePhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ', r == '-', r == '(', r == ')', r == '+', r == '.':
		default:
			return false
		}
	}
	return digits >= 7
}

// seasons accepted in point dates like "Spring 2020".
var seasons = map[string]bool{
	"spring": true, "summer": true, "fall": true, "autumn": true, "winter": true,
}

// looksLikeDate reports whether the part of a line before any pipe is a
// recognizable date or date range.
func looksLikeDate(s string) bool {
	first, _ := splitDateLocation(s)
	first = strings.TrimSpace(first)

	if monthRangePattern.MatchString(first) ||
		yearRangePattern.MatchString(first) ||
		yearPattern.MatchString(first) {
		return true
	}
	if m := monthYearPattern.FindStringSubmatch(first); m != nil {
		return dateutil.IsMonth(m[1]) || seasons[strings.ToLower(m[1])]
	}
	// "2019-2021" without spaces.
	if a, b, found := strings.Cut(first, "-"); found {
		return dateutilAllDigits(a) && (dateutilAllDigits(b) || dateutil.IsPresent(b))
	}
	return false
}

// splitDateLocation splits "Jan 2020 - Present | Seattle, WA" on the
// first pipe.
func splitDateLocation(s string) (dates, location string) {
	dates, location, _ = strings.Cut(s, "|")
	return strings.TrimSpace(dates), strings.TrimSpace(location)
}

// splitDateRange splits a raw range into start and end parts. A single
// point date becomes the start date with an empty end.
func splitDateRange(s string) (start, end string) {
	for _, sep := range []string{" - ", " – ", " — ", "–", "—"} {
		if a, b, found := strings.Cut(s, sep); found {
			return strings.TrimSpace(a), strings.TrimSpace(b)
		}
	}
	// "2019-2021" with no spaces; avoid splitting hyphenated words.
	if a, b, found := strings.Cut(s, "-"); found && dateutilAllDigits(a) {
		return strings.TrimSpace(a), strings.TrimSpace(b)
	}
	return strings.TrimSpace(s), ""
}

func dateutilAllDigits(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitPipePair splits "Title | Company" into its two halves. A heading
// without a pipe leaves the second half empty.
func splitPipePair(s string) (first, second string) {
	first, second, _ = strings.Cut(s, "|")
	return strings.TrimSpace(first), strings.TrimSpace(second)
}

// normalizeURL prefixes a scheme when the value is scheme-less, so model
// validation and links work on values like "linkedin.com/in/janedoe".
func normalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "://") {
		return s
	}
	return "https://" + s
}
