package resumeats

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-resumeats/internal/dateutil"
)

// FormattedResume is the output of the formatting stage: a formatted
// copy of the parsed resume plus the resolved section order and any
// advisory warnings. The input ResumeData is never mutated.
type FormattedResume struct {
	Resume       *ResumeData
	SectionOrder []string
	Warnings     []string
}

// specialCharReplacer maps characters that confuse ATS text extraction
// to plain ASCII equivalents. Typographic quotes and dashes are the
// common offenders from word-processor copy-paste.
var specialCharReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, // curly double quotes
	"‘", "'", "’", "'", // curly single quotes
	"–", "-", "—", "-", // en and em dashes
	"…", "...", // ellipsis
	"→", "-", // right arrow
	"•", "-", "·", "-", "‣", "-", // stray bullet glyphs
	"\u00a0", " ", // non-breaking space
	"™", "", "®", "", "©", "", // trademark marks
)

// bulletMarkerPrefixes are author-written bullet markers stripped before
// the configured bullet style is applied.
var bulletMarkerPrefixes = []string{"- ", "* ", "• ", "– ", "‣ "}

// FormatResume applies ATS formatting rules to a parsed resume: section
// header canonicalization, date standardization, bullet normalization,
// special-character cleaning, and optional keyword emphasis. It returns
// ErrATSCompliance when the formatted result still violates structural
// requirements (an experience entry without title or company, for
// example). Line-length violations are advisory and reported as
// warnings, never fixed by wrapping.
func FormatResume(data *ResumeData, rules ATSRules) (*FormattedResume, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	f := &formatter{rules: rules, resume: data.Clone()}
	f.run()

	if err := f.resume.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrATSCompliance, err)
	}

	return &FormattedResume{
		Resume:       f.resume,
		SectionOrder: f.resolveOrder(),
		Warnings:     f.warnings,
	}, nil
}

type formatter struct {
	rules    ATSRules
	resume   *ResumeData
	warnings []string
}

func (f *formatter) run() {
	f.formatContact()
	f.resume.Summary = f.cleanText(f.resume.Summary)
	f.formatExperience()
	f.formatEducation()
	f.formatSkills()
	f.formatProjects()
	f.formatCertifications()
	f.formatAdditional()

	if f.rules.OptimizeKeywords {
		f.emphasizeKeywords()
	}
	f.checkLineLengths()
}

func (f *formatter) formatContact() {
	c := &f.resume.Contact
	c.Name = f.cleanText(c.Name)
	c.Location = f.cleanText(c.Location)
}

func (f *formatter) formatExperience() {
	for i := range f.resume.Experience {
		e := &f.resume.Experience[i]
		e.Title = f.cleanText(e.Title)
		e.Company = f.cleanText(e.Company)
		e.Location = f.cleanText(e.Location)
		e.StartDate = standardizeDatePart(e.StartDate)
		e.EndDate = standardizeDatePart(e.EndDate)
		if e.EndDate != "" && !validDateOrder(e.StartDate, e.EndDate) {
			f.warnf("experience %q: start date %q is after end date %q", e.Title, e.StartDate, e.EndDate)
		}
		for j, b := range e.Bullets {
			e.Bullets[j] = f.formatBullet(b)
		}
	}
}

func (f *formatter) formatEducation() {
	for i := range f.resume.Education {
		e := &f.resume.Education[i]
		e.Degree = f.cleanText(e.Degree)
		e.School = f.cleanText(e.School)
		e.Location = f.cleanText(e.Location)
		e.StartDate = standardizeDatePart(e.StartDate)
		e.EndDate = standardizeDatePart(e.EndDate)
		for j, h := range e.Honors {
			e.Honors[j] = f.cleanText(h)
		}
		for j, c := range e.Coursework {
			e.Coursework[j] = f.cleanText(c)
		}
	}
}

func (f *formatter) formatSkills() {
	for i := range f.resume.Skills.Groups {
		g := &f.resume.Skills.Groups[i]
		g.Category = dateutil.TitleCase(f.cleanText(g.Category))
		for j, s := range g.Skills {
			g.Skills[j] = f.cleanText(s)
		}
	}
	for i, s := range f.resume.Skills.Raw {
		f.resume.Skills.Raw[i] = f.cleanText(s)
	}
}

func (f *formatter) formatProjects() {
	for i := range f.resume.Projects {
		p := &f.resume.Projects[i]
		p.Name = f.cleanText(p.Name)
		p.Description = f.cleanText(p.Description)
		p.Date = standardizeDatePart(p.Date)
		for j, t := range p.Technologies {
			p.Technologies[j] = f.cleanText(t)
		}
		for j, b := range p.Bullets {
			p.Bullets[j] = f.formatBullet(b)
		}
	}
}

func (f *formatter) formatCertifications() {
	for i := range f.resume.Certifications {
		c := &f.resume.Certifications[i]
		c.Name = f.cleanText(c.Name)
		c.Issuer = f.cleanText(c.Issuer)
		c.Date = standardizeDatePart(c.Date)
		c.Expiry = standardizeDatePart(c.Expiry)
	}
}

func (f *formatter) formatAdditional() {
	for i := range f.resume.Additional {
		a := &f.resume.Additional[i]
		a.Heading = StandardizeHeader(a.Heading)
		// The body stays raw markdown; only character cleaning applies.
		if f.rules.RemoveSpecialChars {
			a.Markdown = specialCharReplacer.Replace(a.Markdown)
		}
	}
}

// cleanText collapses whitespace and, when enabled, replaces
// ATS-unfriendly characters.
func (f *formatter) cleanText(s string) string {
	if f.rules.RemoveSpecialChars {
		s = specialCharReplacer.Replace(s)
	}
	return strings.Join(strings.Fields(s), " ")
}

// formatBullet normalizes one achievement line: author bullet markers
// are stripped, the configured bullet style is applied, and the first
// letter is capitalized.
func (f *formatter) formatBullet(b string) string {
	b = f.cleanText(b)
	for _, prefix := range bulletMarkerPrefixes {
		b = strings.TrimPrefix(b, prefix)
	}
	b = strings.TrimSpace(b)
	if b == "" {
		return b
	}

	r, size := utf8.DecodeRuneInString(b)
	if unicode.IsLower(r) {
		b = string(unicode.ToUpper(r)) + b[size:]
	}
	return f.rules.BulletStyle + " " + b
}

// standardizeDatePart standardizes one side of a date range. Present
// synonyms normalize to the literal "Present".
func standardizeDatePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if dateutil.IsPresent(s) {
		return "Present"
	}
	return StandardizeDate(s)
}

// emphasizeKeywords wraps weighted keywords appearing at least
// MinOccurrences times across the resume in emphasis markers. Matching
// is case-insensitive on word boundaries.
func (f *formatter) emphasizeKeywords() {
	type keyword struct {
		term    string
		pattern *regexp.Regexp
	}

	var keywords []keyword
	corpus := f.corpus()
	for term, weight := range f.rules.KeywordEmphasis {
		if weight <= 0 || strings.TrimSpace(term) == "" {
			continue
		}
		p, err := regexp.Compile(keywordPattern(term))
		if err != nil {
			f.warnf("skipping unusable keyword %q", term)
			continue
		}
		min := f.rules.MinOccurrences
		if min < 1 {
			min = 1
		}
		if len(p.FindAllStringIndex(corpus, min)) < min {
			continue
		}
		keywords = append(keywords, keyword{term: term, pattern: p})
	}
	if len(keywords) == 0 {
		return
	}
	// Longer terms first so "machine learning" wins over "learning".
	slices.SortFunc(keywords, func(a, b keyword) int {
		return len(b.term) - len(a.term)
	})

	mark := func(s string) string {
		for _, kw := range keywords {
			s = kw.pattern.ReplaceAllStringFunc(s, func(m string) string {
				return emphasisOpen + m + emphasisClose
			})
		}
		return s
	}

	f.resume.Summary = mark(f.resume.Summary)
	for i := range f.resume.Experience {
		for j, b := range f.resume.Experience[i].Bullets {
			f.resume.Experience[i].Bullets[j] = mark(b)
		}
	}
	for i := range f.resume.Skills.Groups {
		g := &f.resume.Skills.Groups[i]
		for j, s := range g.Skills {
			g.Skills[j] = mark(s)
		}
	}
	for i, s := range f.resume.Skills.Raw {
		f.resume.Skills.Raw[i] = mark(s)
	}
	for i := range f.resume.Projects {
		p := &f.resume.Projects[i]
		p.Description = mark(p.Description)
		for j, b := range p.Bullets {
			p.Bullets[j] = mark(b)
		}
	}
}

// keywordPattern builds a case-insensitive match pattern for a keyword.
// A \b anchor only works against a word character, so terms edged with
// symbols ("C++", ".NET") anchor on the literal edge instead.
func keywordPattern(term string) string {
	var sb strings.Builder
	sb.WriteString("(?i)")
	if r, _ := utf8.DecodeRuneInString(term); isWordRune(r) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(term))
	if r, _ := utf8.DecodeLastRuneInString(term); isWordRune(r) {
		sb.WriteString(`\b`)
	}
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// corpus joins the keyword-eligible text fields for occurrence counting:
// summary, bullets, and the skill lists.
func (f *formatter) corpus() string {
	var sb strings.Builder
	sb.WriteString(f.resume.Summary)
	for _, e := range f.resume.Experience {
		for _, b := range e.Bullets {
			sb.WriteByte('\n')
			sb.WriteString(b)
		}
	}
	for _, g := range f.resume.Skills.Groups {
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(g.Skills, ", "))
	}
	if len(f.resume.Skills.Raw) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(f.resume.Skills.Raw, ", "))
	}
	for _, p := range f.resume.Projects {
		sb.WriteByte('\n')
		sb.WriteString(p.Description)
		for _, b := range p.Bullets {
			sb.WriteByte('\n')
			sb.WriteString(b)
		}
	}
	return sb.String()
}

// checkLineLengths emits an advisory warning per bullet exceeding the
// configured limit. Lines are measured without emphasis markers and
// never rewrapped.
func (f *formatter) checkLineLengths() {
	limit := f.rules.MaxLineLength
	check := func(context, line string) {
		if n := utf8.RuneCountInString(stripEmphasis(line)); n > limit {
			f.warnf("%s: line exceeds %d characters (%d): %.40q", context, limit, n, stripEmphasis(line))
		}
	}
	for _, e := range f.resume.Experience {
		for _, b := range e.Bullets {
			check(fmt.Sprintf("experience %q", e.Title), b)
		}
	}
	for _, p := range f.resume.Projects {
		for _, b := range p.Bullets {
			check(fmt.Sprintf("project %q", p.Name), b)
		}
	}
}

// resolveOrder filters the configured section order down to populated
// sections.
func (f *formatter) resolveOrder() []string {
	populated := f.resume.SectionKeys()
	var order []string
	for _, key := range f.rules.sectionOrder() {
		if slices.Contains(populated, key) {
			order = append(order, key)
		}
	}
	return order
}

func (f *formatter) warnf(format string, args ...any) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}
