package resumeats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-resumeats/internal/dateutil"
)

// Date patterns, most specific first. Each must fully match the trimmed
// input; there is no substring matching. Hyphen, en dash, and em dash are
// all accepted as range separators.
var (
	// "January 2020 - December 2021", "Jan 2020 - Present", "Jan 2020 - Mar"
	monthRangePattern = regexp.MustCompile(`(?i)^([A-Za-z]+)\s+(\d{4})\s*[-–—]\s*([A-Za-z]+)(?:\s+(\d{4}))?$`)
	// "2020 - 2021", "2020 - Present"
	yearRangePattern = regexp.MustCompile(`(?i)^(\d{4})\s*[-–—]\s*([A-Za-z]+|\d{4})$`)
	// "January 2020"
	monthYearPattern = regexp.MustCompile(`(?i)^([A-Za-z]+)\s+(\d{4})$`)
	// "2020"
	yearPattern = regexp.MustCompile(`^\d{4}$`)
)

// StandardizeDate maps heterogeneous date-range strings to the canonical
// "Month YYYY - Month YYYY" form, normalizing present synonyms to the
// literal word "Present". Formatting is best-effort: unrecognized input
// is returned trimmed but otherwise unchanged, and single-point dates
// never gain a fabricated end date. The function is idempotent.
func StandardizeDate(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return cleaned
	}

	if m := monthRangePattern.FindStringSubmatch(cleaned); m != nil {
		return formatMonthRange(m[1], m[2], m[3], m[4])
	}

	if m := yearRangePattern.FindStringSubmatch(cleaned); m != nil {
		if dateutil.IsPresent(m[2]) {
			return fmt.Sprintf("%s - Present", m[1])
		}
		return fmt.Sprintf("%s - %s", m[1], m[2])
	}

	if m := monthYearPattern.FindStringSubmatch(cleaned); m != nil {
		// Guard against non-month words ("Spring 2020" stays as-is apart
		// from title casing via NormalizeMonth's fallback).
		return fmt.Sprintf("%s %s", dateutil.NormalizeMonth(m[1]), m[2])
	}

	if yearPattern.MatchString(cleaned) {
		return cleaned
	}

	return cleaned
}

// formatMonthRange renders a matched "Month YYYY - end" range. The end
// part may be a month (with or without year) or a present synonym.
func formatMonthRange(startMonth, startYear, endPart, endYear string) string {
	start := fmt.Sprintf("%s %s", dateutil.NormalizeMonth(startMonth), startYear)

	if dateutil.IsPresent(endPart) {
		return start + " - Present"
	}

	end := dateutil.NormalizeMonth(endPart)
	if endYear != "" {
		return fmt.Sprintf("%s - %s %s", start, end, endYear)
	}
	return fmt.Sprintf("%s - %s", start, end)
}

// validDateOrder reports whether start comes no later than end. Present
// end dates and dates without extractable years are treated as valid.
func validDateOrder(start, end string) bool {
	if dateutil.IsPresent(end) {
		return true
	}
	startYear := dateutil.ExtractYear(start)
	endYear := dateutil.ExtractYear(end)
	if startYear == 0 || endYear == 0 {
		return true
	}
	return startYear <= endYear
}
