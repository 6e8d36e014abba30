// Package dateutil provides month-name normalization and year extraction
// for resume date standardization.
package dateutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// months maps lowercase month names and abbreviations to full names.
var months = map[string]string{
	"january": "January", "jan": "January",
	"february": "February", "feb": "February",
	"march": "March", "mar": "March",
	"april": "April", "apr": "April",
	"may":  "May",
	"june": "June", "jun": "June",
	"july": "July", "jul": "July",
	"august": "August", "aug": "August",
	"september": "September", "sep": "September", "sept": "September",
	"october": "October", "oct": "October",
	"november": "November", "nov": "November",
	"december": "December", "dec": "December",
}

// presentSynonyms are end-date tokens meaning "still ongoing".
var presentSynonyms = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
	"today":   true,
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// NormalizeMonth maps a month name or abbreviation to its full name.
// Unknown input is returned title-cased.
func NormalizeMonth(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}
	if full, ok := months[strings.ToLower(trimmed)]; ok {
		return full
	}
	return TitleCase(trimmed)
}

// IsMonth reports whether s is a known month name or abbreviation.
func IsMonth(s string) bool {
	_, ok := months[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsPresent reports whether s is a present/current synonym.
func IsPresent(s string) bool {
	return presentSynonyms[strings.ToLower(strings.TrimSpace(s))]
}

// ExtractYear returns the first 4-digit year in s, or 0 if none.
func ExtractYear(s string) int {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return year
}

// TitleCase upper-cases the first letter of each space-separated word,
// lowering the rest. Unlike strings.Title it does not split on hyphens.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
