package qa

import (
	"regexp"
	"strings"
)

// Keyword tables for the line heuristics. Kept as data so the tuning
// surface stays in one place.
var (
	// jobTitleKeywords mark a line as a probable job title anywhere in
	// the line, regardless of casing.
	jobTitleKeywords = []string{
		"developer", "engineer", "manager", "director",
		"analyst", "consultant", "specialist", "coordinator",
	}

	// jobTitleWords is the wider list used for all-caps lines, where
	// formatting alone already suggests a heading-style title.
	jobTitleWords = []string{
		"developer", "engineer", "manager", "director", "analyst",
		"consultant", "specialist", "coordinator", "assistant",
		"officer", "executive", "supervisor", "lead", "architect",
		"designer", "programmer", "administrator", "representative",
		"technician",
	}

	companyKeywords = []string{
		"corp", "ltd", "inc", "company", "world",
		"institute", "university", "college",
	}

	// titleExclusions are section-header words that disqualify a line
	// from being a job title.
	titleExclusions = []string{
		"referees", "references", "education", "skills", "experience",
		"employment", "work history", "career", "professional",
		"summary", "objective", "contact", "personal", "languages",
		"certifications", "projects", "achievements",
	}
)

var (
	yearRangeRe   = regexp.MustCompile(`\d{4}\s*-\s*\d{4}`)
	monthYearRe   = regexp.MustCompile(`\d{1,2}/\d{4}`)
	bareYearRe    = regexp.MustCompile(`\d{4}`)
	digitsOnlyRe  = regexp.MustCompile(`^\d+$`)
	hasLetterRe   = regexp.MustCompile(`[a-zA-Z]`)
	nonDigitRe    = regexp.MustCompile(`\D`)
	emailRe       = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe       = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
)

// looksLikeDate reports whether a line carries an employment-style date:
// a year range, month/year, or any bare four-digit year.
func looksLikeDate(line string) bool {
	return yearRangeRe.MatchString(line) ||
		monthYearRe.MatchString(line) ||
		bareYearRe.MatchString(line)
}

// looksLikeCompany reports whether a line mentions a company-ish word.
func looksLikeCompany(line string) bool {
	return containsAny(strings.ToLower(line), companyKeywords)
}

// looksLikeJobTitle is the loose check: any job-title keyword anywhere.
func looksLikeJobTitle(line string) bool {
	return containsAny(strings.ToLower(line), jobTitleKeywords)
}

// isValidJobTitle is the strict check used when hunting for the last
// position. It rejects contact lines, bare numbers, and section headers
// before requiring either a job-title keyword or an all-caps line that
// contains a title word.
func isValidJobTitle(line string) bool {
	trimmed := strings.TrimSpace(line)

	if len(trimmed) < 3 || len(trimmed) > 100 {
		return false
	}

	// Bare numbers and phone-number-shaped lines.
	if digitsOnlyRe.MatchString(trimmed) {
		return false
	}
	if digits := nonDigitRe.ReplaceAllString(trimmed, ""); len(digits) >= 10 {
		return false
	}

	// Contact info.
	if strings.Contains(trimmed, "@") || strings.Contains(trimmed, "http") || strings.Contains(trimmed, "www") {
		return false
	}

	if containsAny(strings.ToLower(trimmed), titleExclusions) {
		return false
	}

	if !hasLetterRe.MatchString(trimmed) {
		return false
	}

	if looksLikeJobTitle(trimmed) {
		return true
	}
	return trimmed == strings.ToUpper(trimmed) &&
		len(trimmed) > 5 &&
		containsAny(strings.ToLower(trimmed), jobTitleWords)
}
