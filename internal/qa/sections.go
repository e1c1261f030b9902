package qa

import "strings"

// sectionKind names a heuristically delimited CV region.
type sectionKind int

const (
	sectionExperience sectionKind = iota
	sectionEducation
	sectionSkills
)

// sectionKeywords mark the header line that opens each section. A line
// containing any keyword (lower-cased, trimmed) flips the scan state to
// inside that section.
var sectionKeywords = map[sectionKind][]string{
	sectionExperience: {"experience", "employment", "work history", "career", "professional"},
	sectionEducation:  {"education", "academic", "degree", "university", "college", "school"},
	sectionSkills:     {"skill", "technology", "programming", "language", "tool", "framework"},
}

// lastPositionKeywords is the narrower set the last-position scan uses
// to enter the experience section; bare "experience" is excluded there.
var lastPositionKeywords = []string{"work experience", "employment", "career", "professional"}

// genericHeaders end the last-position scan: hitting any of these means
// the experience section is over. The list is substring-matched, so it
// holds only words that cannot occur inside a job title ("soft" would
// swallow "Software Engineer").
var genericHeaders = []string{
	"education", "skills", "languages", "clubs", "projects", "referees",
}

// scanState is the section scan automaton: outside until a keyword line
// is seen, inside afterwards. There is no "already visited" memory, so a
// later line repeating a section keyword re-enters the section. That
// re-entry is a known quirk of the heuristic on documents that repeat
// section words mid-text; it is kept deliberately and pinned by tests.
type scanState int

const (
	outside scanState = iota
	inSection
)

// next is the pure transition function. The returned flag reports
// whether the line matched a section keyword; such lines are headers and
// are never collected, even when the scan is already inside the section.
func (s scanState) next(line string, keywords []string) (scanState, bool) {
	if containsAny(strings.ToLower(strings.TrimSpace(line)), keywords) {
		return inSection, true
	}
	return s, false
}

// isGenericHeader reports whether a line reads as an unrelated section
// header, terminating a last-position scan.
func isGenericHeader(line string) bool {
	return containsAny(strings.ToLower(line), genericHeaders)
}
