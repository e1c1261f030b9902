package qa

import "strings"

const (
	maxRelevantLines = 5
	maxSummaryLines  = 5
	minKeywordLen    = 4 // question tokens shorter than this are noise
)

// analyzeGeneral handles questions no intent route claimed. It looks for
// question tokens that appear verbatim in the document; on a hit it shows
// the matched tokens plus the lines containing them, otherwise it falls
// back to a structural summary.
//
// The two passes use different matching rules on purpose: exact token
// equality decides whether anything was found, substring containment
// decides which lines to show. The original system behaves this way and
// the asymmetry is kept for compatibility (a token can match a line it
// was not counted from, e.g. "paint" inside "painting").
func analyzeGeneral(doc Document, question string) string {
	questionWords := tokenize(question)

	contentWords := make(map[string]struct{})
	for _, w := range tokenize(doc.Text()) {
		contentWords[w] = struct{}{}
	}

	var matched []string
	for _, w := range questionWords {
		if len(w) >= minKeywordLen {
			if _, ok := contentWords[w]; ok {
				matched = append(matched, w)
			}
		}
	}

	if len(matched) > 0 {
		return "I found references to \"" + strings.Join(matched, ", ") +
			"\" in your CV. Here's the relevant content:\n\n" +
			relevantLines(doc, questionWords)
	}

	return "I couldn't find specific information related to your question in the CV. " +
		"Here's a summary of what I found:\n\n" + structureSummary(doc)
}

// tokenize lower-cases, splits on whitespace, and strips surrounding
// punctuation, so "painting?" in a question meets "painting" in the
// document.
func tokenize(s string) []string {
	words := strings.Fields(strings.ToLower(s))
	out := words[:0]
	for _, w := range words {
		if w = strings.Trim(w, `.,!?;:"'()`); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// relevantLines returns up to maxRelevantLines document lines containing
// any sufficiently long question token as a substring.
func relevantLines(doc Document, questionWords []string) string {
	var relevant []string
	for _, line := range doc.Lines() {
		lower := strings.ToLower(line)
		for _, w := range questionWords {
			if len(w) >= minKeywordLen && strings.Contains(lower, w) {
				relevant = append(relevant, line)
				break
			}
		}
		if len(relevant) == maxRelevantLines {
			break
		}
	}
	return strings.Join(relevant, "\n")
}

// structureSummary lists the first few lines that read like headings:
// fully upper-case, or short enough to be a label rather than prose.
func structureSummary(doc Document) string {
	summary := []string{"CV Structure:"}
	for _, line := range doc.Lines() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if line == strings.ToUpper(line) || len(trimmed) < 50 {
			summary = append(summary, line)
		}
		if len(summary) == maxSummaryLines+1 {
			break
		}
	}
	return strings.Join(summary, "\n")
}
