// Package qa answers free-text questions about a CV using rule-based,
// line-oriented text heuristics. A question is classified into an intent
// and the matching extractor scans the document for the answer span.
// There is no model and no network: everything is deterministic string
// matching over the extracted plain text.
package qa

import (
	"errors"
	"strings"
	"sync"
)

// ErrNoDocument is returned by Ask before any CV has been loaded.
var ErrNoDocument = errors.New("no CV loaded")

// Document is an immutable snapshot of a CV's extracted plain text.
// Queries operate on the snapshot they were handed, so a concurrent
// reload cannot change an answer mid-scan.
type Document struct {
	text  string
	lines []string
}

// NewDocument wraps extracted text in a Document.
func NewDocument(text string) Document {
	return Document{
		text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// Text returns the full document text.
func (d Document) Text() string { return d.text }

// Lines returns the newline-delimited lines of the document.
func (d Document) Lines() []string { return d.lines }

// Empty reports whether the document holds no text.
func (d Document) Empty() bool { return d.text == "" }

// Answer runs the extractor selected by the question's intent against
// the document. It always returns human-readable text; "nothing found"
// is an answer, not an error.
func Answer(doc Document, question string) (string, Intent) {
	intent := ClassifyIntent(question)
	switch intent {
	case IntentLastPosition:
		return extractLastPosition(doc), intent
	case IntentWorkExperience:
		return extractWorkExperience(doc), intent
	case IntentEducation:
		return extractEducation(doc), intent
	case IntentSkills:
		return extractSkills(doc), intent
	case IntentContact:
		return extractContact(doc), intent
	default:
		return analyzeGeneral(doc, question), intent
	}
}

// Engine holds the current CV snapshot behind a read-write lock, so a
// reload during a query is safe: each Ask works on the snapshot it read.
type Engine struct {
	mu  sync.RWMutex
	doc Document
	set bool
}

// NewEngine returns an Engine with no document loaded.
func NewEngine() *Engine {
	return &Engine{}
}

// Load replaces the current document wholesale.
func (e *Engine) Load(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = NewDocument(text)
	e.set = true
}

// Document returns the current snapshot and whether one is loaded.
func (e *Engine) Document() (Document, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc, e.set
}

// Ask answers a question against the current document. It fails only
// when no document has been loaded.
func (e *Engine) Ask(question string) (string, Intent, error) {
	doc, ok := e.Document()
	if !ok {
		return "", IntentGeneral, ErrNoDocument
	}
	answer, intent := Answer(doc, question)
	return answer, intent, nil
}
