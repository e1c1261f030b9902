package parser

import (
	"strings"
	"testing"
)

func TestTextParser_PreservesLines(t *testing.T) {
	input := "WORK EXPERIENCE\nSoftware Engineer\n\nAcme Corp"
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader(input), "cv.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestTextParser_StripsCarriageReturns(t *testing.T) {
	input := "WORK EXPERIENCE\r\nSoftware Engineer\r\n"
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader(input), "cv.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "\r") {
		t.Errorf("carriage returns survived: %q", got)
	}
	if got != "WORK EXPERIENCE\nSoftware Engineer" {
		t.Errorf("got %q", got)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
