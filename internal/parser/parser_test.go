package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		wantType Parser
	}{
		{"cv.txt", &TextParser{}},
		{"cv.md", &MarkdownParser{}},
		{"cv.markdown", &MarkdownParser{}},
		{"cv.html", &HTMLParser{}},
		{"cv.htm", &HTMLParser{}},
		{"CV.PDF", &PDFParser{}},
		{"cv.docx", &DOCXParser{}},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", tt.filename, err)
			continue
		}
		if fmt.Sprintf("%T", p) != fmt.Sprintf("%T", tt.wantType) {
			t.Errorf("ForFile(%q) = %T, want %T", tt.filename, p, tt.wantType)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	for _, filename := range []string{"cv.csv", "cv.exe", "cv", "cv.doc"} {
		_, err := ForFile(filename)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ForFile(%q): err = %v, want ErrUnsupportedFormat", filename, err)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"cv.pdf", true},
		{"cv.DOCX", true},
		{"cv.txt", true},
		{"cv.md", true},
		{"cv.html", true},
		{"cv.htm", true},
		{"cv.csv", false},
		{"cv.png", false},
		{"cv", false},
	}
	for _, tt := range tests {
		if got := IsSupportedExtension(tt.filename); got != tt.want {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestExtractFile_Text(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	if err := os.WriteFile(path, []byte("WORK EXPERIENCE\nSoftware Engineer\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "WORK EXPERIENCE\nSoftware Engineer" {
		t.Errorf("text = %q", text)
	}
}

func TestExtractFile_Missing(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractFile_UnsupportedExtension(t *testing.T) {
	_, err := ExtractFile("cv.xlsx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}
