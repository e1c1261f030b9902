package parser

import (
	"bufio"
	"io"
	"strings"
)

// TextParser handles plain text files.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var buf strings.Builder
	first := true
	for scanner.Scan() {
		if !first {
			buf.WriteString("\n")
		}
		// Strip stray carriage returns from CRLF files so the
		// line heuristics see clean line endings.
		buf.WriteString(strings.TrimRight(scanner.Text(), "\r"))
		first = false
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
