package scene

import "strings"

// Line terminators.
const (
	Newline = "\n"
	CRLF    = "\r\n"
)

// SplitLines splits data into lines that keep their terminators.
// JoinLines(SplitLines(data)) reproduces data byte for byte.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), Newline)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines as they are.
func JoinLines(lines []string) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
	}
	return []byte(b.String())
}

// LineEnding returns the terminator of line: CRLF, Newline, or "" when unterminated.
func LineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, CRLF):
		return CRLF
	case strings.HasSuffix(line, Newline):
		return Newline
	default:
		return ""
	}
}

// EndingOr returns the terminator of line, or fallback when it has none.
func EndingOr(line, fallback string) string {
	if eol := LineEnding(line); eol != "" {
		return eol
	}
	return fallback
}

// DetectLineEnding returns the terminator of the first terminated line,
// or Newline when no line is terminated.
func DetectLineEnding(lines []string) string {
	for _, l := range lines {
		if eol := LineEnding(l); eol != "" {
			return eol
		}
	}
	return Newline
}

// WithEnding returns s with its terminator, if any, replaced by eol.
func WithEnding(s, eol string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, Newline), "\r") + eol
}
