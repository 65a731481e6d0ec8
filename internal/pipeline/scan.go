package pipeline

import (
	"regexp"
	"strings"
)

// TruncationNotice is appended to oversized input after truncation. It is
// ordinary markdown and flows through every subsequent pass.
const TruncationNotice = "\n\n*[Content truncated: maximum display length reached]*"

// crlfOrCR matches Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n. Every other stage assumes
// normalized input so that all components observe identical line numbering.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines splits content into lines on \n boundaries. This is the single
// splitting primitive shared by the section, code block, and TOC scans.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// Truncate caps content at max runes and appends the truncation notice.
// Content at or under the cap is returned unchanged; a non-positive max
// disables truncation.
func Truncate(content string, max int) string {
	if max <= 0 {
		return content
	}
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + TruncationNotice
}
