package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Slug character rules: strip everything outside lowercase alphanumerics,
// whitespace, and hyphens, then collapse whitespace runs to one hyphen.
var (
	slugStripPattern    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapsePattern = regexp.MustCompile(`\s+`)
)

// Slug derives a deterministic URL-safe anchor from a heading title. The
// same rule produces heading ids and TOC anchors, so TOC links always
// resolve. Identical titles yield identical slugs; uniqueness is not
// guaranteed.
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripPattern.ReplaceAllString(s, "")
	return slugCollapsePattern.ReplaceAllString(s, "-")
}

// TocEntry is one table-of-contents item. See the public type in the root
// package for field semantics.
type TocEntry struct {
	ID     string
	Level  int
	Title  string
	Anchor string
}

// TOCBuilder defines the contract for collecting headings into a flat TOC.
type TOCBuilder interface {
	Build(content string) []TocEntry
}

// HeadingTOCBuilder scans lines for ATX headings, independently of the
// section partitioner. Repeated titles are kept as-is, anchors included.
type HeadingTOCBuilder struct{}

// Build returns one entry per heading line, in document order.
func (HeadingTOCBuilder) Build(content string) []TocEntry {
	var entries []TocEntry
	for _, line := range SplitLines(content) {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		entries = append(entries, TocEntry{
			ID:     fmt.Sprintf("heading-%d", len(entries)+1),
			Level:  len(m[1]),
			Title:  title,
			Anchor: Slug(title),
		})
	}
	return entries
}
