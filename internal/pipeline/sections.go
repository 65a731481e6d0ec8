package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern matches an ATX heading line.
// Captures: 1=markers, 2=title (untrimmed).
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Section is a heading-delimited span of the document. See the public type
// in the root package for field semantics.
type Section struct {
	ID          string
	Title       string
	Content     string
	Collapsible bool
	Collapsed   bool
}

// SectionPartitioner defines the contract for grouping lines into sections.
type SectionPartitioner interface {
	Partition(content string) []Section
}

// HeadingPartitioner partitions a document at ATX heading boundaries.
type HeadingPartitioner struct{}

// Partition scans lines in order. A heading line closes the section in
// progress and opens a new one whose first line is the heading itself; lines
// before the first heading belong to no section and are dropped. Consecutive
// headings each produce a section whose content is just the heading line.
func (HeadingPartitioner) Partition(content string) []Section {
	var sections []Section
	var buf []string
	var title string
	var level int
	open := false

	flush := func() {
		if !open {
			return
		}
		sections = append(sections, Section{
			ID:          fmt.Sprintf("section-%d", len(sections)+1),
			Title:       title,
			Content:     strings.TrimSpace(strings.Join(buf, "\n")),
			Collapsible: level >= 2,
		})
	}

	for _, line := range SplitLines(content) {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			open = true
			level = len(m[1])
			title = strings.TrimSpace(m[2])
			buf = []string{line}
			continue
		}
		if open {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}
