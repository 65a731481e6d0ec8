package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// orderedMarker tags list items that came from a numeric marker. It uses a
// Unicode Private Use Area character, guaranteed not to collide with any
// document text, and is stripped when the surrounding list is wrapped.
// Same technique as placeholder-based preprocessors that smuggle state
// through a text pass.
const orderedMarker = "\uE000"

// Precompiled patterns for the inline passes, in application order.
var (
	headingLinePattern = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	boldPattern        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern      = regexp.MustCompile(`\*(.+?)\*`)
	// Inline code excludes backticks and newlines so that fence marker lines
	// pass through intact for the assembler's re-scan.
	inlineCodePattern  = regexp.MustCompile("`([^`\n]+)`")
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bulletItemPattern  = regexp.MustCompile(`(?m)^[-*+]\s+(.+)$`)
	orderedItemPattern = regexp.MustCompile(`(?m)^\d+\.\s+(.+)$`)
	listRunPattern     = regexp.MustCompile(`(?:<li>.*</li>\n?)+`)
	blankLinePattern   = regexp.MustCompile(`\n[ \t]*\n`)
)

// InlineConverter defines the contract for producing base HTML from text.
type InlineConverter interface {
	Convert(content string) string
}

// RegexConverter turns the supported markdown subset into HTML through a
// fixed, ordered sequence of text-substitution passes. Each pass operates on
// the cumulative output of the previous one, so the order is load-bearing:
// bold before italic (so literal ** is consumed first), inline spans before
// lists, lists before paragraphs. Nesting beyond what this order naturally
// produces is not supported.
type RegexConverter struct{}

// Convert produces the base HTML for a whole document.
func (RegexConverter) Convert(content string) string {
	html := convertHeadings(content)
	html = boldPattern.ReplaceAllString(html, "<strong>$1</strong>")
	html = italicPattern.ReplaceAllString(html, "<em>$1</em>")
	html = inlineCodePattern.ReplaceAllString(html, "<code>$1</code>")
	html = linkPattern.ReplaceAllString(html, `<a href="$2" target="_blank">$1</a>`)
	html = convertListItems(html)
	html = wrapListRuns(html)
	return wrapParagraphs(html)
}

// convertHeadings rewrites heading lines to <hN> with a slugged id, using
// the same slug rule as TOC anchors.
func convertHeadings(content string) string {
	return headingLinePattern.ReplaceAllStringFunc(content, func(line string) string {
		m := headingLinePattern.FindStringSubmatch(line)
		level := len(m[1])
		title := strings.TrimSpace(m[2])
		return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, Slug(title), title, level)
	})
}

// convertListItems rewrites bullet and numbered lines to <li> elements,
// tagging numbered ones with the ordered marker for wrapListRuns.
func convertListItems(html string) string {
	html = bulletItemPattern.ReplaceAllString(html, "<li>$1</li>")
	return orderedItemPattern.ReplaceAllString(html, "<li>"+orderedMarker+"$1</li>")
}

// wrapListRuns wraps each run of consecutive <li> lines in <ol> when the run
// began with a numeric marker, <ul> otherwise.
func wrapListRuns(html string) string {
	return listRunPattern.ReplaceAllStringFunc(html, func(run string) string {
		tag := "ul"
		if strings.HasPrefix(run, "<li>"+orderedMarker) {
			tag = "ol"
		}
		run = strings.ReplaceAll(run, orderedMarker, "")
		trailingNewline := strings.HasSuffix(run, "\n")
		run = strings.TrimSuffix(run, "\n")
		wrapped := "<" + tag + ">\n" + run + "\n</" + tag + ">"
		if trailingNewline {
			wrapped += "\n"
		}
		return wrapped
	})
}

// wrapParagraphs wraps blank-line-separated text runs in <p>. Runs already
// starting with a tag are kept as-is; empty runs are dropped.
func wrapParagraphs(html string) string {
	chunks := blankLinePattern.Split(html, -1)
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if strings.HasPrefix(chunk, "<") {
			out = append(out, chunk)
			continue
		}
		out = append(out, "<p>"+chunk+"</p>")
	}
	return strings.Join(out, "\n")
}
