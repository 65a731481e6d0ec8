package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// fencedRegionPattern finds fenced code regions surviving in the base HTML.
// Captures: 1=language tag, 2=body. The opening fence line may carry junk
// after the tag; an unterminated fence never matches and stays paragraph
// text.
var fencedRegionPattern = regexp.MustCompile("(?s)```([A-Za-z0-9+#._-]*)[^\n]*\n(.*?)```")

// htmlEscaper covers exactly the five-entity table. This is the only HTML
// safety guarantee the renderer makes; nothing else is sanitized.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes & < > " ' to their entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Config selects which enrichment passes the assembler runs.
type Config struct {
	SyntaxHighlighting  bool
	CollapsibleSections bool
	CopyButtons         bool
	TableOfContents     bool
}

// Assembler defines the contract for composing the final HTML fragment.
type Assembler interface {
	Assemble(baseHTML string, blocks []CodeBlock, toc []TocEntry, cfg Config) string
}

// EnrichmentAssembler applies the enrichment passes in fixed order (syntax
// highlighting, collapsible sections, copy buttons, table of contents) and
// wraps the fragment with the static style and interaction script payloads.
// Both payloads are inert strings; the assembler never executes them.
type EnrichmentAssembler struct {
	style  string
	script string
}

// NewEnrichmentAssembler creates an assembler with the given style and
// script payloads.
func NewEnrichmentAssembler(stylePayload, scriptPayload string) *EnrichmentAssembler {
	return &EnrichmentAssembler{style: stylePayload, script: scriptPayload}
}

// Assemble runs the enrichment passes selected by cfg over the base HTML and
// returns the wrapped fragment.
func (a *EnrichmentAssembler) Assemble(baseHTML string, blocks []CodeBlock, toc []TocEntry, cfg Config) string {
	html := baseHTML
	if cfg.SyntaxHighlighting {
		html = rewrapCodeBlocks(html, blocks)
	}
	if cfg.CollapsibleSections {
		html = wrapCollapsibleSections(html)
	}
	if cfg.CopyButtons {
		html = ensureCopyButtons(html)
	}
	if cfg.TableOfContents && len(toc) > 0 {
		html = tocBlock(toc) + html
	}
	return a.wrap(html)
}

// rewrapCodeBlocks replaces each fenced region in the base HTML with a
// structured block: a header carrying the language label and copy control,
// and an escaped <pre><code> body. Non-empty regions take their verbatim
// code and normalized language from the already-extracted blocks, pairing in
// document order, so displayed language always agrees with the block index;
// the captured text is the fallback once the pairing is exhausted.
func rewrapCodeBlocks(html string, blocks []CodeBlock) string {
	next := 0
	return fencedRegionPattern.ReplaceAllStringFunc(html, func(region string) string {
		m := fencedRegionPattern.FindStringSubmatch(region)
		language := NormalizeLanguage(m[1])
		code := m[2]
		id := ""
		if strings.TrimSpace(code) != "" && next < len(blocks) {
			language = blocks[next].Language
			code = blocks[next].Code
			id = blocks[next].ID
			next++
		}
		return renderCodeBlock(id, language, code)
	})
}

// renderCodeBlock builds the structured block HTML. The copy control is only
// attached when the region maps to a recorded block.
func renderCodeBlock(id, language, code string) string {
	var b strings.Builder
	b.WriteString(`<div class="code-block"><div class="code-block-header"><span class="code-block-lang">`)
	b.WriteString(EscapeHTML(language))
	b.WriteString(`</span>`)
	if id != "" {
		b.WriteString(`<button class="copy-button" data-code-id="`)
		b.WriteString(id)
		b.WriteString(`">Copy</button>`)
	}
	b.WriteString(`</div><pre><code class="language-`)
	b.WriteString(EscapeHTML(language))
	b.WriteString(`">`)
	b.WriteString(EscapeHTML(code))
	b.WriteString(`</code></pre></div>`)
	return b.String()
}

// wrapCollapsibleSections is reserved for structural wrapping of section
// boundaries into toggleable regions. It currently passes the HTML through
// unchanged; section semantics are owned by the partitioner.
func wrapCollapsibleSections(html string) string {
	return html
}

// ensureCopyButtons is a placeholder: copy controls are embedded by
// rewrapCodeBlocks and must not be duplicated here.
func ensureCopyButtons(html string) string {
	return html
}

// tocBlock renders the table-of-contents block prepended to the fragment,
// one link per entry, indentation driven by heading level.
func tocBlock(entries []TocEntry) string {
	var b strings.Builder
	b.WriteString(`<nav class="toc"><h2 class="toc-title">Table of Contents</h2><div class="toc-list">`)
	for _, e := range entries {
		indent := float64(e.Level-1) * 1.5
		b.WriteString(`<div class="toc-item"`)
		if indent > 0 {
			fmt.Fprintf(&b, ` style="padding-left:%.1fem"`, indent)
		}
		b.WriteString(`><a href="#`)
		b.WriteString(EscapeHTML(e.Anchor))
		b.WriteString(`">`)
		b.WriteString(EscapeHTML(e.Title))
		b.WriteString(`</a></div>`)
	}
	b.WriteString(`</div></nav>`)
	return b.String()
}

// wrap encloses the fragment in the labeled container with the style payload
// first and the inert interaction script last.
func (a *EnrichmentAssembler) wrap(html string) string {
	var b strings.Builder
	b.WriteString(`<div class="markdown-content">`)
	b.WriteString("<style>")
	b.WriteString(a.style)
	b.WriteString("</style>")
	b.WriteString(html)
	b.WriteString("<script>")
	b.WriteString(a.script)
	b.WriteString("</script></div>")
	return b.String()
}
