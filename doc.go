// Package mdview renders lightweight markdown-like text into an enriched,
// interactive HTML fragment plus three derived indexes: logical sections,
// embedded code blocks, and table-of-contents entries.
//
// # Quick Start
//
// Create a renderer and render content:
//
//	r := mdview.NewRenderer()
//	result := r.RenderContent("# Hello\n\nWorld")
//	fmt.Println(result.HTML)
//
// The result carries the HTML fragment together with the section, code block,
// and TOC indexes computed from the same input. Use RenderMarkdown when only
// the HTML is needed:
//
//	html := mdview.RenderMarkdown("# Hello\n\nWorld")
//
// # Rendering Pipeline
//
// Each render call runs these stages over the (possibly truncated) input:
//
//  1. Line-ending normalization and optional truncation
//  2. Section partitioning, code block extraction, TOC building (independent
//     line scans over the same text)
//  3. Inline markdown conversion (regex passes: headings, bold, italic,
//     inline code, links, lists, paragraphs)
//  4. HTML assembly (syntax-highlight re-wrapping, TOC injection, static
//     styling, client interaction script)
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r := mdview.NewRenderer(
//	    mdview.WithTableOfContents(false),
//	    mdview.WithMaxContentLength(10000),
//	)
//
// # Concurrency
//
// A render call is a pure, synchronous transformation: no I/O, no shared
// mutable state, no suspension points. A single Renderer is safe for
// concurrent use from multiple goroutines.
//
// # Supported Syntax
//
// ATX headings (# through ######), fenced code blocks with an optional
// language tag, bold, italic, inline code, links, and unordered/ordered list
// markers. This is a best-effort converter for that fixed subset, not a
// CommonMark implementation; nesting beyond what the fixed pass order
// naturally produces is not supported.
//
// The emitted fragment ends with an inert interaction script (clipboard copy,
// smooth scrolling, section toggling). The package never executes it; running
// it is the embedding host's concern.
package mdview
