package mdview

import (
	"github.com/alnah/go-mdview/internal/assets"
	"github.com/alnah/go-mdview/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.SectionPartitioner = pipeline.HeadingPartitioner{}
	_ pipeline.CodeBlockExtractor = pipeline.FenceExtractor{}
	_ pipeline.TOCBuilder         = pipeline.HeadingTOCBuilder{}
	_ pipeline.InlineConverter    = pipeline.RegexConverter{}
	_ pipeline.Assembler          = (*pipeline.EnrichmentAssembler)(nil)
)

// Renderer orchestrates the rendering pipeline. Create with NewRenderer and
// call RenderContent or RenderMarkdown; a Renderer holds no per-call state
// and is safe for concurrent use.
type Renderer struct {
	opts       Options
	sections   pipeline.SectionPartitioner
	codeBlocks pipeline.CodeBlockExtractor
	toc        pipeline.TOCBuilder
	inline     pipeline.InlineConverter
	assembler  pipeline.Assembler
}

// NewRenderer creates a Renderer with default options, customized by opts.
func NewRenderer(opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		opts:       o,
		sections:   pipeline.HeadingPartitioner{},
		codeBlocks: pipeline.FenceExtractor{},
		toc:        pipeline.HeadingTOCBuilder{},
		inline:     pipeline.RegexConverter{},
		assembler:  pipeline.NewEnrichmentAssembler(assets.StylePayload(), assets.ScriptPayload()),
	}
}

// RenderContent renders content into the full bundle: HTML fragment plus the
// section, code block, and TOC indexes. Line endings are normalized and the
// input truncated to the configured cap before any pass runs, so all four
// outputs observe the same text. Well-formed or not, every input produces a
// result; malformed constructs degrade structurally instead of erroring.
func (r *Renderer) RenderContent(content string) RenderResult {
	content = pipeline.NormalizeLineEndings(content)
	content = pipeline.Truncate(content, r.opts.MaxContentLength)

	sections := r.sections.Partition(content)
	blocks := r.codeBlocks.Extract(content)

	var toc []pipeline.TocEntry
	if r.opts.TableOfContents {
		toc = r.toc.Build(content)
	}

	base := r.inline.Convert(content)
	html := r.assembler.Assemble(base, blocks, toc, pipeline.Config{
		SyntaxHighlighting:  r.opts.SyntaxHighlighting,
		CollapsibleSections: r.opts.CollapsibleSections,
		CopyButtons:         r.opts.CopyButtons,
		TableOfContents:     r.opts.TableOfContents,
	})

	return RenderResult{
		HTML:            html,
		TableOfContents: toTocEntries(toc),
		CodeBlocks:      toCodeBlocks(blocks),
		Sections:        toSections(sections),
	}
}

// RenderMarkdown renders content and returns only the HTML fragment.
func (r *Renderer) RenderMarkdown(content string) string {
	return r.RenderContent(content).HTML
}

// RenderContent renders content with a one-off Renderer.
func RenderContent(content string, opts ...Option) RenderResult {
	return NewRenderer(opts...).RenderContent(content)
}

// RenderMarkdown renders content with a one-off Renderer and returns only
// the HTML fragment.
func RenderMarkdown(content string, opts ...Option) string {
	return NewRenderer(opts...).RenderMarkdown(content)
}

// toSections converts internal pipeline sections to the public type.
func toSections(in []pipeline.Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = Section(s)
	}
	return out
}

// toCodeBlocks converts internal pipeline code blocks to the public type.
func toCodeBlocks(in []pipeline.CodeBlock) []CodeBlock {
	if in == nil {
		return nil
	}
	out := make([]CodeBlock, len(in))
	for i, b := range in {
		out[i] = CodeBlock(b)
	}
	return out
}

// toTocEntries converts internal pipeline TOC entries to the public type.
func toTocEntries(in []pipeline.TocEntry) []TocEntry {
	if in == nil {
		return nil
	}
	out := make([]TocEntry, len(in))
	for i, e := range in {
		out[i] = TocEntry(e)
	}
	return out
}
