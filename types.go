package mdview

// DefaultMaxContentLength is the input size cap, in characters (runes),
// applied when no explicit limit is configured. Longer inputs are truncated
// and a truncation notice is appended before any other pass runs.
const DefaultMaxContentLength = 50000

// Options controls which enrichment passes run and how much input is
// accepted. The zero value disables everything; use DefaultOptions for the
// documented defaults.
type Options struct {
	SyntaxHighlighting  bool // re-wrap fenced code into highlighted blocks
	CollapsibleSections bool // reserved structural wrapping (currently a pass-through)
	CopyButtons         bool // placeholder; copy controls come from the highlighting pass
	TableOfContents     bool // compute the TOC index and prepend the TOC block
	MaxContentLength    int  // maximum input length in runes before truncation
}

// DefaultOptions returns the documented defaults: all enrichment passes
// enabled and the default content length cap.
func DefaultOptions() Options {
	return Options{
		SyntaxHighlighting:  true,
		CollapsibleSections: true,
		CopyButtons:         true,
		TableOfContents:     true,
		MaxContentLength:    DefaultMaxContentLength,
	}
}

// Option configures a Renderer.
type Option func(*Options)

// WithSyntaxHighlighting toggles the syntax-highlight re-wrapping pass.
func WithSyntaxHighlighting(enabled bool) Option {
	return func(o *Options) { o.SyntaxHighlighting = enabled }
}

// WithCollapsibleSections toggles the collapsible-section pass. The pass is
// reserved for structural wrapping of section boundaries and currently
// passes the HTML through unchanged.
func WithCollapsibleSections(enabled bool) Option {
	return func(o *Options) { o.CollapsibleSections = enabled }
}

// WithCopyButtons toggles the copy-button pass. Copy controls are embedded by
// the highlighting pass; this pass never duplicates them.
func WithCopyButtons(enabled bool) Option {
	return func(o *Options) { o.CopyButtons = enabled }
}

// WithTableOfContents toggles TOC computation and injection.
func WithTableOfContents(enabled bool) Option {
	return func(o *Options) { o.TableOfContents = enabled }
}

// WithMaxContentLength sets the input length cap in runes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxContentLength(n int) Option {
	if n <= 0 {
		panic("mdview: WithMaxContentLength must be positive")
	}
	return func(o *Options) { o.MaxContentLength = n }
}

// Section is a contiguous, heading-delimited span of the source document.
// Content is the verbatim slice from the heading line up to the next heading
// line, with surrounding blank lines trimmed. Top-level (level-1) sections
// are never collapsible; Collapsed always starts false.
type Section struct {
	ID          string // sequential token: "section-1", "section-2", ...
	Title       string // heading text, whitespace-stripped
	Content     string
	Collapsible bool
	Collapsed   bool
}

// CodeBlock is a balanced fenced code region. Code is the verbatim text
// between the fence markers, one trailing newline per line. StartLine and
// EndLine are 1-based line numbers of the fence markers in the (possibly
// truncated) source. Blocks with no accumulated code are never recorded.
type CodeBlock struct {
	ID        string // sequential token: "code-block-1", ...
	Language  string // normalized tag, "text" when none given
	Code      string
	StartLine int
	EndLine   int
}

// TocEntry is one table-of-contents item. Anchor is a deterministic slug of
// Title; repeated titles produce repeated anchors (no deduplication).
type TocEntry struct {
	ID     string // sequential token: "heading-1", ...
	Level  int    // number of heading markers, 1-6
	Title  string
	Anchor string
}

// RenderResult is the immutable output of one render call. The caller owns
// it exclusively; nothing is shared between calls.
type RenderResult struct {
	HTML            string
	TableOfContents []TocEntry
	CodeBlocks      []CodeBlock
	Sections        []Section
}
