package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle names the chroma style the payload is generated from.
const highlightStyle = "github"

var (
	highlightOnce sync.Once
	highlightCSS  string
)

// HighlightCSS returns the syntax-highlight stylesheet: the class-based
// chroma theme plus container rules derived from the theme's background
// colors, so code blocks match the palette whether or not the host
// post-highlights them. Generated once at first use and fixed afterwards.
func HighlightCSS() string {
	highlightOnce.Do(func() {
		style := styles.Get(highlightStyle)
		if style == nil {
			style = styles.Fallback
		}

		formatter := chromahtml.New(chromahtml.WithClasses(true))
		var buf bytes.Buffer
		if err := formatter.WriteCSS(&buf, style); err == nil {
			highlightCSS = buf.String()
		}
		highlightCSS += containerRules(style)
	})
	return highlightCSS
}

// containerRules derives pre/header colors from the style's background
// entry, falling back to neutral defaults when the style leaves them unset.
func containerRules(style *chroma.Style) string {
	background := "#f6f8fa"
	foreground := "#24292f"

	entry := style.Get(chroma.Background)
	if entry.Background.IsSet() {
		background = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		foreground = entry.Colour.String()
	}

	return fmt.Sprintf(
		"\n.markdown-content pre{background-color:%s;color:%s;}\n",
		background, foreground,
	)
}
