package assets

import (
	"strings"
	"testing"
)

func TestStylePayload(t *testing.T) {
	t.Parallel()

	css := StylePayload()
	for _, want := range []string{
		".markdown-content",
		".code-block",
		".copy-button",
		".toc",
		".chroma", // generated highlight theme appended to the base sheet
	} {
		if !strings.Contains(css, want) {
			t.Errorf("StylePayload missing %q", want)
		}
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css := HighlightCSS()
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS missing token classes: %q", truncateForLog(css))
	}
	if !strings.Contains(css, ".markdown-content pre") {
		t.Errorf("HighlightCSS missing container rules: %q", truncateForLog(css))
	}
	if !strings.Contains(css, "background-color") {
		t.Errorf("HighlightCSS missing background rule: %q", truncateForLog(css))
	}

	if HighlightCSS() != css {
		t.Error("HighlightCSS not stable across calls")
	}
}

func TestScriptPayload(t *testing.T) {
	t.Parallel()

	js := ScriptPayload()
	for _, want := range []string{
		"navigator.clipboard",
		"copy-button",
		"scrollIntoView",
		"DOMContentLoaded",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("ScriptPayload missing %q", want)
		}
	}
}

func truncateForLog(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
