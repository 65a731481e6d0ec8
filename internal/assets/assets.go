// Package assets carries the inert payloads appended to every rendered
// fragment: the static stylesheet, the chroma-generated highlight theme, and
// the client interaction script. The renderer treats all of them as opaque
// strings; the interaction script in particular is emitted for the host's
// execution environment and never run here.
package assets

import _ "embed"

//go:embed styles.css
var baseCSS string

//go:embed interactions.js
var interactionScript string

// StylePayload returns the full styling payload: the static stylesheet plus
// the highlight theme. Fixed for the process lifetime.
func StylePayload() string {
	return baseCSS + "\n" + HighlightCSS()
}

// ScriptPayload returns the client interaction script (clipboard copy,
// smooth scroll, section toggles).
func ScriptPayload() string {
	return interactionScript
}
