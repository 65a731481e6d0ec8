// Package pipeline implements the markdown-to-HTML rendering stages.
//
// The stages are independent and composable:
//   - Line scanning (normalization, splitting, truncation)
//   - Section partitioning at heading boundaries
//   - Fenced code block extraction (two-state line machine)
//   - Table-of-contents building with slugged anchors
//   - Language tag normalization (single source of truth for display names)
//   - Inline markdown conversion (ordered regex passes)
//   - HTML assembly (enrichment passes and final wrapping)
//
// Every stage is a pure transformation over strings: no I/O, no shared
// mutable state, no error surface. Malformed input degrades structurally
// (an unterminated fence stays paragraph text) rather than failing.
package pipeline
