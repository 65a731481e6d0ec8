package pipeline

import (
	"fmt"
	"strings"
)

// fenceMarker delimits fenced code regions. Any line beginning with it
// toggles the fence state, regardless of trailing content.
const fenceMarker = "```"

// CodeBlock is a balanced fenced code region. See the public type in the
// root package for field semantics.
type CodeBlock struct {
	ID        string
	Language  string
	Code      string
	StartLine int
	EndLine   int
}

// CodeBlockExtractor defines the contract for finding fenced code regions.
type CodeBlockExtractor interface {
	Extract(content string) []CodeBlock
}

// FenceExtractor is a two-state machine (outside-fence, inside-fence)
// walking lines in order.
type FenceExtractor struct{}

// Extract returns the balanced, non-empty fenced blocks in document order.
// The trailing text on an opening fence is the language tag, normalized
// through the alias table. A block whose accumulated code is empty is
// discarded, as is a fence still open at end of input.
func (FenceExtractor) Extract(content string) []CodeBlock {
	var blocks []CodeBlock
	var code strings.Builder
	var language string
	var startLine int
	inside := false

	for i, line := range SplitLines(content) {
		if strings.HasPrefix(line, fenceMarker) {
			if !inside {
				inside = true
				language = NormalizeLanguage(strings.TrimPrefix(line, fenceMarker))
				startLine = i + 1
				code.Reset()
				continue
			}
			inside = false
			if code.Len() > 0 {
				blocks = append(blocks, CodeBlock{
					ID:        fmt.Sprintf("code-block-%d", len(blocks)+1),
					Language:  language,
					Code:      code.String(),
					StartLine: startLine,
					EndLine:   i + 1,
				})
			}
			continue
		}
		if inside {
			code.WriteString(line)
			code.WriteByte('\n')
		}
	}

	return blocks
}
