package pipeline

import "strings"

// DefaultLanguage is used when a fence carries no language tag.
const DefaultLanguage = "text"

// languageAliases maps free-form fence tags to canonical display names.
// Both the code block extractor and the syntax-highlight re-wrapping consult
// this table, so block language and displayed language never diverge.
// Immutable after init.
var languageAliases = map[string]string{
	"js":         "javascript",
	"jsx":        "javascript",
	"javascript": "javascript",
	"ts":         "typescript",
	"tsx":        "typescript",
	"typescript": "typescript",
	"py":         "python",
	"python":     "python",
	"rb":         "ruby",
	"ruby":       "ruby",
	"sh":         "bash",
	"bash":       "bash",
	"zsh":        "bash",
	"shell":      "bash",
	"yml":        "yaml",
	"yaml":       "yaml",
	"md":         "markdown",
	"markdown":   "markdown",
	"docker":     "dockerfile",
	"dockerfile": "dockerfile",
	"golang":     "go",
	"go":         "go",
	"c++":        "cpp",
	"cpp":        "cpp",
	"cs":         "csharp",
	"csharp":     "csharp",
	"kt":         "kotlin",
	"kotlin":     "kotlin",
	"rs":         "rust",
	"rust":       "rust",
	"txt":        "text",
	"plaintext":  "text",
	"text":       "text",
	"json":       "json",
	"html":       "html",
	"css":        "css",
	"sql":        "sql",
	"xml":        "xml",
	"toml":       "toml",
}

// NormalizeLanguage lowercases and trims a language tag and resolves it
// through the alias table. Unknown tags pass through unchanged; an empty tag
// yields DefaultLanguage.
func NormalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return DefaultLanguage
	}
	if canonical, ok := languageAliases[tag]; ok {
		return canonical
	}
	return tag
}
