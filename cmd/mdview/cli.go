package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	mdview "github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file given")
	ErrInvalidExtension = errors.New("input must have a .md or .markdown extension")
	ErrReadInput        = errors.New("failed to read input file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrWriteMeta        = errors.New("failed to write meta file")
	ErrInvalidMaxLength = errors.New("max-length must be positive")
)

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	out         string
	meta        string
	config      string
	noHighlight bool
	noCollapse  bool
	noCopy      bool
	noTOC       bool
	maxLength   int
	verbose     bool
	version     bool
}

// parseFlags parses args into flags and positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.out, "out", "o", "", "output HTML path (default: input with .html; - for stdout)")
	fs.StringVar(&f.meta, "meta", "", "also write sections/code blocks/TOC indexes as YAML")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax-highlight re-wrapping")
	fs.BoolVar(&f.noCollapse, "no-collapse", false, "disable the collapsible-section pass")
	fs.BoolVar(&f.noCopy, "no-copy", false, "disable the copy-button pass")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable the table of contents")
	fs.IntVar(&f.maxLength, "max-length", 0, "maximum content length before truncation (0 = config default)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// run parses arguments, renders the input file, and writes the outputs.
func run(args []string, stdout io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintln(stdout, Version)
		return nil
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}
	if flags.maxLength < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxLength, flags.maxLength)
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		cfg, err = LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	renderer := mdview.NewRenderer(renderOptions(cfg, flags)...)
	result := renderer.RenderContent(string(content))

	outPath := resolveOutputPath(inputPath, flags.out, cfg.Output.Dir)
	if outPath == "-" {
		fmt.Fprintln(stdout, result.HTML)
	} else {
		if err := os.WriteFile(outPath, []byte(result.HTML), 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s (%d sections, %d code blocks, %d TOC entries)\n",
				outPath, len(result.Sections), len(result.CodeBlocks), len(result.TableOfContents))
		}
	}

	if flags.meta != "" {
		if err := writeMeta(flags.meta, result); err != nil {
			return err
		}
	}

	return nil
}

// renderOptions merges config defaults with flag overrides. Flags only
// disable passes; the config supplies the baseline.
func renderOptions(cfg *Config, flags *cliFlags) []mdview.Option {
	opts := []mdview.Option{
		mdview.WithSyntaxHighlighting(cfg.Render.SyntaxHighlighting && !flags.noHighlight),
		mdview.WithCollapsibleSections(cfg.Render.CollapsibleSections && !flags.noCollapse),
		mdview.WithCopyButtons(cfg.Render.CopyButtons && !flags.noCopy),
		mdview.WithTableOfContents(cfg.Render.TableOfContents && !flags.noTOC),
	}
	maxLength := cfg.Render.MaxContentLength
	if flags.maxLength > 0 {
		maxLength = flags.maxLength
	}
	if maxLength > 0 {
		opts = append(opts, mdview.WithMaxContentLength(maxLength))
	}
	return opts
}

// validateMarkdownExtension checks the input file extension.
func validateMarkdownExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveOutputPath picks the output location: explicit flag first, then the
// configured output directory, then beside the input.
func resolveOutputPath(inputPath, outFlag, outputDir string) string {
	if outFlag != "" {
		return outFlag
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".html"
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(inputPath), base)
}

// metaDocument is the YAML shape of the derived indexes.
type metaDocument struct {
	Sections        []mdview.Section   `yaml:"sections"`
	CodeBlocks      []mdview.CodeBlock `yaml:"codeBlocks"`
	TableOfContents []mdview.TocEntry  `yaml:"tableOfContents"`
}

// writeMeta writes the three derived indexes as a YAML document.
func writeMeta(path string, result mdview.RenderResult) error {
	doc := metaDocument{
		Sections:        result.Sections,
		CodeBlocks:      result.CodeBlocks,
		TableOfContents: result.TableOfContents,
	}
	data, err := yamlutil.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMeta, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMeta, err)
	}
	return nil
}
