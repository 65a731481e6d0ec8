package pipeline

import (
	"strings"
	"testing"
)

func TestHeadingPartitioner_Partition(t *testing.T) {
	t.Parallel()

	p := HeadingPartitioner{}

	t.Run("basic two sections", func(t *testing.T) {
		t.Parallel()
		got := p.Partition("# One\nbody one\n\n## Two\nbody two")
		if len(got) != 2 {
			t.Fatalf("got %d sections, want 2", len(got))
		}
		if got[0].ID != "section-1" || got[1].ID != "section-2" {
			t.Errorf("ids = %q, %q", got[0].ID, got[1].ID)
		}
		if got[0].Title != "One" || got[1].Title != "Two" {
			t.Errorf("titles = %q, %q", got[0].Title, got[1].Title)
		}
		if got[0].Content != "# One\nbody one" {
			t.Errorf("content[0] = %q", got[0].Content)
		}
		if got[1].Content != "## Two\nbody two" {
			t.Errorf("content[1] = %q", got[1].Content)
		}
	})

	t.Run("level one never collapsible", func(t *testing.T) {
		t.Parallel()
		got := p.Partition("# Top\n## Nested\n### Deeper")
		if got[0].Collapsible {
			t.Error("level-1 section must not be collapsible")
		}
		if !got[1].Collapsible || !got[2].Collapsible {
			t.Error("level-2+ sections must be collapsible")
		}
		for _, s := range got {
			if s.Collapsed {
				t.Errorf("section %s starts collapsed", s.ID)
			}
		}
	})

	t.Run("content before first heading dropped", func(t *testing.T) {
		t.Parallel()
		got := p.Partition("preamble text\nmore preamble\n\n# First\nbody")
		if len(got) != 1 {
			t.Fatalf("got %d sections, want 1", len(got))
		}
		if strings.Contains(got[0].Content, "preamble") {
			t.Errorf("preamble leaked into section: %q", got[0].Content)
		}
	})

	t.Run("consecutive headings each produce a section", func(t *testing.T) {
		t.Parallel()
		got := p.Partition("# A\n# B\n# C")
		if len(got) != 3 {
			t.Fatalf("got %d sections, want 3", len(got))
		}
		for i, want := range []string{"# A", "# B", "# C"} {
			if got[i].Content != want {
				t.Errorf("content[%d] = %q, want %q", i, got[i].Content, want)
			}
		}
	})

	t.Run("no headings yields no sections", func(t *testing.T) {
		t.Parallel()
		if got := p.Partition("just text\nno headings here"); len(got) != 0 {
			t.Errorf("got %d sections, want 0", len(got))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		if got := p.Partition(""); len(got) != 0 {
			t.Errorf("got %d sections, want 0", len(got))
		}
	})

	t.Run("seven hashes is not a heading", func(t *testing.T) {
		t.Parallel()
		if got := p.Partition("####### not a heading"); len(got) != 0 {
			t.Errorf("got %d sections, want 0", len(got))
		}
	})

	t.Run("hash without space is not a heading", func(t *testing.T) {
		t.Parallel()
		if got := p.Partition("#hashtag"); len(got) != 0 {
			t.Errorf("got %d sections, want 0", len(got))
		}
	})
}

// Concatenating section contents in order, with the trimmed blank lines
// restored, reconstructs the document from its first heading onward.
func TestHeadingPartitioner_Reconstruction(t *testing.T) {
	t.Parallel()

	doc := "intro\n\n# A\nbody a\n\n## B\nbody b\nmore b\n\n# C"
	got := HeadingPartitioner{}.Partition(doc)

	contents := make([]string, len(got))
	for i, s := range got {
		contents[i] = s.Content
	}
	reconstructed := strings.Join(contents, "\n\n")

	first := strings.Index(doc, "# A")
	want := strings.TrimSpace(doc[first:])
	if reconstructed != want {
		t.Errorf("reconstructed = %q, want %q", reconstructed, want)
	}
}
