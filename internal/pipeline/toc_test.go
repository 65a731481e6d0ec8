package pipeline

import "testing"

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Title", want: "title"},
		{name: "spaces to hyphens", title: "Getting Started", want: "getting-started"},
		{name: "punctuation stripped", title: "Setup!", want: "setup"},
		{name: "symbols collapse surrounding spaces", title: "A & B", want: "a-b"},
		{name: "existing hyphens kept", title: "re-render", want: "re-render"},
		{name: "whitespace runs collapse", title: "a   b", want: "a-b"},
		{name: "surrounding whitespace trimmed", title: "  padded  ", want: "padded"},
		{name: "digits kept", title: "Step 2", want: "step-2"},
		{name: "only punctuation", title: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slug(tt.title); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestHeadingTOCBuilder_Build(t *testing.T) {
	t.Parallel()

	b := HeadingTOCBuilder{}

	t.Run("order and levels follow the source", func(t *testing.T) {
		t.Parallel()
		got := b.Build("# One\ntext\n### Three\n## Two")
		if len(got) != 3 {
			t.Fatalf("got %d entries, want 3", len(got))
		}
		wantLevels := []int{1, 3, 2}
		wantTitles := []string{"One", "Three", "Two"}
		for i := range got {
			if got[i].Level != wantLevels[i] {
				t.Errorf("entry %d level = %d, want %d", i, got[i].Level, wantLevels[i])
			}
			if got[i].Title != wantTitles[i] {
				t.Errorf("entry %d title = %q, want %q", i, got[i].Title, wantTitles[i])
			}
		}
		if got[0].ID != "heading-1" || got[2].ID != "heading-3" {
			t.Errorf("ids = %q ... %q", got[0].ID, got[2].ID)
		}
	})

	t.Run("duplicate titles keep duplicate anchors", func(t *testing.T) {
		t.Parallel()
		got := b.Build("## Setup\nx\n## Setup")
		if len(got) != 2 {
			t.Fatalf("got %d entries, want 2", len(got))
		}
		if got[0].Anchor != "setup" || got[1].Anchor != "setup" {
			t.Errorf("anchors = %q, %q, want both %q", got[0].Anchor, got[1].Anchor, "setup")
		}
	})

	t.Run("anchor uses the slug rule", func(t *testing.T) {
		t.Parallel()
		got := b.Build("## API: Endpoints & Auth")
		if got[0].Anchor != "api-endpoints-auth" {
			t.Errorf("anchor = %q", got[0].Anchor)
		}
	})

	t.Run("no headings", func(t *testing.T) {
		t.Parallel()
		if got := b.Build("plain text only"); len(got) != 0 {
			t.Errorf("got %d entries, want 0", len(got))
		}
	})
}
