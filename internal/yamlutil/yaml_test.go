package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		var got sample
		if err := UnmarshalStrict([]byte("name: docs\ncount: 3\n"), &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "docs" || got.Count != 3 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		var got sample
		err := UnmarshalStrict([]byte("name: docs\nbogus: 1\n"), &got)
		if err == nil {
			t.Fatal("expected strict mode to reject unknown field")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		var got sample
		if err := UnmarshalStrict(nil, &got); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("got %v, want ErrEmptyInput", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		if err := UnmarshalStrict([]byte("name: x\n"), nil); !errors.Is(err, ErrNilTarget) {
			t.Errorf("got %v, want ErrNilTarget", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()
		var got sample
		data := []byte("name: " + strings.Repeat("a", MaxInputSize) + "\n")
		if err := UnmarshalStrict(data, &got); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("got %v, want ErrInputTooLarge", err)
		}
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(sample{Name: "docs", Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"name: docs", "count: 2"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
