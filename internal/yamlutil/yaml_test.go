package yamlutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()
		var out map[string]any
		if err := Unmarshal(nil, &out); !errors.Is(err, ErrNilData) {
			t.Errorf("got %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("got %v, want ErrNilDestination", err)
		}
	})

	t.Run("input too large", func(t *testing.T) {
		t.Parallel()
		data := bytes.Repeat([]byte("a"), MaxInputSize+1)
		var out any
		if err := Unmarshal(data, &out); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("got %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		var out map[string]any
		if err := Unmarshal([]byte("a: [unclosed"), &out); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("struct destination", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Name string `yaml:"name"`
		}
		if err := Unmarshal([]byte("name: Ada"), &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Name != "Ada" {
			t.Errorf("Name = %q, want %q", out.Name, "Ada")
		}
	})

	t.Run("untyped mappings keep order", func(t *testing.T) {
		t.Parallel()
		var out any
		err := Unmarshal([]byte("zulu: 1\nalpha: 2\nmike: 3"), &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ms, ok := out.(yaml.MapSlice)
		if !ok {
			t.Fatalf("decoded as %T, want yaml.MapSlice", out)
		}
		want := []string{"zulu", "alpha", "mike"}
		if len(ms) != len(want) {
			t.Fatalf("got %d keys, want %d", len(ms), len(want))
		}
		for i, item := range ms {
			if item.Key != want[i] {
				t.Errorf("key[%d] = %v, want %q", i, item.Key, want[i])
			}
		}
	})
}
