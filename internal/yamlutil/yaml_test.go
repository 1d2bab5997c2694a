package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal([]byte("name: x\ncount: 3\n"), &doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Name != "x" || doc.Count != 3 {
			t.Errorf("decoded = %+v", doc)
		}
	})

	t.Run("unknown field tolerated", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal([]byte("name: x\nextra: y\n"), &doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal(nil, &doc); !errors.Is(err, ErrNilData) {
			t.Fatalf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := Unmarshal([]byte("name: x\n"), nil); !errors.Is(err, ErrNilDestination) {
			t.Fatalf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("input too large", func(t *testing.T) {
		var doc testDoc
		big := []byte("name: " + strings.Repeat("x", MaxInputSize))
		if err := Unmarshal(big, &doc); !errors.Is(err, ErrInputTooLarge) {
			t.Fatalf("error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Run("unknown field rejected", func(t *testing.T) {
		var doc testDoc
		if err := UnmarshalStrict([]byte("name: x\nextra: y\n"), &doc); err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("valid document", func(t *testing.T) {
		var doc testDoc
		if err := UnmarshalStrict([]byte("name: x\n"), &doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
