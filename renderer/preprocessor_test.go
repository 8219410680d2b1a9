package renderer

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestPlain(t *testing.T) {
	sources, err := Includes("../testdata/preprocessor/include-none.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 {
		t.Fatalf("unexpected number of sources: exp %v, got %v", 1, len(sources))
	}
}

func TestIncludeSingle(t *testing.T) {
	sources, err := Includes("../testdata/preprocessor/include-single.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 2 {
		t.Fatalf("unexpected number of sources: exp %v, got %v", 2, len(sources))
	}
}

func TestIncludeRecursive(t *testing.T) {
	sources, err := Includes("../testdata/preprocessor/include-recursive.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 3 {
		t.Fatalf("unexpected number of sources: exp %v, got %v", 3, len(sources))
	}
}

func TestStopRecursionCycle(t *testing.T) {
	sources, err := Includes("../testdata/preprocessor/include-cycle.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 {
		t.Fatalf("unexpected number of sources: exp %v, got %v", 1, len(sources))
	}
}

func TestStopRecursionMutualCycle(t *testing.T) {
	sources, err := Includes("../testdata/preprocessor/include-cycle-a.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 2 {
		t.Fatalf("unexpected number of sources: exp %v, got %v", 2, len(sources))
	}
	if filepath.Base(sources[1].Filename) != "include-cycle-a.glsl" {
		t.Fatalf("the including file should come last, got %v", sources)
	}
}

func TestIncludeOrder(t *testing.T) {
	sources, err := Includes("../testdata/preprocessor/include-recursive.glsl")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range sources {
		names = append(names, filepath.Base(s.Filename))
	}
	exp := []string{"include-none.glsl", "include-single.glsl", "include-recursive.glsl"}
	if !reflect.DeepEqual(names, exp) {
		t.Fatalf("unexpected order: exp %v, got %v", exp, names)
	}
}

func TestIncludeMissing(t *testing.T) {
	if _, err := Includes("../testdata/preprocessor/does-not-exist.glsl"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
