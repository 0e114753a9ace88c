package registry

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddNormalizesAndDedupes(t *testing.T) {
	r := New()
	r.Add("  Hello   World ")
	r.Add("Hello World")
	r.Add("Hello\nWorld")
	if r.Len() != 1 {
		t.Fatalf("expected 1 key after equivalent adds, got %d", r.Len())
	}
	if !r.Has("Hello World") {
		t.Fatalf("expected normalized key %q to be present", "Hello World")
	}
}

func TestAddReturnsKey(t *testing.T) {
	r := New()
	if got := r.Add(" Zapisz  zmiany "); got != "Zapisz zmiany" {
		t.Fatalf("Add returned %q, want %q", got, "Zapisz zmiany")
	}
	if got := r.Add("   "); got != "" {
		t.Fatalf("Add of whitespace returned %q, want empty", got)
	}
	if r.Len() != 1 {
		t.Fatalf("whitespace-only input must not register a key, have %d", r.Len())
	}
}

func TestKeysSorted(t *testing.T) {
	r := New()
	for _, s := range []string{"cebula", "Anuluj", "Zapisz", "burak"} {
		r.Add(s)
	}
	want := []string{"Anuluj", "Zapisz", "burak", "cebula"}
	if diff := cmp.Diff(want, r.Keys()); diff != "" {
		t.Fatalf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONSortedAndUnescaped(t *testing.T) {
	r := New()
	r.Add("Zażółć gęślą jaźń")
	r.Add("Anuluj")
	r.Add(`cena < 100 & "tanio"`)

	var b strings.Builder
	if err := r.WriteJSON(&b); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	want := `{
    "Anuluj": "Anuluj",
    "Zażółć gęślą jaźń": "Zażółć gęślą jaźń",
    "cena < 100 & \"tanio\"": "cena < 100 & \"tanio\""
}
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Fatalf("JSON mismatch (-want +got):\n%s", diff)
	}
}
