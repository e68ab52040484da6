package interaction

import "testing"

func TestRegistryFirstMatchWins(t *testing.T) {
	r := NewRegistry(0)
	r.Add("dup", 1)
	r.Add("other", 2)
	r.Add("dup", 3)
	el, ok := r.Lookup("dup")
	if !ok || el != 1 {
		t.Fatalf("expected first registered element, got %v (ok=%v)", el, ok)
	}
	if r.Len() != 3 {
		t.Fatalf("expected duplicates kept, got len %d", r.Len())
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	r := NewRegistry(0)
	if _, ok := r.Lookup("nope"); ok {
		t.Fatalf("expected missing lookup")
	}
	var nilRegistry *Registry
	if _, ok := nilRegistry.Lookup("nope"); ok {
		t.Fatalf("expected nil registry lookup to miss")
	}
	if nilRegistry.Entries() != nil || nilRegistry.Len() != 0 {
		t.Fatalf("expected nil registry to be empty")
	}
}

func TestRegistryEntriesIsACopy(t *testing.T) {
	r := NewRegistry(1)
	r.Add("a", 1)
	entries := r.Entries()
	entries[0].Label = "changed"
	if el, ok := r.Lookup("a"); !ok || el != 1 {
		t.Fatalf("expected registry unaffected by caller mutation")
	}
}
