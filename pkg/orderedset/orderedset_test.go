package orderedset

import (
	"reflect"
	"testing"
)

func TestSet_AddPreservesFirstSeenOrder(t *testing.T) {
	s := New()

	if !s.Add("b") {
		t.Fatal("expected first Add to report true")
	}
	if !s.Add("a") {
		t.Fatal("expected first Add to report true")
	}
	if s.Add("b") {
		t.Fatal("expected duplicate Add to report false")
	}

	got := s.Items()
	want := []string{"b", "a"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSet_ItemsReturnsCopy(t *testing.T) {
	s := New()
	s.AddAll([]string{"x", "y"})

	items := s.Items()
	items[0] = "mutated"

	if s.Items()[0] != "x" {
		t.Fatal("mutating the returned slice must not affect the set")
	}
}

func TestSet_ContainsAndLen(t *testing.T) {
	s := New()
	s.AddAll([]string{"a", "b", "a", "c", "b"})

	if s.Len() != 3 {
		t.Fatalf("expected 3 distinct items, got %d", s.Len())
	}
	if !s.Contains("c") {
		t.Fatal("expected set to contain c")
	}
	if s.Contains("d") {
		t.Fatal("did not expect set to contain d")
	}
}

func TestDedup(t *testing.T) {
	got := Dedup([]string{"f: a", "f: b", "f: a", "g: a"})
	want := []string{"f: a", "f: b", "g: a"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDedup_Empty(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
