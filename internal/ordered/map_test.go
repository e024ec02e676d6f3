package ordered

import (
	"errors"
	"slices"
	"testing"
)

func TestInsertKeepsOrder(t *testing.T) {
	m := New[string, int](0)
	for i, k := range []string{"c", "a", "b"} {
		if err := m.Insert(k, i); err != nil {
			t.Fatalf("Insert(%q): %v", k, err)
		}
	}

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	if want := []string{"c", "a", "b"}; !slices.Equal(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if got := slices.Collect(m.Values()); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("values = %v", got)
	}
}

func TestInsertDuplicate(t *testing.T) {
	var m Map[string, int]
	if err := m.Insert("a", 1); err != nil {
		t.Fatal(err)
	}
	if err := m.Insert("a", 2); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("second Insert error = %v, want ErrDuplicateKey", err)
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Errorf("Get(a) = %d, want 1 (first value kept)", v)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if m.Has("b") {
		t.Error("Has(b) = true")
	}
}
