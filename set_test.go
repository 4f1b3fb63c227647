package seasonal

import (
	"testing"
)

func TestStringSet(t *testing.T) {
	a := NewStringSet()
	a.Add("cat")
	a.Add("dog")
	a.Add("fish")
	a.Add("dog")
	if len(a) != 3 || !a.Equals([]string{"cat", "dog", "fish"}) {
		t.Errorf("Got a = %v", a)
	}

	a.Join(a)
	if len(a) != 3 || !a.Equals([]string{"cat", "dog", "fish"}) {
		t.Errorf("Got a = %v", a)
	}
	b := a.Intersect(a)
	if len(b) != 3 || !b.Equals([]string{"cat", "dog", "fish"}) {
		t.Errorf("Got b = %v", b)
	}
	a.Remove(a)
	if len(a) != 0 || len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a)
	}
}

func TestStringSetClassAttribute(t *testing.T) {
	tests := []struct {
		list string
		want string
	}{
		{"plotline", "plotline"},
		{"plotline highlighted", "highlighted plotline"},
		{"  tooltip   tooltip ", "tooltip"},
		{"", ""},
	}
	for i, tc := range tests {
		if got := ParseStringSet(tc.list).String(); got != tc.want {
			t.Errorf("%d %q: got %q, want %q", i, tc.list, got, tc.want)
		}
	}
}
