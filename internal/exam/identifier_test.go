package exam

import "testing"

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"Q1", "1"},
		{"Q.5a)", "5a"},
		{" 5A:", "5a"},
		{"Question 12", "12"},
		{"(3b)", "3b"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeIdentifier(c.in); got != c.want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParentIdentifier(t *testing.T) {
	if got := ParentIdentifier("5a"); got != "5" {
		t.Errorf("got %q, want 5", got)
	}
	if got := ParentIdentifier("12"); got != "12" {
		t.Errorf("got %q, want 12", got)
	}
	if got := ParentIdentifier("Q.3b"); got != "3" {
		t.Errorf("got %q, want 3", got)
	}
}

func TestIsSubPart(t *testing.T) {
	if !IsSubPart("5a") {
		t.Error("5a should be a sub-part")
	}
	if IsSubPart("5") {
		t.Error("5 should not be a sub-part")
	}
	if IsSubPart("") {
		t.Error("empty identifier should not be a sub-part")
	}
}
