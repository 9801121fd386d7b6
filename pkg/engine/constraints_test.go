package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterByLength(t *testing.T) {
	words := []string{"a", "go", "cat", "door", "apple", "mango", "hippo", "résumé"}

	tests := []struct {
		name     string
		length   int
		expected []string
	}{
		{"no matches", 10, nil},
		{"single rune", 1, []string{"a"}},
		{"three runes", 3, []string{"cat"}},
		{"order preserved", 5, []string{"apple", "mango", "hippo"}},
		{"runes not bytes", 6, []string{"résumé"}},
		{"zero length", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByLength(words, tt.length)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FilterByLength(%d) mismatch (-want +got):\n%s", tt.length, diff)
			}
		})
	}
}

func forbid(chars ...rune) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, ch := range chars {
		set[ch] = struct{}{}
	}
	return set
}

func TestApply(t *testing.T) {
	candidates := []string{"apple", "alloy", "allot", "mango"}

	tests := []struct {
		name     string
		cons     func() Constraints
		expected []string
	}{
		{
			name:     "no constraints is identity",
			cons:     func() Constraints { return NewConstraints(5) },
			expected: []string{"apple", "alloy", "allot", "mango"},
		},
		{
			name: "must at first position",
			cons: func() Constraints {
				c := NewConstraints(5)
				c.Must[0] = 'a'
				return c
			},
			expected: []string{"apple", "alloy", "allot"},
		},
		{
			name: "forbid at middle position",
			cons: func() Constraints {
				c := NewConstraints(5)
				c.Forbid[2] = forbid('p')
				return c
			},
			expected: []string{"alloy", "allot", "mango"},
		},
		{
			name: "must and forbid together",
			cons: func() Constraints {
				c := NewConstraints(5)
				c.Must[0] = 'a'
				c.Forbid[4] = forbid('y')
				return c
			},
			expected: []string{"apple", "allot"},
		},
		{
			name: "forbid multiple runes at one position",
			cons: func() Constraints {
				c := NewConstraints(5)
				c.Forbid[4] = forbid('y', 'e')
				return c
			},
			expected: []string{"allot", "mango"},
		},
		{
			name: "contradiction yields empty set",
			cons: func() Constraints {
				c := NewConstraints(5)
				c.Must[0] = 'a'
				c.Forbid[0] = forbid('a')
				return c
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(candidates, tt.cons())
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplySurvivorsSatisfyConstraints(t *testing.T) {
	candidates := []string{"crane", "crate", "slate", "trace", "grace", "brace"}
	cons := NewConstraints(5)
	cons.Must[4] = 'e'
	cons.Forbid[0] = forbid('s', 'g')
	cons.Forbid[1] = forbid('x')

	got := Apply(candidates, cons)
	if len(got) == 0 {
		t.Fatal("Apply() filtered everything out")
	}

	seen := make(map[string]bool)
	for _, pw := range candidates {
		seen[pw] = true
	}
	for _, pw := range got {
		if !seen[pw] {
			t.Errorf("survivor %q is not in the input set", pw)
		}
		runes := []rune(pw)
		for i, ch := range runes {
			if m := cons.Must[i]; m != 0 && ch != m {
				t.Errorf("survivor %q violates must[%d]=%q", pw, i, m)
			}
			if _, bad := cons.Forbid[i][ch]; bad {
				t.Errorf("survivor %q has forbidden %q at position %d", pw, ch, i)
			}
		}
	}
}

func TestApplyDoesNotMutateInputs(t *testing.T) {
	candidates := []string{"apple", "mango"}
	cons := NewConstraints(5)
	cons.Must[0] = 'a'

	Apply(candidates, cons)

	if diff := cmp.Diff([]string{"apple", "mango"}, candidates); diff != "" {
		t.Errorf("candidates mutated (-want +got):\n%s", diff)
	}
	if cons.Must[0] != 'a' || len(cons.Forbid[0]) != 0 {
		t.Error("constraints mutated by Apply()")
	}
}

func TestKnownPattern(t *testing.T) {
	c := NewConstraints(5)
	if got := c.KnownPattern(); got != "....." {
		t.Errorf("KnownPattern() = %q, want %q", got, ".....")
	}

	c.Must[0] = 'a'
	c.Must[3] = 'z'
	if got := c.KnownPattern(); got != "a..z." {
		t.Errorf("KnownPattern() = %q, want %q", got, "a..z.")
	}
}

func TestForbiddenPattern(t *testing.T) {
	c := NewConstraints(4)
	if got := c.ForbiddenPattern(); got != "...." {
		t.Errorf("ForbiddenPattern() = %q, want %q", got, "....")
	}

	c.Forbid[1] = forbid('c', 'a', 'b')
	c.Forbid[3] = forbid('z')
	if got := c.ForbiddenPattern(); got != ".{abc}.{z}" {
		t.Errorf("ForbiddenPattern() = %q, want %q", got, ".{abc}.{z}")
	}
}
