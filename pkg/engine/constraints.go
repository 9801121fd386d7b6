package engine

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// FilterByLength returns the words whose rune count equals length,
// preserving relative order. An empty result is valid.
func FilterByLength(words []string, length int) []string {
	var out []string
	for _, w := range words {
		if utf8.RuneCountInString(w) == length {
			out = append(out, w)
		}
	}
	return out
}

// Constraints holds per-position filters for candidates of a fixed
// length. Must[i] is the required rune at position i, 0 when unset.
// Forbid[i] is the set of runes disallowed at position i.
//
// No contradiction check is performed: a rune that is both required and
// forbidden at the same position simply filters every candidate out.
type Constraints struct {
	Must   []rune
	Forbid []map[rune]struct{}
}

func NewConstraints(length int) Constraints {
	c := Constraints{
		Must:   make([]rune, length),
		Forbid: make([]map[rune]struct{}, length),
	}
	for i := range c.Forbid {
		c.Forbid[i] = make(map[rune]struct{})
	}
	return c
}

// Len returns the candidate length the constraints were built for.
func (c Constraints) Len() int { return len(c.Must) }

// Apply returns the candidates satisfying cons at every position, in
// their original relative order. Neither input is mutated.
func Apply(candidates []string, cons Constraints) []string {
	out := make([]string, 0, len(candidates))
	for _, pw := range candidates {
		if matches(pw, cons) {
			out = append(out, pw)
		}
	}
	return out
}

func matches(pw string, cons Constraints) bool {
	i := 0
	for _, ch := range pw {
		if i == len(cons.Must) {
			break
		}
		if m := cons.Must[i]; m != 0 && ch != m {
			return false
		}
		if _, bad := cons.Forbid[i][ch]; bad {
			return false
		}
		i++
	}
	return true
}

// KnownPattern renders Must as a pattern string, "." for unset slots.
func (c Constraints) KnownPattern() string {
	var b strings.Builder
	for _, m := range c.Must {
		if m == 0 {
			b.WriteByte('.')
		} else {
			b.WriteRune(m)
		}
	}
	return b.String()
}

// ForbiddenPattern renders each position as "." when nothing is
// forbidden there, else "{...}" with the forbidden runes sorted.
func (c Constraints) ForbiddenPattern() string {
	var b strings.Builder
	for _, set := range c.Forbid {
		if len(set) == 0 {
			b.WriteByte('.')
			continue
		}
		runes := make([]rune, 0, len(set))
		for ch := range set {
			runes = append(runes, ch)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
		b.WriteByte('{')
		for _, ch := range runes {
			b.WriteRune(ch)
		}
		b.WriteByte('}')
	}
	return b.String()
}
