// Package session owns the mutable state of one search: the chosen
// length, the base and current candidate sets, and the accumulated
// positional constraints. The engine stays pure; all narrowing goes
// through the methods here.
package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/kzon94/torn-cracking-tool/pkg/engine"
)

// Unknown marks an unconstrained slot in known and forbidden patterns.
const Unknown = '.'

// Session is one active search. Base holds every dictionary word of the
// chosen length; Current is Base narrowed by Cons and is always a
// subset of it. Sessions are not safe for concurrent use; give each
// user their own.
type Session struct {
	Length  int
	Base    []string
	Current []string
	Cons    engine.Constraints
}

// Conflict records a known-pattern position that was skipped because a
// different rune was already fixed there.
type Conflict struct {
	Pos      int // zero-based
	Existing rune
	New      rune
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at position %d: existing %q vs new %q, keeping existing",
		c.Pos+1, c.Existing, c.New)
}

// New starts a search over dict for the given length. It fails when the
// dictionary holds no word of that length, leaving no search active.
func New(dict []string, length int) (*Session, error) {
	base := engine.FilterByLength(dict, length)
	if len(base) == 0 {
		return nil, fmt.Errorf("no passwords with length %d", length)
	}
	current := make([]string, len(base))
	copy(current, base)
	return &Session{
		Length:  length,
		Base:    base,
		Current: current,
		Cons:    engine.NewConstraints(length),
	}, nil
}

// ApplyKnown merges a known-positions pattern into the constraints and
// refilters. A pattern of the wrong length is rejected whole. Positions
// already fixed to a different rune are skipped and reported as
// conflicts; the rest of the pattern still applies.
func (s *Session) ApplyKnown(pattern string) ([]Conflict, error) {
	if err := s.checkLength(pattern); err != nil {
		return nil, err
	}
	var conflicts []Conflict
	i := 0
	for _, ch := range pattern {
		if ch == Unknown {
			i++
			continue
		}
		if existing := s.Cons.Must[i]; existing != 0 && existing != ch {
			conflicts = append(conflicts, Conflict{Pos: i, Existing: existing, New: ch})
			i++
			continue
		}
		s.Cons.Must[i] = ch
		i++
	}
	s.refilter()
	return conflicts, nil
}

// ApplyForbidden merges a forbidden-positions pattern into the
// constraints and refilters. Each non-"." rune joins that position's
// forbidden set; existing entries are never removed. A pattern of the
// wrong length is rejected whole.
func (s *Session) ApplyForbidden(pattern string) error {
	if err := s.checkLength(pattern); err != nil {
		return err
	}
	i := 0
	for _, ch := range pattern {
		if ch != Unknown {
			s.Cons.Forbid[i][ch] = struct{}{}
		}
		i++
	}
	s.refilter()
	return nil
}

// Empty reports whether the constraints have filtered out every
// candidate. There is no undo; recovering requires a new session.
func (s *Session) Empty() bool { return len(s.Current) == 0 }

func (s *Session) checkLength(pattern string) error {
	if utf8.RuneCountInString(pattern) != s.Length {
		return fmt.Errorf("pattern length must be %d", s.Length)
	}
	return nil
}

// refilter always starts from Base with the merged constraints, as the
// narrowing is monotonic this matches filtering Current but keeps reset
// semantics obvious.
func (s *Session) refilter() {
	s.Current = engine.Apply(s.Base, s.Cons)
}
