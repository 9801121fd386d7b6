package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kzon94/torn-cracking-tool/internal/config"
	"github.com/kzon94/torn-cracking-tool/internal/session"
	"github.com/kzon94/torn-cracking-tool/pkg/engine"
)

// renderReport builds the plain-text equivalent of the interactive view:
// current patterns, the ranked candidate table and the per-position
// letter summary for unfixed slots.
func renderReport(sess *session.Session, cfg config.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Known pattern (-a):  %s\n", sess.Cons.KnownPattern())
	fmt.Fprintf(&b, "Forbidden map (-d):  %s\n", sess.Cons.ForbiddenPattern())
	fmt.Fprintf(&b, "Current candidates:  %d\n\n", len(sess.Current))

	scored := engine.ScoreCandidates(sess.Current)
	limit := min(cfg.TopCandidates, len(scored))
	fmt.Fprintf(&b, "Top %d options:\n", limit)

	width := max(sess.Length, len("password"))
	fmt.Fprintf(&b, "  %-*s  %12s\n", width, "password", "score (%)")
	for _, s := range scored[:limit] {
		fmt.Fprintf(&b, "  %-*s  %12.5f\n", width, s.Password, s.Value*100)
	}

	b.WriteString("\n")
	b.WriteString(renderFrequencyLines(sess, cfg))
	return b.String()
}

func renderFrequencyLines(sess *session.Session, cfg config.Config) string {
	freqs, err := engine.PositionFrequencies(sess.Current)
	if err != nil {
		return err.Error() + "\n"
	}

	total := len(sess.Current)
	var lines []string
	for idx, freq := range freqs {
		if sess.Cons.Must[idx] != 0 {
			continue
		}
		top := engine.TopLetters(freq, cfg.TopLetters)
		parts := make([]string, 0, len(top))
		for _, lc := range top {
			parts = append(parts, fmt.Sprintf("%s (%.1f%%)",
				string(lc.Letter), float64(lc.Count)/float64(total)*100))
		}
		lines = append(lines, fmt.Sprintf("  Pos %d: %s", idx+1, strings.Join(parts, ", ")))
	}

	if len(lines) == 0 {
		return "All positions are already fixed.\n"
	}
	return "Letter frequencies by position:\n" + strings.Join(lines, "\n") + "\n"
}

// renderLengths builds a per-length histogram of the dictionary.
func renderLengths(dict []string) string {
	counts := make(map[int]int)
	for _, w := range dict {
		counts[utf8.RuneCountInString(w)]++
	}

	lengths := make([]int, 0, len(counts))
	for l := range counts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	var b strings.Builder
	fmt.Fprintf(&b, "%7s  %9s\n", "length", "entries")
	for _, l := range lengths {
		fmt.Fprintf(&b, "%7d  %9d\n", l, counts[l])
	}
	return b.String()
}
