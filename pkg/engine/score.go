package engine

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Score pairs a candidate with its normalized ranking value in [0,1].
// Values across a result slice sum to 1.
type Score struct {
	Password string
	Value    float64
}

// ScoreCandidates ranks candidates by how much of the population's
// character mass they cover: each candidate's raw score is the sum of
// the global character probabilities of its distinct runes (repeats
// count once), normalized over all raw scores. Degenerate inputs fall
// back to a uniform distribution. The sort is stable and descending, so
// ties keep their original relative order.
func ScoreCandidates(candidates []string) []Score {
	if len(candidates) == 0 {
		return nil
	}

	charCount := make(map[rune]int)
	total := 0
	for _, pw := range candidates {
		for _, ch := range pw {
			charCount[ch]++
			total++
		}
	}

	if total == 0 {
		return uniformScores(candidates)
	}

	charProb := make(map[rune]float64, len(charCount))
	for ch, n := range charCount {
		charProb[ch] = float64(n) / float64(total)
	}

	scores := make([]Score, len(candidates))
	var totalRaw float64
	for i, pw := range candidates {
		seen := make(map[rune]struct{}, len(pw))
		var raw float64
		for _, ch := range pw {
			if _, dup := seen[ch]; dup {
				continue
			}
			seen[ch] = struct{}{}
			raw += charProb[ch]
		}
		scores[i] = Score{Password: pw, Value: raw}
		totalRaw += raw
	}

	if totalRaw <= 0 {
		return uniformScores(candidates)
	}

	for i := range scores {
		scores[i].Value /= totalRaw
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Value > scores[j].Value
	})
	return scores
}

func uniformScores(candidates []string) []Score {
	equal := 1.0 / float64(len(candidates))
	scores := make([]Score, len(candidates))
	for i, pw := range candidates {
		scores[i] = Score{Password: pw, Value: equal}
	}
	return scores
}

// ErrMixedLengths reports a candidate set whose members do not all share
// one length. Sets produced by FilterByLength never trigger it.
var ErrMixedLengths = errors.New("candidates differ in length")

// PositionFrequencies counts rune occurrences per position across the
// candidate set. All candidates must share the length of the first one.
// An empty set yields a nil slice.
func PositionFrequencies(candidates []string) ([]map[rune]int, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	length := utf8.RuneCountInString(candidates[0])
	freqs := make([]map[rune]int, length)
	for i := range freqs {
		freqs[i] = make(map[rune]int)
	}

	for _, pw := range candidates {
		if n := utf8.RuneCountInString(pw); n != length {
			return nil, fmt.Errorf("%w: %q has %d runes, want %d", ErrMixedLengths, pw, n, length)
		}
		i := 0
		for _, ch := range pw {
			freqs[i][ch]++
			i++
		}
	}
	return freqs, nil
}

// LetterCount is one entry of a per-position frequency ranking.
type LetterCount struct {
	Letter rune
	Count  int
}

// TopLetters returns up to n letters from freq, most frequent first,
// ties broken by rune order for determinism.
func TopLetters(freq map[rune]int, n int) []LetterCount {
	letters := make([]LetterCount, 0, len(freq))
	for ch, cnt := range freq {
		letters = append(letters, LetterCount{Letter: ch, Count: cnt})
	}
	sort.Slice(letters, func(i, j int) bool {
		if letters[i].Count != letters[j].Count {
			return letters[i].Count > letters[j].Count
		}
		return letters[i].Letter < letters[j].Letter
	})
	if n >= 0 && n < len(letters) {
		letters = letters[:n]
	}
	return letters
}
