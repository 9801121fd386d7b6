// Package engine implements the candidate-filtering core: dictionary
// loading, length filtering, positional constraints, frequency-based
// scoring and per-position letter statistics. Everything here is pure
// except the Loader cache; callers own all session state.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Loader reads dictionaries and caches them by resolved file path, so a
// dictionary is read from disk at most once per process. The cache is
// never invalidated: a file changed on disk is not picked up without a
// restart.
type Loader struct {
	mu    sync.Mutex
	cache map[string][]string
}

func NewLoader() *Loader {
	return &Loader{cache: make(map[string][]string)}
}

// Load returns the deduplicated word list at path. A missing file
// surfaces fs.ErrNotExist through the wrapped error.
func (l *Loader) Load(path string) ([]string, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if words, ok := l.cache[key]; ok {
		return words, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	words, err := ReadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	l.cache[key] = words
	return words, nil
}

// ReadDictionary reads one candidate per line: surrounding whitespace is
// trimmed, blank lines are skipped, invalid UTF-8 bytes are dropped, and
// duplicates are removed keeping the first occurrence. Input order is
// preserved.
func ReadDictionary(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
