package engine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadDictionary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "blank lines skipped",
			input:    "alpha\n\n\nbeta\n   \ngamma\n",
			expected: []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "whitespace trimmed",
			input:    "  alpha  \n\tbeta\t\n",
			expected: []string{"alpha", "beta"},
		},
		{
			name:     "duplicates keep first occurrence",
			input:    "alpha\nbeta\nalpha\ngamma\nbeta\nalpha\n",
			expected: []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "trimmed duplicates collapse",
			input:    "alpha\n  alpha\nalpha  \n",
			expected: []string{"alpha"},
		},
		{
			name:     "no trailing newline",
			input:    "alpha\nbeta",
			expected: []string{"alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadDictionary(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadDictionary() error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ReadDictionary() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadDictionaryDropsInvalidUTF8(t *testing.T) {
	input := "val\xffid\nplain\n"
	got, err := ReadDictionary(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDictionary() error: %v", err)
	}
	expected := []string{"valid", "plain"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ReadDictionary() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderCachesByPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader()
	first, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// A rewrite on disk must not be picked up within the process.
	if err := os.WriteFile(path, []byte("three\nfour\nfive\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached load changed (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"one", "two"}, second); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "no-such-file.txt"))
	if err == nil {
		t.Fatal("Load() succeeded on a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}
