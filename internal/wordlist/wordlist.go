// Package wordlist loads and holds the word list used by the memorable
// password strategy. A list is built once, at startup, and is read-only
// afterwards.
//
// The expected source format is one entry per line, a numeric (dice-roll)
// index followed by whitespace and the word itself, as in the EFF word
// lists:
//
//	11111	abacus
//	11112	abdomen
//
// Only the second whitespace-delimited token is kept; its first letter is
// uppercased for display. The list is not deduplicated — uniqueness is a
// property of the source file, not enforced here.
package wordlist

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed data/words.txt
var defaultFS embed.FS

// ErrEmptyWordlist is returned when a source yields no words.
var ErrEmptyWordlist = errors.New("wordlist: source contains no words")

// List is an immutable, ordered collection of capitalized words.
type List struct {
	words []string
}

// New builds a List from the given words, capitalizing each entry.
// Intended for tests and callers that already hold their words in memory.
func New(words []string) *List {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = capitalize(w)
	}
	return &List{words: out}
}

// Load reads a word-list file from path. It fails if the file is missing,
// unreadable, malformed, or contains no words. The file handle is released
// before returning, on every path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	list, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist: parse %s: %w", path, err)
	}
	return list, nil
}

// Default returns the word list shipped with the binary.
func Default() (*List, error) {
	f, err := defaultFS.Open("data/words.txt")
	if err != nil {
		return nil, fmt.Errorf("wordlist: open embedded list: %w", err)
	}
	defer f.Close()

	list, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist: parse embedded list: %w", err)
	}
	return list, nil
}

func parse(r io.Reader) (*List, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed line %d: want <index> <word>, got %q", lineNo, line)
		}
		words = append(words, capitalize(fields[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordlist
	}
	return &List{words: words}, nil
}

// Len reports the number of words in the list.
func (l *List) Len() int {
	return len(l.words)
}

// At returns the word at index i. It panics if i is out of range, matching
// slice semantics.
func (l *List) At(i int) string {
	return l.words[i]
}

// Words returns a copy of the underlying words so callers cannot mutate
// the list.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Contains reports whether word is in the list, compared case-insensitively.
func (l *List) Contains(word string) bool {
	for _, w := range l.words {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
