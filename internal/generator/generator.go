// Package generator produces candidate password strings under two
// strategies: word-based memorable passphrases and character-based random
// passwords. Generation is stateless and single-shot — one string per call,
// nothing stored, nothing hashed.
package generator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/strongpass/strongpass-go/internal/wordlist"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	// MinCoverageLength is the smallest Random-strategy length for which at
	// least one character from every class is guaranteed. Shorter lengths
	// still succeed; the guarantee simply cannot hold and the caller is
	// responsible for choosing a sufficient length if coverage is required.
	MinCoverageLength = 4
)

// charClasses is ordered {lowercase, uppercase, digits, specials}. Position
// i of an unshuffled random password draws from charClasses[i%4], so any
// four consecutive positions cycle through all four classes.
var charClasses = [4]string{lowercaseChars, uppercaseChars, digitChars, specialChars}

var (
	ErrInvalidLength   = errors.New("generator: length must be at least 1")
	ErrUnknownStrategy = errors.New("generator: unknown strategy")
	ErrEmptyWordlist   = errors.New("generator: word list is empty")
)

// Strategy selects how a password is generated.
type Strategy string

const (
	// StrategyMemorable joins randomly drawn words for human recall.
	StrategyMemorable Strategy = "memorable"
	// StrategyRandom mixes characters from four fixed classes.
	StrategyRandom Strategy = "random"
)

// ParseStrategy maps a user-supplied string onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case StrategyMemorable:
		return StrategyMemorable, nil
	case StrategyRandom:
		return StrategyRandom, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Config describes a single generation request. Length counts words under
// StrategyMemorable and characters under StrategyRandom.
type Config struct {
	Length   int
	Strategy Strategy
}

func (c Config) validate() error {
	if c.Length < 1 {
		return ErrInvalidLength
	}
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	return nil
}

// Generator produces passwords from an immutable word list and a randomness
// source. A call costs time linear in Config.Length; no I/O happens during
// generation.
type Generator struct {
	words *wordlist.List
	src   Source
}

// New returns a Generator backed by crypto/rand.
func New(words *wordlist.List) *Generator {
	return NewWithSource(words, CryptoSource{})
}

// NewWithSource returns a Generator drawing randomness from src. Intended
// for tests that need a seeded, deterministic source.
func NewWithSource(words *wordlist.List, src Source) *Generator {
	return &Generator{words: words, src: src}
}

// Generate produces one password for cfg. Invalid configurations fail
// synchronously; they are never silently defaulted.
func (g *Generator) Generate(cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	switch cfg.Strategy {
	case StrategyMemorable:
		return g.generateMemorable(cfg.Length)
	case StrategyRandom:
		return g.generateRandom(cfg.Length)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
}

// generateMemorable draws length words independently and with replacement —
// the same word may appear at several positions — and joins them with single
// spaces in draw order.
func (g *Generator) generateMemorable(length int) (string, error) {
	if g.words == nil || g.words.Len() == 0 {
		return "", ErrEmptyWordlist
	}
	words := make([]string, length)
	for i := range words {
		n, err := g.src.Intn(g.words.Len())
		if err != nil {
			return "", err
		}
		words[i] = g.words.At(n)
	}
	return strings.Join(words, " "), nil
}

// generateRandom draws position i from charClasses[i%4], which covers every
// class whenever length >= MinCoverageLength, then applies a uniform shuffle
// to destroy the cyclic class order while preserving the character multiset.
func (g *Generator) generateRandom(length int) (string, error) {
	password := make([]byte, length)
	for i := range password {
		class := charClasses[i%len(charClasses)]
		n, err := g.src.Intn(len(class))
		if err != nil {
			return "", err
		}
		password[i] = class[n]
	}
	if err := g.shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// shuffle performs a Fisher-Yates shuffle using the generator's source.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.Intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// Entropy reports the entropy of the generation process for cfg, in bits.
//
// Memorable: Length * log2(list size) — every draw is an independent uniform
// choice over the full list, duplicates included.
//
// Random: the sum over positions of log2(class size), i.e. the entropy of
// the pre-shuffle sequence. Because position i mod 4 is pinned to one class
// before shuffling, the combinatorial space is smaller than a free choice
// over the combined alphabet at every position; reporting
// Length*log2(|combined|) would overstate strength.
func (g *Generator) Entropy(cfg Config) (float64, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	switch cfg.Strategy {
	case StrategyMemorable:
		if g.words == nil || g.words.Len() == 0 {
			return 0, ErrEmptyWordlist
		}
		return float64(cfg.Length) * math.Log2(float64(g.words.Len())), nil
	case StrategyRandom:
		var bits float64
		for i := 0; i < cfg.Length; i++ {
			bits += math.Log2(float64(len(charClasses[i%len(charClasses)])))
		}
		return bits, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
}
