// Package markov synthesizes place-name fragments from an order-k
// character chain trained on a whitespace-delimited word corpus.
package markov

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"unicode"
)

var (
	ErrCorpusMissing = errors.New("markov: corpus file not found")
	ErrCorpusEmpty   = errors.New("markov: corpus has no words longer than the chain order")
	ErrInvalidOrder  = errors.New("markov: invalid order or max length")
)

// Default chain parameters used when configuration leaves them unset
const (
	DefaultOrder     = 3
	DefaultMaxLength = 10
)

// Chain is an order-k transition table over lowercased characters. Each key
// maps to the bag of characters that followed it in the corpus, repeats
// included, so sampling follows corpus frequency.
type Chain struct {
	order     int
	maxLength int
	table     map[string][]string
	keys      []string // insertion order, so seeded draws are reproducible
	rng       *rand.Rand
}

// Load reads a corpus file and builds a chain from it.
func Load(path string, order, maxLength int, rng *rand.Rand) (*Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusMissing, path)
		}
		return nil, fmt.Errorf("markov: reading corpus %s: %w", path, err)
	}
	c, err := New(string(data), order, maxLength, rng)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return c, nil
}

// New builds a chain from corpus text. A nil rng gets a time-seeded source.
func New(corpus string, order, maxLength int, rng *rand.Rand) (*Chain, error) {
	if order < 1 || maxLength < order {
		return nil, fmt.Errorf("%w: order=%d max_length=%d", ErrInvalidOrder, order, maxLength)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	c := &Chain{
		order:     order,
		maxLength: maxLength,
		table:     make(map[string][]string),
		rng:       rng,
	}
	for _, word := range strings.Fields(corpus) {
		c.train(word)
	}
	if len(c.keys) == 0 {
		return nil, ErrCorpusEmpty
	}
	return c, nil
}

func (c *Chain) train(word string) {
	runes := []rune(strings.Map(unicode.ToLower, word))
	for i := 0; i+c.order < len(runes); i++ {
		key := string(runes[i : i+c.order])
		if _, seen := c.table[key]; !seen {
			c.keys = append(c.keys, key)
		}
		c.table[key] = append(c.table[key], string(runes[i+c.order]))
	}
}

// WithRand returns a chain sharing c's table that draws from rng.
func (c *Chain) WithRand(rng *rand.Rand) *Chain {
	cp := *c
	cp.rng = rng
	return &cp
}

// Order returns the key length of the chain
func (c *Chain) Order() int { return c.order }

// MaxLength returns the longest fragment NextValue will produce
func (c *Chain) MaxLength() int { return c.maxLength }

// Keys returns the number of distinct keys in the table
func (c *Chain) Keys() int { return len(c.keys) }

// Followers returns a copy of the characters recorded after key
func (c *Chain) Followers(key string) []string {
	return append([]string(nil), c.table[key]...)
}

// NextValue generates one lowercase fragment. It starts from a random key
// and extends it one character at a time until it reaches the maximum
// length or the trailing window has never been seen.
func (c *Chain) NextValue() string {
	runes := []rune(c.keys[c.rng.Intn(len(c.keys))])
	for len(runes) < c.maxLength {
		next, ok := c.table[string(runes[len(runes)-c.order:])]
		if !ok {
			break
		}
		runes = append(runes, []rune(next[c.rng.Intn(len(next))])...)
	}
	return string(runes)
}
