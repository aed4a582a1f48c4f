// Package counter implements the counting engine of the textcounter tool.
//
// A Counter is a counting context bound to one immutable text. Its methods
// count characters, words, lines, sentences, paragraphs, and LLM tokens
// (using OpenAI's tiktoken with the cl100k_base encoding), each configured
// through a small options struct and each returning a Result value object
// that carries the total, an optional per-value breakdown in first-seen
// order, and the options that were applied.
//
// Usage Example:
//
//	c := counter.New("Hello, World!")
//	result := c.CharCount(counter.CharOptions{IgnorePunctuation: true})
//	// result.Total == 11
//
// All methods are pure with respect to the text and safe for concurrent
// use. Invalid option combinations are rejected eagerly with errors that
// wrap ErrInvalidConfig.
package counter

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/kimo26/textcounter/internal/tokenizer"
)

// Counter is a counting context over a single text.
type Counter struct {
	text    string
	textLen int // rune count, fixed at construction
}

// New creates a counting context for text.
func New(text string) *Counter {
	return &Counter{text: text, textLen: utf8.RuneCountInString(text)}
}

// Text returns the text this context counts.
func (c *Counter) Text() string {
	return c.text
}

// CharCount counts characters per opts. The breakdown maps each counted
// character to its occurrences in first-seen order.
func (c *Counter) CharCount(opts CharOptions) Result {
	countOnly := runeSet(opts.CountOnly)
	custom := runeSet(opts.CustomIgnore)

	text := c.text
	if opts.IgnoreCase {
		text = cases.Fold().String(text)
	}

	breakdown := NewBreakdown()
	total := 0
	it := tokenizer.Chars(text)
	for {
		_, r, ok := it.Next()
		if !ok {
			break
		}
		if countOnly != nil {
			if !countOnly[r] {
				continue
			}
		} else {
			switch {
			case custom[r]:
				continue
			case opts.IgnoreSpaces && r == ' ':
				continue
			case opts.IgnoreNewlines && (r == '\n' || r == '\r'):
				continue
			case opts.IgnorePunctuation && tokenizer.IsPunctuation(r):
				continue
			case opts.IgnoreDigits && unicode.IsDigit(r):
				continue
			}
		}
		total++
		breakdown.Add(string(r), 1)
	}

	slog.Debug("Character count calculated", "total", total, "distinct", breakdown.Len())
	return Result{Total: total, Breakdown: breakdown, TextLength: c.textLen, Options: opts.applied()}
}

// WordCount counts words per opts. The breakdown maps each qualifying word
// to its occurrences in first-seen order; with UniqueOnly the total is the
// number of distinct qualifying words instead of their occurrences.
func (c *Counter) WordCount(opts WordOptions) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	folder := cases.Fold()
	breakdown := NewBreakdown()
	total := 0
	it := tokenizer.Words(c.text, tokenizer.Options{
		Connectors:      opts.Connectors,
		KeepPunctuation: opts.KeepPunctuation,
	})
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		word := tok.Text
		if !opts.CaseSensitive {
			word = folder.String(word)
		}
		if opts.IgnoreNumbers && isNumeric(word) {
			continue
		}
		length := utf8.RuneCountInString(word)
		if length < opts.MinLength {
			continue
		}
		if opts.MaxLength > 0 && length > opts.MaxLength {
			continue
		}
		total++
		breakdown.Add(word, 1)
	}
	if opts.UniqueOnly {
		total = breakdown.Len()
	}

	slog.Debug("Word count calculated", "total", total, "distinct", breakdown.Len())
	return Result{Total: total, Breakdown: breakdown, TextLength: c.textLen, Options: opts.applied()}, nil
}

// LineCount counts lines per opts. Lines have no breakdown; an empty text
// has zero lines and a trailing newline yields a final empty line.
func (c *Counter) LineCount(opts LineOptions) Result {
	total := 0
	for _, line := range tokenizer.Lines(c.text) {
		if opts.IgnoreEmpty && strings.TrimSpace(line) == "" {
			continue
		}
		total++
	}

	slog.Debug("Line count calculated", "total", total)
	return Result{Total: total, TextLength: c.textLen, Options: opts.applied()}
}

// SentenceCount counts sentences. Sentences have no breakdown.
func (c *Counter) SentenceCount() Result {
	total := 0
	it := tokenizer.Sentences(c.text, tokenizer.SentenceOptions{})
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		total++
	}

	slog.Debug("Sentence count calculated", "total", total)
	return Result{Total: total, TextLength: c.textLen}
}

// ParagraphCount counts paragraphs. Paragraphs have no breakdown.
func (c *Counter) ParagraphCount() Result {
	total := 0
	it := tokenizer.Paragraphs(c.text)
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		total++
	}

	slog.Debug("Paragraph count calculated", "total", total)
	return Result{Total: total, TextLength: c.textLen}
}

// Summary runs every default-configuration count and returns the totals
// keyed by metric name.
func (c *Counter) Summary() map[string]int {
	words, _ := c.WordCount(WordOptions{})
	unique, _ := c.WordCount(WordOptions{UniqueOnly: true})

	return map[string]int{
		"characters":           c.CharCount(CharOptions{}).Total,
		"characters_no_spaces": c.CharCount(CharOptions{IgnoreSpaces: true}).Total,
		"words":                words.Total,
		"unique_words":         unique.Total,
		"lines":                c.LineCount(LineOptions{}).Total,
		"sentences":            c.SentenceCount().Total,
		"paragraphs":           c.ParagraphCount().Total,
	}
}

// runeSet builds a lookup set from the runes of s, nil when s is empty.
func runeSet(s string) map[rune]bool {
	if s == "" {
		return nil
	}
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// isNumeric reports whether word consists entirely of digits.
func isNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
