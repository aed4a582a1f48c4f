// Package frequency ranks how often characters, words, and word n-grams
// occur in a text.
//
// Results list entries in rank order: count descending, with ties broken by
// which token appeared first in the text. Word aggregation can fold case,
// drop short or excluded words, and group inflected forms by their snowball
// stem.
package frequency

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"

	"github.com/kimo26/textcounter/internal/counter"
	"github.com/kimo26/textcounter/internal/tokenizer"
)

// Entry is one ranked token with its occurrence count.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Result holds ranked frequencies. Total and Unique cover every qualifying
// occurrence, not just the entries kept after a top-n cut. Percentages maps
// each kept token to its share of Total, rounded to two decimals.
type Result struct {
	Entries     []Entry            `json:"entries"`
	Total       int                `json:"total"`
	Unique      int                `json:"unique"`
	Percentages map[string]float64 `json:"percentages,omitempty"`
}

// Top returns the first n entries, or all of them when n is not positive or
// exceeds the entry count.
func (r *Result) Top(n int) []Entry {
	if n <= 0 || n > len(r.Entries) {
		return r.Entries
	}
	return r.Entries[:n]
}

// Options controls word and n-gram aggregation.
type Options struct {
	// CaseSensitive keeps the original case; by default words are folded
	// before counting.
	CaseSensitive bool
	// MinLength drops words shorter than this many runes.
	MinLength int
	// Exclude lists words to drop (folded unless CaseSensitive).
	Exclude []string
	// Stem groups words by their snowball English stem.
	Stem bool
	// WithinSentences keeps n-gram windows inside sentence boundaries.
	// By default windows slide over the flat word sequence of the whole
	// text. Word frequency ignores this field.
	WithinSentences bool
}

// CharOptions controls character aggregation. The defaults fold case, drop
// whitespace, and keep punctuation.
type CharOptions struct {
	CaseSensitive     bool
	KeepSpaces        bool
	IgnorePunctuation bool
}

// FromBreakdown ranks an existing counting breakdown. Breakdown key order
// is first-seen order, which drives the tie-break.
func FromBreakdown(b *counter.Breakdown, topN int) *Result {
	items := make([]indexed, 0, b.Len())
	for i, key := range b.Keys() {
		items = append(items, indexed{Entry{Token: key, Count: b.Get(key)}, i})
	}
	entries := rank(items)

	result := &Result{Total: b.Sum(), Unique: len(entries)}
	if topN > 0 && topN < len(entries) {
		entries = entries[:topN]
	}
	if len(entries) == 0 {
		return result
	}
	result.Entries = entries
	result.Percentages = make(map[string]float64, len(entries))
	for _, e := range entries {
		result.Percentages[e.Token] = round2(float64(e.Count) / float64(result.Total) * 100)
	}
	return result
}

// Words ranks word frequency in text per opts.
func Words(text string, opts Options, topN int) (*Result, error) {
	if opts.MinLength < 0 {
		return nil, fmt.Errorf("%w: min_length (%d) must not be negative", counter.ErrInvalidConfig, opts.MinLength)
	}

	folder := cases.Fold()
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, word := range opts.Exclude {
		if !opts.CaseSensitive {
			word = folder.String(word)
		}
		exclude[word] = true
	}

	breakdown := counter.NewBreakdown()
	it := tokenizer.Words(text, tokenizer.Options{})
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		word := tok.Text
		if !opts.CaseSensitive {
			word = folder.String(word)
		}
		if opts.MinLength > 0 && utf8.RuneCountInString(word) < opts.MinLength {
			continue
		}
		if exclude[word] {
			continue
		}
		if opts.Stem {
			if stemmed, err := snowball.Stem(word, "english", true); err == nil {
				word = stemmed
			}
		}
		breakdown.Add(word, 1)
	}

	slog.Debug("Word frequency calculated", "unique", breakdown.Len(), "topN", topN)
	return FromBreakdown(breakdown, topN), nil
}

// Chars ranks character frequency in text per opts.
func Chars(text string, opts CharOptions, topN int) *Result {
	copts := counter.CharOptions{
		IgnorePunctuation: opts.IgnorePunctuation,
		IgnoreCase:        !opts.CaseSensitive,
	}
	if !opts.KeepSpaces {
		copts.CustomIgnore = " \t\n\r"
	}
	result := counter.New(text).CharCount(copts)

	slog.Debug("Character frequency calculated", "unique", result.Breakdown.Len(), "topN", topN)
	return FromBreakdown(result.Breakdown, topN)
}

// Ngrams ranks n-word sequences, joined with single spaces. The window
// slides over the flat word sequence unless opts.WithinSentences restricts
// it to sentence-local runs. Texts with fewer than n words produce an empty
// result.
func Ngrams(text string, n int, opts Options, topN int) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: ngram size (%d) must be at least 1", counter.ErrInvalidConfig, n)
	}

	var sequences [][]string
	if opts.WithinSentences {
		for _, sentence := range tokenizer.SentenceStrings(text, tokenizer.SentenceOptions{}) {
			sequences = append(sequences, tokenizer.WordStrings(sentence, tokenizer.Options{}))
		}
	} else {
		sequences = [][]string{tokenizer.WordStrings(text, tokenizer.Options{})}
	}

	folder := cases.Fold()
	breakdown := counter.NewBreakdown()
	for _, words := range sequences {
		if !opts.CaseSensitive {
			for i, word := range words {
				words[i] = folder.String(word)
			}
		}
		for i := 0; i+n <= len(words); i++ {
			breakdown.Add(strings.Join(words[i:i+n], " "), 1)
		}
	}

	slog.Debug("Ngram frequency calculated", "n", n, "unique", breakdown.Len(), "topN", topN)
	return FromBreakdown(breakdown, topN), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
