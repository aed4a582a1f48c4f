// Package analyze bundles the counting, frequency, readability, and pattern
// packages behind one analysis context.
//
// An Analyzer is bound to a single text and memoizes results per operation
// and option fingerprint, so repeated calls against the same text do the
// scanning work once. The cache lives until the context is Reset to a new
// text or Closed; WithSession scopes a context so release is guaranteed.
package analyze

import (
	"fmt"
	"sync"

	"github.com/kimo26/textcounter/internal/counter"
	"github.com/kimo26/textcounter/internal/frequency"
	"github.com/kimo26/textcounter/internal/pattern"
	"github.com/kimo26/textcounter/internal/readability"
)

// Analyzer is an analysis context over a single text. It is safe for
// concurrent use; operations are serialized by an internal lock.
type Analyzer struct {
	mu    sync.Mutex
	text  string
	count *counter.Counter
	cache map[string]any
}

// New creates an analysis context for text.
func New(text string) *Analyzer {
	return &Analyzer{
		text:  text,
		count: counter.New(text),
		cache: make(map[string]any),
	}
}

// WithSession runs fn against a fresh analysis context for text and
// releases the context's cache when fn returns, on every path.
func WithSession(text string, fn func(*Analyzer) error) error {
	a := New(text)
	defer a.Close()
	return fn(a)
}

// Text returns the text under analysis.
func (a *Analyzer) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

// Counter returns the counting context bound to the same text.
func (a *Analyzer) Counter() *counter.Counter {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Reset rebinds the context to a new text and invalidates every memoized
// result.
func (a *Analyzer) Reset(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.text = text
	a.count = counter.New(text)
	if a.cache != nil {
		a.cache = make(map[string]any)
	}
}

// Close releases the memo cache. The context stays usable afterwards, with
// every call computed directly. Close is idempotent.
func (a *Analyzer) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cache = nil
}

// memo serves key from the cache, computing and storing it on a miss.
// Compute funcs must not call other Analyzer methods.
func (a *Analyzer) memo(key string, compute func() any) any {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v, ok := a.cache[key]; ok {
		return v
	}
	v := compute()
	if a.cache != nil {
		a.cache[key] = v
	}
	return v
}

// memoErr is memo for fallible operations. Errors are returned without
// entering the cache.
func (a *Analyzer) memoErr(key string, compute func() (any, error)) (any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v, ok := a.cache[key]; ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	if a.cache != nil {
		a.cache[key] = v
	}
	return v, nil
}

// CharFrequency ranks character frequency. topN <= 0 keeps all entries.
func (a *Analyzer) CharFrequency(opts frequency.CharOptions, topN int) *frequency.Result {
	key := fmt.Sprintf("char_frequency|%+v|%d", opts, topN)
	return a.memo(key, func() any {
		return frequency.Chars(a.text, opts, topN)
	}).(*frequency.Result)
}

// WordFrequency ranks word frequency. topN <= 0 keeps all entries.
func (a *Analyzer) WordFrequency(opts frequency.Options, topN int) (*frequency.Result, error) {
	key := fmt.Sprintf("word_frequency|%+v|%d", opts, topN)
	v, err := a.memoErr(key, func() (any, error) {
		return frequency.Words(a.text, opts, topN)
	})
	if err != nil {
		return nil, err
	}
	return v.(*frequency.Result), nil
}

// Ngrams ranks n-word sequences. topN <= 0 keeps all entries.
func (a *Analyzer) Ngrams(n int, opts frequency.Options, topN int) (*frequency.Result, error) {
	key := fmt.Sprintf("ngrams|%d|%+v|%d", n, opts, topN)
	v, err := a.memoErr(key, func() (any, error) {
		return frequency.Ngrams(a.text, n, opts, topN)
	})
	if err != nil {
		return nil, err
	}
	return v.(*frequency.Result), nil
}

// Readability scores the text.
func (a *Analyzer) Readability() readability.Result {
	return a.memo("readability", func() any {
		return readability.Analyze(a.text)
	}).(readability.Result)
}

// VocabularyRichness measures vocabulary richness.
func (a *Analyzer) VocabularyRichness() readability.RichnessResult {
	return a.memo("richness", func() any {
		return readability.Richness(a.text)
	}).(readability.RichnessResult)
}

// WordLengthDistribution maps word length in runes to word count.
func (a *Analyzer) WordLengthDistribution() map[int]int {
	return a.memo("word_lengths", func() any {
		return readability.WordLengths(a.text)
	}).(map[int]int)
}

// SentenceLengthDistribution maps sentence length in words to sentence
// count.
func (a *Analyzer) SentenceLengthDistribution() map[int]int {
	return a.memo("sentence_lengths", func() any {
		return readability.SentenceLengths(a.text)
	}).(map[int]int)
}

// Emails returns the email addresses found in the text.
func (a *Analyzer) Emails() []string {
	return a.memo("emails", func() any {
		return pattern.Emails(a.text)
	}).([]string)
}

// URLs returns the URLs found in the text.
func (a *Analyzer) URLs() []string {
	return a.memo("urls", func() any {
		return pattern.URLs(a.text)
	}).([]string)
}

// Numbers returns the numbers found in the text.
func (a *Analyzer) Numbers() []string {
	return a.memo("numbers", func() any {
		return pattern.Numbers(a.text)
	}).([]string)
}

// FindPatterns returns the matches of a caller-supplied expression.
func (a *Analyzer) FindPatterns(expr string) ([]pattern.Match, error) {
	v, err := a.memoErr("find|"+expr, func() (any, error) {
		return pattern.Find(a.text, expr)
	})
	if err != nil {
		return nil, err
	}
	return v.([]pattern.Match), nil
}
