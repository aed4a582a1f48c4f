package counter

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Result is the immutable outcome of a single counting operation.
//
// Total is the primary count. Breakdown, when the operation produces one,
// maps each counted token value to its number of occurrences in first-seen
// order. TextLength is the rune length of the source text and Options names
// the non-default options that were applied.
type Result struct {
	Total      int        `json:"total"`
	Breakdown  *Breakdown `json:"breakdown,omitempty"`
	TextLength int        `json:"text_length"`
	Options    []string   `json:"options_applied,omitempty"`
}

// Add combines two results: totals and text lengths sum, breakdowns merge
// with shared keys summed (the receiver's key order wins, the other's novel
// keys follow), and option names union.
func (r Result) Add(other Result) Result {
	sum := Result{
		Total:      r.Total + other.Total,
		TextLength: r.TextLength + other.TextLength,
		Options:    unionOptions(r.Options, other.Options),
	}
	if r.Breakdown == nil && other.Breakdown == nil {
		return sum
	}
	merged := NewBreakdown()
	for _, key := range r.Breakdown.Keys() {
		merged.Add(key, r.Breakdown.Get(key))
	}
	for _, key := range other.Breakdown.Keys() {
		merged.Add(key, other.Breakdown.Get(key))
	}
	sum.Breakdown = merged
	return sum
}

// Cmp orders results by Total: -1 when r counts less than other, 0 when
// equal, +1 when more.
func (r Result) Cmp(other Result) int {
	switch {
	case r.Total < other.Total:
		return -1
	case r.Total > other.Total:
		return 1
	}
	return 0
}

// Equal reports whether two results carry the same total and the same
// breakdown contents in the same order.
func (r Result) Equal(other Result) bool {
	return r.Total == other.Total && r.Breakdown.Equal(other.Breakdown)
}

func unionOptions(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, opts := range [][]string{a, b} {
		for _, opt := range opts {
			if !seen[opt] {
				seen[opt] = true
				union = append(union, opt)
			}
		}
	}
	return union
}

// Breakdown is a string-to-count map that remembers insertion order, so the
// first-seen order of counted values survives aggregation and serialization.
// The zero of *Breakdown (nil) behaves as an empty, read-only breakdown.
type Breakdown struct {
	keys   []string
	counts map[string]int
}

// NewBreakdown returns an empty breakdown.
func NewBreakdown() *Breakdown {
	return &Breakdown{counts: make(map[string]int)}
}

// Add increases the count for key by n, registering the key on first sight.
func (b *Breakdown) Add(key string, n int) {
	if _, exists := b.counts[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.counts[key] += n
}

// Get returns the count for key, zero when absent.
func (b *Breakdown) Get(key string) int {
	if b == nil {
		return 0
	}
	return b.counts[key]
}

// Len returns the number of distinct keys.
func (b *Breakdown) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Keys returns the keys in first-seen order. The slice is a copy.
func (b *Breakdown) Keys() []string {
	if b == nil || len(b.keys) == 0 {
		return nil
	}
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Sum returns the total of all counts.
func (b *Breakdown) Sum() int {
	if b == nil {
		return 0
	}
	sum := 0
	for _, n := range b.counts {
		sum += n
	}
	return sum
}

// Equal reports whether two breakdowns hold the same keys in the same order
// with the same counts. A nil breakdown equals an empty one.
func (b *Breakdown) Equal(other *Breakdown) bool {
	if b.Len() != other.Len() {
		return false
	}
	if b == nil || other == nil {
		return true
	}
	for i, key := range b.keys {
		if other.keys[i] != key || other.counts[key] != b.counts[key] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the breakdown as a JSON object in first-seen order.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encoded, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(b.counts[key]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
