// Package tokenizer provides the lexical scanning layer for the textcounter
// tool.
//
// This package turns an immutable UTF-8 string into one of four token
// streams: characters, words, sentences, or paragraphs. Every stream is a
// restartable iterator that walks the text in a single pass with constant
// auxiliary state, so large inputs never need to be materialized as token
// slices unless a caller asks for that explicitly.
//
// Word scanning is a character-by-character state machine rather than a
// regular expression: it buffers runs of word characters (letters, digits,
// and configurable connector characters such as apostrophes and hyphens when
// they appear inside a word) and yields a token when a non-word character or
// the end of the text terminates the run.
//
// Offsets reported in tokens are byte offsets into the original string,
// which keeps them cheap to compute and directly usable for slicing.
package tokenizer

import "unicode"

// Token is a single lexical unit cut from the source text.
// Start and End are byte offsets forming the half-open range [Start, End).
type Token struct {
	Text  string
	Start int
	End   int
}

// DefaultConnectors are the runes treated as part of a word when they appear
// between word characters: ASCII apostrophe, typographic apostrophe, hyphen.
const DefaultConnectors = "'’-"

// Options controls word scanning behavior.
type Options struct {
	// Connectors overrides the set of runes allowed inside a word
	// (empty means DefaultConnectors). Connectors never start a word and
	// are trimmed from its end.
	Connectors string

	// KeepPunctuation switches the scanner to raw mode: tokens become
	// maximal runs of non-whitespace characters, yielded verbatim.
	KeepPunctuation bool
}

func (o Options) connectors() string {
	if o.Connectors == "" {
		return DefaultConnectors
	}
	return o.Connectors
}

func (o Options) isConnector(r rune) bool {
	for _, c := range o.connectors() {
		if r == c {
			return true
		}
	}
	return false
}

// isWordRune reports whether r belongs inside a word on its own merit.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsPunctuation reports whether r counts as punctuation for counting
// purposes. Unicode symbol classes are included so that characters like
// '$', '+', and '`' behave the same way ASCII punctuation does.
func IsPunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
