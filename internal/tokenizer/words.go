package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// WordIterator yields word tokens from a text in a single forward pass.
type WordIterator struct {
	text string
	opts Options
	pos  int
}

// Words returns an iterator over the words of text, scanned per opts.
func Words(text string, opts Options) *WordIterator {
	return &WordIterator{text: text, opts: opts}
}

// Next returns the next word token. ok is false once the text is exhausted.
func (it *WordIterator) Next() (Token, bool) {
	if it.opts.KeepPunctuation {
		return it.nextRaw()
	}
	return it.nextWord()
}

// Reset rewinds the iterator to the start of the text.
func (it *WordIterator) Reset() {
	it.pos = 0
}

// nextWord buffers a run of word characters. Connectors join a run only when
// it is already open; a run is cut back to its last letter or digit before
// being yielded, which trims trailing connectors.
func (it *WordIterator) nextWord() (Token, bool) {
	start := -1
	end := 0 // byte offset just past the last letter/digit in the run

	for it.pos < len(it.text) {
		r, size := utf8.DecodeRuneInString(it.text[it.pos:])
		switch {
		case isWordRune(r):
			if start < 0 {
				start = it.pos
			}
			end = it.pos + size
		case start >= 0 && it.opts.isConnector(r):
			// keep scanning; end stays at the last word rune
		default:
			if start >= 0 {
				it.pos += size
				return Token{Text: it.text[start:end], Start: start, End: end}, true
			}
		}
		it.pos += size
	}

	if start >= 0 {
		return Token{Text: it.text[start:end], Start: start, End: end}, true
	}
	return Token{}, false
}

// nextRaw yields maximal runs of non-whitespace characters verbatim.
func (it *WordIterator) nextRaw() (Token, bool) {
	start := -1

	for it.pos < len(it.text) {
		r, size := utf8.DecodeRuneInString(it.text[it.pos:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				tok := Token{Text: it.text[start:it.pos], Start: start, End: it.pos}
				it.pos += size
				return tok, true
			}
		} else if start < 0 {
			start = it.pos
		}
		it.pos += size
	}

	if start >= 0 {
		return Token{Text: it.text[start:], Start: start, End: len(it.text)}, true
	}
	return Token{}, false
}

// WordStrings materializes the word values of text in scan order.
func WordStrings(text string, opts Options) []string {
	var words []string
	it := Words(text, opts)
	for {
		tok, ok := it.Next()
		if !ok {
			return words
		}
		words = append(words, tok.Text)
	}
}
