package tokenizer

import "unicode/utf8"

// CharIterator walks a text one code point at a time.
type CharIterator struct {
	text string
	pos  int
}

// Chars returns an iterator over the code points of text.
func Chars(text string) *CharIterator {
	return &CharIterator{text: text}
}

// Next returns the byte offset and value of the next code point.
// ok is false once the text is exhausted.
func (it *CharIterator) Next() (offset int, r rune, ok bool) {
	if it.pos >= len(it.text) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	offset = it.pos
	it.pos += size
	return offset, r, true
}

// Reset rewinds the iterator to the start of the text.
func (it *CharIterator) Reset() {
	it.pos = 0
}
