package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// SentenceOptions controls sentence boundary detection.
type SentenceOptions struct {
	// SplitDecimals makes a '.' between two digits end a sentence.
	// Off by default so "3.14" stays inside one sentence.
	SplitDecimals bool
}

// SentenceIterator yields sentence tokens from a text.
//
// A sentence ends at a run of '.', '!', or '?' characters. The terminator
// run is not part of the yielded text, and segments that are empty after
// trimming surrounding whitespace are skipped. Text after the last
// terminator counts as a final sentence.
type SentenceIterator struct {
	text      string
	opts      SentenceOptions
	pos       int
	segStart  int
	termStart int
}

// Sentences returns an iterator over the sentences of text.
func Sentences(text string, opts SentenceOptions) *SentenceIterator {
	return &SentenceIterator{text: text, opts: opts, termStart: -1}
}

// Next returns the next sentence token. ok is false once the text is
// exhausted.
func (it *SentenceIterator) Next() (Token, bool) {
	for it.pos < len(it.text) {
		r, size := utf8.DecodeRuneInString(it.text[it.pos:])
		if it.isTerminator(r, size) {
			if it.termStart < 0 {
				it.termStart = it.pos
			}
			it.pos += size
			continue
		}
		if it.termStart >= 0 {
			tok, ok := trimRange(it.text, it.segStart, it.termStart)
			it.segStart = it.pos
			it.termStart = -1
			it.pos += size
			if ok {
				return tok, true
			}
			continue
		}
		it.pos += size
	}

	end := len(it.text)
	if it.termStart >= 0 {
		end = it.termStart
		it.termStart = -1
	}
	if it.segStart < len(it.text) {
		tok, ok := trimRange(it.text, it.segStart, end)
		it.segStart = len(it.text)
		if ok {
			return tok, true
		}
	}
	return Token{}, false
}

// Reset rewinds the iterator to the start of the text.
func (it *SentenceIterator) Reset() {
	it.pos = 0
	it.segStart = 0
	it.termStart = -1
}

func (it *SentenceIterator) isTerminator(r rune, size int) bool {
	switch r {
	case '!', '?':
		return true
	case '.':
		if it.opts.SplitDecimals {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(it.text[:it.pos])
		next, _ := utf8.DecodeRuneInString(it.text[it.pos+size:])
		return !(unicode.IsDigit(prev) && unicode.IsDigit(next))
	}
	return false
}

// SentenceStrings materializes the sentence values of text in order.
func SentenceStrings(text string, opts SentenceOptions) []string {
	var sentences []string
	it := Sentences(text, opts)
	for {
		tok, ok := it.Next()
		if !ok {
			return sentences
		}
		sentences = append(sentences, tok.Text)
	}
}

// trimRange shrinks [start, end) past surrounding whitespace and returns the
// resulting token. ok is false when nothing remains.
func trimRange(text string, start, end int) (Token, bool) {
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if end <= start {
		return Token{}, false
	}
	return Token{Text: text[start:end], Start: start, End: end}, true
}
