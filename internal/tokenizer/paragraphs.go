package tokenizer

import "strings"

// ParagraphIterator yields paragraph tokens from a text.
//
// Paragraphs are blocks of non-blank lines separated by at least one blank
// line, where a blank line is empty or contains only whitespace. Yielded
// text is trimmed of surrounding whitespace; blocks that trim to nothing are
// skipped.
type ParagraphIterator struct {
	text string
	pos  int
}

// Paragraphs returns an iterator over the paragraphs of text.
func Paragraphs(text string) *ParagraphIterator {
	return &ParagraphIterator{text: text}
}

// Next returns the next paragraph token. ok is false once the text is
// exhausted.
func (it *ParagraphIterator) Next() (Token, bool) {
	for it.pos < len(it.text) {
		blockStart := -1
		for it.pos < len(it.text) {
			lineEnd := strings.IndexByte(it.text[it.pos:], '\n')
			next := len(it.text)
			if lineEnd >= 0 {
				lineEnd += it.pos
				next = lineEnd + 1
			} else {
				lineEnd = len(it.text)
			}

			blank := strings.TrimSpace(it.text[it.pos:lineEnd]) == ""
			if blank && blockStart >= 0 {
				tok, ok := trimRange(it.text, blockStart, it.pos)
				it.pos = next
				if ok {
					return tok, true
				}
				blockStart = -1
				continue
			}
			if !blank && blockStart < 0 {
				blockStart = it.pos
			}
			it.pos = next
		}
		if blockStart >= 0 {
			if tok, ok := trimRange(it.text, blockStart, len(it.text)); ok {
				return tok, true
			}
		}
	}
	return Token{}, false
}

// Reset rewinds the iterator to the start of the text.
func (it *ParagraphIterator) Reset() {
	it.pos = 0
}

// ParagraphStrings materializes the paragraph values of text in order.
func ParagraphStrings(text string) []string {
	var paragraphs []string
	it := Paragraphs(text)
	for {
		tok, ok := it.Next()
		if !ok {
			return paragraphs
		}
		paragraphs = append(paragraphs, tok.Text)
	}
}

// Lines splits text on '\n', trimming a trailing '\r' from each line.
// Empty text has no lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
