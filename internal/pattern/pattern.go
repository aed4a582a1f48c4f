// Package pattern extracts emails, URLs, numbers, and caller-supplied
// regular expression matches from text.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern is returned when a caller-supplied expression does not
// compile.
var ErrInvalidPattern = errors.New("invalid pattern")

var (
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlPattern    = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)
	numberPattern = regexp.MustCompile(`[+-]?\d+\.?\d*`)
)

// trailing sentence punctuation glued to a URL is not part of it
const urlTrailingPunct = ".,;:!?)"

// Match is one occurrence of a pattern. Start and End are byte offsets
// forming the half-open range [Start, End).
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Emails returns every email address in text, in order of appearance.
func Emails(text string) []string {
	return emailPattern.FindAllString(text, -1)
}

// URLs returns every http and https URL in text, in order of appearance,
// with trailing sentence punctuation stripped.
func URLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	for i, m := range matches {
		matches[i] = strings.TrimRight(m, urlTrailingPunct)
	}
	return matches
}

// Numbers returns every integer or decimal number in text, in order of
// appearance, keeping an attached sign.
func Numbers(text string) []string {
	return numberPattern.FindAllString(text, -1)
}

// Find returns the leftmost non-overlapping matches of expr in text with
// their positions. The expression is compiled verbatim; an invalid one
// yields an error wrapping ErrInvalidPattern. No matches is an empty
// result, not an error.
func Find(text, expr string) ([]Match, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	indexes := re.FindAllStringIndex(text, -1)
	if indexes == nil {
		return nil, nil
	}
	matches := make([]Match, len(indexes))
	for i, idx := range indexes {
		matches[i] = Match{Start: idx[0], End: idx[1], Text: text[idx[0]:idx[1]]}
	}
	return matches, nil
}
