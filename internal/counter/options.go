package counter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when counting options contradict each other
// or fall outside their valid range. Wrapped errors list every violated
// constraint, so callers can test with errors.Is and report once.
var ErrInvalidConfig = errors.New("invalid configuration")

// CharOptions controls character counting.
type CharOptions struct {
	// IgnoreSpaces drops the space character.
	IgnoreSpaces bool
	// IgnorePunctuation drops Unicode punctuation and symbol characters.
	IgnorePunctuation bool
	// IgnoreDigits drops digit characters.
	IgnoreDigits bool
	// IgnoreNewlines drops '\n' and '\r'.
	IgnoreNewlines bool
	// CustomIgnore lists additional characters to drop.
	CustomIgnore string
	// CountOnly restricts counting to exactly this character set. When
	// set it takes precedence over every ignore option.
	CountOnly string
	// IgnoreCase folds the text before counting, so breakdown keys are
	// case-folded.
	IgnoreCase bool
}

func (o CharOptions) applied() []string {
	var names []string
	if o.IgnoreCase {
		names = append(names, "ignore_case")
	}
	if o.CountOnly != "" {
		return append(names, fmt.Sprintf("count_only=%q", o.CountOnly))
	}
	if o.IgnoreSpaces {
		names = append(names, "ignore_spaces")
	}
	if o.IgnorePunctuation {
		names = append(names, "ignore_punctuation")
	}
	if o.IgnoreDigits {
		names = append(names, "ignore_digits")
	}
	if o.IgnoreNewlines {
		names = append(names, "ignore_newlines")
	}
	if o.CustomIgnore != "" {
		names = append(names, fmt.Sprintf("custom_ignore=%q", o.CustomIgnore))
	}
	return names
}

// WordOptions controls word counting.
type WordOptions struct {
	// KeepPunctuation counts raw whitespace-delimited tokens instead of
	// scanned words.
	KeepPunctuation bool
	// IgnoreNumbers drops purely numeric words.
	IgnoreNumbers bool
	// MinLength drops words shorter than this many runes.
	MinLength int
	// MaxLength drops words longer than this many runes; zero means no
	// upper bound.
	MaxLength int
	// UniqueOnly makes Total the number of distinct qualifying words. The
	// breakdown still carries per-word occurrence counts.
	UniqueOnly bool
	// CaseSensitive keeps the original case; by default words are folded
	// before filtering and counting, so "The" and "the" are one word.
	CaseSensitive bool
	// Connectors overrides the characters allowed inside a word.
	Connectors string
}

// Validate reports every invalid option in a single error.
func (o WordOptions) Validate() error {
	var problems []string
	if o.MinLength < 0 {
		problems = append(problems, fmt.Sprintf("min_length (%d) must not be negative", o.MinLength))
	}
	if o.MaxLength < 0 {
		problems = append(problems, fmt.Sprintf("max_length (%d) must not be negative", o.MaxLength))
	}
	if o.MinLength > 0 && o.MaxLength > 0 && o.MinLength > o.MaxLength {
		problems = append(problems, fmt.Sprintf("min_length (%d) exceeds max_length (%d)", o.MinLength, o.MaxLength))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func (o WordOptions) applied() []string {
	var names []string
	if o.KeepPunctuation {
		names = append(names, "keep_punctuation")
	}
	if o.IgnoreNumbers {
		names = append(names, "ignore_numbers")
	}
	if o.MinLength > 0 {
		names = append(names, fmt.Sprintf("min_length=%d", o.MinLength))
	}
	if o.MaxLength > 0 {
		names = append(names, fmt.Sprintf("max_length=%d", o.MaxLength))
	}
	if o.UniqueOnly {
		names = append(names, "unique_only")
	}
	if o.CaseSensitive {
		names = append(names, "case_sensitive")
	}
	return names
}

// LineOptions controls line counting.
type LineOptions struct {
	// IgnoreEmpty drops lines that are empty or whitespace-only.
	IgnoreEmpty bool
}

func (o LineOptions) applied() []string {
	if o.IgnoreEmpty {
		return []string{"ignore_empty"}
	}
	return nil
}
