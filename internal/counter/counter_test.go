package counter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCharCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opts     CharOptions
		expected int
	}{
		{"empty string", "", CharOptions{}, 0},
		{"all characters", "Hello, World!", CharOptions{}, 13},
		{"ignore spaces", "Hello, World!", CharOptions{IgnoreSpaces: true}, 12},
		{"ignore punctuation", "Hello, World!", CharOptions{IgnorePunctuation: true}, 11},
		{"ignore digits", "a1b2c3", CharOptions{IgnoreDigits: true}, 3},
		{"ignore newlines", "a\nb\r\nc", CharOptions{IgnoreNewlines: true}, 3},
		{"symbols count as punctuation", "a$b", CharOptions{IgnorePunctuation: true}, 2},
		{"custom ignore", "hello", CharOptions{CustomIgnore: "l"}, 3},
		{"count only", "aabbcc", CharOptions{CountOnly: "ab"}, 4},
		{"count only wins over ignores", "aabbcc", CharOptions{CountOnly: "ab", CustomIgnore: "a", IgnorePunctuation: true}, 4},
		{"unicode runes", "héé", CharOptions{}, 3},
		{"tabs are not spaces", "a\tb c", CharOptions{IgnoreSpaces: true}, 4},
		{"ignore case keeps total", "AaBb", CharOptions{IgnoreCase: true}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(tt.text).CharCount(tt.opts)
			if result.Total != tt.expected {
				t.Errorf("CharCount(%q, %+v).Total = %d, want %d", tt.text, tt.opts, result.Total, tt.expected)
			}
			if tt.opts.CountOnly == "" && result.Breakdown.Sum() != result.Total {
				t.Errorf("breakdown sum %d does not match total %d", result.Breakdown.Sum(), result.Total)
			}
		})
	}
}

func TestCharCountBreakdownOrder(t *testing.T) {
	result := New("abba").CharCount(CharOptions{})

	wantKeys := []string{"a", "b"}
	if got := result.Breakdown.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Breakdown.Keys() = %v, want first-seen order %v", got, wantKeys)
	}
	if got := result.Breakdown.Get("a"); got != 2 {
		t.Errorf("Breakdown.Get(\"a\") = %d, want 2", got)
	}
	if result.TextLength != 4 {
		t.Errorf("TextLength = %d, want 4", result.TextLength)
	}
}

func TestCharCountIgnoreCase(t *testing.T) {
	result := New("AbBa").CharCount(CharOptions{IgnoreCase: true})

	wantKeys := []string{"a", "b"}
	if got := result.Breakdown.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Breakdown.Keys() = %v, want folded keys %v", got, wantKeys)
	}
	if got := result.Breakdown.Get("a"); got != 2 {
		t.Errorf("Breakdown.Get(\"a\") = %d, want 2", got)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opts     WordOptions
		expected int
	}{
		{"empty string", "", WordOptions{}, 0},
		{"simple sentence", "Hello, World!", WordOptions{}, 2},
		{"nine words", "The quick brown fox jumps over the lazy dog", WordOptions{}, 9},
		{"min length", "The quick brown fox jumps over the lazy dog", WordOptions{MinLength: 4}, 5},
		{"max length", "a bb ccc dddd", WordOptions{MaxLength: 2}, 2},
		{"length window", "a bb ccc dddd", WordOptions{MinLength: 2, MaxLength: 3}, 2},
		{"ignore numbers", "42 cats and 7 dogs", WordOptions{IgnoreNumbers: true}, 3},
		{"unique only", "the cat and the dog", WordOptions{UniqueOnly: true}, 4},
		{"unique only folds by default", "The the THE", WordOptions{UniqueOnly: true}, 1},
		{"unique only case sensitive", "The the THE", WordOptions{UniqueOnly: true, CaseSensitive: true}, 3},
		{"nine words eight unique", "The quick brown fox jumps over the lazy dog", WordOptions{UniqueOnly: true}, 8},
		{"keep punctuation", "Hello, World!", WordOptions{KeepPunctuation: true}, 2},
		{"apostrophes stay", "don't can't won't", WordOptions{}, 3},
		{"unicode words", "café über straße", WordOptions{}, 3},
		{"whitespace only", "   \n\t  ", WordOptions{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New(tt.text).WordCount(tt.opts)
			if err != nil {
				t.Fatalf("WordCount(%q, %+v) unexpected error: %v", tt.text, tt.opts, err)
			}
			if result.Total != tt.expected {
				t.Errorf("WordCount(%q, %+v).Total = %d, want %d", tt.text, tt.opts, result.Total, tt.expected)
			}
		})
	}
}

func TestWordCountValidation(t *testing.T) {
	tests := []struct {
		name     string
		opts     WordOptions
		wantErr  bool
		wantMsgs []string
	}{
		{"valid defaults", WordOptions{}, false, nil},
		{"valid window", WordOptions{MinLength: 2, MaxLength: 5}, false, nil},
		{"negative min", WordOptions{MinLength: -1}, true, []string{"min_length"}},
		{"negative max", WordOptions{MaxLength: -3}, true, []string{"max_length"}},
		{"min exceeds max", WordOptions{MinLength: 5, MaxLength: 2}, true, []string{"min_length (5) exceeds max_length (2)"}},
		{"all violations reported", WordOptions{MinLength: -1, MaxLength: -2}, true, []string{"min_length", "max_length"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("some text").WordCount(tt.opts)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("WordCount(%+v) unexpected error: %v", tt.opts, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("WordCount(%+v) expected error, got nil", tt.opts)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v is not ErrInvalidConfig", err)
			}
			for _, want := range tt.wantMsgs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err.Error(), want)
				}
			}
		})
	}
}

func TestWordCountBreakdown(t *testing.T) {
	result, err := New("b a b a").WordCount(WordOptions{})
	if err != nil {
		t.Fatalf("WordCount unexpected error: %v", err)
	}

	wantKeys := []string{"b", "a"}
	if got := result.Breakdown.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Breakdown.Keys() = %v, want first-seen order %v", got, wantKeys)
	}
	if result.Breakdown.Sum() != result.Total {
		t.Errorf("breakdown sum %d does not match total %d", result.Breakdown.Sum(), result.Total)
	}
}

func TestWordCountUniqueBreakdown(t *testing.T) {
	// with UniqueOnly the total is distinct words while the breakdown
	// keeps per-word occurrences
	result, err := New("go go gone").WordCount(WordOptions{UniqueOnly: true})
	if err != nil {
		t.Fatalf("WordCount unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2 distinct words", result.Total)
	}
	if got := result.Breakdown.Get("go"); got != 2 {
		t.Errorf("Breakdown.Get(\"go\") = %d, want 2", got)
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opts     LineOptions
		expected int
	}{
		{"empty string", "", LineOptions{}, 0},
		{"single line", "hello", LineOptions{}, 1},
		{"two lines", "a\nb", LineOptions{}, 2},
		{"blank line counted", "a\n\nb", LineOptions{}, 3},
		{"blank line ignored", "a\n\nb", LineOptions{IgnoreEmpty: true}, 2},
		{"whitespace-only line ignored", "a\n   \nb", LineOptions{IgnoreEmpty: true}, 2},
		{"trailing newline", "a\n", LineOptions{}, 2},
		{"trailing newline ignored", "a\n", LineOptions{IgnoreEmpty: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(tt.text).LineCount(tt.opts)
			if result.Total != tt.expected {
				t.Errorf("LineCount(%q, %+v).Total = %d, want %d", tt.text, tt.opts, result.Total, tt.expected)
			}
			if result.Breakdown.Len() != 0 {
				t.Errorf("LineCount should not produce a breakdown, got %d keys", result.Breakdown.Len())
			}
		})
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"single sentence", "Hello world.", 1},
		{"three sentences", "One. Two! Three?", 3},
		{"unterminated tail", "Done. still counting", 2},
		{"decimals stay inside", "Pi is 3.14. Nice.", 2},
		{"terminators only", "?!.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(tt.text).SentenceCount()
			if result.Total != tt.expected {
				t.Errorf("SentenceCount(%q).Total = %d, want %d", tt.text, result.Total, tt.expected)
			}
		})
	}
}

func TestParagraphCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"single paragraph", "one block of text", 1},
		{"two paragraphs", "first\n\nsecond", 2},
		{"whitespace-only text", " \n \n ", 0},
		{"blank lines collapse", "a\n\n\n\nb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(tt.text).ParagraphCount()
			if result.Total != tt.expected {
				t.Errorf("ParagraphCount(%q).Total = %d, want %d", tt.text, result.Total, tt.expected)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	text := "Hello, World!\n\nSecond paragraph here."
	c := New(text)
	summary := c.Summary()

	words, _ := c.WordCount(WordOptions{})
	checks := map[string]int{
		"characters":           c.CharCount(CharOptions{}).Total,
		"characters_no_spaces": c.CharCount(CharOptions{IgnoreSpaces: true}).Total,
		"words":                words.Total,
		"lines":                c.LineCount(LineOptions{}).Total,
		"sentences":            c.SentenceCount().Total,
		"paragraphs":           c.ParagraphCount().Total,
	}
	for key, want := range checks {
		if got, ok := summary[key]; !ok || got != want {
			t.Errorf("Summary()[%q] = %d, want %d", key, got, want)
		}
	}
	if _, ok := summary["unique_words"]; !ok {
		t.Error("Summary() missing unique_words")
	}
}

func TestSummaryEmptyText(t *testing.T) {
	for key, value := range New("").Summary() {
		if value != 0 {
			t.Errorf("Summary()[%q] = %d, want 0 for empty text", key, value)
		}
	}
}

func TestTokenCount(t *testing.T) {
	result, err := New("hello world").TokenCount()
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}
	// exact token counts can vary with encoding versions
	if result.Total <= 0 {
		t.Errorf("TokenCount().Total = %d, want positive number for non-empty text", result.Total)
	}

	empty, err := New("").TokenCount()
	if err != nil {
		t.Fatalf("TokenCount() on empty text unexpected error: %v", err)
	}
	if empty.Total != 0 {
		t.Errorf("TokenCount().Total = %d, want 0 for empty text", empty.Total)
	}
}
