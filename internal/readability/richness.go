package readability

import (
	"log/slog"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/kimo26/textcounter/internal/tokenizer"
)

// RichnessResult bundles vocabulary richness measures. Values are rounded
// to four decimals; a text without words scores zero everywhere.
type RichnessResult struct {
	// TypeTokenRatio is distinct words over total words.
	TypeTokenRatio float64 `json:"type_token_ratio"`
	// HapaxRatio is the share of words that occur exactly once.
	HapaxRatio float64 `json:"hapax_legomena_ratio"`
	// YulesK characterizes the word-frequency spectrum; lower means a
	// richer vocabulary.
	YulesK float64 `json:"yules_k"`
}

// Richness measures the vocabulary richness of text. Words are case-folded
// before counting.
func Richness(text string) RichnessResult {
	folder := cases.Fold()
	freqs := make(map[string]int)
	total := 0

	it := tokenizer.Words(text, tokenizer.Options{})
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		freqs[folder.String(tok.Text)]++
		total++
	}
	if total == 0 {
		return RichnessResult{}
	}

	hapax := 0
	spectrum := make(map[int]int) // occurrence count -> number of word types
	for _, f := range freqs {
		if f == 1 {
			hapax++
		}
		spectrum[f]++
	}

	sum := 0
	for f, types := range spectrum {
		sum += f * f * types
	}
	n := float64(total)
	k := 10000 * (float64(sum) - n) / (n * n)

	slog.Debug("Richness calculated", "words", total, "types", len(freqs))
	return RichnessResult{
		TypeTokenRatio: round4(float64(len(freqs)) / n),
		HapaxRatio:     round4(float64(hapax) / n),
		YulesK:         round4(k),
	}
}

// WordLengths maps word length in runes to the number of words of that
// length.
func WordLengths(text string) map[int]int {
	lengths := make(map[int]int)
	it := tokenizer.Words(text, tokenizer.Options{})
	for {
		tok, ok := it.Next()
		if !ok {
			return lengths
		}
		lengths[utf8.RuneCountInString(tok.Text)]++
	}
}

// SentenceLengths maps sentence length in words to the number of sentences
// of that length.
func SentenceLengths(text string) map[int]int {
	lengths := make(map[int]int)
	it := tokenizer.Sentences(text, tokenizer.SentenceOptions{})
	for {
		tok, ok := it.Next()
		if !ok {
			return lengths
		}
		lengths[len(tokenizer.WordStrings(tok.Text, tokenizer.Options{}))]++
	}
}
