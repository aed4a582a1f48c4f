// Package readability scores how hard a text is to read and how rich its
// vocabulary is.
//
// Scores use the Flesch reading-ease and Flesch-Kincaid grade formulas over
// a syllable estimate, so they are heuristics suited to English prose.
// Vocabulary richness covers type-token ratio, hapax legomena, and Yule's K,
// plus word- and sentence-length distributions.
package readability

import (
	"log/slog"
	"math"

	"github.com/kimo26/textcounter/internal/tokenizer"
)

// Result bundles the readability metrics of one text. AvgWordLength is in
// syllables per word, the unit the formulas consume.
type Result struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	AvgWordLength      float64 `json:"avg_word_length"`
	ComplexityRating   string  `json:"complexity_rating"`
	TargetAudience     string  `json:"target_audience"`
}

// Analyze scores text. Texts without words score zero with an "N/A" rating;
// this never fails.
//
// The reading-ease value is reported unclamped, so extreme inputs can land
// above 100 or below 0. The grade level is floored at 0.
func Analyze(text string) Result {
	words := tokenizer.WordStrings(text, tokenizer.Options{})
	if len(words) == 0 {
		return Result{ComplexityRating: "N/A", TargetAudience: "N/A"}
	}

	sentences := 0
	it := tokenizer.Sentences(text, tokenizer.SentenceOptions{})
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		sentences++
	}
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, word := range words {
		syllables += Syllables(word)
	}

	asl := float64(len(words)) / float64(sentences)
	asw := float64(syllables) / float64(len(words))

	ease := 206.835 - 1.015*asl - 84.6*asw
	grade := 0.39*asl + 11.8*asw - 15.59
	if grade < 0 {
		grade = 0
	}

	rating := Rating(ease)
	slog.Debug("Readability calculated", "words", len(words), "sentences", sentences, "ease", ease)
	return Result{
		FleschReadingEase:  round2(ease),
		FleschKincaidGrade: round2(grade),
		AvgSentenceLength:  round2(asl),
		AvgWordLength:      round2(asw),
		ComplexityRating:   rating,
		TargetAudience:     Audience(rating),
	}
}

// Rating maps a Flesch reading-ease score to its complexity band.
func Rating(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	}
	return "Very Confusing"
}

// Audience maps a complexity band to the schooling level expected to read
// it comfortably.
func Audience(rating string) string {
	switch rating {
	case "Very Easy":
		return "Elementary school"
	case "Easy", "Fairly Easy":
		return "Middle school"
	case "Standard", "Fairly Difficult":
		return "High school"
	case "Difficult":
		return "College"
	case "Very Confusing":
		return "Graduate level"
	}
	return "N/A"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
