package analyze

import (
	"math"

	"github.com/kimo26/textcounter/internal/counter"
	"github.com/kimo26/textcounter/internal/frequency"
	"github.com/kimo26/textcounter/internal/readability"
)

// TextStatistics is the combined statistical profile of one text.
// AvgWordLength is in characters. The embedded top-ten frequency results
// are available to callers but stay out of the JSON profile.
type TextStatistics struct {
	Characters         int     `json:"characters"`
	Words              int     `json:"words"`
	UniqueWords        int     `json:"unique_words"`
	Sentences          int     `json:"sentences"`
	Paragraphs         int     `json:"paragraphs"`
	AvgWordLength      float64 `json:"avg_word_length"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	VocabularyRichness float64 `json:"vocabulary_richness"`

	CharFrequency *frequency.Result `json:"-"`
	WordFrequency *frequency.Result `json:"-"`
}

// Comparison relates one metric across two texts. Difference is this minus
// other.
type Comparison struct {
	This       float64 `json:"this_value"`
	Other      float64 `json:"other_value"`
	Difference float64 `json:"difference"`
}

// Statistics computes the statistical profile of the text.
func (a *Analyzer) Statistics() TextStatistics {
	return a.memo("statistics", func() any {
		return computeStatistics(a.text, a.count)
	}).(TextStatistics)
}

func computeStatistics(text string, count *counter.Counter) TextStatistics {
	words, _ := count.WordCount(counter.WordOptions{})
	unique, _ := count.WordCount(counter.WordOptions{UniqueOnly: true})
	sentences := count.SentenceCount()
	paragraphs := count.ParagraphCount()

	stats := TextStatistics{
		Characters:  count.CharCount(counter.CharOptions{}).Total,
		Words:       words.Total,
		UniqueWords: unique.Total,
		Sentences:   sentences.Total,
		Paragraphs:  paragraphs.Total,
	}

	if words.Total > 0 {
		runes := 0
		for length, n := range readability.WordLengths(text) {
			runes += length * n
		}
		stats.AvgWordLength = round2(float64(runes) / float64(words.Total))
		stats.VocabularyRichness = round4(float64(unique.Total) / float64(words.Total))
	}
	if sentences.Total > 0 {
		stats.AvgSentenceLength = round2(float64(words.Total) / float64(sentences.Total))
	}

	stats.CharFrequency = frequency.Chars(text, frequency.CharOptions{}, 10)
	wordFreq, _ := frequency.Words(text, frequency.Options{}, 10)
	stats.WordFrequency = wordFreq
	return stats
}

// Compare relates the numeric statistics of this text against another.
// Keys are the metric names of the statistics profile.
func (a *Analyzer) Compare(other *Analyzer) map[string]Comparison {
	s, o := a.Statistics(), other.Statistics()

	compare := func(this, that float64) Comparison {
		return Comparison{This: this, Other: that, Difference: round2(this - that)}
	}
	return map[string]Comparison{
		"characters":          compare(float64(s.Characters), float64(o.Characters)),
		"words":               compare(float64(s.Words), float64(o.Words)),
		"unique_words":        compare(float64(s.UniqueWords), float64(o.UniqueWords)),
		"sentences":           compare(float64(s.Sentences), float64(o.Sentences)),
		"paragraphs":          compare(float64(s.Paragraphs), float64(o.Paragraphs)),
		"avg_word_length":     compare(s.AvgWordLength, o.AvgWordLength),
		"avg_sentence_length": compare(s.AvgSentenceLength, o.AvgSentenceLength),
		"vocabulary_richness": compare(s.VocabularyRichness, o.VocabularyRichness),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
