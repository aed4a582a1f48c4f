package app

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kimo26/textcounter/internal/analyze"
	"github.com/kimo26/textcounter/internal/counter"
	"github.com/kimo26/textcounter/internal/frequency"
	"github.com/kimo26/textcounter/internal/pattern"
	"github.com/kimo26/textcounter/internal/readability"
)

// report collects the results of the requested operations. Field order is
// the output order for every format.
type report struct {
	Characters    *counter.Result               `json:"characters,omitempty"`
	Words         *counter.Result               `json:"words,omitempty"`
	Lines         *counter.Result               `json:"lines,omitempty"`
	Sentences     *counter.Result               `json:"sentences,omitempty"`
	Paragraphs    *counter.Result               `json:"paragraphs,omitempty"`
	Tokens        *counter.Result               `json:"tokens,omitempty"`
	Summary       *summaryReport                `json:"summary,omitempty"`
	Frequency     *frequency.Result             `json:"frequency,omitempty"`
	NgramSize     int                           `json:"-"`
	Ngrams        *frequency.Result             `json:"ngrams,omitempty"`
	Readability   *readability.Result           `json:"readability,omitempty"`
	Richness      *readability.RichnessResult   `json:"richness,omitempty"`
	Statistics    *analyze.TextStatistics       `json:"statistics,omitempty"`
	Distributions *distributionReport           `json:"distributions,omitempty"`
	Extraction    *extraction                   `json:"extraction,omitempty"`
	Matches       *matchReport                  `json:"matches,omitempty"`
	Comparison    map[string]analyze.Comparison `json:"comparison,omitempty"`
}

// summaryReport mirrors counter.Summary with a fixed field order.
type summaryReport struct {
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Words              int `json:"words"`
	UniqueWords        int `json:"unique_words"`
	Lines              int `json:"lines"`
	Sentences          int `json:"sentences"`
	Paragraphs         int `json:"paragraphs"`
}

func newSummaryReport(m map[string]int) *summaryReport {
	return &summaryReport{
		Characters:         m["characters"],
		CharactersNoSpaces: m["characters_no_spaces"],
		Words:              m["words"],
		UniqueWords:        m["unique_words"],
		Lines:              m["lines"],
		Sentences:          m["sentences"],
		Paragraphs:         m["paragraphs"],
	}
}

type distributionReport struct {
	WordLengths     map[int]int `json:"word_lengths"`
	SentenceLengths map[int]int `json:"sentence_lengths"`
}

type extraction struct {
	Kind   string   `json:"kind"`
	Count  int      `json:"count"`
	Values []string `json:"values"`
}

type matchReport struct {
	Pattern string          `json:"pattern"`
	Count   int             `json:"count"`
	Matches []pattern.Match `json:"matches"`
}

// comparisonMetrics fixes the row order of comparison output.
var comparisonMetrics = []string{
	"characters", "words", "unique_words", "sentences", "paragraphs",
	"avg_word_length", "avg_sentence_length", "vocabulary_richness",
}

func (r *report) format(cfg Config) (string, error) {
	if cfg.JSON {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(data) + "\n", nil
	}
	if cfg.Quiet {
		return r.formatQuiet(), nil
	}
	return r.formatText(), nil
}

func (r *report) formatText() string {
	var sections []string
	add := func(s string) {
		if s != "" {
			sections = append(sections, s)
		}
	}

	add(countLine("Characters", r.Characters))
	add(countLine("Words", r.Words))
	add(countLine("Lines", r.Lines))
	add(countLine("Sentences", r.Sentences))
	add(countLine("Paragraphs", r.Paragraphs))
	add(countLine("Tokens", r.Tokens))

	if r.Summary != nil {
		rows := [][]string{
			{"Characters", strconv.Itoa(r.Summary.Characters)},
			{"Characters (no spaces)", strconv.Itoa(r.Summary.CharactersNoSpaces)},
			{"Words", strconv.Itoa(r.Summary.Words)},
			{"Unique words", strconv.Itoa(r.Summary.UniqueWords)},
			{"Lines", strconv.Itoa(r.Summary.Lines)},
			{"Sentences", strconv.Itoa(r.Summary.Sentences)},
			{"Paragraphs", strconv.Itoa(r.Summary.Paragraphs)},
		}
		add("Summary:\n" + renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	}

	if r.Frequency != nil {
		add(frequencyTable("Frequency", r.Frequency))
	}
	if r.Ngrams != nil {
		add(frequencyTable(fmt.Sprintf("%d-grams", r.NgramSize), r.Ngrams))
	}

	if r.Readability != nil {
		add(strings.Join([]string{
			"Flesch Reading Ease: " + fnum(r.Readability.FleschReadingEase),
			"Flesch-Kincaid Grade: " + fnum(r.Readability.FleschKincaidGrade),
			"Average Sentence Length: " + fnum(r.Readability.AvgSentenceLength) + " words",
			"Average Word Length: " + fnum(r.Readability.AvgWordLength) + " syllables",
			"Complexity: " + r.Readability.ComplexityRating,
			"Target Audience: " + r.Readability.TargetAudience,
		}, "\n"))
	}
	if r.Richness != nil {
		add(strings.Join([]string{
			"Type-Token Ratio: " + fnum(r.Richness.TypeTokenRatio),
			"Hapax Legomena Ratio: " + fnum(r.Richness.HapaxRatio),
			"Yule's K: " + fnum(r.Richness.YulesK),
		}, "\n"))
	}

	if r.Statistics != nil {
		s := r.Statistics
		lines := []string{
			"Characters: " + strconv.Itoa(s.Characters),
			"Words: " + strconv.Itoa(s.Words),
			"Unique words: " + strconv.Itoa(s.UniqueWords),
			"Sentences: " + strconv.Itoa(s.Sentences),
			"Paragraphs: " + strconv.Itoa(s.Paragraphs),
			"Average word length: " + fnum(s.AvgWordLength) + " characters",
			"Average sentence length: " + fnum(s.AvgSentenceLength) + " words",
			"Vocabulary richness: " + fnum(s.VocabularyRichness),
		}
		if s.WordFrequency != nil && len(s.WordFrequency.Entries) > 0 {
			lines = append(lines, "Top words: "+topWordsLine(s.WordFrequency, 5))
		}
		add(strings.Join(lines, "\n"))
	}

	if r.Distributions != nil {
		add(distributionLines("Word lengths", r.Distributions.WordLengths) +
			"\n" + distributionLines("Sentence lengths", r.Distributions.SentenceLengths))
	}

	if r.Extraction != nil {
		add(valueList(kindLabel(r.Extraction.Kind), r.Extraction.Values))
	}
	if r.Matches != nil {
		if len(r.Matches.Matches) == 0 {
			add(fmt.Sprintf("Matches for %s (0)", r.Matches.Pattern))
		} else {
			lines := make([]string, 0, len(r.Matches.Matches)+1)
			lines = append(lines, fmt.Sprintf("Matches for %s (%d):", r.Matches.Pattern, r.Matches.Count))
			for _, m := range r.Matches.Matches {
				lines = append(lines, fmt.Sprintf("  %d-%d  %s", m.Start, m.End, m.Text))
			}
			add(strings.Join(lines, "\n"))
		}
	}

	if r.Comparison != nil {
		rows := make([][]string, 0, len(comparisonMetrics))
		for _, metric := range comparisonMetrics {
			c, ok := r.Comparison[metric]
			if !ok {
				continue
			}
			rows = append(rows, []string{metric, fnum(c.This), fnum(c.Other), fnum(c.Difference)})
		}
		add("Comparison:\n" + renderTable(
			[]string{"Metric", "This", "Other", "Difference"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
		))
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func (r *report) formatQuiet() string {
	var lines []string
	addCount := func(res *counter.Result) {
		if res != nil {
			lines = append(lines, strconv.Itoa(res.Total))
		}
	}

	addCount(r.Characters)
	addCount(r.Words)
	addCount(r.Lines)
	addCount(r.Sentences)
	addCount(r.Paragraphs)
	addCount(r.Tokens)

	if r.Summary != nil {
		lines = append(lines,
			"characters "+strconv.Itoa(r.Summary.Characters),
			"characters_no_spaces "+strconv.Itoa(r.Summary.CharactersNoSpaces),
			"words "+strconv.Itoa(r.Summary.Words),
			"unique_words "+strconv.Itoa(r.Summary.UniqueWords),
			"lines "+strconv.Itoa(r.Summary.Lines),
			"sentences "+strconv.Itoa(r.Summary.Sentences),
			"paragraphs "+strconv.Itoa(r.Summary.Paragraphs),
		)
	}
	for _, freq := range []*frequency.Result{r.Frequency, r.Ngrams} {
		if freq == nil {
			continue
		}
		for _, e := range freq.Entries {
			lines = append(lines, fmt.Sprintf("%s %d", e.Token, e.Count))
		}
	}
	if r.Readability != nil {
		lines = append(lines,
			"flesch_reading_ease "+fnum(r.Readability.FleschReadingEase),
			"flesch_kincaid_grade "+fnum(r.Readability.FleschKincaidGrade),
			"avg_sentence_length "+fnum(r.Readability.AvgSentenceLength),
			"avg_word_length "+fnum(r.Readability.AvgWordLength),
		)
	}
	if r.Richness != nil {
		lines = append(lines,
			"type_token_ratio "+fnum(r.Richness.TypeTokenRatio),
			"hapax_legomena_ratio "+fnum(r.Richness.HapaxRatio),
			"yules_k "+fnum(r.Richness.YulesK),
		)
	}
	if r.Statistics != nil {
		s := r.Statistics
		lines = append(lines,
			"characters "+strconv.Itoa(s.Characters),
			"words "+strconv.Itoa(s.Words),
			"unique_words "+strconv.Itoa(s.UniqueWords),
			"sentences "+strconv.Itoa(s.Sentences),
			"paragraphs "+strconv.Itoa(s.Paragraphs),
			"avg_word_length "+fnum(s.AvgWordLength),
			"avg_sentence_length "+fnum(s.AvgSentenceLength),
			"vocabulary_richness "+fnum(s.VocabularyRichness),
		)
	}
	if r.Distributions != nil {
		for _, k := range sortedKeys(r.Distributions.WordLengths) {
			lines = append(lines, fmt.Sprintf("word_length %d %d", k, r.Distributions.WordLengths[k]))
		}
		for _, k := range sortedKeys(r.Distributions.SentenceLengths) {
			lines = append(lines, fmt.Sprintf("sentence_length %d %d", k, r.Distributions.SentenceLengths[k]))
		}
	}
	if r.Extraction != nil {
		lines = append(lines, r.Extraction.Values...)
	}
	if r.Matches != nil {
		for _, m := range r.Matches.Matches {
			lines = append(lines, m.Text)
		}
	}
	if r.Comparison != nil {
		for _, metric := range comparisonMetrics {
			if c, ok := r.Comparison[metric]; ok {
				lines = append(lines, metric+" "+fnum(c.Difference))
			}
		}
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func countLine(label string, res *counter.Result) string {
	if res == nil {
		return ""
	}
	line := fmt.Sprintf("%s: %d", label, res.Total)
	if len(res.Options) > 0 {
		line += " [" + strings.Join(res.Options, ", ") + "]"
	}
	return line
}

func frequencyTable(title string, f *frequency.Result) string {
	rows := make([][]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		rows = append(rows, []string{
			e.Token,
			strconv.Itoa(e.Count),
			fnum(f.Percentages[e.Token]),
		})
	}
	header := fmt.Sprintf("%s (total %d, unique %d):", title, f.Total, f.Unique)
	if len(rows) == 0 {
		return strings.TrimSuffix(header, ":")
	}
	return header + "\n" + renderTable(
		[]string{"Token", "Count", "%"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}

func topWordsLine(f *frequency.Result, n int) string {
	entries := f.Top(n)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.Token, e.Count))
	}
	return strings.Join(parts, ", ")
}

func distributionLines(title string, dist map[int]int) string {
	lines := []string{title + ":"}
	for _, k := range sortedKeys(dist) {
		lines = append(lines, fmt.Sprintf("  %d: %d", k, dist[k]))
	}
	return strings.Join(lines, "\n")
}

func valueList(label string, values []string) string {
	if len(values) == 0 {
		return label + " (0)"
	}
	lines := make([]string, 0, len(values)+1)
	lines = append(lines, fmt.Sprintf("%s (%d):", label, len(values)))
	for _, v := range values {
		lines = append(lines, "  "+v)
	}
	return strings.Join(lines, "\n")
}

func kindLabel(kind string) string {
	switch kind {
	case "emails":
		return "Emails"
	case "urls":
		return "URLs"
	case "numbers":
		return "Numbers"
	}
	return kind
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// fnum renders a float without trailing zeros.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
