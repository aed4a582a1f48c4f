// Package app contains the core pipeline for the textcounter CLI.
// It resolves input text, runs the requested analyses, and formats results;
// flag parsing stays in cmd.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kimo26/textcounter/internal/analyze"
	"github.com/kimo26/textcounter/internal/counter"
	"github.com/kimo26/textcounter/internal/extract"
	"github.com/kimo26/textcounter/internal/fetch"
	"github.com/kimo26/textcounter/internal/frequency"
	"github.com/kimo26/textcounter/internal/pattern"
	"github.com/kimo26/textcounter/internal/spinner"
)

// Config holds all options for one textcounter invocation.
type Config struct {
	Text     string   // direct input text; excludes Sources
	Sources  []string // file paths, URLs, or "-" for stdin
	Selector string   // CSS selector for HTML sources

	// count selection
	Chars      bool
	Words      bool
	Lines      bool
	Sentences  bool
	Paragraphs bool
	Tokens     bool
	All        bool

	// counting options
	NoSpaces      bool
	NoPunctuation bool
	NoDigits      bool
	IgnoreCase    bool // fold case when counting characters
	CaseSensitive bool // distinguish case in word counting and frequency
	Unique        bool
	MinLength     int
	MaxLength     int

	// analysis operations
	Frequency     string // "words" or "chars"
	Top           int
	Ngrams        int
	Exclude       []string
	Stem          bool
	Readability   bool
	Richness      bool
	Stats         bool
	Distributions bool
	Extract       string // "emails", "urls", or "numbers"
	Pattern       string
	Compare       string // second source to compare against

	// output
	JSON  bool
	Quiet bool
	Debug bool
}

// Run executes the textcounter pipeline: resolve the input text, run the
// requested operations against one analysis session, and format the report.
func Run(ctx context.Context, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	text, err := resolveText(ctx, cfg)
	if err != nil {
		return "", err
	}
	slog.Debug("input resolved", "chars", len(text), "sources", len(cfg.Sources))

	var out string
	err = analyze.WithSession(text, func(a *analyze.Analyzer) error {
		rep, err := buildReport(ctx, a, cfg)
		if err != nil {
			return err
		}
		out, err = rep.format(cfg)
		return err
	})
	return out, err
}

func (cfg Config) validate() error {
	if cfg.Text != "" && len(cfg.Sources) > 0 {
		return fmt.Errorf("provide direct text or sources, not both")
	}
	switch cfg.Frequency {
	case "", "words", "chars":
	default:
		return fmt.Errorf("frequency target must be %q or %q, got %q", "words", "chars", cfg.Frequency)
	}
	switch cfg.Extract {
	case "", "emails", "urls", "numbers":
	default:
		return fmt.Errorf("extract target must be %q, %q, or %q, got %q", "emails", "urls", "numbers", cfg.Extract)
	}
	if cfg.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", cfg.Top)
	}
	if cfg.Ngrams < 0 {
		return fmt.Errorf("ngram size must not be negative, got %d", cfg.Ngrams)
	}
	return nil
}

// resolveText returns the direct text when given, otherwise fetches and
// extracts every source. No text and no sources means stdin.
func resolveText(ctx context.Context, cfg Config) (string, error) {
	if cfg.Text != "" {
		return cfg.Text, nil
	}
	sources := cfg.Sources
	if len(sources) == 0 {
		sources = []string{"-"}
	}
	return gatherSources(ctx, sources, cfg.Selector, cfg.Quiet)
}

// gatherSources reads every source and joins the extracted texts with blank
// lines, so each source forms its own paragraph block. Failing sources are
// skipped with a warning; it is an error only when nothing could be read.
func gatherSources(ctx context.Context, sources []string, selector string, quiet bool) (string, error) {
	sp := spinner.New(os.Stderr, "")
	defer sp.Stop()

	var combined strings.Builder
	succeeded := 0
	for _, source := range sources {
		if isURL(source) && !quiet && spinner.Enabled(os.Stderr) {
			sp.SetMessage(fmt.Sprintf("Fetching %s...", source))
			sp.Start()
		}
		content, err := readSource(ctx, source, selector)
		sp.Stop()
		if err != nil {
			if !quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}

		succeeded++
		if content == "" {
			continue
		}
		if combined.Len() > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(content)
	}

	if succeeded == 0 {
		return "", fmt.Errorf("no content extracted from any source")
	}
	return combined.String(), nil
}

// readSource fetches one source and extracts its text.
func readSource(ctx context.Context, source, selector string) (string, error) {
	reader, err := fetch.GetContent(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to fetch content: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}

	text, err := extract.ToText(data, source, selector)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	slog.Debug("source extracted", "source", source, "bytes", len(data), "chars", len(text))
	return text, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// buildReport runs every requested operation in report order. When no
// operation is selected the summary runs, so a bare invocation is useful.
func buildReport(ctx context.Context, a *analyze.Analyzer, cfg Config) (*report, error) {
	rep := &report{}
	count := a.Counter()

	if cfg.Chars {
		r := count.CharCount(cfg.charOptions())
		rep.Characters = &r
	}
	if cfg.Words {
		r, err := count.WordCount(cfg.wordOptions())
		if err != nil {
			return nil, err
		}
		rep.Words = &r
	}
	if cfg.Lines {
		r := count.LineCount(counter.LineOptions{})
		rep.Lines = &r
	}
	if cfg.Sentences {
		r := count.SentenceCount()
		rep.Sentences = &r
	}
	if cfg.Paragraphs {
		r := count.ParagraphCount()
		rep.Paragraphs = &r
	}
	if cfg.Tokens {
		r, err := count.TokenCount()
		if err != nil {
			return nil, err
		}
		rep.Tokens = &r
	}
	if cfg.All || cfg.noOperations() {
		rep.Summary = newSummaryReport(count.Summary())
	}

	switch cfg.Frequency {
	case "words":
		f, err := a.WordFrequency(cfg.frequencyOptions(), cfg.Top)
		if err != nil {
			return nil, err
		}
		rep.Frequency = f
	case "chars":
		rep.Frequency = a.CharFrequency(frequency.CharOptions{}, cfg.Top)
	}

	if cfg.Ngrams > 0 {
		f, err := a.Ngrams(cfg.Ngrams, cfg.frequencyOptions(), cfg.Top)
		if err != nil {
			return nil, err
		}
		rep.NgramSize = cfg.Ngrams
		rep.Ngrams = f
	}
	if cfg.Readability {
		r := a.Readability()
		rep.Readability = &r
	}
	if cfg.Richness {
		r := a.VocabularyRichness()
		rep.Richness = &r
	}
	if cfg.Stats {
		s := a.Statistics()
		rep.Statistics = &s
	}
	if cfg.Distributions {
		rep.Distributions = &distributionReport{
			WordLengths:     a.WordLengthDistribution(),
			SentenceLengths: a.SentenceLengthDistribution(),
		}
	}

	if cfg.Extract != "" {
		var values []string
		switch cfg.Extract {
		case "emails":
			values = a.Emails()
		case "urls":
			values = a.URLs()
		case "numbers":
			values = a.Numbers()
		}
		if values == nil {
			values = []string{}
		}
		rep.Extraction = &extraction{Kind: cfg.Extract, Count: len(values), Values: values}
	}

	if cfg.Pattern != "" {
		matches, err := a.FindPatterns(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		if matches == nil {
			matches = []pattern.Match{}
		}
		rep.Matches = &matchReport{Pattern: cfg.Pattern, Count: len(matches), Matches: matches}
	}

	if cfg.Compare != "" {
		otherText, err := gatherSources(ctx, []string{cfg.Compare}, cfg.Selector, cfg.Quiet)
		if err != nil {
			return nil, fmt.Errorf("failed to read comparison source: %w", err)
		}
		other := analyze.New(otherText)
		defer other.Close()
		rep.Comparison = a.Compare(other)
	}

	return rep, nil
}

func (cfg Config) noOperations() bool {
	return !cfg.Chars && !cfg.Words && !cfg.Lines && !cfg.Sentences && !cfg.Paragraphs &&
		!cfg.Tokens && !cfg.All && cfg.Frequency == "" && cfg.Ngrams == 0 &&
		!cfg.Readability && !cfg.Richness && !cfg.Stats && !cfg.Distributions &&
		cfg.Extract == "" && cfg.Pattern == "" && cfg.Compare == ""
}

func (cfg Config) charOptions() counter.CharOptions {
	return counter.CharOptions{
		IgnoreSpaces:      cfg.NoSpaces,
		IgnorePunctuation: cfg.NoPunctuation,
		IgnoreDigits:      cfg.NoDigits,
		IgnoreCase:        cfg.IgnoreCase,
	}
}

func (cfg Config) wordOptions() counter.WordOptions {
	return counter.WordOptions{
		IgnoreNumbers: cfg.NoDigits,
		MinLength:     cfg.MinLength,
		MaxLength:     cfg.MaxLength,
		UniqueOnly:    cfg.Unique,
		CaseSensitive: cfg.CaseSensitive,
	}
}

func (cfg Config) frequencyOptions() frequency.Options {
	return frequency.Options{
		CaseSensitive: cfg.CaseSensitive,
		MinLength:     cfg.MinLength,
		Exclude:       cfg.Exclude,
		Stem:          cfg.Stem,
	}
}
