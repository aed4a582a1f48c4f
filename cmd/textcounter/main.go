package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kimo26/textcounter/internal/app"
	"github.com/kimo26/textcounter/internal/config"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	fileCfg, err := config.Load(configPath)
	if err != nil {
		return app.Config{}, err
	}

	// get flag values
	text, _ := cmd.Flags().GetString("text")
	selector, _ := cmd.Flags().GetString("selector")
	chars, _ := cmd.Flags().GetBool("chars")
	words, _ := cmd.Flags().GetBool("words")
	lines, _ := cmd.Flags().GetBool("lines")
	sentences, _ := cmd.Flags().GetBool("sentences")
	paragraphs, _ := cmd.Flags().GetBool("paragraphs")
	tokens, _ := cmd.Flags().GetBool("tokens")
	all, _ := cmd.Flags().GetBool("all")
	noSpaces, _ := cmd.Flags().GetBool("no-spaces")
	noPunctuation, _ := cmd.Flags().GetBool("no-punctuation")
	noDigits, _ := cmd.Flags().GetBool("no-digits")
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	unique, _ := cmd.Flags().GetBool("unique")
	maxLength, _ := cmd.Flags().GetInt("max-length")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	stem, _ := cmd.Flags().GetBool("stem")
	freq, _ := cmd.Flags().GetString("frequency")
	ngrams, _ := cmd.Flags().GetInt("ngrams")
	readabilityFlag, _ := cmd.Flags().GetBool("readability")
	richness, _ := cmd.Flags().GetBool("richness")
	stats, _ := cmd.Flags().GetBool("stats")
	distributions, _ := cmd.Flags().GetBool("distributions")
	extract, _ := cmd.Flags().GetString("extract")
	patternExpr, _ := cmd.Flags().GetString("pattern")
	compare, _ := cmd.Flags().GetString("compare")
	debug, _ := cmd.Flags().GetBool("debug")

	// the config file moves flag defaults; explicit flags win
	top := fileCfg.Defaults.Top
	if cmd.Flags().Changed("top") {
		top, _ = cmd.Flags().GetInt("top")
	}
	minLength := fileCfg.Defaults.MinLength
	if cmd.Flags().Changed("min-length") {
		minLength, _ = cmd.Flags().GetInt("min-length")
	}
	jsonOut := fileCfg.Defaults.Output == "json"
	if cmd.Flags().Changed("json") {
		jsonOut, _ = cmd.Flags().GetBool("json")
	}
	quiet := fileCfg.Defaults.Quiet
	if cmd.Flags().Changed("quiet") {
		quiet, _ = cmd.Flags().GetBool("quiet")
	}

	// return constructed config; positional arguments are the sources
	return app.Config{
		Text:          text,
		Sources:       args,
		Selector:      selector,
		Chars:         chars,
		Words:         words,
		Lines:         lines,
		Sentences:     sentences,
		Paragraphs:    paragraphs,
		Tokens:        tokens,
		All:           all,
		NoSpaces:      noSpaces,
		NoPunctuation: noPunctuation,
		NoDigits:      noDigits,
		IgnoreCase:    ignoreCase,
		CaseSensitive: caseSensitive,
		Unique:        unique,
		MinLength:     minLength,
		MaxLength:     maxLength,
		Frequency:     freq,
		Top:           top,
		Ngrams:        ngrams,
		Exclude:       exclude,
		Stem:          stem,
		Readability:   readabilityFlag,
		Richness:      richness,
		Stats:         stats,
		Distributions: distributions,
		Extract:       extract,
		Pattern:       patternExpr,
		Compare:       compare,
		JSON:          jsonOut,
		Quiet:         quiet,
		Debug:         debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "textcounter [sources...]",
	Short: "A CLI tool for text statistics and analysis",
	Long: `Textcounter computes counts, frequencies, readability scores, and other
statistics for text. Sources may be URLs, local files, or standard input.

Examples:
  textcounter -w essay.txt
  textcounter --frequency words --top 5 https://example.com
  cat draft.txt | textcounter --stats
  textcounter -t "Direct input text." --readability`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// run the app!
		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("textcounter failed: %w", err)
		}

		// output the result
		fmt.Print(result)

		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("text", "t", "", "Analyze this text instead of reading sources")
	rootCmd.Flags().String("selector", "", "CSS selector for extracting text from HTML sources")

	// count selection flags
	rootCmd.Flags().BoolP("chars", "c", false, "Count characters")
	rootCmd.Flags().BoolP("words", "w", false, "Count words")
	rootCmd.Flags().BoolP("lines", "l", false, "Count lines")
	rootCmd.Flags().BoolP("sentences", "s", false, "Count sentences")
	rootCmd.Flags().BoolP("paragraphs", "p", false, "Count paragraphs")
	rootCmd.Flags().Bool("tokens", false, "Count language-model tokens (cl100k_base)")
	rootCmd.Flags().BoolP("all", "a", false, "Show the full count summary")

	// counting option flags
	rootCmd.Flags().Bool("no-spaces", false, "Ignore spaces when counting characters")
	rootCmd.Flags().Bool("no-punctuation", false, "Ignore punctuation when counting characters")
	rootCmd.Flags().Bool("no-digits", false, "Ignore digits and numeric words when counting")
	rootCmd.Flags().Bool("ignore-case", false, "Fold case when counting characters")
	rootCmd.Flags().Bool("case-sensitive", false, "Distinguish case in word counting and frequency")
	rootCmd.Flags().Bool("unique", false, "Count unique words only")
	rootCmd.Flags().Int("min-length", 0, "Minimum word length to count")
	rootCmd.Flags().Int("max-length", 0, "Maximum word length to count (0 = no limit)")

	// analysis flags
	rootCmd.Flags().String("frequency", "", "Rank frequency of \"words\" or \"chars\"")
	rootCmd.Flags().Int("top", 10, "Number of entries to keep in frequency rankings")
	rootCmd.Flags().Int("ngrams", 0, "Rank frequency of N-word sequences")
	rootCmd.Flags().StringSlice("exclude", nil, "Words to exclude from frequency rankings")
	rootCmd.Flags().Bool("stem", false, "Group frequency entries by word stem")
	rootCmd.Flags().Bool("readability", false, "Score readability (Flesch metrics)")
	rootCmd.Flags().Bool("richness", false, "Measure vocabulary richness")
	rootCmd.Flags().Bool("stats", false, "Show the statistical profile")
	rootCmd.Flags().Bool("distributions", false, "Show word and sentence length distributions")
	rootCmd.Flags().String("extract", "", "Extract \"emails\", \"urls\", or \"numbers\"")
	rootCmd.Flags().String("pattern", "", "Extract matches of a regular expression")
	rootCmd.Flags().String("compare", "", "Compare statistics against another source")

	// output flags (mutually exclusive)
	rootCmd.Flags().Bool("json", false, "Output results as JSON")
	rootCmd.Flags().BoolP("quiet", "q", false, "Output bare values only")
	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")

	// other flags
	rootCmd.Flags().String("config", "", "Path to a TOML config file")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
