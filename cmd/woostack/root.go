package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hexlane/woostack/internal/config"
	"github.com/hexlane/woostack/internal/fetcher"
	"github.com/hexlane/woostack/internal/logging"
	"github.com/hexlane/woostack/internal/report"
	"github.com/hexlane/woostack/internal/signatures"
	"github.com/hexlane/woostack/internal/summarizer"
	"github.com/hexlane/woostack/pkg/analyzer"
)

var (
	configPath     string
	signaturesPath string
	outputPath     string
	maxPages       int
	timeoutSecs    int
	userAgent      string
	saveReport     bool
	verbose        bool
	jsonLogs       bool
	noAI           bool
)

var rootCmd = &cobra.Command{
	Use:   "woostack <url>",
	Short: "Detect WooCommerce plugins and themes on a website",
	Long: `woostack fetches a WooCommerce/WordPress site, matches its HTML and
linked assets against a table of plugin and theme signatures, and prints
a report of what it found.

With a Gemini API key configured (GEMINI_API_KEY or WOOSTACK_API_KEY),
the report is also sent to the model for a plain-language interpretation.
Without a key that stage is skipped and the inventory stands on its own.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(verbose, jsonLogs)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd, args[0])
	},
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logging.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&signaturesPath, "signatures", "", "Path to a custom signature table (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Output logs in JSON format")

	rootCmd.Flags().IntVar(&maxPages, "pages", 0, "Number of pages to crawl (default from config, 5)")
	rootCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Fetch timeout in seconds (default from config, 10)")
	rootCmd.Flags().StringVar(&userAgent, "user-agent", "", "Override the User-Agent header")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file")
	rootCmd.Flags().BoolVar(&saveReport, "save", false, "Save the report to an auto-named file")
	rootCmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip the AI interpretation stage")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(signaturesCmd)
}

func runAnalysis(cmd *cobra.Command, target string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if maxPages > 0 {
		cfg.Crawl.MaxPages = maxPages
	}
	if timeoutSecs > 0 {
		cfg.Fetch.TimeoutSeconds = timeoutSecs
	}
	if userAgent != "" {
		cfg.Fetch.UserAgent = userAgent
	}
	if signaturesPath != "" {
		cfg.Signatures.Path = signaturesPath
	}

	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	fetchOptions := []fetcher.Option{fetcher.WithTimeout(cfg.FetchTimeout())}
	if cfg.Fetch.UserAgent != "" {
		fetchOptions = append(fetchOptions, fetcher.WithUserAgent(cfg.Fetch.UserAgent))
	}
	if cfg.Fetch.MaxBodyBytes > 0 {
		fetchOptions = append(fetchOptions, fetcher.WithMaxBodySize(cfg.Fetch.MaxBodyBytes))
	}

	options := []analyzer.Option{
		analyzer.WithSignatureTable(table),
		analyzer.WithFetcher(fetcher.New(fetchOptions...)),
		analyzer.WithMaxPages(cfg.Crawl.MaxPages),
	}
	if verbose {
		options = append(options, analyzer.WithVerboseEvidence())
	}

	if !noAI && cfg.AIEnabled() {
		summ, err := summarizer.New(ctx, cfg.AI, cfg.AITimeout())
		if err != nil {
			// A broken AI setup must not block the inventory stages.
			logging.S().Warnw("AI stage unavailable", "error", err)
		} else {
			options = append(options, analyzer.WithSummarizer(summ))
		}
	}

	client, err := analyzer.New(options...)
	if err != nil {
		return err
	}

	logging.S().Infow("starting analysis", "target", target, "pages", cfg.Crawl.MaxPages)

	result, err := client.Run(ctx, target)
	if err != nil {
		var fetchErr *fetcher.FetchError
		if errors.As(err, &fetchErr) {
			return fmt.Errorf("fetch stage failed: status %d for %s", fetchErr.StatusCode, fetchErr.URL)
		}
		var netErr *fetcher.NetworkError
		if errors.As(err, &netErr) {
			return fmt.Errorf("fetch stage failed: %v", netErr.Err)
		}
		return err
	}

	fmt.Println(result.Report)

	path := outputPath
	if path == "" && saveReport {
		path = report.Filename(result.Inventory.Target, time.Now())
	}
	if path != "" {
		if err := report.WriteFile(path, result.Report); err != nil {
			return fmt.Errorf("could not save report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", path)
	}

	return nil
}

func loadTable(cfg config.Config) (*signatures.Table, error) {
	if cfg.Signatures.Path != "" {
		return signatures.Load(cfg.Signatures.Path)
	}
	return signatures.Default()
}
