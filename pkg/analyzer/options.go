package analyzer

import (
	"github.com/hexlane/woostack/internal/fetcher"
	"github.com/hexlane/woostack/internal/signatures"
	"github.com/hexlane/woostack/internal/summarizer"
)

// Config contains configuration options for the analyzer client.
type Config struct {
	// Table is the compiled signature table. Nil means the embedded
	// default table.
	Table *signatures.Table
	// Fetcher performs page retrieval. Nil means a default client.
	Fetcher *fetcher.Client
	// Summarizer runs the AI interpretation stage. Nil skips the stage.
	Summarizer *summarizer.Summarizer
	// MaxPages is the crawl budget including the primary page.
	// Values below 1 mean a single page.
	MaxPages int
	// VerboseEvidence includes evidence snippets in the report.
	VerboseEvidence bool
	// DisableCrawl restricts analysis to the primary page even when
	// MaxPages allows more.
	DisableCrawl bool
}

// Option is a function that configures the analyzer client.
type Option func(*Config)

// WithSignatureTable sets a custom compiled signature table.
func WithSignatureTable(table *signatures.Table) Option {
	return func(c *Config) {
		c.Table = table
	}
}

// WithFetcher sets a custom fetch client.
func WithFetcher(client *fetcher.Client) Option {
	return func(c *Config) {
		c.Fetcher = client
	}
}

// WithSummarizer enables the AI interpretation stage.
func WithSummarizer(s *summarizer.Summarizer) Option {
	return func(c *Config) {
		c.Summarizer = s
	}
}

// WithMaxPages sets the crawl budget including the primary page.
func WithMaxPages(pages int) Option {
	return func(c *Config) {
		c.MaxPages = pages
	}
}

// WithVerboseEvidence includes evidence snippets in rendered reports.
func WithVerboseEvidence() Option {
	return func(c *Config) {
		c.VerboseEvidence = true
	}
}

// WithoutCrawl restricts analysis to the primary page.
func WithoutCrawl() Option {
	return func(c *Config) {
		c.DisableCrawl = true
	}
}
