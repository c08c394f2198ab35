// Package analyzer provides the website technology analysis pipeline:
// fetch pages, match plugin/theme signatures, aggregate an inventory and
// optionally ask the AI stage for an interpretation.
package analyzer

import (
	"context"
	"net/url"

	"github.com/hexlane/woostack/internal/crawler"
	"github.com/hexlane/woostack/internal/detection"
	"github.com/hexlane/woostack/internal/fetcher"
	"github.com/hexlane/woostack/internal/logging"
	"github.com/hexlane/woostack/internal/models"
	"github.com/hexlane/woostack/internal/parser"
	"github.com/hexlane/woostack/internal/report"
	"github.com/hexlane/woostack/internal/signatures"
	"github.com/hexlane/woostack/internal/summarizer"
)

// Analyzer is a client for analyzing WooCommerce/WordPress sites.
type Analyzer struct {
	config *Config
	table  *signatures.Table
	fetch  *fetcher.Client
}

// Result is the complete outcome of one pipeline run.
type Result struct {
	// Inventory is the deduplicated set of detected plugins and themes.
	Inventory *models.Inventory
	// Facts carries best-effort page observations.
	Facts *models.PageFacts
	// Title is the primary page title.
	Title string
	// Summary is the AI interpretation stage outcome.
	Summary models.Summary
	// Report is the rendered plain-text report including the summary
	// section.
	Report string
}

// New creates a new analyzer client.
func New(options ...Option) (*Analyzer, error) {
	config := &Config{MaxPages: 1}
	for _, option := range options {
		option(config)
	}

	table := config.Table
	if table == nil {
		var err error
		table, err = signatures.Default()
		if err != nil {
			return nil, err
		}
	}

	fetchClient := config.Fetcher
	if fetchClient == nil {
		fetchClient = fetcher.New()
	}

	return &Analyzer{
		config: config,
		table:  table,
		fetch:  fetchClient,
	}, nil
}

// Run executes the full pipeline against one target URL. A fetch or
// network error on the primary page aborts the run; secondary pages fail
// soft. The AI stage never causes an error: its outcome is part of the
// result.
func (a *Analyzer) Run(ctx context.Context, target string) (*Result, error) {
	target = fetcher.NormalizeURL(target)

	inventory := models.NewInventory(target)
	facts := models.NewPageFacts()
	queue := crawler.NewQueue(target)

	maxPages := a.config.MaxPages
	if maxPages < 1 || a.config.DisableCrawl {
		maxPages = 1
	}

	var title string
	primary := true

	for inventory.PagesAnalyzed < maxPages {
		pageURL, ok := queue.Next()
		if !ok {
			break
		}

		fetched, err := a.fetch.Fetch(ctx, pageURL)
		if err != nil {
			if primary {
				return nil, err
			}
			logging.S().Warnw("skipping page", "url", pageURL, "error", err)
			continue
		}

		links, pageTitle := a.analyzePage(fetched.FinalURL, fetched.Body, inventory, facts)
		inventory.PagesAnalyzed++
		if primary {
			title = pageTitle
			primary = false
		}

		if inventory.PagesAnalyzed < maxPages {
			queue.Push(links...)
		}
	}

	technical := report.Render(inventory, facts, a.config.VerboseEvidence)
	summary := a.summarize(ctx, target, technical)

	return &Result{
		Inventory: inventory,
		Facts:     facts,
		Title:     title,
		Summary:   summary,
		Report:    report.AppendSummary(technical, summary),
	}, nil
}

// Match runs the signature matcher and asset-path detection over raw
// page content without any network I/O. Empty or non-HTML content
// yields an empty inventory.
func (a *Analyzer) Match(body []byte) *models.Inventory {
	inventory := models.NewInventory("")
	facts := models.NewPageFacts()
	a.analyzePage("", body, inventory, facts)
	return inventory
}

// analyzePage runs all detection passes over one fetched page and
// returns the internal links found plus the page title.
func (a *Analyzer) analyzePage(pageURL string, body []byte, inventory *models.Inventory, facts *models.PageFacts) ([]string, string) {
	detection.MatchBody(a.table, string(body), inventory)

	doc, err := parser.ParseDocument(body)
	if err != nil {
		// The content pass above already ran; nothing more to extract.
		return nil, ""
	}

	detection.MatchAssetPaths(a.table, parser.ExtractAssets(doc), inventory)
	detection.CollectFacts(doc, facts)

	var links []string
	if pageURL != "" {
		if parsed, err := url.Parse(pageURL); err == nil {
			links = crawler.ExtractLinks(doc, parsed)
		}
	}

	return links, parser.ExtractTitle(doc)
}

func (a *Analyzer) summarize(ctx context.Context, target, technicalReport string) models.Summary {
	if a.config.Summarizer == nil {
		logging.S().Warnw("AI interpretation skipped", "reason", "no provider API key configured")
		return summarizer.Skipped()
	}

	summary := a.config.Summarizer.Summarize(ctx, target, technicalReport)
	if summary.Status == models.SummaryFailed {
		logging.S().Warnw("AI interpretation failed", "error", summary.Err)
	}
	return summary
}
