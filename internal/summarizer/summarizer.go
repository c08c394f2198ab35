// Package summarizer turns an inventory report into a plain-language
// recommendation using the Gemini API. The stage is optional: without a
// credential it is skipped, and a provider failure never fails the run.
package summarizer

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/hexlane/woostack/internal/config"
	"github.com/hexlane/woostack/internal/models"
)

const defaultModel = "gemini-2.5-flash"

// Summarizer holds the provider client for the AI interpretation stage.
type Summarizer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New creates a summarizer from the AI configuration. The API key is
// required here; callers decide beforehand whether the stage runs at all.
func New(ctx context.Context, cfg config.AIConfig, timeout time.Duration) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI provider API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Summarizer{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Skipped is the stage outcome when no credential is configured.
func Skipped() models.Summary {
	return models.Summary{Status: models.SummarySkipped}
}

// Summarize sends the technical report to the provider in one
// synchronous request and returns the outcome as a value. No
// conversation state survives across calls.
func (s *Summarizer) Summarize(ctx context.Context, target, technicalReport string) models.Summary {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := BuildPrompt(target, technicalReport)

	resp, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.5),
		},
	)
	if err != nil {
		return models.Summary{Status: models.SummaryFailed, Err: err}
	}

	// No parsing beyond trimming: whatever the model returned is the
	// recommendation.
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return models.Summary{
			Status: models.SummaryFailed,
			Err:    fmt.Errorf("provider returned an empty response"),
		}
	}

	return models.Summary{Status: models.SummaryDone, Recommendation: text}
}

// BuildPrompt renders the provider prompt for one analyzed site.
func BuildPrompt(target, technicalReport string) string {
	host := target
	if parsed, err := url.Parse(target); err == nil && parsed.Host != "" {
		host = parsed.Host
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a WordPress and WooCommerce expert. I've analyzed the website %s and found the following technologies.\n", host)
	b.WriteString(`Please interpret these findings and provide:
1. A clear explanation of what plugins and themes were detected
2. What likely custom functionality exists on the site
3. Recommendations for how someone could recreate similar functionality
4. Any potential challenges that might be encountered during recreation

Here's the technical analysis:

`)
	b.WriteString(technicalReport)
	b.WriteString("\n\nPlease provide your expert interpretation in a clear, organized manner suitable for a client who wants to recreate similar functionality.\n")
	return b.String()
}
