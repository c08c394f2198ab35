package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlane/woostack/internal/models"
)

func sampleInventory() *models.Inventory {
	inv := models.NewInventory("https://shop.example")
	inv.PagesAnalyzed = 2
	inv.Add(models.MatchRecord{
		Name:        "WooCommerce",
		Kind:        models.KindPlugin,
		Evidence:    "/wp-content/plugins/woocommerce/",
		Description: "Core eCommerce functionality",
	})
	inv.Add(models.MatchRecord{Name: "storefront-child", Kind: models.KindTheme})
	inv.Add(models.MatchRecord{Name: "storefront", Kind: models.KindTheme})
	return inv
}

func TestRenderEmptyInventory(t *testing.T) {
	inv := models.NewInventory("https://shop.example")
	inv.PagesAnalyzed = 1

	out := Render(inv, models.NewPageFacts(), false)
	assert.Contains(t, out, "No known plugins/themes detected.")
	assert.Contains(t, out, "Target:         https://shop.example")
}

func TestRenderDeterministic(t *testing.T) {
	inv := sampleInventory()
	facts := models.NewPageFacts()
	facts.AddBlock("wp-block-gallery")
	facts.AddShortcode("product_grid")

	first := Render(inv, facts, false)
	second := Render(inv, facts, false)
	assert.Equal(t, first, second, "same inputs must produce identical bytes")
}

func TestRenderMatches(t *testing.T) {
	out := Render(sampleInventory(), nil, false)

	assert.Contains(t, out, "- WooCommerce - Core eCommerce functionality")
	assert.Contains(t, out, "- Main theme: storefront")
	assert.Contains(t, out, "- Child theme: storefront-child")
	assert.NotContains(t, out, "found in:", "evidence only appears in verbose mode")
}

func TestRenderVerboseIncludesEvidence(t *testing.T) {
	out := Render(sampleInventory(), nil, true)
	assert.Contains(t, out, "found in: /wp-content/plugins/woocommerce/")
}

func TestRenderFacts(t *testing.T) {
	facts := models.NewPageFacts()
	facts.Generator = "WordPress 6.4"
	facts.AddRestRoute("wc/store")
	facts.AddAjaxAction("load_more")
	facts.AddPostType("portfolio")
	facts.AddDataAttribute("data-countdown-target=2026-01-01")

	out := Render(sampleInventory(), facts, false)
	assert.Contains(t, out, "Generator:      WordPress 6.4")
	assert.Contains(t, out, "REST routes:\n- wc/store")
	assert.Contains(t, out, "AJAX actions:\n- load_more")
	assert.Contains(t, out, "Custom post types:\n- portfolio")
	assert.Contains(t, out, "Custom data attributes:\n- data-countdown-target=2026-01-01")
}

func TestAppendSummaryDone(t *testing.T) {
	out := AppendSummary("report body\n", models.Summary{
		Status:         models.SummaryDone,
		Recommendation: "Looks like a subscription shop.",
	})
	assert.Contains(t, out, "AI Interpretation")
	assert.Contains(t, out, "Looks like a subscription shop.")
}

func TestAppendSummarySkipped(t *testing.T) {
	out := AppendSummary("report body\n", models.Summary{Status: models.SummarySkipped})
	assert.Contains(t, out, "Skipped: no provider API key configured.")
	assert.Contains(t, out, "report body", "inventory output stays intact")
}

func TestAppendSummaryFailed(t *testing.T) {
	out := AppendSummary("report body\n", models.Summary{
		Status: models.SummaryFailed,
		Err:    errors.New("deadline exceeded"),
	})
	assert.Contains(t, out, "Failed: deadline exceeded")
	assert.Contains(t, out, "report body")
}

func TestFilename(t *testing.T) {
	now := time.Unix(1700000000, 0)
	name := Filename("https://shop.example:8443/path", now)
	require.Equal(t, "woostack_shop.example_8443_1700000000.txt", name)
}
