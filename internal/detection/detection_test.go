package detection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlane/woostack/internal/models"
	"github.com/hexlane/woostack/internal/parser"
	"github.com/hexlane/woostack/internal/signatures"
)

func defaultTable(t *testing.T) *signatures.Table {
	t.Helper()
	table, err := signatures.Default()
	require.NoError(t, err)
	return table
}

func TestMatchBodySubscriptionsScenario(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	body := `<script src="/wp-content/plugins/woocommerce-subscriptions/js/subs.js"></script>`

	MatchBody(defaultTable(t), body, inv)

	var found *models.MatchRecord
	for _, record := range inv.Records() {
		if record.Name == "WooCommerce Subscriptions" {
			found = &record
			break
		}
	}
	require.NotNil(t, found, "expected a WooCommerce Subscriptions record")
	assert.Equal(t, models.KindPlugin, found.Kind)
	assert.Contains(t, found.Evidence, "woocommerce-subscriptions")
}

func TestMatchBodyCaseInsensitive(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	MatchBody(defaultTable(t), `/WP-CONTENT/PLUGINS/WOOCOMMERCE-SUBSCRIPTIONS/`, inv)

	names := recordNames(inv)
	assert.Contains(t, names, "WooCommerce Subscriptions")
}

func TestMatchBodyEmptyContent(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	MatchBody(defaultTable(t), "", inv)
	assert.Zero(t, inv.Len())
}

func TestMatchBodyNoRecognizableFragments(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	MatchBody(defaultTable(t), "<html><body>plain static site</body></html>", inv)
	assert.Zero(t, inv.Len())
}

func TestMatchBodyNonASCIIContent(t *testing.T) {
	// Case folding changes the byte width of these runes; matching must
	// still land on the right evidence and never slice out of range.
	inv := models.NewInventory("https://example.com")
	body := strings.Repeat("Ⱥ", 50) + `<script src="/wp-content/plugins/jetpack/jp.js"></script>`

	MatchBody(defaultTable(t), body, inv)

	var found *models.MatchRecord
	for _, record := range inv.Records() {
		if record.Name == "Jetpack" {
			found = &record
			break
		}
	}
	require.NotNil(t, found)
	assert.Contains(t, found.Evidence, "jetpack")
}

func TestMatchBodyDeterministic(t *testing.T) {
	body := `<link href="/wp-content/plugins/woocommerce/woo.css">
<script src="/wp-content/plugins/jetpack/jp.js"></script>
<link href="/wp-content/themes/storefront/style.css">`

	first := models.NewInventory("https://example.com")
	MatchBody(defaultTable(t), body, first)
	second := models.NewInventory("https://example.com")
	MatchBody(defaultTable(t), body, second)

	require.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Records(), second.Records())
}

func TestMatchBodyNoDuplicateRecords(t *testing.T) {
	// Three separate WooCommerce fragments must collapse into one record.
	body := `/wp-content/plugins/woocommerce/ woocommerce-product-gallery widget_shopping_cart_content`
	inv := models.NewInventory("https://example.com")
	MatchBody(defaultTable(t), body, inv)

	count := 0
	for _, name := range recordNames(inv) {
		if name == "WooCommerce" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMatchAssetPathsKnownSlug(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	assets := []string{"https://shop.example/wp-content/plugins/woocommerce-bookings/js/booking.js"}

	MatchAssetPaths(defaultTable(t), assets, inv)

	require.Equal(t, 1, inv.Len())
	record := inv.Records()[0]
	assert.Equal(t, "WooCommerce Bookings", record.Name)
	assert.Equal(t, models.KindPlugin, record.Kind)
	assert.Equal(t, assets[0], record.Evidence)
}

func TestMatchAssetPathsUnknownSlugKept(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	MatchAssetPaths(defaultTable(t), []string{"/wp-content/plugins/acme-custom-checkout/app.js"}, inv)

	require.Equal(t, 1, inv.Len())
	assert.Equal(t, "acme-custom-checkout", inv.Records()[0].Name)
	assert.Equal(t, models.KindPlugin, inv.Records()[0].Kind)
}

func TestMatchAssetPathsBedrockLayout(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	MatchAssetPaths(defaultTable(t), []string{"/app/plugins/woocommerce/dist/cart.js"}, inv)

	names := recordNames(inv)
	assert.Contains(t, names, "WooCommerce")
}

func TestMatchAssetPathsChildThemeImpliesParent(t *testing.T) {
	inv := models.NewInventory("https://example.com")
	MatchAssetPaths(defaultTable(t), []string{"/wp-content/themes/storefront-child/style.css"}, inv)

	names := recordNames(inv)
	assert.Contains(t, names, "storefront-child")
	assert.Contains(t, names, "storefront")

	assert.Equal(t, "storefront", inv.MainTheme())
	assert.Equal(t, "storefront-child", inv.ChildTheme())
}

func TestCollectFacts(t *testing.T) {
	page := `<html><head><meta name="generator" content="WordPress 6.4"></head>
<body>
<div class="wp-block-gallery wp-block-columns"></div>
<script>
jQuery.post("/wp-admin/admin-ajax.php", {action: 'load_more_products'});
fetch("/wp-json/wc/store");
var content = '[product_grid columns="3"]';
</script>
</body></html>`

	doc, err := parser.ParseDocument([]byte(page))
	require.NoError(t, err)

	facts := models.NewPageFacts()
	CollectFacts(doc, facts)

	assert.Equal(t, "WordPress 6.4", facts.Generator)
	assert.Equal(t, []string{"wp-block-columns", "wp-block-gallery"}, facts.Blocks())
	assert.Contains(t, facts.Shortcodes(), "product_grid")
	assert.Contains(t, facts.RestRoutes(), "wc/store")
	assert.Contains(t, facts.AjaxActions(), "load_more_products")
}

func TestCollectFactsCustomPostTypes(t *testing.T) {
	page := `<html><body>
<a href="/portfolio/mountain-shoot/">Work</a>
<a href="/product/tent/">Tent</a>
<a href="/category/news/">News</a>
<a href="/shop">Shop</a>
</body></html>`

	doc, err := parser.ParseDocument([]byte(page))
	require.NoError(t, err)

	facts := models.NewPageFacts()
	CollectFacts(doc, facts)

	// Builtin permalink bases and single-segment links stay out.
	assert.Equal(t, []string{"portfolio"}, facts.PostTypes())
}

func TestCollectFactsCustomDataAttributes(t *testing.T) {
	page := `<html><body>
<div data-countdown-target="2026-01-01" data-product-id="17" data-elementor-type="wp-page"></div>
</body></html>`

	doc, err := parser.ParseDocument([]byte(page))
	require.NoError(t, err)

	facts := models.NewPageFacts()
	CollectFacts(doc, facts)

	assert.Equal(t, []string{"data-countdown-target=2026-01-01"}, facts.DataAttributes())
}

func TestSnippetBounds(t *testing.T) {
	text := "abcdef"
	assert.Equal(t, "abcdef", Snippet(text, 0, 6))
	assert.Equal(t, "abcdef", Snippet(text, 2, 2))
}

func recordNames(inv *models.Inventory) []string {
	names := make([]string, 0, inv.Len())
	for _, record := range inv.Records() {
		names = append(names, record.Name)
	}
	return names
}
