package detection

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hexlane/woostack/internal/models"
	"github.com/hexlane/woostack/internal/parser"
)

var (
	shortcodeRegex = regexp.MustCompile(`\[([a-zA-Z0-9_-]+)(?:\s+[^\]]+)?\]`)
	restRouteRegex = regexp.MustCompile(`/wp-json/([^/"']+)/([^/"']+)`)
	// Matches both query-string form (action=foo) and object-literal
	// form (action: 'foo') used around admin-ajax.php calls.
	ajaxActionRegex = regexp.MustCompile(`['"]?action['"]?\s*[:=]\s*['"]([a-zA-Z0-9_-]+)['"]`)
	// A permalink of the form /<base>/<slug>/ where base is not a
	// builtin rewrite base suggests a registered custom post type.
	postTypeRegex = regexp.MustCompile(`/([a-z0-9_-]+)/[a-z0-9_-]+/?$`)
)

// builtinRewriteBases are the standard permalink bases; only other
// bases count as custom post types.
var builtinRewriteBases = map[string]struct{}{
	"category": {},
	"tag":      {},
	"product":  {},
	"post":     {},
	"page":     {},
}

// dataAttrOwners are attribute name fragments owned by well-known
// plugins; those attributes say nothing about bespoke functionality.
var dataAttrOwners = []string{"elementor", "woocommerce", "product"}

// CollectFacts gathers best-effort page observations that are not
// signature matches: the generator meta tag, Gutenberg block classes,
// shortcodes, REST routes, admin-ajax actions referenced by inline
// scripts, custom post types hinted at by permalinks and custom data
// attributes.
func CollectFacts(doc *goquery.Document, facts *models.PageFacts) {
	if facts.Generator == "" {
		meta := parser.ExtractMetaTags(doc)
		facts.Generator = meta["generator"]
	}

	for _, class := range parser.ExtractClasses(doc) {
		if strings.HasPrefix(class, "wp-block-") {
			facts.AddBlock(class)
		}
	}

	for _, script := range parser.ExtractInlineScripts(doc) {
		for _, match := range shortcodeRegex.FindAllStringSubmatch(script, -1) {
			facts.AddShortcode(match[1])
		}
		for _, match := range restRouteRegex.FindAllStringSubmatch(script, -1) {
			facts.AddRestRoute(match[1] + "/" + match[2])
		}
		if strings.Contains(script, "admin-ajax.php") {
			for _, match := range ajaxActionRegex.FindAllStringSubmatch(script, -1) {
				facts.AddAjaxAction(match[1])
			}
		}
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		match := postTypeRegex.FindStringSubmatch(href)
		if match == nil {
			return
		}
		if _, builtin := builtinRewriteBases[match[1]]; builtin {
			return
		}
		facts.AddPostType(match[1])
	})

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			for _, attr := range node.Attr {
				if !strings.HasPrefix(attr.Key, "data-") || pluginOwnedAttr(attr.Key) {
					continue
				}
				facts.AddDataAttribute(attr.Key + "=" + attr.Val)
			}
		}
	})
}

func pluginOwnedAttr(name string) bool {
	for _, owner := range dataAttrOwners {
		if strings.Contains(name, owner) {
			return true
		}
	}
	return false
}
