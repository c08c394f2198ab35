package parser

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseDocument parses raw HTML into a queryable document. Non-HTML or
// empty input still yields a valid (mostly empty) document, so callers
// never have to special-case bad content.
func ParseDocument(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// ExtractAssets returns the URLs of scripts and stylesheets referenced
// by the page, in document order.
func ExtractAssets(doc *goquery.Document) []string {
	var assets []string

	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			assets = append(assets, src)
		}
	})
	doc.Find("link[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			assets = append(assets, href)
		}
	})

	return assets
}

// ExtractMetaTags returns meta name/content pairs with names lowercased.
func ExtractMetaTags(doc *goquery.Document) map[string]string {
	results := make(map[string]string)

	doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		content, _ := sel.Attr("content")
		if name == "" || content == "" {
			return
		}
		name = strings.ToLower(name)
		if _, exists := results[name]; !exists {
			results[name] = content
		}
	})

	return results
}

// ExtractTitle returns the page title, trimmed.
func ExtractTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// ExtractInlineScripts returns the text of inline script blocks.
func ExtractInlineScripts(doc *goquery.Document) []string {
	var scripts []string

	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		if _, ok := sel.Attr("src"); ok {
			return
		}
		if text := sel.Text(); strings.TrimSpace(text) != "" {
			scripts = append(scripts, text)
		}
	})

	return scripts
}

// ExtractClasses returns every CSS class used on the page, in document
// order, without duplicates.
func ExtractClasses(doc *goquery.Document) []string {
	var classes []string
	seen := make(map[string]struct{})

	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		attr, _ := sel.Attr("class")
		for _, class := range strings.Fields(attr) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			classes = append(classes, class)
		}
	})

	return classes
}
