// Package crawler manages the page budget for multi-page analysis:
// which internal links to visit next and which URLs were already seen.
package crawler

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks returns absolute same-host links found on the page, in
// document order, without duplicates. Anchors, other hosts and
// non-HTTP(S) schemes are skipped.
func ExtractLinks(doc *goquery.Document, pageURL *url.URL) []string {
	var links []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}

		resolved, err := pageURL.Parse(href)
		if err != nil {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		if resolved.Host != pageURL.Host {
			return
		}

		resolved.Fragment = ""
		link := resolved.String()
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	return links
}

// Queue is a FIFO frontier of URLs to visit with a visited set, so a
// crawl never fetches the same URL twice.
type Queue struct {
	pending []string
	visited map[string]struct{}
}

// NewQueue creates a frontier seeded with the given URLs.
func NewQueue(seeds ...string) *Queue {
	q := &Queue{visited: make(map[string]struct{})}
	q.Push(seeds...)
	return q
}

// Push enqueues URLs that have not been seen before.
func (q *Queue) Push(urls ...string) {
	for _, u := range urls {
		if _, ok := q.visited[u]; ok {
			continue
		}
		q.visited[u] = struct{}{}
		q.pending = append(q.pending, u)
	}
}

// Next dequeues the next URL to visit. The second return is false when
// the frontier is empty.
func (q *Queue) Next() (string, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	return next, true
}

// Seen reports whether the URL was ever enqueued.
func (q *Queue) Seen(u string) bool {
	_, ok := q.visited[u]
	return ok
}
