// Package detection holds the pure matching functions of the pipeline.
// Nothing here performs I/O: every function maps page content plus the
// read-only signature table to inventory records.
package detection

import (
	"strings"

	"github.com/hexlane/woostack/internal/models"
	"github.com/hexlane/woostack/internal/parser"
	"github.com/hexlane/woostack/internal/signatures"
)

// evidenceWindow bounds how much surrounding context an evidence
// snippet carries.
const evidenceWindow = 40

// MatchBody matches every table signature against the raw page content
// and records hits in the inventory. Empty content yields no matches.
func MatchBody(table *signatures.Table, body string, inv *models.Inventory) {
	if body == "" {
		return
	}

	for _, entry := range table.Entries() {
		fragment, idx, ok := parser.FindPattern(entry.Parsed, body)
		if !ok {
			continue
		}
		inv.Add(models.MatchRecord{
			Name:        entry.Name,
			Kind:        entry.Kind,
			Evidence:    Snippet(body, idx, len(fragment)),
			Description: entry.Description,
		})
	}
}

// Snippet returns a single-line excerpt of target around a match,
// padded with surrounding context and collapsed whitespace.
func Snippet(target string, idx, length int) string {
	start := idx - evidenceWindow
	if start < 0 {
		start = 0
	}
	end := idx + length + evidenceWindow
	if end > len(target) {
		end = len(target)
	}
	return strings.Join(strings.Fields(target[start:end]), " ")
}
