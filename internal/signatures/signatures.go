// Package signatures loads and compiles the plugin/theme signature
// table. The default table ships embedded in the binary; a custom table
// can be loaded from a YAML file instead. Either way the table is built
// once at startup and read-only afterwards.
package signatures

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hexlane/woostack/internal/models"
	"github.com/hexlane/woostack/internal/parser"
)

//go:embed default.yaml
var defaultTableYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Table is a compiled, read-only signature table.
type Table struct {
	entries []models.CompiledSignature
	bySlug  map[string]models.Signature
}

// Default returns the embedded signature table, compiled once.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(defaultTableYAML)
	})
	return defaultTable, defaultErr
}

// Load reads and compiles a signature table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read signature table: %w", err)
	}
	return Parse(data)
}

// Parse compiles a signature table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var file models.SignatureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not decode signature table: %w", err)
	}
	return Compile(file.Signatures)
}

// Compile validates and compiles raw signatures into a table.
func Compile(sigs []models.Signature) (*Table, error) {
	table := &Table{
		entries: make([]models.CompiledSignature, 0, len(sigs)),
		bySlug:  make(map[string]models.Signature),
	}

	for i, sig := range sigs {
		if sig.Name == "" {
			return nil, fmt.Errorf("signature %d: name is required", i)
		}
		if sig.Pattern == "" {
			return nil, fmt.Errorf("signature %q: pattern is required", sig.Name)
		}
		switch sig.Kind {
		case models.KindPlugin, models.KindTheme:
		default:
			return nil, fmt.Errorf("signature %q: kind must be plugin or theme, got %q", sig.Name, sig.Kind)
		}

		parsed, err := parser.ParsePattern(sig.Pattern)
		if err != nil {
			return nil, fmt.Errorf("signature %q: %w", sig.Name, err)
		}

		table.entries = append(table.entries, models.CompiledSignature{
			Signature: sig,
			Parsed:    parsed,
		})

		if sig.Slug != "" {
			slug := strings.ToLower(sig.Slug)
			if _, exists := table.bySlug[slug]; !exists {
				table.bySlug[slug] = sig
			}
		}
	}

	return table, nil
}

// Entries returns all compiled signatures in table order.
func (t *Table) Entries() []models.CompiledSignature {
	return t.entries
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// LookupSlug resolves a wp-content directory slug to its canonical
// signature, when the table knows it.
func (t *Table) LookupSlug(slug string) (models.Signature, bool) {
	sig, ok := t.bySlug[strings.ToLower(slug)]
	return sig, ok
}
