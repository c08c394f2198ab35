package models

// Kind classifies what a signature points at.
type Kind string

const (
	KindPlugin Kind = "plugin"
	KindTheme  Kind = "theme"
)

// Signature is a single detection rule: a pattern fragment and the
// canonical plugin/theme it implies. The table is loaded once at startup
// and never mutated afterwards.
type Signature struct {
	// Name is the canonical display name, e.g. "WooCommerce Subscriptions".
	Name string `yaml:"name"`
	// Kind is either "plugin" or "theme".
	Kind Kind `yaml:"kind"`
	// Pattern is a literal fragment or a regular expression matched
	// case-insensitively against page content.
	Pattern string `yaml:"pattern"`
	// Slug optionally ties the entry to its wp-content directory name,
	// so hits found in asset paths resolve to the same canonical name.
	Slug string `yaml:"slug,omitempty"`
	// Description is optional human-readable context shown in reports.
	Description string `yaml:"description,omitempty"`
}

// SignatureFile is the on-disk shape of a signature table.
type SignatureFile struct {
	Signatures []Signature `yaml:"signatures"`
}

// ParsedPattern is a signature pattern prepared for matching.
type ParsedPattern struct {
	// Pattern is the cleaned pattern string.
	Pattern string
	// IsLiteral marks patterns matched by simple substring search
	// instead of regex evaluation.
	IsLiteral bool
}

// CompiledSignature pairs a signature with its parsed pattern.
type CompiledSignature struct {
	Signature
	Parsed *ParsedPattern
}
