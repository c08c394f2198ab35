package models

import "strings"

// MatchRecord is one positive signature hit.
type MatchRecord struct {
	// Name is the canonical plugin/theme name.
	Name string
	// Kind is either "plugin" or "theme".
	Kind Kind
	// Evidence is a short snippet showing where the signature matched.
	Evidence string
	// Description is carried over from the signature table when known.
	Description string
}

// Inventory is the ordered, name-unique collection of matches for one
// target. Records keep first-seen order; a second hit for the same name
// is dropped, so the first piece of evidence wins.
type Inventory struct {
	// Target is the URL the inventory was built for.
	Target string
	// PagesAnalyzed counts pages that contributed to the inventory.
	PagesAnalyzed int

	records []MatchRecord
	seen    map[string]struct{}
}

// NewInventory creates an empty inventory for a target.
func NewInventory(target string) *Inventory {
	return &Inventory{
		Target: target,
		seen:   make(map[string]struct{}),
	}
}

// Add appends a record unless a record with the same name (case
// insensitive) is already present. It reports whether the record was kept.
func (inv *Inventory) Add(record MatchRecord) bool {
	key := strings.ToLower(record.Name)
	if _, ok := inv.seen[key]; ok {
		return false
	}
	inv.seen[key] = struct{}{}
	inv.records = append(inv.records, record)
	return true
}

// Records returns all records in first-seen order.
func (inv *Inventory) Records() []MatchRecord {
	return inv.records
}

// Plugins returns plugin records in first-seen order.
func (inv *Inventory) Plugins() []MatchRecord {
	return inv.byKind(KindPlugin)
}

// Themes returns theme records in first-seen order.
func (inv *Inventory) Themes() []MatchRecord {
	return inv.byKind(KindTheme)
}

func (inv *Inventory) byKind(kind Kind) []MatchRecord {
	var out []MatchRecord
	for _, record := range inv.records {
		if record.Kind == kind {
			out = append(out, record)
		}
	}
	return out
}

// Len returns the number of unique records.
func (inv *Inventory) Len() int {
	return len(inv.records)
}

// Merge adds every record from other, keeping this inventory's
// first-seen order and uniqueness.
func (inv *Inventory) Merge(other *Inventory) {
	if other == nil {
		return
	}
	for _, record := range other.records {
		inv.Add(record)
	}
}

// MainTheme returns the first detected non-child theme name, or "".
func (inv *Inventory) MainTheme() string {
	for _, record := range inv.byKind(KindTheme) {
		if !strings.HasSuffix(strings.ToLower(record.Name), "-child") {
			return record.Name
		}
	}
	return ""
}

// ChildTheme returns the first detected child theme name, or "".
func (inv *Inventory) ChildTheme() string {
	for _, record := range inv.byKind(KindTheme) {
		if strings.HasSuffix(strings.ToLower(record.Name), "-child") {
			return record.Name
		}
	}
	return ""
}
