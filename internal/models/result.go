package models

import "sort"

// PageFacts collects best-effort observations that are not signature
// matches: block editor usage, shortcodes, REST routes, admin-ajax
// actions, custom post types and custom data attributes. Values are
// kept unique and rendered sorted for determinism.
type PageFacts struct {
	// Generator is the content of the first meta generator tag seen.
	Generator string

	blocks         map[string]struct{}
	shortcodes     map[string]struct{}
	restRoutes     map[string]struct{}
	ajaxActions    map[string]struct{}
	postTypes      map[string]struct{}
	dataAttributes map[string]struct{}
}

// NewPageFacts creates an empty fact collector.
func NewPageFacts() *PageFacts {
	return &PageFacts{
		blocks:         make(map[string]struct{}),
		shortcodes:     make(map[string]struct{}),
		restRoutes:     make(map[string]struct{}),
		ajaxActions:    make(map[string]struct{}),
		postTypes:      make(map[string]struct{}),
		dataAttributes: make(map[string]struct{}),
	}
}

// AddBlock records a Gutenberg block class, e.g. "wp-block-gallery".
func (f *PageFacts) AddBlock(name string) { f.blocks[name] = struct{}{} }

// AddShortcode records a shortcode name without brackets.
func (f *PageFacts) AddShortcode(name string) { f.shortcodes[name] = struct{}{} }

// AddRestRoute records a wp-json route, e.g. "wc/store".
func (f *PageFacts) AddRestRoute(route string) { f.restRoutes[route] = struct{}{} }

// AddAjaxAction records an admin-ajax.php action name.
func (f *PageFacts) AddAjaxAction(action string) { f.ajaxActions[action] = struct{}{} }

// AddPostType records a non-builtin post type slug seen in permalinks.
func (f *PageFacts) AddPostType(name string) { f.postTypes[name] = struct{}{} }

// AddDataAttribute records a custom data attribute as "name=value".
func (f *PageFacts) AddDataAttribute(attr string) { f.dataAttributes[attr] = struct{}{} }

// Blocks returns recorded block classes, sorted.
func (f *PageFacts) Blocks() []string { return sorted(f.blocks) }

// Shortcodes returns recorded shortcodes, sorted.
func (f *PageFacts) Shortcodes() []string { return sorted(f.shortcodes) }

// RestRoutes returns recorded REST routes, sorted.
func (f *PageFacts) RestRoutes() []string { return sorted(f.restRoutes) }

// AjaxActions returns recorded AJAX actions, sorted.
func (f *PageFacts) AjaxActions() []string { return sorted(f.ajaxActions) }

// PostTypes returns recorded custom post type slugs, sorted.
func (f *PageFacts) PostTypes() []string { return sorted(f.postTypes) }

// DataAttributes returns recorded custom data attributes, sorted.
func (f *PageFacts) DataAttributes() []string { return sorted(f.dataAttributes) }

func sorted(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
