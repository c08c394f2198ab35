package detection

import (
	"regexp"
	"strings"

	"github.com/hexlane/woostack/internal/models"
	"github.com/hexlane/woostack/internal/signatures"
)

var (
	// Plugin and theme directory layouts, standard WordPress first,
	// then the layouts used by Bedrock-style and relocated installs.
	pluginPathRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)/wp-content/plugins/([^/]+)/`),
		regexp.MustCompile(`(?i)/app/plugins/([^/]+)/`),
		regexp.MustCompile(`(?i)/wp/plugins/([^/]+)/`),
		regexp.MustCompile(`(?i)/plugins/([^/]+)/`),
	}
	themePathRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)/wp-content/themes/([^/]+)/`),
		regexp.MustCompile(`(?i)/app/themes/([^/]+)/`),
		regexp.MustCompile(`(?i)/wp/themes/([^/]+)/`),
		regexp.MustCompile(`(?i)/themes/([^/]+)/`),
	}
)

// MatchAssetPaths inspects script and stylesheet URLs for plugin and
// theme directory fragments. Slugs the table knows resolve to their
// canonical name; unknown slugs are recorded as-is so custom plugins
// still show up. A child theme slug also implies its parent theme.
func MatchAssetPaths(table *signatures.Table, assets []string, inv *models.Inventory) {
	for _, asset := range assets {
		if slug, ok := firstSlug(pluginPathRegexes, asset); ok {
			inv.Add(slugRecord(table, slug, models.KindPlugin, asset))
		}
		if slug, ok := firstSlug(themePathRegexes, asset); ok {
			inv.Add(slugRecord(table, slug, models.KindTheme, asset))

			if parent, isChild := strings.CutSuffix(strings.ToLower(slug), "-child"); isChild && parent != "" {
				record := slugRecord(table, parent, models.KindTheme, "")
				record.Evidence = "implied by child theme " + slug
				inv.Add(record)
			}
		}
	}
}

// firstSlug returns the directory slug captured by the first matching
// path layout. Layouts are ordered most to least specific so the
// generic /plugins/ form never shadows a /wp-content/plugins/ hit.
func firstSlug(regexes []*regexp.Regexp, asset string) (string, bool) {
	for _, re := range regexes {
		if match := re.FindStringSubmatch(asset); match != nil {
			return match[1], true
		}
	}
	return "", false
}

func slugRecord(table *signatures.Table, slug string, kind models.Kind, evidence string) models.MatchRecord {
	record := models.MatchRecord{
		Name:     slug,
		Kind:     kind,
		Evidence: evidence,
	}
	if sig, ok := table.LookupSlug(slug); ok && sig.Kind == kind {
		record.Name = sig.Name
		record.Description = sig.Description
	}
	return record
}
