package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hexlane/woostack/internal/models"
)

// ParsePattern parses a signature pattern string into a structured model.
// Plain fragments become literal substring matches; anything containing
// regex metacharacters (or wrapped in "/") is treated as a regular
// expression and validated here so matching never fails later.
func ParsePattern(pattern string) (*models.ParsedPattern, error) {
	parsed := &models.ParsedPattern{
		Pattern:   pattern,
		IsLiteral: !isRegexPattern(pattern),
	}

	if !parsed.IsLiteral {
		cleaned := cleanPatternString(pattern)
		if _, err := CompileRegex(cleaned); err != nil {
			return nil, fmt.Errorf("invalid regex pattern: %w", err)
		}
		parsed.Pattern = cleaned
	}

	return parsed, nil
}

// EvaluatePattern checks whether target matches the pattern. Matching is
// case-insensitive for both literal and regex patterns.
func EvaluatePattern(pattern *models.ParsedPattern, target string) bool {
	if pattern.IsLiteral {
		return strings.Contains(
			strings.ToLower(target),
			strings.ToLower(pattern.Pattern),
		)
	}

	regex, err := CompileRegex(pattern.Pattern)
	if err != nil {
		return false
	}
	return regex.MatchString(target)
}

// FindPattern returns the matched fragment of target and its offset, for
// evidence snippets. The third return is false when the pattern does not
// match.
func FindPattern(pattern *models.ParsedPattern, target string) (string, int, bool) {
	raw := pattern.Pattern
	if pattern.IsLiteral {
		if !EvaluatePattern(pattern, target) {
			return "", 0, false
		}
		// Locate the hit on the original string. Byte offsets taken
		// from a case-folded copy do not line up with it: folding can
		// change rune widths.
		raw = regexp.QuoteMeta(pattern.Pattern)
	}

	regex, err := CompileRegex(raw)
	if err != nil {
		return "", 0, false
	}
	loc := regex.FindStringIndex(target)
	if loc == nil {
		return "", 0, false
	}
	return target[loc[0]:loc[1]], loc[0], true
}

// isRegexPattern checks if the pattern is a regular expression
func isRegexPattern(pattern string) bool {
	// Check for common regex characters
	specialChars := []string{"\\", "^", "$", ".", "|", "?", "*", "+", "(", "[", "{"}
	for _, char := range specialChars {
		if strings.Contains(pattern, char) {
			return true
		}
	}

	// Check if pattern is surrounded by "/"
	if isSlashWrapped(pattern) {
		return true
	}

	return false
}

// cleanPatternString strips the surrounding "/" from JavaScript-style
// regex literals.
func cleanPatternString(pattern string) string {
	if isSlashWrapped(pattern) {
		pattern = pattern[1 : len(pattern)-1]
	}
	return pattern
}

// isSlashWrapped reports whether the pattern is a /.../ regex literal.
// Path fragments like "/wp-content/plugins/foo/" also start and end with
// a slash, so anything containing interior slashes is not treated as one.
func isSlashWrapped(pattern string) bool {
	if len(pattern) <= 2 || pattern[0] != '/' || pattern[len(pattern)-1] != '/' {
		return false
	}
	return !strings.Contains(pattern[1:len(pattern)-1], "/")
}
