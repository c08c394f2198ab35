package parser

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	regexCacheMu sync.RWMutex
	// Cache of compiled regular expressions
	regexCache = make(map[string]*regexp.Regexp)
)

// CompileRegex compiles a regular expression string into a regexp.Regexp.
// It caches the compiled regexes for better performance.
func CompileRegex(pattern string) (*regexp.Regexp, error) {
	regexCacheMu.RLock()
	compiled, ok := regexCache[pattern]
	regexCacheMu.RUnlock()
	if ok {
		return compiled, nil
	}

	normalized := normalizePattern(pattern)

	compiled, err := regexp.Compile(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to compile regex %q: %w", pattern, err)
	}

	regexCacheMu.Lock()
	regexCache[pattern] = compiled
	regexCacheMu.Unlock()

	return compiled, nil
}

// normalizePattern makes a pattern case-insensitive unless it opts out
// with an explicit (?-i) modifier.
func normalizePattern(pattern string) string {
	if !strings.HasPrefix(pattern, "(?i)") && !strings.Contains(pattern, "(?-i)") {
		pattern = "(?i)" + pattern
	}
	return pattern
}
