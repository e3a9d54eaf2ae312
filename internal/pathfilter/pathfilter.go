// Package pathfilter decides which source folders are exempt from relocation.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/folder-archiver/internal/types"
)

// PathFilter holds the exclusion set and optional glob patterns.
type PathFilter struct {
	names    map[string]struct{}
	patterns []*regexp.Regexp
}

// New creates a new PathFilter with the given configuration.
// Names are compared exactly and case-sensitively. Invalid patterns are ignored.
func New(config *types.ExclusionConfig) *PathFilter {
	pf := &PathFilter{names: make(map[string]struct{})}
	if config == nil {
		return pf
	}

	for _, name := range config.Names {
		pf.names[name] = struct{}{}
	}
	for _, pattern := range config.Patterns {
		if re, err := compileGlob(pattern); err == nil {
			pf.patterns = append(pf.patterns, re)
		}
	}
	return pf
}

// compileGlob converts a glob pattern to an anchored regex.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(pattern)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, ".*")
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, ".")

	return regexp.Compile("^" + regexPattern + "$")
}

// IsExcluded reports whether a folder name is exempt from relocation.
func (pf *PathFilter) IsExcluded(name string) bool {
	if _, ok := pf.names[name]; ok {
		return true
	}
	for _, re := range pf.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
