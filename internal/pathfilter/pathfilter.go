// Package pathfilter decides which directory entries appear in a tree.
package pathfilter

import (
	"strings"

	"github.com/taigrr/cli-commands/internal/types"
)

// PathFilter applies avoid, omit and only rules to entry names.
type PathFilter struct {
	avoid map[string]struct{}
	omit  map[string]struct{}
	only  map[string]struct{}
}

// New creates a new PathFilter with the given configuration.
func New(config *types.FilterConfig) *PathFilter {
	pf := &PathFilter{}
	if config == nil {
		return pf
	}

	pf.avoid = toSet(config.Avoid)
	pf.omit = toSet(config.OmitExtensions)
	pf.only = toSet(config.OnlyExtensions)
	return pf
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Extension returns the text after the last dot of the entry name, without
// the dot. Leading dots do not start an extension, so ".gitignore" has none.
// Any other character, a backslash included, is part of the name.
func Extension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	lastDotIndex := strings.LastIndex(trimmed, ".")
	if lastDotIndex == -1 {
		return ""
	}
	return trimmed[lastDotIndex+1:]
}

// IsAvoided reports whether a directory with this name is skipped entirely.
func (pf *PathFilter) IsAvoided(dirName string) bool {
	_, ok := pf.avoid[dirName]
	return ok
}

// HasOnly reports whether an only-extensions restriction is active.
func (pf *PathFilter) HasOnly() bool {
	return len(pf.only) > 0
}

// MatchesOnly reports whether the file's extension is in the only set.
// It is false when no restriction is configured.
func (pf *PathFilter) MatchesOnly(fileName string) bool {
	_, ok := pf.only[Extension(fileName)]
	return ok
}

// IsFileShown checks if a file passes the omit and only rules.
func (pf *PathFilter) IsFileShown(fileName string) bool {
	ext := Extension(fileName)
	if _, omitted := pf.omit[ext]; omitted {
		return false
	}
	if pf.HasOnly() {
		_, ok := pf.only[ext]
		return ok
	}
	return true
}

// FilterDirectories removes avoided directory names.
func (pf *PathFilter) FilterDirectories(names []string) []string {
	var allowed []string
	for _, name := range names {
		if !pf.IsAvoided(name) {
			allowed = append(allowed, name)
		}
	}
	return allowed
}

// FilterFiles keeps only the file names that should be displayed.
func (pf *PathFilter) FilterFiles(names []string) []string {
	var allowed []string
	for _, name := range names {
		if pf.IsFileShown(name) {
			allowed = append(allowed, name)
		}
	}
	return allowed
}
