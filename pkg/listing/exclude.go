package listing

import (
	"path/filepath"
	"strings"
)

// shouldExclude checks a relative path against exclusion patterns.
// Patterns support:
//   - Simple glob patterns: *.tmp, *.log (match the base name)
//   - Directory patterns: .git/, node_modules/ (match the directory and
//     everything under it, at any depth)
//   - Path patterns: build/*, docs/*.md (match the relative path)
//   - Any-depth patterns: **/testdata
func shouldExclude(relativePath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	path := filepath.ToSlash(relativePath)
	base := filepath.Base(relativePath)

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		p := filepath.ToSlash(pattern)

		if strings.HasSuffix(p, "/") {
			dir := strings.TrimSuffix(p, "/")
			if path == dir ||
				strings.HasPrefix(path, dir+"/") ||
				strings.Contains(path, "/"+dir+"/") {
				return true
			}
			continue
		}

		if suffix, ok := strings.CutPrefix(p, "**/"); ok {
			if globMatch(base, suffix) || path == suffix ||
				strings.HasSuffix(path, "/"+suffix) {
				return true
			}
			// Any path component may match, so files under a matching
			// directory are covered too
			for _, part := range strings.Split(path, "/") {
				if globMatch(part, suffix) {
					return true
				}
			}
			continue
		}

		if matchPattern(path, p) {
			return true
		}
	}

	return false
}

// matchPattern matches one pattern against a relative path. A pattern with a
// separator applies to the full path; otherwise it applies to the base name
func matchPattern(relativePath, pattern string) bool {
	path := filepath.ToSlash(relativePath)
	p := filepath.ToSlash(pattern)

	if strings.Contains(p, "/") {
		if globMatch(path, p) {
			return true
		}
		// Anchored suffix, for patterns like build/*
		return strings.HasSuffix(path, p)
	}
	return globMatch(filepath.Base(relativePath), p)
}

// globMatch wraps filepath.Match, treating a malformed pattern as no match
func globMatch(name, pattern string) bool {
	matched, _ := filepath.Match(pattern, name)
	return matched
}
