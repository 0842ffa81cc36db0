package letters

import (
	"regexp"
)

// tokenPattern matches {{name}} placeholders: two opening braces, one or more
// non-brace characters, two closing braces.
var tokenPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Variables returns the distinct token names found in content, in order of
// first appearance. Extraction is case-sensitive.
func Variables(content string) []string {
	matches := tokenPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
