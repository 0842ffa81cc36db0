package letters

import (
	"fmt"
)

// Render replaces every {{token}} occurrence in content with its value from
// values, coercing non-string values with fmt.Sprint. Tokens missing from the
// map become the empty string. The scan is a single pass over content: an
// inserted value containing {{...}} stays literal and is never re-substituted.
// Text that does not match the token pattern, including stray braces, passes
// through unchanged.
func Render(content string, values map[string]any) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-2]
		value, ok := values[name]
		if !ok {
			return ""
		}
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprint(value)
	})
}
