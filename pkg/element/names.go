package element

import (
	"regexp"
	"strings"
)

var camelCaseSplit = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Kebab converts an upper-camel-case element name to its hyphenated form:
// "ScrollView" becomes "scroll-view", "Image" becomes "image".
func Kebab(name string) string {
	return strings.ToLower(camelCaseSplit.ReplaceAllString(name, "$1-$2"))
}

// keys returns the exact, lowercase and kebab keys for name. Duplicates are
// kept; callers skip keys already pointing at the same entry.
func keys(name string) [3]string {
	return [3]string{name, strings.ToLower(name), Kebab(name)}
}
