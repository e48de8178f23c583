package animations

import (
	"strconv"
	"strings"
)

// StyleNormalizer maps author-written style properties and values to the
// form the driver understands.
type StyleNormalizer interface {
	NormalizePropertyName(prop string) string
	NormalizeStyleValue(prop, value string) string
}

// dimensionalProps take a length unit when given a bare number.
var dimensionalProps = map[string]bool{
	"width":             true,
	"height":            true,
	"minWidth":          true,
	"minHeight":         true,
	"maxWidth":          true,
	"maxHeight":         true,
	"left":              true,
	"top":               true,
	"bottom":            true,
	"right":             true,
	"fontSize":          true,
	"outlineWidth":      true,
	"outlineOffset":     true,
	"paddingTop":        true,
	"paddingLeft":       true,
	"paddingBottom":     true,
	"paddingRight":      true,
	"marginTop":         true,
	"marginLeft":        true,
	"marginBottom":      true,
	"marginRight":       true,
	"borderRadius":      true,
	"borderWidth":       true,
	"borderTopWidth":    true,
	"borderLeftWidth":   true,
	"borderRightWidth":  true,
	"borderBottomWidth": true,
	"textIndent":        true,
	"perspective":       true,
}

// WebStyleNormalizer camel-cases dash-case properties and adds "px" to bare
// non-zero numbers on dimensional properties.
type WebStyleNormalizer struct{}

// NewWebStyleNormalizer returns a WebStyleNormalizer.
func NewWebStyleNormalizer() *WebStyleNormalizer {
	return &WebStyleNormalizer{}
}

// NormalizePropertyName turns "background-color" into "backgroundColor".
func (WebStyleNormalizer) NormalizePropertyName(prop string) string {
	if !strings.Contains(prop, "-") {
		return prop
	}
	parts := strings.Split(prop, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// NormalizeStyleValue expects prop to be already normalized.
func (WebStyleNormalizer) NormalizeStyleValue(prop, value string) string {
	value = strings.TrimSpace(value)
	if !dimensionalProps[prop] {
		return value
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f == 0 {
		return value
	}
	return value + "px"
}
