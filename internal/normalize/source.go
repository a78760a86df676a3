package normalize

import (
	"regexp"
	"strings"
)

// DefaultSource is the attribution used when the body names no source
const DefaultSource = "Fuente: WordPress"

var sourcePattern = regexp.MustCompile(`(?i)fuente:\s*([^<]+)`)

// ExtractSource finds the first inline "Fuente:" label and returns it in
// canonical form, up to the next tag. A label followed only by whitespace
// before the tag yields "Fuente: " with an empty attribution.
func ExtractSource(sanitizedContent string) string {
	match := sourcePattern.FindStringSubmatch(sanitizedContent)
	if match == nil {
		return DefaultSource
	}
	return "Fuente: " + strings.TrimSpace(match[1])
}
