package normalize

import (
	"regexp"
	"strings"
)

// rule is a literal replacement applied once, in list order
type rule struct {
	pattern     string
	replacement string
}

// entityRules is order sensitive: each rule runs against the output of the previous one.
var entityRules = []rule{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#8217;", "'"},
	{"&#8220;", `"`},
	{"&#8221;", `"`},
	{"&#8211;", "-"},
	{"&#8212;", "--"},
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Sanitize decodes the fixed entity set and collapses whitespace runs to a
// single space. Tags are left in place. The pass repeats until the text is
// stable, so nested encodings such as "&amp;nbsp;" decode fully and
// Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(text string) string {
	if text == "" {
		return text
	}
	for {
		next := sanitizePass(text)
		if next == text {
			return next
		}
		text = next
	}
}

// sanitizePass applies every rule once, in list order. Each rule shortens
// the text, so repeated passes reach a fixed point.
func sanitizePass(text string) string {
	for _, r := range entityRules {
		text = strings.ReplaceAll(text, r.pattern, r.replacement)
	}
	return strings.Join(strings.Fields(text), " ")
}

// StripTags removes every markup tag without touching the text between them.
func StripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}
