package match

import (
	"regexp"
	"strings"
)

// Conversational fast path: pure greetings or thanks are answered with a
// canned reply before any keyword extraction or retrieval happens.
var (
	greetingRegex = regexp.MustCompile(`^[\w\s]*\b(hi|hello|hey|hy|greetings|yo)\b[\w\s]*!?$`)
	thanksRegex   = regexp.MustCompile(`^[\w\s]*\b(thanks|thank you|thx)\b[\w\s]*!?$`)
)

// IsGreeting reports whether text is a plain greeting (ignoring a trailing "!").
func IsGreeting(text string) bool {
	return greetingRegex.MatchString(strings.ToLower(text))
}

// IsThanks reports whether text is a plain thank-you.
func IsThanks(text string) bool {
	return thanksRegex.MatchString(strings.ToLower(text))
}
