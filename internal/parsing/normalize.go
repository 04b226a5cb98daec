// Package parsing extracts structured resume fields from raw text using
// ordered rule chains. Extractors are pure functions: they never fail and
// return sentinel values when nothing matches.
package parsing

import (
	"regexp"
	"strings"
)

var (
	urlTokenRe    = regexp.MustCompile(`http\S+`)
	handleTokenRe = regexp.MustCompile(`@\S+`)
	hashTokenRe   = regexp.MustCompile(`#\S+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Normalize strips URL, @handle and #hashtag tokens, collapses whitespace
// runs to a single space and lowercases. Idempotent.
func Normalize(text string) string {
	text = urlTokenRe.ReplaceAllString(text, " ")
	text = handleTokenRe.ReplaceAllString(text, " ")
	text = hashTokenRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}
