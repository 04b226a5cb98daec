package parsing

import "regexp"

// Section headers are located case-insensitively. A section body runs from
// the end of its header to the first stop match: either one of the sibling
// section names the extractor knows about, or any line that looks like a
// generic header (uppercase-initial text ending with a colon).

// genericHeader is the stop alternative shared by every extractor.
const genericHeader = `[A-Z][^:\n]*:`

// sectionBody returns the text between the first match of headerRe and the
// first match of stopRe after it. Empty string when the header is absent.
func sectionBody(text string, headerRe, stopRe *regexp.Regexp) string {
	loc := headerRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	if stop := stopRe.FindStringIndex(body); stop != nil {
		body = body[:stop[0]]
	}
	return body
}

// firstSectionBody tries header patterns in priority order and returns the
// body of the first one that matches.
func firstSectionBody(text string, headers []*regexp.Regexp, stopRe *regexp.Regexp) string {
	for _, re := range headers {
		if body := sectionBody(text, re, stopRe); body != "" {
			return body
		}
	}
	return ""
}
