package webgen

import (
	"regexp"
	"strings"
)

var (
	fenceRE   = regexp.MustCompile("(?s)```(?:html)?\\s*(.*?)```")
	doctypeRE = regexp.MustCompile(`(?is)<!doctype\s+html.*?</html>`)
)

// ExtractHTML recovers the document embedded in raw model output.
// Strategies in priority order: interior of the first fenced code
// block, then the first doctype-to-</html> span, then the trimmed raw
// text. It never fails; validity of the result is the model's problem.
func ExtractHTML(raw string) string {
	if m := fenceRE.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := doctypeRE.FindString(raw); m != "" {
		return m
	}
	return strings.TrimSpace(raw)
}
