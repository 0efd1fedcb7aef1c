// Package ingestion prepares decoded document text for parsing: line-ending
// and whitespace normalization, HTML stripping for pasted profile pages, and
// file loading for the CLI. It never touches binary formats.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiBlankPattern = regexp.MustCompile(`\n{3,}`)
	innerSpacePattern = regexp.MustCompile(`[ \t]{2,}`)
)

// nbspReplacer folds the non-breaking and zero-width characters PDF decoders
// commonly emit into plain spaces.
var nbspReplacer = strings.NewReplacer(
	" ", " ",
	" ", " ",
	" ", " ",
	"​", "",
	"\uFEFF", "",
)

// CleanText normalizes decoded résumé text while preserving its line
// structure: CRLF to LF, exotic spaces to plain spaces, trailing whitespace
// stripped, runs of blank lines collapsed to one. Bullet lines keep their
// glyphs; the extractors depend on them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = nbspReplacer.Replace(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = cleanLine(line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine strips trailing whitespace and folds interior space runs while
// keeping leading indentation, which can distinguish sub-items.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)
	content := strings.ReplaceAll(trimmed, "\t", " ")
	content = innerSpacePattern.ReplaceAllString(content, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
