package parsing

import (
	"regexp"
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

var (
	langSeparatorPattern = regexp.MustCompile(`^(.+?)\s*[-–—:]\s*(.+)$`)
	langParenPattern     = regexp.MustCompile(`^(.+?)\s*\((.+?)\)\s*$`)
)

// ParseLanguages turns a languages section body into entries, one per line
// or bullet. Supported shapes are "<Language> - <Fluency>" and
// "<Language> (<Fluency>)". Fluency is populated only when the qualifier
// matches the closed fluency vocabulary, case-insensitively; any other
// qualifier text leaves fluency absent.
func ParseLanguages(content string) []types.LanguageEntry {
	entries := make([]types.LanguageEntry, 0)
	for _, line := range splitLines(content) {
		item := collapseSpaces(stripBullet(line))
		if item == "" {
			continue
		}

		language, qualifier := item, ""
		if m := langParenPattern.FindStringSubmatch(item); m != nil {
			language, qualifier = m[1], m[2]
		} else if m := langSeparatorPattern.FindStringSubmatch(item); m != nil {
			language, qualifier = m[1], m[2]
		}

		entry := types.LanguageEntry{Language: strings.TrimSpace(language)}
		if canonical, ok := fluencyLevels[strings.ToLower(strings.TrimSpace(qualifier))]; ok {
			entry.Fluency = canonical
		}
		if entry.Language == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
