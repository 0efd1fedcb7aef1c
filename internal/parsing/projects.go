package parsing

import (
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

// ParseProjects turns a projects section body into entries. Within a
// blank-line-separated block the first non-empty line is the name,
// non-bullet lines before the first bullet form the description, bullet
// lines become highlights, and any URL-shaped token anywhere in the block
// populates the url field.
func ParseProjects(content string) []types.ProjectEntry {
	entries := make([]types.ProjectEntry, 0)
	for _, block := range splitBlocks(content) {
		if entry, ok := parseProjectBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseProjectBlock(block []string) (types.ProjectEntry, bool) {
	entry := types.ProjectEntry{Highlights: []string{}}
	head := firstNonEmpty(block)
	if head < 0 {
		return entry, false
	}

	entry.Name = collapseSpaces(stripBullet(block[head]))

	var description []string
	seenBullet := false
	for _, line := range block[head+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isBulletLine(line) {
			seenBullet = true
			entry.Highlights = append(entry.Highlights, stripBullet(line))
			continue
		}
		if !seenBullet {
			description = append(description, collapseSpaces(trimmed))
		}
	}
	entry.Description = strings.Join(description, " ")

	if m := urlPattern.FindString(strings.Join(block, "\n")); m != "" {
		entry.URL = strings.TrimRight(m, ".,;)")
	}

	return entry, true
}
