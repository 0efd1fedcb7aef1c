package parsing

import (
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

// Candidate skill names longer than this are treated as noise (a sentence
// that leaked into a list), not as skills.
const maxSkillRunes = 50

// ParseSkills normalizes the three common skills shapes into entries:
// comma-separated flat lists, bullet-per-line lists, and
// "Category:\n item, item" groupings. Candidates are deduplicated
// case-insensitively with the first occurrence winning.
func ParseSkills(content string) []types.SkillEntry {
	entries := make([]types.SkillEntry, 0)
	index := make(map[string]int) // lowercase category name -> entries index
	seen := make(map[string]bool) // lowercase skill/keyword names already kept
	pendingCategory := -1         // entry awaiting items from following lines

	addEntry := func(name string, keywords []string) int {
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			return i
		}
		entries = append(entries, types.SkillEntry{Name: name, Keywords: keywords})
		index[key] = len(entries) - 1
		seen[key] = true
		return len(entries) - 1
	}

	for _, line := range splitLines(content) {
		item := stripBullet(line)
		if item == "" {
			pendingCategory = -1
			continue
		}

		category, rest, hasColon := strings.Cut(item, ":")
		if hasColon {
			name := collapseSpaces(category)
			if !isSaneSkill(name) {
				pendingCategory = -1
				continue
			}
			i := addEntry(name, []string{})
			appendKeywords(&entries[i], splitSkillItems(rest), seen)
			pendingCategory = i
			if len(entries[i].Keywords) > 0 {
				pendingCategory = -1
			}
			continue
		}

		items := splitSkillItems(item)
		if pendingCategory >= 0 {
			appendKeywords(&entries[pendingCategory], items, seen)
			pendingCategory = -1
			continue
		}
		for _, it := range items {
			if !isSaneSkill(it) || seen[strings.ToLower(it)] {
				continue
			}
			addEntry(it, []string{})
		}
	}

	return entries
}

// splitSkillItems splits a list fragment on the common item separators.
func splitSkillItems(fragment string) []string {
	items := strings.FieldsFunc(fragment, func(r rune) bool {
		switch r {
		case ',', ';', '|', '·':
			return true
		}
		return false
	})
	out := make([]string, 0, len(items))
	for _, item := range items {
		if cleaned := collapseSpaces(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func appendKeywords(entry *types.SkillEntry, items []string, seen map[string]bool) {
	for _, item := range items {
		key := strings.ToLower(item)
		if !isSaneSkill(item) || seen[key] {
			continue
		}
		entry.Keywords = append(entry.Keywords, item)
		seen[key] = true
	}
}

func isSaneSkill(candidate string) bool {
	return candidate != "" && len([]rune(candidate)) <= maxSkillRunes
}
