package parsing

import (
	"regexp"
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

var gpaPattern = regexp.MustCompile(`(?i)\bGPA[:\s]+([0-9]+(?:\.[0-9]+)?(?:\s*/\s*[0-9]+(?:\.[0-9]+)?)?)`)

// ParseEducation turns an education section body into entries. Entries are
// separated by blank lines; degree vocabulary on the first line populates
// the study type and area, the following non-empty line is the institution,
// and a "GPA: <value>" anywhere in the entry populates the score.
func ParseEducation(content string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)
	for _, block := range splitBlocks(content) {
		if entry, ok := parseEducationBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseEducationBlock(block []string) (types.EducationEntry, bool) {
	entry := types.EducationEntry{}
	head := firstNonEmpty(block)
	if head < 0 {
		return entry, false
	}

	degreeIdx := -1
	for i, line := range block {
		studyType, area, ok := matchDegree(stripBullet(line))
		if ok {
			entry.StudyType = studyType
			entry.Area = area
			degreeIdx = i
			break
		}
	}

	for i, line := range block {
		if i == degreeIdx {
			continue
		}
		trimmed := collapseSpaces(stripBullet(line))
		if trimmed == "" || gpaPattern.MatchString(trimmed) {
			continue
		}
		if start, _ := parseDateRange(trimmed); start != "" {
			continue
		}
		entry.Institution = trimmed
		break
	}

	for _, line := range block {
		if start, end := parseDateRange(line); start != "" {
			entry.StartDate, entry.EndDate = start, end
			break
		}
	}

	if m := gpaPattern.FindStringSubmatch(strings.Join(block, "\n")); m != nil {
		entry.Score = collapseSpaces(m[1])
	}

	return entry, true
}

// matchDegree matches known degree vocabulary at the start of a line,
// optionally followed by "in <Area>". The canonical study type comes from
// the vocabulary table; unrecognized lines report no match.
func matchDegree(line string) (studyType, area string, ok bool) {
	trimmed := collapseSpaces(line)
	lower := strings.ToLower(trimmed)
	for _, d := range degreeTypes {
		if lower != d.text && !strings.HasPrefix(lower, d.text+" ") && !strings.HasPrefix(lower, d.text+",") {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(d.text):], " ,")
		if restLower := strings.ToLower(rest); strings.HasPrefix(restLower, "in ") {
			area = strings.TrimRight(strings.TrimSpace(rest[3:]), ".")
		}
		return d.canonical, area, true
	}
	return "", "", false
}
