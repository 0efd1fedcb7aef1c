package parsing

import (
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

// Heading candidates must be short relative to a normal sentence so prose
// that merely mentions a keyword is not mistaken for a heading.
const (
	maxHeadingRunes = 40
	maxHeadingWords = 4
)

// headingMark records a detected heading and where its content begins.
type headingMark struct {
	kind         types.SectionKind
	lineStart    int // offset of the heading line itself
	contentStart int // offset of the first byte after the heading line
}

// matchHeading reports the canonical section for a heading candidate line.
// A candidate equals a synonym case-insensitively after trimming whitespace
// and an optional trailing colon; multi-word synonyms also match when
// contained in the candidate ("My Work Experience").
func matchHeading(line string) (types.SectionKind, bool) {
	candidate := normalizeHeading(line)
	if candidate == "" {
		return "", false
	}
	for _, h := range sectionHeadings {
		if candidate == h.text {
			return h.kind, true
		}
		if strings.Contains(h.text, " ") && strings.Contains(candidate, h.text) {
			return h.kind, true
		}
	}
	return "", false
}

// matchSummaryHeading reports whether the line is a summary-block heading.
func matchSummaryHeading(line string) bool {
	candidate := normalizeHeading(line)
	if candidate == "" {
		return false
	}
	for _, h := range summaryHeadings {
		if candidate == h {
			return true
		}
	}
	return false
}

// normalizeHeading lowercases a heading candidate, or returns "" when the
// line is too long to be a heading at all.
func normalizeHeading(line string) string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimSuffix(trimmed, ":")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return ""
	}
	if len([]rune(trimmed)) > maxHeadingRunes {
		return ""
	}
	if len(strings.Fields(trimmed)) > maxHeadingWords {
		return ""
	}
	return strings.ToLower(trimmed)
}

// scanHeadings finds every section heading line in document order.
func scanHeadings(text string) []headingMark {
	marks := make([]headingMark, 0)
	for _, line := range splitDocLines(text) {
		kind, ok := matchHeading(line.text)
		if !ok {
			continue
		}
		contentStart := line.end
		if contentStart < len(text) && text[contentStart] == '\n' {
			contentStart++
		}
		marks = append(marks, headingMark{kind: kind, lineStart: line.start, contentStart: contentStart})
	}
	return marks
}

// DetectSections scans the document for recognizable section headings and
// slices it into ordered (name, content) segments. Content is the verbatim
// text between a heading and the next detected heading or end of document.
// Duplicate canonical names are preserved as separate entries. A document
// with no recognizable heading yields an empty slice; callers treat that as
// "no structured sections found", not an error.
func DetectSections(text string) []types.RawSection {
	marks := scanHeadings(text)
	sections := make([]types.RawSection, 0, len(marks))
	for i, mark := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].lineStart
		}
		content := ""
		if mark.contentStart < end {
			content = strings.Trim(text[mark.contentStart:end], "\r\n")
		}
		sections = append(sections, types.RawSection{Name: mark.kind, Content: content})
	}
	return sections
}
