package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

const (
	maxNameRunes  = 60
	maxNameWords  = 5
	maxTitleWords = 7
)

var titleCaser = cases.Title(language.Und)

// ExtractName scans lines from the top of the document and returns the first
// line that is not a contact field, not a section heading, and not
// prose-length. All-caps lines are converted to Title Case. Returns "" when
// no candidate line exists.
func ExtractName(text string) string {
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isContactLine(trimmed) {
			continue
		}
		if _, ok := matchHeading(trimmed); ok {
			continue
		}
		if matchSummaryHeading(trimmed) {
			continue
		}
		if len([]rune(trimmed)) > maxNameRunes || len(strings.Fields(trimmed)) > maxNameWords {
			continue
		}
		return normalizeName(trimmed)
	}
	return ""
}

// normalizeName converts ALL-CAPS names to Title Case and leaves mixed-case
// names untouched.
func normalizeName(name string) string {
	if !isAllCaps(name) {
		return name
	}
	return titleCaser.String(strings.ToLower(name))
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// ExtractTitle scans lines following the name line and returns the first one
// matching the job-title vocabulary: a role noun optionally preceded by
// seniority or domain modifiers. The scan stops at the first section heading;
// heading detection has priority over title matching, so position lines
// inside a work section are never mistaken for the headline title. Returns ""
// when no line matches.
func ExtractTitle(text string) string {
	name := ExtractName(text)
	nameSeen := name == ""
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !nameSeen {
			if normalizeName(trimmed) == name {
				nameSeen = true
			}
			continue
		}
		if isContactLine(trimmed) {
			continue
		}
		if _, ok := matchHeading(trimmed); ok {
			break
		}
		if matchSummaryHeading(trimmed) {
			continue
		}
		if matchesTitleVocabulary(trimmed) {
			return trimmed
		}
	}
	return ""
}

// matchesTitleVocabulary reports whether a short line ends in (or contains)
// a known role noun.
func matchesTitleVocabulary(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > maxTitleWords {
		return false
	}
	for _, field := range fields {
		token := strings.ToLower(strings.Trim(field, ",.;:()"))
		if roleNouns[token] {
			return true
		}
	}
	return false
}

// regionCodePattern matches short uppercase state/province codes ("TX", "BC").
var regionCodePattern = regexp.MustCompile(`^[A-Z]{2,3}$`)

// ExtractLocation splits a "City, X" fragment on the first comma. The
// trailing token is classified as a region when it is a short uppercase code,
// otherwise treated as a country name. Empty input yields an empty result.
func ExtractLocation(fragment string) types.Location {
	loc := types.Location{}
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return loc
	}

	city, rest, found := strings.Cut(trimmed, ",")
	loc.City = collapseSpaces(city)
	if !found {
		return loc
	}

	tail := collapseSpaces(postalPattern.ReplaceAllString(rest, ""))
	if tail == "" {
		return loc
	}
	if regionCodePattern.MatchString(strings.Fields(tail)[0]) {
		loc.Region = strings.Fields(tail)[0]
		return loc
	}
	loc.Country = tail
	return loc
}

// locationLinePattern matches a "City, Region-or-Country" shaped segment.
var locationLinePattern = regexp.MustCompile(`^[\p{L}][\p{L} .'\-]*,\s*[\p{L}][\p{L} .'\-]*$`)

// findLocation looks through the leading document block for a segment shaped
// like "City, X". Lines are split on common separator glyphs first because
// contact rows often pack location next to phone and email.
func findLocation(text string) types.Location {
	for _, line := range splitLines(text) {
		for _, segment := range splitSegments(line) {
			candidate := collapseSpaces(postalPattern.ReplaceAllString(segment, ""))
			if candidate == "" || len(strings.Fields(candidate)) > 5 {
				continue
			}
			if locationLinePattern.MatchString(candidate) {
				return ExtractLocation(candidate)
			}
		}
	}
	return types.Location{}
}

// splitSegments slices a contact row on separator glyphs (| • · and tabs).
func splitSegments(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case '|', '•', '·', '\t':
			return true
		}
		return false
	})
}
