package parsing

import (
	"regexp"
	"strings"
)

// presentLabel is the literal used for an open-ended date range.
const presentLabel = "Present"

const monthNames = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|` +
	`Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const datePart = monthNames + `\.?,?\s+\d{4}|\d{1,2}[/.]\d{4}|\d{4}`

var (
	dateRangePattern = regexp.MustCompile(`(?i)(` + datePart + `)\s*(?:[-–—]+|to|until)\s*(` + datePart + `|present|current|now|ongoing)`)
	openRangePattern = regexp.MustCompile(`(?i)(` + datePart + `)\s*[-–—]+\s*$`)
	bareDatePattern  = regexp.MustCompile(`(?i)^(` + datePart + `)$`)
)

// parseDateRange scans a line for a "<start> - <end>" range. An open-ended
// range ("Jan 2020 -") defaults the end to "Present". A bare date with no
// separator populates only the start. Unparseable lines leave both parts
// empty and never abort the surrounding entry.
func parseDateRange(line string) (start, end string) {
	if m := dateRangePattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), normalizeEndDate(m[2])
	}
	if m := openRangePattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), presentLabel
	}
	if m := bareDatePattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
		return strings.TrimSpace(m[1]), ""
	}
	return "", ""
}

// normalizeEndDate maps the open-ended keywords onto the canonical label and
// passes real dates through untouched.
func normalizeEndDate(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "present", "current", "now", "ongoing":
		return presentLabel
	}
	return strings.TrimSpace(raw)
}
