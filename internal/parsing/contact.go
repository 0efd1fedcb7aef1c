package parsing

import (
	"regexp"
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	urlPattern   = regexp.MustCompile(`(?:https?://|www\.)[^\s<>()\[\]{}"']+`)
)

// ExtractContactInfo applies ordered pattern matches for email, phone, and
// profile URLs across the whole document. Fields that do not match stay
// empty; the first valid match wins per field.
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{}

	for _, candidate := range emailPattern.FindAllString(text, -1) {
		if isValidEmail(candidate) {
			info.Email = candidate
			break
		}
	}

	for _, candidate := range urlPattern.FindAllString(text, -1) {
		cleaned := strings.TrimRight(candidate, ".,;")
		lower := strings.ToLower(cleaned)
		switch {
		case strings.Contains(lower, "linkedin.com"):
			if info.LinkedIn == "" {
				info.LinkedIn = cleaned
			}
		case strings.Contains(lower, "github.com"):
			if info.GitHub == "" {
				info.GitHub = cleaned
			}
		default:
			if info.URL == "" {
				info.URL = cleaned
			}
		}
	}

	// Blank out emails and URLs before the phone scan so their digit runs
	// cannot masquerade as phone numbers.
	scrubbed := emailPattern.ReplaceAllString(text, " ")
	scrubbed = urlPattern.ReplaceAllString(scrubbed, " ")
	for _, candidate := range phonePattern.FindAllString(scrubbed, -1) {
		if isPlausiblePhone(candidate) {
			info.Phone = strings.TrimSpace(candidate)
			break
		}
	}

	return info
}

// isValidEmail rejects matches with an empty or malformed local part or host.
func isValidEmail(candidate string) bool {
	local, host, found := strings.Cut(candidate, "@")
	if !found || local == "" || host == "" {
		return false
	}
	if strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") || strings.Contains(host, "..") {
		return false
	}
	if strings.HasPrefix(host, "-") {
		return false
	}
	return strings.Contains(host, ".")
}

// isPlausiblePhone filters out digit runs that are really years or IDs.
func isPlausiblePhone(candidate string) bool {
	digits := 0
	for _, r := range candidate {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 15
}

// digitRunPattern marks lines carrying phone-shaped digit runs.
var digitRunPattern = regexp.MustCompile(`\d{3}[\s.\-]?\d{3,4}`)

// postalPattern marks US ZIP and UK-style postal tokens.
var postalPattern = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b|\b[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2}\b`)

// isContactLine reports whether a line carries contact markers and therefore
// cannot be a name or title.
func isContactLine(line string) bool {
	if strings.ContainsRune(line, '@') {
		return true
	}
	if digitRunPattern.MatchString(line) {
		return true
	}
	if postalPattern.MatchString(line) {
		return true
	}
	return urlPattern.MatchString(line)
}
