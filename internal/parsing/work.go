package parsing

import (
	"regexp"
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

var (
	positionAtPattern   = regexp.MustCompile(`^(.+?)\s+(?:at|@)\s+(.+)$`)
	positionDashPattern = regexp.MustCompile(`^(.+?)\s+[-–—]\s+(.+)$`)
)

// ParseWorkExperience turns a work section body into entries. Entries are
// separated by blank lines. A headline that fails to match the known
// "<Position> at <Company>" shapes still yields an entry with both fields
// absent; unparseable dates leave the range absent without dropping the
// highlights.
func ParseWorkExperience(content string) []types.WorkEntry {
	entries := make([]types.WorkEntry, 0)
	for _, block := range splitBlocks(content) {
		if entry, ok := parseWorkBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseWorkBlock(block []string) (types.WorkEntry, bool) {
	entry := types.WorkEntry{Highlights: []string{}}
	head := firstNonEmpty(block)
	if head < 0 {
		return entry, false
	}

	headline := collapseSpaces(block[head])
	if !isBulletLine(block[head]) {
		entry.Position, entry.Company = splitPositionCompany(headline)
	}

	// The line after the headline is the conventional spot for the date range.
	rest := block[head+1:]
	if next := firstNonEmpty(rest); next >= 0 {
		entry.StartDate, entry.EndDate = parseDateRange(rest[next])
	}

	for _, line := range rest {
		if isBulletLine(line) {
			entry.Highlights = append(entry.Highlights, stripBullet(line))
		}
	}

	if isBulletLine(block[head]) {
		entry.Highlights = append([]string{stripBullet(block[head])}, entry.Highlights...)
	}

	return entry, true
}

// splitPositionCompany matches "<Position> at <Company>" and
// "<Position> - <Company>". Date-shaped right-hand sides are rejected so a
// headline like "2019 - 2021" does not become a company.
func splitPositionCompany(headline string) (position, company string) {
	if m := positionAtPattern.FindStringSubmatch(headline); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if start, _ := parseDateRange(headline); start != "" {
		return "", ""
	}
	if m := positionDashPattern.FindStringSubmatch(headline); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return "", ""
}
