package parsing

import (
	"regexp"
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

var certDashPattern = regexp.MustCompile(`^(.+?)\s+[-–—]\s+(.+)$`)

// ParseCertificates turns a certificates section body into entries, one per
// recognized line or bullet. Supported shapes are "<Name> - <Issuer>",
// "<Name>, <Issuer>", and bare names (issuer absent).
func ParseCertificates(content string) []types.CertificateEntry {
	entries := make([]types.CertificateEntry, 0)
	for _, line := range splitLines(content) {
		item := collapseSpaces(stripBullet(line))
		if item == "" {
			continue
		}

		if m := certDashPattern.FindStringSubmatch(item); m != nil {
			entries = append(entries, types.CertificateEntry{
				Name:   strings.TrimSpace(m[1]),
				Issuer: strings.TrimSpace(m[2]),
			})
			continue
		}

		if name, issuer, found := strings.Cut(item, ","); found {
			entries = append(entries, types.CertificateEntry{
				Name:   strings.TrimSpace(name),
				Issuer: strings.TrimSpace(issuer),
			})
			continue
		}

		entries = append(entries, types.CertificateEntry{Name: item})
	}
	return entries
}
