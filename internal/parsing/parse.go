// Package parsing converts decoded résumé plain text into a structured
// candidate-profile record using deterministic, pattern-based heuristics.
// The contract is "always returns a result": malformed content degrades to
// absent fields, empty arrays, and a lower confidence score, never to an
// error.
package parsing

import (
	"fmt"
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/scoring"
	"github.com/jonkmatsumo/resume-parser/internal/types"
)

// MaxInputBytes caps a single parse invocation. Realistic decoded résumés
// are tens of kilobytes; anything beyond the cap is a caller bug, not a
// résumé.
const MaxInputBytes = 2 << 20

// Result is the full output of one parse invocation.
type Result struct {
	Data       *types.ParsedResumeData `json:"data"`
	Confidence types.ConfidenceReport  `json:"confidence"`
}

// Parse runs the full pipeline: section detection, identity extraction,
// per-section entry parsing, and confidence scoring. The only error is a
// boundary contract violation (oversized input); empty or unstructured text
// parses to an empty record with a low confidence score.
func Parse(text string) (*Result, error) {
	if len(text) > MaxInputBytes {
		return nil, &InputError{Message: fmt.Sprintf("document of %d bytes exceeds the %d byte limit", len(text), MaxInputBytes)}
	}

	data := types.NewParsedResumeData()
	sections := DetectSections(text)
	head := leadingBlock(text)

	data.Basics.Name = ExtractName(head)
	data.Basics.Title = ExtractTitle(head)
	data.Basics.Location = findLocation(head)
	data.Basics.ContactInfo = ExtractContactInfo(text)
	data.Basics.Summary = extractSummary(text)

	for _, section := range sections {
		switch section.Name {
		case types.SectionWork:
			data.Work = append(data.Work, ParseWorkExperience(section.Content)...)
		case types.SectionEducation:
			data.Education = append(data.Education, ParseEducation(section.Content)...)
		case types.SectionSkills:
			data.Skills = append(data.Skills, ParseSkills(section.Content)...)
		case types.SectionProjects:
			data.Projects = append(data.Projects, ParseProjects(section.Content)...)
		case types.SectionCertificates:
			data.Certificates = append(data.Certificates, ParseCertificates(section.Content)...)
		case types.SectionLanguages:
			data.Languages = append(data.Languages, ParseLanguages(section.Content)...)
		}
	}

	return &Result{
		Data:       data,
		Confidence: scoring.CalculateConfidence(data),
	}, nil
}

// leadingBlock returns the text before the first detected section heading.
// Identity fields live in this block; when no heading exists the whole
// document is the leading block.
func leadingBlock(text string) string {
	marks := scanHeadings(text)
	if len(marks) == 0 {
		return text
	}
	return text[:marks[0].lineStart]
}

// extractSummary captures the paragraph under a summary-style heading
// (Summary, Objective, Profile). The paragraph ends at a blank line after
// content or at the next recognized heading.
func extractSummary(text string) string {
	lines := splitLines(text)
	var collected []string
	inSummary := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inSummary {
			if matchSummaryHeading(trimmed) {
				inSummary = true
			}
			continue
		}
		if _, ok := matchHeading(trimmed); ok || matchSummaryHeading(trimmed) {
			break
		}
		if trimmed == "" {
			if len(collected) > 0 {
				break
			}
			continue
		}
		collected = append(collected, collapseSpaces(trimmed))
	}
	return strings.Join(collected, " ")
}
