package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

func TestPrintBasics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	basics := &types.ParsedBasics{Name: "Jane Smith", Title: "Engineer"}
	basics.Email = "jane@example.com"
	basics.Location = types.Location{City: "Austin", Region: "TX"}
	p.PrintBasics(basics)

	out := buf.String()
	assert.Contains(t, out, "Extracted Basics")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "Austin, TX")
	// Absent fields render as a dash, not an empty slot.
	assert.Contains(t, out, "—")
}

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	data := types.NewParsedResumeData()
	data.Work = append(data.Work, types.WorkEntry{Position: "Engineer", Company: "Corp", Highlights: []string{}})
	data.Skills = append(data.Skills, types.SkillEntry{Name: "Go", Keywords: []string{}})
	p.PrintSections(data)

	out := buf.String()
	assert.Contains(t, out, "Work:         1 entries")
	assert.Contains(t, out, "Engineer / Corp")
	assert.Contains(t, out, "Skills:       1 entries")
}

func TestPrintConfidence(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ConfidenceReport{
		Overall: 72,
		Sections: map[string]int{
			types.BasicsKey:                   80,
			string(types.SectionWork):         100,
			string(types.SectionEducation):    0,
			string(types.SectionSkills):       70,
			string(types.SectionProjects):     0,
			string(types.SectionCertificates): 0,
			string(types.SectionLanguages):    0,
		},
	}
	p.PrintConfidence(report)

	out := buf.String()
	assert.Contains(t, out, "Confidence Report")
	assert.Contains(t, out, "Overall:  72")
	assert.Contains(t, out, "basics")
	for _, kind := range types.AllSectionKinds {
		assert.Contains(t, out, string(kind))
	}
}

func TestPrintersTolerateNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintBasics(nil)
	p.PrintSections(nil)
	p.PrintConfidence(nil)
	assert.Empty(t, buf.String())
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 10), bar(0))
	assert.Equal(t, strings.Repeat("█", 10), bar(100))
	assert.Equal(t, strings.Repeat("█", 5)+strings.Repeat("░", 5), bar(55))
}
