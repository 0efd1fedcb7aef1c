package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

func TestDetectSections(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		validate func(*testing.T, []types.RawSection)
	}{
		{
			name: "Standard headings",
			text: "Jane Smith\n\nExperience\nSenior Developer at Tech Corp\n\nEducation\nBS in Computer Science\n\nSkills\nGo, Python",
			validate: func(t *testing.T, sections []types.RawSection) {
				require.Len(t, sections, 3)
				assert.Equal(t, types.SectionWork, sections[0].Name)
				assert.Contains(t, sections[0].Content, "Senior Developer at Tech Corp")
				assert.Equal(t, types.SectionEducation, sections[1].Name)
				assert.Equal(t, types.SectionSkills, sections[2].Name)
				assert.Equal(t, "Go, Python", sections[2].Content)
			},
		},
		{
			name: "Heading synonyms and trailing colons",
			text: "EMPLOYMENT HISTORY:\nsome job\nAcademic Background\nsome school\nCore Competencies:\nsome skills",
			validate: func(t *testing.T, sections []types.RawSection) {
				require.Len(t, sections, 3)
				assert.Equal(t, types.SectionWork, sections[0].Name)
				assert.Equal(t, types.SectionEducation, sections[1].Name)
				assert.Equal(t, types.SectionSkills, sections[2].Name)
			},
		},
		{
			name: "No recognizable heading",
			text: "Just a paragraph of text\nwith no structure at all.",
			validate: func(t *testing.T, sections []types.RawSection) {
				assert.Empty(t, sections)
			},
		},
		{
			name: "Empty input",
			text: "",
			validate: func(t *testing.T, sections []types.RawSection) {
				assert.Empty(t, sections)
			},
		},
		{
			name: "Prose containing a keyword is not a heading",
			text: "I have ten years of experience building distributed systems.\nSkills\nGo",
			validate: func(t *testing.T, sections []types.RawSection) {
				require.Len(t, sections, 1)
				assert.Equal(t, types.SectionSkills, sections[0].Name)
			},
		},
		{
			name: "Duplicate canonical names are preserved",
			text: "Education\nMIT\n\nExperience\na job\n\nEducation\nStanford",
			validate: func(t *testing.T, sections []types.RawSection) {
				require.Len(t, sections, 3)
				assert.Equal(t, types.SectionEducation, sections[0].Name)
				assert.Equal(t, "MIT", sections[0].Content)
				assert.Equal(t, types.SectionEducation, sections[2].Name)
				assert.Equal(t, "Stanford", sections[2].Content)
			},
		},
		{
			name: "Heading at end of document yields empty content",
			text: "Experience\njob\nLanguages",
			validate: func(t *testing.T, sections []types.RawSection) {
				require.Len(t, sections, 2)
				assert.Equal(t, types.SectionLanguages, sections[1].Name)
				assert.Empty(t, sections[1].Content)
			},
		},
		{
			name: "CRLF line endings",
			text: "Experience\r\nDeveloper at Corp\r\nEducation\r\nMIT",
			validate: func(t *testing.T, sections []types.RawSection) {
				require.Len(t, sections, 2)
				assert.Equal(t, "Developer at Corp", sections[0].Content)
				assert.Equal(t, "MIT", sections[1].Content)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, DetectSections(tt.text))
		})
	}
}

func TestDetectSectionsContentIsSubstring(t *testing.T) {
	inputs := []string{
		"Experience\nDeveloper at Corp\n2019 - 2021\n\nEducation\nMIT\n",
		"no headings here\nat all",
		"Skills:\n  Go, Python  \n\nProjects\nthing one\n",
		"Experience\r\nwindows line endings\r\nSkills\r\nGo",
	}
	for _, input := range inputs {
		sections := DetectSections(input)
		for _, section := range sections {
			assert.True(t, strings.Contains(input, section.Content),
				"content %q must be a contiguous substring of the input", section.Content)
		}
	}
}

func TestMatchHeading(t *testing.T) {
	tests := []struct {
		line string
		want types.SectionKind
		ok   bool
	}{
		{"Work Experience", types.SectionWork, true},
		{"  PROFESSIONAL EXPERIENCE:  ", types.SectionWork, true},
		{"My Work Experience", types.SectionWork, true},
		{"experience", types.SectionWork, true},
		{"Certifications", types.SectionCertificates, true},
		{"Key Projects:", types.SectionProjects, true},
		{"Languages", types.SectionLanguages, true},
		{"ten years of professional experience in consulting", "", false},
		{"", "", false},
		{"Skillset overview of everything I have ever done in my career", "", false},
	}
	for _, tt := range tests {
		kind, ok := matchHeading(tt.line)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		assert.Equal(t, tt.want, kind, "line %q", tt.line)
	}
}
