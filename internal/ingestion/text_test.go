package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "CRLF normalized",
			content: "Jane Smith\r\nEngineer\r\n",
			want:    "Jane Smith\nEngineer",
		},
		{
			name:    "Bare CR normalized",
			content: "line one\rline two",
			want:    "line one\nline two",
		},
		{
			name:    "Non-breaking spaces folded",
			content: "Jane Smith",
			want:    "Jane Smith",
		},
		{
			name:    "Zero width characters removed",
			content: "Jane​Smith",
			want:    "JaneSmith",
		},
		{
			name:    "Interior space runs collapsed",
			content: "Jane    Smith\tEngineer",
			want:    "Jane Smith Engineer",
		},
		{
			name:    "Leading indentation preserved",
			content: "Skills\n  Go\n  Python",
			want:    "Skills\n  Go\n  Python",
		},
		{
			name:    "Blank line runs collapsed",
			content: "one\n\n\n\n\ntwo",
			want:    "one\n\ntwo",
		},
		{
			name:    "Trailing whitespace stripped per line",
			content: "Jane Smith   \nEngineer\t",
			want:    "Jane Smith\nEngineer",
		},
		{
			name:    "Bullet glyphs preserved",
			content: "• built things\n- shipped stuff",
			want:    "• built things\n- shipped stuff",
		},
		{
			name:    "Empty input",
			content: "",
			want:    "",
		},
		{
			name:    "Whitespace only input",
			content: "  \n\t\n  ",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.content))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"Jane Smith\r\n\r\nExperience\r\n•   Did   things  ",
		"plain\ntext",
		"  indented\n    deeper",
	}
	for _, input := range inputs {
		once := CleanText(input)
		assert.Equal(t, once, CleanText(once))
	}
}
