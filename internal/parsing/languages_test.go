package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

func TestParseLanguages(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.LanguageEntry
	}{
		{
			name:    "Dash separated fluency",
			content: "Spanish - Fluent",
			want:    []types.LanguageEntry{{Language: "Spanish", Fluency: "Fluent"}},
		},
		{
			name:    "Parenthesized fluency",
			content: "German (Intermediate)",
			want:    []types.LanguageEntry{{Language: "German", Fluency: "Intermediate"}},
		},
		{
			name:    "Colon separated and case insensitive",
			content: "French: NATIVE",
			want:    []types.LanguageEntry{{Language: "French", Fluency: "Native"}},
		},
		{
			name:    "Unknown qualifier leaves fluency absent",
			content: "Japanese - conversational",
			want:    []types.LanguageEntry{{Language: "Japanese"}},
		},
		{
			name:    "Bare language",
			content: "Mandarin",
			want:    []types.LanguageEntry{{Language: "Mandarin"}},
		},
		{
			name:    "Bulleted list",
			content: "• English - Native\n• Portuguese - Professional",
			want: []types.LanguageEntry{
				{Language: "English", Fluency: "Native"},
				{Language: "Portuguese", Fluency: "Professional"},
			},
		},
		{
			name:    "Empty content",
			content: "",
			want:    []types.LanguageEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLanguages(tt.content)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
