package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

func TestParseCertificates(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.CertificateEntry
	}{
		{
			name:    "Dash separated",
			content: "AWS Solutions Architect - Amazon",
			want:    []types.CertificateEntry{{Name: "AWS Solutions Architect", Issuer: "Amazon"}},
		},
		{
			name:    "Comma separated",
			content: "CKA, Cloud Native Computing Foundation",
			want:    []types.CertificateEntry{{Name: "CKA", Issuer: "Cloud Native Computing Foundation"}},
		},
		{
			name:    "Bare name",
			content: "Certified Scrum Master",
			want:    []types.CertificateEntry{{Name: "Certified Scrum Master"}},
		},
		{
			name:    "Bulleted lines",
			content: "• PMP - PMI\n• Security+ - CompTIA",
			want: []types.CertificateEntry{
				{Name: "PMP", Issuer: "PMI"},
				{Name: "Security+", Issuer: "CompTIA"},
			},
		},
		{
			name:    "Blank lines skipped",
			content: "\nOCP - Oracle\n\n",
			want:    []types.CertificateEntry{{Name: "OCP", Issuer: "Oracle"}},
		},
		{
			name:    "Dash wins over comma",
			content: "GCP Professional - Google, Cloud Division",
			want:    []types.CertificateEntry{{Name: "GCP Professional", Issuer: "Google, Cloud Division"}},
		},
		{
			name:    "Empty content",
			content: "",
			want:    []types.CertificateEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCertificates(tt.content)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
