package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantEmail    string
		wantPhone    string
		wantLinkedIn string
		wantGitHub   string
		wantURL      string
	}{
		{
			name:      "Email and US phone",
			text:      "Jane Smith\njane.smith@example.com | (555) 123-4567",
			wantEmail: "jane.smith@example.com",
			wantPhone: "(555) 123-4567",
		},
		{
			name:      "International phone",
			text:      "Contact: +1 555 123 4567",
			wantPhone: "+1 555 123 4567",
		},
		{
			name:         "Profile URLs classified by host",
			text:         "https://linkedin.com/in/jane\nhttps://github.com/jane\nhttps://jane.dev",
			wantLinkedIn: "https://linkedin.com/in/jane",
			wantGitHub:   "https://github.com/jane",
			wantURL:      "https://jane.dev",
		},
		{
			name:    "Bare www URL",
			text:    "portfolio: www.jane.dev",
			wantURL: "www.jane.dev",
		},
		{
			name:      "First match wins per field",
			text:      "a@example.com then b@example.com\n555-123-4567 and 555-999-8888",
			wantEmail: "a@example.com",
			wantPhone: "555-123-4567",
		},
		{
			name: "Date range is not a phone number",
			text: "2020-2024 worked somewhere",
		},
		{
			name:       "Email and URL digits do not leak into phone",
			text:       "user1234567890@example.com https://github.com/user/1234567890",
			wantEmail:  "user1234567890@example.com",
			wantGitHub: "https://github.com/user/1234567890",
		},
		{
			name:      "Email embedded in prose",
			text:      "Contact me at john.doe@example.com for more info",
			wantEmail: "john.doe@example.com",
		},
		{
			name: "Malformed emails never echoed",
			text: "Invalid: john@.com or @example.com",
		},
		{
			name: "No contact info at all",
			text: "Just some prose about a career.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractContactInfo(tt.text)
			assert.Equal(t, tt.wantEmail, info.Email)
			assert.Equal(t, tt.wantPhone, info.Phone)
			assert.Equal(t, tt.wantLinkedIn, info.LinkedIn)
			assert.Equal(t, tt.wantGitHub, info.GitHub)
			assert.Equal(t, tt.wantURL, info.URL)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.smith+tag@sub.example.co.uk",
		"j_s%x@example.io",
	}
	for _, candidate := range valid {
		assert.True(t, isValidEmail(candidate), candidate)
	}

	invalid := []string{
		"jane@.com",
		"jane@example..com",
		"jane@-example.com",
		"jane@example.com.",
		"plainstring",
	}
	for _, candidate := range invalid {
		assert.False(t, isValidEmail(candidate), candidate)
	}
}

func TestIsContactLine(t *testing.T) {
	assert.True(t, isContactLine("jane@example.com"))
	assert.True(t, isContactLine("(555) 123-4567"))
	assert.True(t, isContactLine("https://jane.dev"))
	assert.True(t, isContactLine("Boston, MA 02101"))
	assert.False(t, isContactLine("Jane Smith"))
	assert.False(t, isContactLine("Senior Developer"))
}
