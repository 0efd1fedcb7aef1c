package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "Month year range",
			line:      "Jan 2020 - Mar 2023",
			wantStart: "Jan 2020",
			wantEnd:   "Mar 2023",
		},
		{
			name:      "Full month names",
			line:      "January 2020 to December 2022",
			wantStart: "January 2020",
			wantEnd:   "December 2022",
		},
		{
			name:      "Year only range",
			line:      "2019 - 2021",
			wantStart: "2019",
			wantEnd:   "2021",
		},
		{
			name:      "Present keyword",
			line:      "Jun 2021 - Present",
			wantStart: "Jun 2021",
			wantEnd:   "Present",
		},
		{
			name:      "Current normalized to Present",
			line:      "2020 - current",
			wantStart: "2020",
			wantEnd:   "Present",
		},
		{
			name:      "Open ended dash",
			line:      "Sep 2022 -",
			wantStart: "Sep 2022",
			wantEnd:   "Present",
		},
		{
			name:      "Numeric month format",
			line:      "03/2019 - 11/2021",
			wantStart: "03/2019",
			wantEnd:   "11/2021",
		},
		{
			name:      "En dash separator",
			line:      "2018 – 2020",
			wantStart: "2018",
			wantEnd:   "2020",
		},
		{
			name:      "Bare date populates only the start",
			line:      "May 2020",
			wantStart: "May 2020",
			wantEnd:   "",
		},
		{
			name: "Range embedded in a longer line",
			line: "Tech Corp, Jan 2020 - Mar 2023, Austin",

			wantStart: "Jan 2020",
			wantEnd:   "Mar 2023",
		},
		{
			name: "No date at all",
			line: "Senior Developer at Tech Corp",
		},
		{
			name: "Empty line",
			line: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := parseDateRange(tt.line)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNormalizeEndDate(t *testing.T) {
	assert.Equal(t, "Present", normalizeEndDate("present"))
	assert.Equal(t, "Present", normalizeEndDate("Ongoing"))
	assert.Equal(t, "Present", normalizeEndDate(" NOW "))
	assert.Equal(t, "Mar 2023", normalizeEndDate("Mar 2023"))
}
