package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjects(t *testing.T) {
	t.Run("Name description highlights and URL", func(t *testing.T) {
		content := "Flight Tracker\nReal-time aircraft tracking dashboard.\nhttps://github.com/jane/tracker\n• Ingests ADS-B feeds\n• Renders 10k aircraft"
		entries := ParseProjects(content)
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, "Flight Tracker", entry.Name)
		assert.Contains(t, entry.Description, "Real-time aircraft tracking dashboard.")
		assert.Equal(t, "https://github.com/jane/tracker", entry.URL)
		assert.Equal(t, []string{"Ingests ADS-B feeds", "Renders 10k aircraft"}, entry.Highlights)
	})

	t.Run("Multi line description joined with spaces", func(t *testing.T) {
		entries := ParseProjects("Budget App\nA personal finance tool\nfor tracking expenses.")
		require.Len(t, entries, 1)
		assert.Equal(t, "A personal finance tool for tracking expenses.", entries[0].Description)
	})

	t.Run("Non bullet lines after the first bullet are ignored", func(t *testing.T) {
		entries := ParseProjects("Tool\n• did a thing\ntrailing prose")
		require.Len(t, entries, 1)
		assert.Empty(t, entries[0].Description)
		assert.Equal(t, []string{"did a thing"}, entries[0].Highlights)
	})

	t.Run("Name only", func(t *testing.T) {
		entries := ParseProjects("Side Project")
		require.Len(t, entries, 1)
		assert.Equal(t, "Side Project", entries[0].Name)
		assert.Empty(t, entries[0].Description)
		assert.Empty(t, entries[0].URL)
		assert.NotNil(t, entries[0].Highlights)
	})

	t.Run("URL trailing punctuation trimmed", func(t *testing.T) {
		entries := ParseProjects("Thing\nSee https://thing.dev/docs.")
		require.Len(t, entries, 1)
		assert.Equal(t, "https://thing.dev/docs", entries[0].URL)
	})

	t.Run("Multiple blocks", func(t *testing.T) {
		entries := ParseProjects("One\ndesc one\n\nTwo\ndesc two")
		require.Len(t, entries, 2)
		assert.Equal(t, "One", entries[0].Name)
		assert.Equal(t, "Two", entries[1].Name)
	})

	t.Run("Empty content", func(t *testing.T) {
		entries := ParseProjects("")
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
