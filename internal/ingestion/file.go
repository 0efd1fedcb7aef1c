package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IngestFile reads an already-decoded résumé file (.txt, .md, or .html) and
// returns cleaned plain text. HTML is stripped to text first. Binary formats
// are rejected; decoding PDF or DOCX belongs to an upstream collaborator.
func IngestFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractText(string(content))
	case ".pdf", ".docx", ".doc":
		return "", fmt.Errorf("binary format %q is not supported; decode to text first", filepath.Ext(path))
	default:
		return CleanText(string(content)), nil
	}
}
