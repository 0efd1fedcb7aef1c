package parsing

import "strings"

// docLine is one physical line of the document together with its byte
// offsets in the original text, so section content can be sliced out of the
// input verbatim.
type docLine struct {
	text  string // line content without the trailing newline or CR
	start int    // offset of the first byte of the line
	end   int    // offset just past the last byte, excluding the newline
}

// splitDocLines splits text on '\n', tolerating CRLF, and records offsets.
func splitDocLines(text string) []docLine {
	lines := make([]docLine, 0, strings.Count(text, "\n")+1)
	start := 0
	for start <= len(text) {
		idx := strings.IndexByte(text[start:], '\n')
		var end int
		if idx < 0 {
			end = len(text)
		} else {
			end = start + idx
		}
		content := text[start:end]
		content = strings.TrimSuffix(content, "\r")
		lines = append(lines, docLine{text: content, start: start, end: start + len(content)})
		if idx < 0 {
			break
		}
		start = end + 1
	}
	return lines
}

// splitLines splits content into plain lines, tolerating CRLF.
func splitLines(content string) []string {
	raw := strings.Split(content, "\n")
	for i, line := range raw {
		raw[i] = strings.TrimSuffix(line, "\r")
	}
	return raw
}

// splitBlocks splits section content into blank-line-separated groups of
// non-empty lines.
func splitBlocks(content string) [][]string {
	blocks := make([][]string, 0)
	var current []string
	for _, line := range splitLines(content) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// bulletPrefixes are the glyphs that introduce a highlight line.
var bulletPrefixes = []string{"•", "·", "‣", "●", "-", "*"}

// isBulletLine reports whether the line starts with a bullet glyph followed
// by content.
func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) && strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)) != "" {
			return true
		}
	}
	return false
}

// stripBullet removes a leading bullet glyph and surrounding whitespace.
// Lines without a bullet come back trimmed but otherwise untouched.
func stripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
		}
	}
	return trimmed
}

// firstNonEmpty returns the index of the first line with content, or -1.
func firstNonEmpty(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return i
		}
	}
	return -1
}

// collapseSpaces trims the string and folds internal whitespace runs into
// single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
