package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractError represents a failure to parse pasted HTML.
type ExtractError struct {
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return "html extraction failed: " + e.Message + ": " + e.Cause.Error()
	}
	return "html extraction failed: " + e.Message
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// blockSelectors are elements that should start a new output line so that
// headings, paragraphs, and list items survive as separate lines for the
// section detector.
const blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, div, section, article, br, tr"

// ExtractText converts pasted profile HTML (a LinkedIn page, an online
// résumé) into plain text suitable for parsing. Scripts and styles are
// dropped; block-level elements become line breaks. The result is cleaned
// with CleanText.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, svg").Remove()

	// Force a newline boundary around block elements, then read the text.
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	return CleanText(root.Text()), nil
}
