// Package pdf extracts DOIs from PDF documents.
package pdf

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/matsen/doi"
)

// DOI pattern: 10.XXXX/... where XXXX is 4+ digits.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// maxSearchPages bounds the scan; the DOI is almost always on the
// first page.
const maxSearchPages = 3

// ExtractDOI extracts a DOI from a PDF file. It searches the first few
// pages for DOI patterns and returns the empty string (not an error)
// when none is found.
func ExtractDOI(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := maxSearchPages
	if r.NumPage() < pages {
		pages = r.NumPage()
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if match := FindDOI(text); match != "" {
			return match, nil
		}
	}

	return "", nil
}

// FindDOI finds the first plausible DOI in text. Trailing punctuation
// picked up by the pattern (sentence periods, closing parens) is
// stripped before validation.
func FindDOI(text string) string {
	matches := doiPattern.FindAllString(text, -1)
	for _, match := range matches {
		match = strings.TrimRight(match, ".,;:)")
		if doi.IsValid(match) {
			return match
		}
	}
	return ""
}
