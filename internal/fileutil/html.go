package fileutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// AppTitle returns the trimmed <title> text of an HTML file.
// Returns ok=false if the file cannot be read or has no non-empty title.
func AppTitle(htmlPath string) (string, bool) {
	data, ok := ReadBytes(htmlPath)
	if !ok {
		return "", false
	}

	doc, err := loadHTML(data)
	if err != nil {
		return "", false
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return "", false
	}
	return title, true
}

// detectCharset guesses the charset of HTML bytes, defaulting to utf-8.
func detectCharset(data []byte) string {
	result, err := chardet.NewHtmlDetector().DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// loadHTML parses HTML after converting it to UTF-8.
func loadHTML(data []byte) (*goquery.Document, error) {
	utf8Reader, err := charset.NewReader(bytes.NewReader(data), "text/html; charset="+detectCharset(data))
	if err != nil {
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}
	return goquery.NewDocumentFromReader(utf8Reader)
}
