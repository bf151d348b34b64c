package fileutil

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMIME sniffs the MIME type of a file from its content.
func DetectMIME(path string) (string, bool) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false
	}
	return mtype.String(), true
}

// IsHTMLContent reports whether the file content looks like HTML,
// regardless of its extension.
func IsHTMLContent(path string) bool {
	mtype, ok := DetectMIME(path)
	return ok && strings.HasPrefix(mtype, "text/html")
}
