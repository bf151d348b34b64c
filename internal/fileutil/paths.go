package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// SettingsFileName marks a directory as an application directory.
const SettingsFileName = "evothings.json"

// IsPathAbsolute reports whether path looks absolute on Linux, macOS or
// Windows. It checks for a leading slash, a leading platform separator, or
// a drive letter colon in second position. UNC paths are not special-cased.
func IsPathAbsolute(path string) bool {
	if path == "" {
		return false
	}
	if path[0] == '/' || path[0] == os.PathSeparator {
		return true
	}
	return len(path) > 1 && path[1] == ':'
}

// EndsWithCaseInsensitive reports whether value ends with suffix, ignoring case.
func EndsWithCaseInsensitive(value, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(value), strings.ToLower(suffix))
}

// IsHTMLFile reports whether path names an .html or .htm file.
func IsHTMLFile(path string) bool {
	return EndsWithCaseInsensitive(path, ".html") || EndsWithCaseInsensitive(path, ".htm")
}

// IsEvothingsSettingsFile reports whether path names an evothings.json file.
func IsEvothingsSettingsFile(path string) bool {
	return EndsWithCaseInsensitive(path, SettingsFileName)
}

// GetAppDirectory returns the directory containing path if path is an HTML
// file. Any other path is assumed to be a directory already and is returned
// unchanged.
func GetAppDirectory(path string) string {
	if IsHTMLFile(path) {
		return filepath.Dir(path)
	}
	return path
}

// DirectoryHasEvothingsJSON reports whether dir directly contains an
// evothings.json file.
func DirectoryHasEvothingsJSON(dir string) bool {
	_, ok := Stat(filepath.Join(dir, SettingsFileName))
	return ok
}
