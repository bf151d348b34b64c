package fileutil

import (
	"path/filepath"

	"github.com/bytedance/sonic"
)

// DefaultIndexFile is the entry point used when evothings.json names none.
const DefaultIndexFile = "index.html"

// AppSettings holds the decoded contents of an evothings.json file.
type AppSettings map[string]any

// ReadSettings decodes dir/evothings.json.
// Returns ok=false if the file is missing or is not a JSON object.
func ReadSettings(dir string) (AppSettings, bool) {
	data, ok := ReadBytes(filepath.Join(dir, SettingsFileName))
	if !ok {
		return nil, false
	}

	var settings AppSettings
	if err := sonic.Unmarshal(data, &settings); err != nil || settings == nil {
		return nil, false
	}
	return settings, true
}

// Title returns the app-name setting, if present.
func (s AppSettings) Title() (string, bool) {
	return s.stringValue("app-name")
}

// IndexFile returns the app's entry point relative to its directory.
func (s AppSettings) IndexFile() string {
	if index, ok := s.stringValue("index-file"); ok {
		return index
	}
	return DefaultIndexFile
}

func (s AppSettings) stringValue(key string) (string, bool) {
	v, ok := s[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
