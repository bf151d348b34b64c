package fileutil

import (
	"os"
)

// filePerm is the mode for files created by WriteFile and WriteBytes.
const filePerm = 0o644

// ReadFile reads the whole file as UTF-8 text.
// Returns ok=false if the file cannot be read for any reason.
func ReadFile(path string) (string, bool) {
	data, ok := ReadBytes(path)
	if !ok {
		return "", false
	}
	return string(data), true
}

// ReadBytes reads the whole file as binary data.
func ReadBytes(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// WriteFile writes text to path, creating or truncating the file.
// Returns false if the write failed.
func WriteFile(path, data string) bool {
	return WriteBytes(path, []byte(data))
}

// WriteBytes writes binary data to path, creating or truncating the file.
func WriteBytes(path string, data []byte) bool {
	return os.WriteFile(path, data, filePerm) == nil
}
