// Package fileutil provides non-failing filesystem and path helpers for the
// workbench.
//
// Lookups never surface a missing file as an error. They return a value and
// an ok flag instead, and callers are expected to check it:
//
//	content, ok := fileutil.ReadFile(path)
//	if !ok {
//	    // file missing or unreadable
//	}
//
// An application directory is a directory holding an evothings.json file.
// Helpers in this package recognize that marker, resolve the directory that
// contains an HTML entry point, read the settings file, and discover apps
// below a root directory.
package fileutil
