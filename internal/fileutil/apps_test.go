package fileutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>  Hello Sensor  </title>
</head>
<body><h1>Demo</h1></body>
</html>
`

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadSettings(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "evothings.json"),
			`{"app-name": "Blinky", "index-file": "www/index.html", "version": 2}`)

		settings, ok := ReadSettings(dir)
		require.True(t, ok)

		title, ok := settings.Title()
		assert.True(t, ok)
		assert.Equal(t, "Blinky", title)
		assert.Equal(t, "www/index.html", settings.IndexFile())
	})

	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "evothings.json"), `{}`)

		settings, ok := ReadSettings(dir)
		require.True(t, ok)

		_, ok = settings.Title()
		assert.False(t, ok)
		assert.Equal(t, DefaultIndexFile, settings.IndexFile())
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "evothings.json"), `{"app-name": `)

		_, ok := ReadSettings(dir)
		assert.False(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		_, ok := ReadSettings(t.TempDir())
		assert.False(t, ok)
	})
}

func TestAppTitle(t *testing.T) {
	dir := t.TempDir()

	withTitle := filepath.Join(dir, "index.html")
	writeTestFile(t, withTitle, sampleHTML)

	title, ok := AppTitle(withTitle)
	require.True(t, ok)
	assert.Equal(t, "Hello Sensor", title)

	noTitle := filepath.Join(dir, "plain.html")
	writeTestFile(t, noTitle, "<html><body>nothing here</body></html>")
	_, ok = AppTitle(noTitle)
	assert.False(t, ok)

	_, ok = AppTitle(filepath.Join(dir, "absent.html"))
	assert.False(t, ok)
}

func TestDetectMIME(t *testing.T) {
	dir := t.TempDir()

	page := filepath.Join(dir, "page.txt")
	writeTestFile(t, page, sampleHTML)
	assert.True(t, IsHTMLContent(page))

	text := filepath.Join(dir, "notes.html")
	writeTestFile(t, text, "just some notes\n")
	assert.False(t, IsHTMLContent(text))

	mtype, ok := DetectMIME(text)
	require.True(t, ok)
	assert.Contains(t, mtype, "text/plain")

	_, ok = DetectMIME(filepath.Join(dir, "absent"))
	assert.False(t, ok)
	assert.False(t, IsHTMLContent(filepath.Join(dir, "absent")))
}

func TestFindApps(t *testing.T) {
	root := t.TempDir()

	// App with settings and a title override.
	writeTestFile(t, filepath.Join(root, "blinky", "evothings.json"), `{"app-name": "Blinky"}`)
	writeTestFile(t, filepath.Join(root, "blinky", "index.html"), sampleHTML)

	// App with only an index file; title comes from the HTML.
	writeTestFile(t, filepath.Join(root, "examples", "sensor", "index.html"), sampleHTML)

	// Settings file only, custom index that is missing.
	writeTestFile(t, filepath.Join(root, "bare", "evothings.json"), `{"index-file": "app.html"}`)

	// Not an app.
	writeTestFile(t, filepath.Join(root, "docs", "readme.txt"), "docs")

	// Too deep to be discovered.
	writeTestFile(t, filepath.Join(root, "a", "b", "c", "evothings.json"), `{}`)

	apps, err := FindApps(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, apps, 3)

	assert.Equal(t, App{Dir: filepath.Join(root, "bare"), Title: "bare", HasSettings: true}, apps[0])
	assert.Equal(t, App{Dir: filepath.Join(root, "blinky"), Title: "Blinky", HasSettings: true}, apps[1])
	assert.Equal(t, App{Dir: filepath.Join(root, "examples", "sensor"), Title: "Hello Sensor"}, apps[2])
}

func TestFindAppsErrors(t *testing.T) {
	root := t.TempDir()

	_, err := FindApps(context.Background(), filepath.Join(root, "absent"))
	assert.ErrorIs(t, err, ErrPathNotFound)

	file := filepath.Join(root, "file.txt")
	writeTestFile(t, file, "x")
	_, err = FindApps(context.Background(), file)
	assert.Error(t, err)

	writeTestFile(t, filepath.Join(root, "app", "evothings.json"), `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = FindApps(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}
