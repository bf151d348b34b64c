package fileutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// maxAppDepth limits discovery to root/<app> and root/<group>/<app>.
const maxAppDepth = 2

// App describes an application directory found by FindApps.
type App struct {
	Dir         string
	Title       string
	HasSettings bool
}

// FindApps walks root and returns the directories that contain an
// evothings.json file or an index.html entry point, sorted by path.
// Unreadable entries are skipped. The walk stops when ctx is cancelled.
func FindApps(ctx context.Context, root string) ([]App, error) {
	isDir, err := IsDirectory(root)
	if err != nil {
		return nil, fmt.Errorf("find apps: %w", err)
	}
	if !isDir {
		return nil, fmt.Errorf("find apps: %s is not a directory", root)
	}

	var (
		mu   sync.Mutex
		apps []App
	)

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || !d.IsDir() || path == root {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if depth := len(strings.Split(relPath, string(os.PathSeparator))); depth > maxAppDepth {
			return filepath.SkipDir
		}

		app, ok := inspectAppDir(path)
		if !ok {
			return nil
		}

		mu.Lock()
		apps = append(apps, app)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(apps, func(i, j int) bool { return apps[i].Dir < apps[j].Dir })
	return apps, nil
}

// inspectAppDir builds an App for dir if it looks like an application.
// The title comes from evothings.json, then from the index file's <title>,
// then from the directory name.
func inspectAppDir(dir string) (App, bool) {
	app := App{Dir: dir, Title: filepath.Base(dir)}
	index := DefaultIndexFile

	if settings, ok := ReadSettings(dir); ok {
		app.HasSettings = true
		index = settings.IndexFile()
		if title, ok := settings.Title(); ok {
			app.Title = title
			return app, true
		}
	} else if DirectoryHasEvothingsJSON(dir) {
		app.HasSettings = true
	}

	indexPath := filepath.Join(dir, index)
	if !PathExists(indexPath) {
		return app, app.HasSettings
	}
	if title, ok := AppTitle(indexPath); ok {
		app.Title = title
	}
	return app, true
}
