package homedir

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/evothings/workbench/internal/fileutil"
)

// Directory names below the home directory.
const (
	EvothingsDirName    = "Evothings"
	OldEvothingsDirName = "EvothingsStudio"
	MyAppsDirName       = "MyApps"
)

// Locator resolves workbench directories. Paths are recomputed on every
// call; nothing is cached.
type Locator struct {
	env    Environment
	logger *zap.Logger
}

// Paths groups the derived workbench directories. Empty fields could not be
// resolved.
type Paths struct {
	Home             string
	EvothingsHome    string
	OldEvothingsHome string
	MyApps           string
}

// NewLocator creates a Locator. A nil logger discards diagnostics.
func NewLocator(env Environment, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{env: env, logger: logger.Named("homedir")}
}

// HomeDirectory returns the resolved home directory. A home directory that
// is not absolute is treated as malformed and reported as absent.
func (l *Locator) HomeDirectory() (string, bool) {
	home, ok := ResolveHome(l.env)
	if !ok {
		l.logger.Warn("Home directory not resolvable", zap.String("os", l.env.OS))
		return "", false
	}
	if !fileutil.IsPathAbsolute(home) {
		l.logger.Warn("Home directory is not absolute",
			zap.String("os", l.env.OS),
			zap.String("home", home))
		return "", false
	}
	return home, true
}

// EvothingsHomePath returns <home>/Evothings.
func (l *Locator) EvothingsHomePath() (string, bool) {
	return l.underHome(EvothingsDirName, "Failed to get Evothings home path")
}

// OldEvothingsHomePath returns <home>/EvothingsStudio, the directory used by
// earlier releases.
func (l *Locator) OldEvothingsHomePath() (string, bool) {
	return l.underHome(OldEvothingsDirName, "Failed to get old Evothings home path")
}

// MyAppsPath returns <home>/Evothings/MyApps.
func (l *Locator) MyAppsPath() (string, bool) {
	evothingsHome, ok := l.EvothingsHomePath()
	if !ok {
		l.logger.Warn("Failed to get MyApps path")
		return "", false
	}
	return filepath.Join(evothingsHome, MyAppsDirName), true
}

// Paths resolves all workbench directories at once.
func (l *Locator) Paths() Paths {
	var p Paths
	p.Home, _ = l.HomeDirectory()
	p.EvothingsHome, _ = l.EvothingsHomePath()
	p.OldEvothingsHome, _ = l.OldEvothingsHomePath()
	p.MyApps, _ = l.MyAppsPath()
	return p
}

func (l *Locator) underHome(name, failure string) (string, bool) {
	home, ok := l.HomeDirectory()
	if !ok {
		l.logger.Warn(failure, zap.String("dir", name))
		return "", false
	}
	return filepath.Join(home, name), true
}
