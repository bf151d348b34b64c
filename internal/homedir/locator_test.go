package homedir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLocator(env Environment) (*Locator, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLocator(env, zap.New(core)), logs
}

func TestLocatorPaths(t *testing.T) {
	home := filepath.Join(string(filepath.Separator)+"home", "ada")
	locator, logs := newObservedLocator(MapEnvironment("linux", 1000, map[string]string{"HOME": home}))

	got, ok := locator.HomeDirectory()
	require.True(t, ok)
	assert.Equal(t, home, got)

	evothings, ok := locator.EvothingsHomePath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, "Evothings"), evothings)

	old, ok := locator.OldEvothingsHomePath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, "EvothingsStudio"), old)

	myApps, ok := locator.MyAppsPath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, "Evothings", "MyApps"), myApps)

	assert.Equal(t, Paths{
		Home:             home,
		EvothingsHome:    evothings,
		OldEvothingsHome: old,
		MyApps:           myApps,
	}, locator.Paths())

	assert.Zero(t, logs.Len())
}

func TestLocatorUnresolvableHome(t *testing.T) {
	locator, logs := newObservedLocator(MapEnvironment("linux", 1000, nil))

	_, ok := locator.HomeDirectory()
	assert.False(t, ok)

	_, ok = locator.EvothingsHomePath()
	assert.False(t, ok)

	_, ok = locator.OldEvothingsHomePath()
	assert.False(t, ok)

	_, ok = locator.MyAppsPath()
	assert.False(t, ok)

	assert.Equal(t, Paths{}, locator.Paths())

	assert.NotZero(t, logs.FilterMessage("Home directory not resolvable").Len())
	// Once directly and once through Paths.
	assert.Equal(t, 2, logs.FilterMessage("Failed to get MyApps path").Len())
	for _, entry := range logs.All() {
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
	}
}

func TestLocatorMalformedHome(t *testing.T) {
	locator, logs := newObservedLocator(MapEnvironment("freebsd", 1000, map[string]string{"HOME": "relative/home"}))

	_, ok := locator.EvothingsHomePath()
	assert.False(t, ok)

	entries := logs.FilterMessage("Home directory is not absolute").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "relative/home", entries[0].ContextMap()["home"])
	assert.Equal(t, 1, logs.FilterMessage("Failed to get Evothings home path").Len())
}

func TestNewLocatorNilLogger(t *testing.T) {
	locator := NewLocator(MapEnvironment("darwin", 501, map[string]string{"USER": "ada"}), nil)

	myApps, ok := locator.MyAppsPath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/Users/ada", "Evothings", "MyApps"), myApps)
}
