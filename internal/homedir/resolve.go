package homedir

import (
	"os"
	"runtime"
)

// Environment is the process state home resolution depends on.
type Environment struct {
	// OS is a runtime.GOOS value such as "linux", "darwin" or "windows".
	OS string
	// UID is the effective user id, -1 where the platform has none.
	UID int
	// Getenv looks up an environment variable.
	Getenv func(key string) string
}

// CurrentEnvironment snapshots the running process.
func CurrentEnvironment() Environment {
	return Environment{
		OS:     runtime.GOOS,
		UID:    os.Getuid(),
		Getenv: os.Getenv,
	}
}

// MapEnvironment builds an Environment backed by a fixed variable map.
func MapEnvironment(goos string, uid int, vars map[string]string) Environment {
	return Environment{
		OS:  goos,
		UID: uid,
		Getenv: func(key string) string {
			return vars[key]
		},
	}
}

func (e Environment) get(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

// firstOf returns the first non-empty variable among keys.
func (e Environment) firstOf(keys ...string) string {
	for _, key := range keys {
		if v := e.get(key); v != "" {
			return v
		}
	}
	return ""
}

// username follows the LOGNAME, USER, LNAME, USERNAME chain.
func (e Environment) username() string {
	return e.firstOf("LOGNAME", "USER", "LNAME", "USERNAME")
}

// ResolveHome returns the home directory for env. Empty variables count as
// unset. When HOME is missing a best-effort guess from the username is
// preferred over failing.
func ResolveHome(env Environment) (string, bool) {
	home := env.get("HOME")

	switch env.OS {
	case "windows":
		if profile := env.get("USERPROFILE"); profile != "" {
			return profile, true
		}
		drive, path := env.get("HOMEDRIVE"), env.get("HOMEPATH")
		if drive != "" && path != "" {
			return drive + path, true
		}
	case "darwin":
		if home != "" {
			return home, true
		}
		if user := env.username(); user != "" {
			return "/Users/" + user, true
		}
		return "", false
	case "linux":
		if home != "" {
			return home, true
		}
		if env.UID == 0 {
			return "/root", true
		}
		if user := env.username(); user != "" {
			return "/home/" + user, true
		}
		return "", false
	}

	if home != "" {
		return home, true
	}
	return "", false
}
