// Package homedir resolves the user's home directory and the workbench
// directories derived from it.
//
// Resolution is a pure function of an Environment snapshot, so every
// platform branch can be exercised from any host:
//
//	env := homedir.CurrentEnvironment()
//	home, ok := homedir.ResolveHome(env)
//
// Locator adds the Evothings directories on top and reports failures
// through an injected zap logger instead of returning errors.
package homedir
