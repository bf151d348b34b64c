// Package logging builds zap loggers for the workbench utilities.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Loggers are passed explicitly to the components that need them; this
// package keeps no global logger.
//
// Example Usage:
//
//	logger := logging.NewOrNop(cfg.Logging)
//	locator := homedir.NewLocator(homedir.CurrentEnvironment(), logger)
package logging
