// Package config loads wmgen's built-in settings: directory and file modes,
// the log level, and the completion message. The settings document is
// embedded in the binary, checked against an embedded JSON schema, and read
// through Viper. There is deliberately no user config file or environment
// override; the command line takes a single positional argument and nothing
// else.
package config
