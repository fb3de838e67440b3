// Package cli defines the wmgen command line. The root command takes exactly
// one positional argument, the project directory, and delegates the work to
// the scaffold package. This package only handles argument checking, output
// formatting, and translating errors into an exit status.
package cli
