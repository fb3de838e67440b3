// Package templates holds the fixed set of files wmgen writes into a new
// tiling window manager project. Each entry pairs a slash-separated relative
// path with the exact bytes to write there. The contents are compiled into
// the binary as string constants so the generator needs nothing at runtime.
package templates
