// Package platform provides the filesystem wmgen writes through. Production
// code uses the host filesystem via afero; tests substitute an in-memory or
// read-only afero.Fs.
package platform
