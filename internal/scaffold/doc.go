// Package scaffold writes a template catalog onto a filesystem under a
// destination root. It creates missing directories, overwrites files that
// collide with template paths, and leaves everything else untouched. A run
// stops at the first failure and does not roll back files already written;
// running it again after fixing the cause produces the complete output.
package scaffold
