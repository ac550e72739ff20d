//go:build windows

package appdirs

// Windows ignores unix permission bits; ACLs come from the parent.
const dirPerm = 0o700
