//go:build !windows

package appdirs

// Snapshots can carry file paths from private repos; keep them owner-only.
const dirPerm = 0o700
