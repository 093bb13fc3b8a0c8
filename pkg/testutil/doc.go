// Package testutil provides utilities for testing droplink components.
//
// Key components:
//   - Environment: an isolated home directory plus synchronized folder on
//     the real filesystem, with the DROPLINK_* variables pointed at it
//   - file helpers: CreateFile, CreateDir, CreateSymlink, WriteMapping
//   - assertions: AssertSymlinkTo, AssertContent, AssertNotExists
//
// Link processing needs real symlinks, so these helpers use t.TempDir()
// rather than an in-memory filesystem.
package testutil
