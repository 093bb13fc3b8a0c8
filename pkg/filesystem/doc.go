// Package filesystem provides filesystem implementations for droplink.
//
// This package contains the FS interface used by the generator and the link
// processor, with an OS implementation and an afero-backed implementation
// used by tests.
package filesystem
