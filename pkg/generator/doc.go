// Package generator writes a draft mapping file from the contents of the
// synchronized folder.
//
// Every regular file under the source folder becomes one mapping line. The
// link side is filled in from the naming rules (see pkg/rules) or left blank
// when no rule matches, so the user only has to review and edit the result.
// The mapping file is always rewritten as a whole; deciding whether to
// generate at all is up to the caller.
package generator
