// Package linker processes a mapping file and creates the symlinks it
// declares.
//
// Each mapping line is handled independently. After the target is checked
// for existence, the link site (the path on the left of "=>") is classified
// into exactly one SiteState, and each state has a single transition:
//
//	AlreadyLinked    skip, nothing to do
//	DanglingSymlink  back up, then link
//	Absent           link
//	RegularFile      back up, then link
//	Directory        skip, directories are never replaced
//	Unclassified     error
//
// A backup renames the existing entry by appending the backup suffix
// (".conf_bak" by default). Only one backup level exists: when the backup
// path is already taken the entry fails with BACKUP_EXISTS and nothing is
// touched.
//
// Only an empty mapping file path or an unreadable mapping file abort a run.
// Every other problem is recorded in the Report and processing continues with
// the next line.
package linker
