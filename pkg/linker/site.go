package linker

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/droplink/pkg/filesystem"
)

// SiteState is the prior state of a link site
type SiteState int

const (
	// Unknown is the state of a site that was never inspected
	Unknown SiteState = iota
	// Absent means nothing exists at the link path
	Absent
	// AlreadyLinked means the link path is a symlink to the target
	AlreadyLinked
	// DanglingSymlink means the link path is a symlink whose destination is missing
	DanglingSymlink
	// RegularFile means the link path resolves to a regular file
	RegularFile
	// Directory means the link path resolves to a directory
	Directory
	// Unclassified is anything else: sockets, devices, unreadable entries
	Unclassified
)

// String returns the string representation of the state
func (s SiteState) String() string {
	switch s {
	case Absent:
		return "absent"
	case AlreadyLinked:
		return "already-linked"
	case DanglingSymlink:
		return "dangling-symlink"
	case RegularFile:
		return "regular-file"
	case Directory:
		return "directory"
	case Unclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// Action is what the processor does with a link site
type Action int

const (
	// ActionLink creates the link directly
	ActionLink Action = iota
	// ActionBackupAndLink moves the existing entry aside, then links
	ActionBackupAndLink
	// ActionSkip leaves the site untouched without error
	ActionSkip
	// ActionFail leaves the site untouched and reports an error
	ActionFail
)

// Transition returns the single action for a state
func (s SiteState) Transition() Action {
	switch s {
	case Absent:
		return ActionLink
	case DanglingSymlink, RegularFile:
		return ActionBackupAndLink
	case AlreadyLinked, Directory:
		return ActionSkip
	default:
		return ActionFail
	}
}

// ClassifySite inspects link and returns its state. The order of checks
// matters: a symlink is examined before anything that follows it.
func ClassifySite(fs filesystem.FS, link, target string) (SiteState, error) {
	linfo, err := fs.Lstat(link)
	if err != nil {
		if os.IsNotExist(err) {
			return Absent, nil
		}
		return Unclassified, err
	}

	if linfo.Mode()&os.ModeSymlink != 0 {
		if dest, err := fs.Readlink(link); err == nil && pointsTo(link, dest, target) {
			return AlreadyLinked, nil
		}
		if _, err := fs.Stat(link); err != nil {
			return DanglingSymlink, nil
		}
	}

	info, err := fs.Stat(link)
	if err != nil {
		return Unclassified, err
	}
	switch {
	case info.Mode().IsRegular():
		return RegularFile, nil
	case info.IsDir():
		return Directory, nil
	default:
		return Unclassified, nil
	}
}

// pointsTo reports whether a symlink at link with destination dest refers to target
func pointsTo(link, dest, target string) bool {
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(link), dest)
	}
	return filepath.Clean(dest) == filepath.Clean(target)
}
