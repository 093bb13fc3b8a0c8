package testutil

import (
	"os"
	"testing"
)

// AssertSymlinkTo checks that link is a symlink whose destination is target
func AssertSymlinkTo(t *testing.T, link, target string) {
	t.Helper()

	info, err := os.Lstat(link)
	if err != nil {
		t.Errorf("Expected symlink at %s: %v", link, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Expected %s to be a symlink, got mode %v", link, info.Mode())
		return
	}
	dest, err := os.Readlink(link)
	if err != nil {
		t.Errorf("Failed to read symlink %s: %v", link, err)
		return
	}
	if dest != target {
		t.Errorf("Symlink %s points to %s, want %s", link, dest, target)
	}
}

// AssertContent checks that path is readable and holds content
func AssertContent(t *testing.T, path, content string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Failed to read %s: %v", path, err)
		return
	}
	if string(data) != content {
		t.Errorf("Content of %s = %q, want %q", path, string(data), content)
	}
}

// AssertNotExists checks that nothing, not even a dangling link, exists at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err == nil {
		t.Errorf("Expected %s not to exist", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("Unexpected error inspecting %s: %v", path, err)
	}
}

// AssertIsDir checks that path is a real directory
func AssertIsDir(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected directory at %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory, got mode %v", path, info.Mode())
	}
}
