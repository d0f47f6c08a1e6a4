// Package gittest builds throwaway repositories for tests.
package gittest

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// ConflictedFiles are left unmerged by ConflictedRepo, in the order git
// reports them.
var ConflictedFiles = []string{"café.txt", "notes.txt"}

// Env isolates git from the user's configuration and supplies an identity.
func Env() []string {
	return append(os.Environ(),
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
}

func Git(t testing.TB, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = Env()
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
}

func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func writeAll(t testing.TB, dir, content string) {
	t.Helper()
	for _, name := range ConflictedFiles {
		WriteFile(t, filepath.Join(dir, name), content)
	}
}

// ConflictedRepo returns a repository stopped mid-merge, with each of
// ConflictedFiles holding one conflict region. The test is skipped when git
// is not installed.
func ConflictedRepo(t testing.TB) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()

	Git(t, dir, "init", "-q")
	writeAll(t, dir, "base\n")
	WriteFile(t, filepath.Join(dir, "clean.txt"), "clean\n")
	Git(t, dir, "add", ".")
	Git(t, dir, "commit", "-q", "-m", "base")

	Git(t, dir, "checkout", "-q", "-b", "feature")
	writeAll(t, dir, "feature\n")
	Git(t, dir, "commit", "-q", "-am", "feature")

	Git(t, dir, "checkout", "-q", "-")
	writeAll(t, dir, "mainline\n")
	Git(t, dir, "commit", "-q", "-am", "mainline")

	cmd := exec.Command("git", "merge", "feature")
	cmd.Dir = dir
	cmd.Env = Env()
	if err := cmd.Run(); err == nil {
		t.Fatal("expected merge to conflict")
	}

	return dir
}
