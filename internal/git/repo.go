package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

type GitRepo struct {
	WorkDir string
}

func New(workDir string) *GitRepo {
	return &GitRepo{WorkDir: workDir}
}

func formatCommandError(operation string, err error, stdout, stderr bytes.Buffer) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %w\nStdout: %s\nStderr: %s",
		operation, err, stdout.String(), stderr.String())
}

// run executes git in the repo and returns stdout.
func (repo *GitRepo) run(operation string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Env = os.Environ()
	cmd.Dir = repo.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), formatCommandError(operation, err, stdout, stderr)
}
