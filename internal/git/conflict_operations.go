package git

import (
	"bytes"
)

// GetConflictedFiles returns the unmerged paths under WorkDir, relative to it.
// Paths are read NUL-separated so git never quotes or escapes them.
func (repo *GitRepo) GetConflictedFiles() ([]string, error) {
	output, err := repo.run("list conflicted files", "diff", "--name-only", "--relative", "--diff-filter=U", "-z")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, file := range bytes.Split(output, []byte{0}) {
		if len(file) > 0 {
			files = append(files, string(file))
		}
	}

	return files, nil
}

func (repo *GitRepo) AddFiles(files []string) error {
	if len(files) == 0 {
		return nil
	}

	args := append([]string{"add", "--"}, files...)
	_, err := repo.run("add files", args...)
	return err
}
