package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/corpeningc/cgit-resolve/internal/conflict"
)

// SelectFiles offers the parsed files in a multi-select and returns the
// chosen paths.
func SelectFiles(files []conflict.ConflictFile) ([]string, error) {
	var selectedFiles []string
	var options []huh.Option[string]

	for _, file := range files {
		options = append(options, huh.NewOption(FileSummary(file.Path, len(file.Conflicts)), file.Path))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select conflicted files to resolve:").
				Options(options...).
				Value(&selectedFiles),
		),
	)

	err := form.Run()
	if err != nil {
		return nil, err
	}

	return selectedFiles, nil
}
