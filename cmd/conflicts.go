package cmd

import (
	"fmt"
	"os"

	"github.com/corpeningc/cgit-resolve/internal/conflict"
	"github.com/corpeningc/cgit-resolve/internal/git"
	"github.com/corpeningc/cgit-resolve/internal/ui"
	"github.com/spf13/cobra"
)

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// scanConflicts parses each unmerged file. Files git still lists but that no
// longer contain markers are returned separately in clean.
func scanConflicts(files []string) (pending []conflict.ConflictFile, clean []string, err error) {
	for _, file := range files {
		content, err := readFile(file)
		if err != nil {
			return nil, nil, err
		}

		if !conflict.HasMarkers(content) {
			clean = append(clean, file)
			continue
		}
		pending = append(pending, conflict.Parse(file, content))
	}
	return pending, clean, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List files git reports as unmerged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := git.New(".").GetConflictedFiles()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, "No conflicted files.")
				return nil
			}

			for _, file := range files {
				content, err := readFile(file)
				if err != nil {
					return err
				}

				if !conflict.HasMarkers(content) {
					fmt.Fprintln(out, " - "+ui.NoMarkers(file))
					continue
				}
				parsed := conflict.Parse(file, content)
				fmt.Fprintln(out, " - "+ui.FileSummary(parsed.Path, len(parsed.Conflicts)))
			}
			return nil
		},
	}
}

func newPickCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively choose unmerged files to resolve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			choice, err := conflict.ParseChoice(opts.keep)
			if err != nil {
				return err
			}

			repo := git.New(".")
			files, err := repo.GetConflictedFiles()
			if err != nil {
				return err
			}

			pending, clean, err := scanConflicts(files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, file := range clean {
				fmt.Fprintln(out, ui.NoMarkers(file))
			}

			if len(pending) == 0 {
				fmt.Fprintln(out, "No conflicted files.")
				return nil
			}

			selected, err := ui.SelectFiles(pending)
			if err != nil {
				return err
			}

			if len(selected) == 0 {
				fmt.Fprintln(out, ui.Muted("No files selected."))
				return nil
			}

			for _, file := range selected {
				if err := conflict.ResolveFile(file, choice); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Success(file))
			}

			if opts.add {
				if err := repo.AddFiles(selected); err != nil {
					return err
				}
				fmt.Fprintf(out, "Added %d files to staging.\n", len(selected))
			}
			return nil
		},
	}
}
