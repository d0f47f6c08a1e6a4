package cmd

import (
	"fmt"

	"github.com/corpeningc/cgit-resolve/internal/conflict"
	"github.com/corpeningc/cgit-resolve/internal/git"
	"github.com/corpeningc/cgit-resolve/internal/ui"
	"github.com/spf13/cobra"
)

// DefaultTarget is resolved when no --file is given.
const DefaultTarget = "conflict.txt"

type options struct {
	file   string
	keep   string
	stdout bool
	add    bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cgit-resolve",
		Short: "Strip merge conflict markers by keeping one side",
		Long: "Rewrites a file in place, keeping ordinary lines and one side of every\n" +
			"<<<<<<< / ======= / >>>>>>> conflict region and dropping the markers.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.keep, "keep", "k", "ours", "side to keep: ours, theirs or both")
	rootCmd.PersistentFlags().BoolVar(&opts.add, "add", false, "stage resolved files with git add")
	rootCmd.Flags().StringVarP(&opts.file, "file", "f", DefaultTarget, "file to resolve")
	rootCmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the resolved content instead of rewriting the file")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPickCmd(opts))

	return rootCmd
}

func runResolve(cmd *cobra.Command, opts *options) error {
	choice, err := conflict.ParseChoice(opts.keep)
	if err != nil {
		return err
	}

	if opts.stdout {
		content, err := readFile(opts.file)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(conflict.Resolve(content, choice))
		return err
	}

	if err := conflict.ResolveFile(opts.file, choice); err != nil {
		return err
	}

	if opts.add {
		if err := git.New(".").AddFiles([]string{opts.file}); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(opts.file))
	return nil
}
