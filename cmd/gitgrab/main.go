// Package main implements gitgrab, a clipboard-driven git clone helper.
// It watches the clipboard for text that looks like a git repository
// URL and clones detected repositories with conflict-avoiding placement.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitgrab",
		Short: "Clipboard-driven git repository cloning",
		Long: `gitgrab recognizes git repository URLs and clones them without
clobbering existing work: an empty workspace is cloned into directly, a
workspace that already contains a project gets a fresh subfolder, and
with no workspace at all the clone lands under the home directory.

Example usage:
  gitgrab watch
  gitgrab clone https://github.com/owner/repo`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newWatchCmd(),
		newCloneCmd(),
	)

	return cmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
