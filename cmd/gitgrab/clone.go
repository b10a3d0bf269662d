package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/NicabarNimble/go-gitgrab/internal/config"
	"github.com/NicabarNimble/go-gitgrab/internal/git"
	"github.com/NicabarNimble/go-gitgrab/internal/urlutils"
	"github.com/NicabarNimble/go-gitgrab/internal/workspace"
)

func newCloneCmd() *cobra.Command {
	var (
		root string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "clone [repository-url]",
		Short: "Clone a repository URL with conflict-avoiding placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClone(cmd, args[0], root, yes)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Workspace root to place the clone under (default: current directory)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept the suggested placement without prompting")

	return cmd
}

func runClone(cmd *cobra.Command, rawURL, root string, yes bool) error {
	repo, ok := urlutils.Parse(rawURL)
	if !ok {
		return fmt.Errorf("%q does not look like a git repository URL", rawURL)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}
	root = resolveRoot(root, cfg)

	resolver := workspace.NewResolver(newInspector(cfg))
	placement := resolver.Resolve(repo, root)

	confirmed := placement.TargetPath
	if !yes {
		decision := promptConfirm(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), placement)
		if !decision.accepted {
			fmt.Fprintln(cmd.OutOrStdout(), "Clone cancelled.")
			return nil
		}
		confirmed = decision.confirmedPath
	}

	ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	color.Cyan("Cloning %s ...", repo.NormalizedURL)
	outcome := git.Clone(ctx, git.CloneRequest{
		Repo:          repo,
		Placement:     placement,
		ConfirmedPath: confirmed,
		Progress:      cmd.OutOrStdout(),
	})
	if !outcome.Succeeded {
		color.Red("%s", outcome.Message)
		return fmt.Errorf("clone did not complete")
	}

	color.Green("%s", outcome.Message)
	return nil
}

// resolveRoot picks the workspace root: flag, then config, then the
// current directory. An empty result means "no workspace", which places
// clones under the home directory.
func resolveRoot(flagRoot string, cfg config.Config) string {
	if flagRoot != "" {
		return flagRoot
	}
	if cfg.CloneRoot != "" {
		return cfg.CloneRoot
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return cwd
}
