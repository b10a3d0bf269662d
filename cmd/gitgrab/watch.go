package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NicabarNimble/go-gitgrab/internal/config"
	"github.com/NicabarNimble/go-gitgrab/internal/git"
	"github.com/NicabarNimble/go-gitgrab/internal/instance"
	"github.com/NicabarNimble/go-gitgrab/internal/logging"
	"github.com/NicabarNimble/go-gitgrab/internal/urlutils"
	"github.com/NicabarNimble/go-gitgrab/internal/watcher"
	"github.com/NicabarNimble/go-gitgrab/internal/workspace"
)

const logFileName = "gitgrab.log"

func newWatchCmd() *cobra.Command {
	var (
		interval time.Duration
		root     string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the clipboard and offer to clone detected repository URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, interval, root)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Clipboard poll interval (default from config, 1s)")
	cmd.Flags().StringVar(&root, "root", "", "Workspace root to place clones under (default: current directory)")

	return cmd
}

// detection is one watcher notification delivered to the interactive
// loop.
type detection struct {
	repo     urlutils.RepositoryReference
	detected bool
}

func runWatch(cmd *cobra.Command, interval time.Duration, root string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}
	if interval <= 0 {
		interval = cfg.Interval()
	}
	root = resolveRoot(root, cfg)

	stateDir, err := config.StateDir()
	if err != nil {
		return err
	}

	fl, err := instance.Lock(stateDir)
	if err != nil {
		return err
	}
	defer instance.Unlock(fl)

	logger, err := logging.New(logging.Config{
		FilePath:   filepath.Join(stateDir, logFileName),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	resolver := workspace.NewResolver(newInspector(cfg))

	// Callbacks run on the watcher's tick goroutine; hand off to the
	// interactive loop through a channel and drop notifications while
	// the loop is busy prompting.
	events := make(chan detection, 16)
	w := watcher.New(interval, nil, watcher.Callbacks{
		OnRepositoryDetected: func(repo urlutils.RepositoryReference) {
			select {
			case events <- detection{repo: repo, detected: true}:
			default:
			}
		},
		OnNoRepository: func() {
			select {
			case events <- detection{}:
			default:
			}
		},
	})

	ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	out := cmd.OutOrStdout()
	stdin := bufio.NewReader(cmd.InOrStdin())

	color.Cyan("Watching the clipboard every %s. Copy a git URL to begin; Ctrl+C to quit.", interval)
	logger.Info("watch started",
		zap.Duration("interval", interval),
		zap.String("root", root))

	w.Start()
	defer w.Stop()

	// Detection fires on every poll tick while a URL sits in the
	// clipboard; offer each URL once until it leaves the clipboard.
	lastOffered := ""
	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			fmt.Fprintln(out)
			return nil
		case ev := <-events:
			if !ev.detected {
				lastOffered = ""
				continue
			}
			if ev.repo.NormalizedURL == lastOffered {
				continue
			}
			lastOffered = ev.repo.NormalizedURL
			offerClone(ctx, out, stdin, logger, resolver, root, ev.repo)
		}
	}
}

func offerClone(
	ctx context.Context,
	out io.Writer,
	stdin *bufio.Reader,
	logger *zap.Logger,
	resolver *workspace.Resolver,
	root string,
	repo urlutils.RepositoryReference,
) {
	logger.Info("repository detected",
		zap.String("url", repo.NormalizedURL),
		zap.String("name", repo.Name))
	color.Green("\nDetected repository: %s", repo.NormalizedURL)

	placement := resolver.Resolve(repo, root)
	logger.Info("placement resolved",
		zap.String("target", placement.TargetPath),
		zap.String("mode", placement.Mode.String()))

	decision := promptConfirm(stdin, out, placement)
	if !decision.accepted {
		logger.Info("clone skipped", zap.String("url", repo.NormalizedURL))
		fmt.Fprintln(out, "Skipped.")
		return
	}

	color.Cyan("Cloning %s ...", repo.NormalizedURL)
	outcome := git.Clone(ctx, git.CloneRequest{
		Repo:          repo,
		Placement:     placement,
		ConfirmedPath: decision.confirmedPath,
		Progress:      out,
	})
	if !outcome.Succeeded {
		logger.Warn("clone failed", zap.String("message", outcome.Message))
		color.Red("%s", outcome.Message)
		return
	}

	logger.Info("clone succeeded", zap.String("target", outcome.TargetPath))
	color.Green("%s", outcome.Message)
}
