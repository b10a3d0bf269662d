// Package git drives the git clone subprocess and reports structured
// outcomes. A clone is a single invocation with a single outcome; no
// retries are performed.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/NicabarNimble/go-gitgrab/internal/urlutils"
	"github.com/NicabarNimble/go-gitgrab/internal/workspace"
)

// CloneRequest contains everything needed to run one clone.
type CloneRequest struct {
	Repo          urlutils.RepositoryReference
	Placement     workspace.Placement
	ConfirmedPath string // target path after the human-in-the-loop edit step
	Progress      io.Writer // optional: formatted git progress lines
}

// CloneOutcome is the result of one clone attempt. Failures are reported
// here as values, never as errors across this package's API.
type CloneOutcome struct {
	Succeeded  bool
	Message    string
	TargetPath string
}

// runGitClone is a variable so it can be mocked in tests
var runGitClone = defaultRunGitClone

// Clone invokes git clone for the request and blocks until the
// subprocess exits or ctx is cancelled. When the placement merges into
// the workspace root and the confirmed path was not edited, git clones
// into the current directory; in every other case git creates a new
// named folder under the confirmed path's parent. The two invocation
// shapes differ because git treats "clone into existing empty
// directory" and "clone creating a directory" differently.
func Clone(ctx context.Context, req CloneRequest) CloneOutcome {
	mergeIntoRoot := req.Placement.Mode == workspace.ModeMergeIntoRoot &&
		req.ConfirmedPath == req.Placement.TargetPath

	var dir, target string
	if mergeIntoRoot {
		dir = req.ConfirmedPath
		target = "."
	} else {
		dir = filepath.Dir(req.ConfirmedPath)
		target = filepath.Base(req.ConfirmedPath)
	}

	stderr, err := runGitClone(ctx, dir, req.Repo.NormalizedURL, target, req.Progress)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The subprocess never ran.
			return CloneOutcome{
				Succeeded:  false,
				Message:    fmt.Sprintf("Failed to start git: %v", err),
				TargetPath: req.ConfirmedPath,
			}
		}
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = "Unknown error"
		}
		return CloneOutcome{
			Succeeded:  false,
			Message:    fmt.Sprintf("Clone failed: %s", detail),
			TargetPath: req.ConfirmedPath,
		}
	}

	message := fmt.Sprintf("Cloned %s into new folder %s", req.Repo.Name, req.ConfirmedPath)
	if mergeIntoRoot {
		message = fmt.Sprintf("Cloned %s into the workspace root %s", req.Repo.Name, req.ConfirmedPath)
	}
	return CloneOutcome{
		Succeeded:  true,
		Message:    message,
		TargetPath: req.ConfirmedPath,
	}
}

// defaultRunGitClone runs git clone in dir, returning captured stderr.
// Stdout is drained and discarded so the subprocess never blocks on a
// full pipe. Stderr is buffered for the failure message and, when a
// progress writer is supplied, also streamed through it.
func defaultRunGitClone(ctx context.Context, dir, url, target string, progress io.Writer) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "clone", url, target)
	cmd.Dir = dir
	cmd.Stdout = io.Discard

	var stderr bytes.Buffer
	if progress != nil {
		cmd.Stderr = io.MultiWriter(&stderr, newProgressWriter("   ", progress))
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	return stderr.String(), err
}
