package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/NicabarNimble/go-gitgrab/internal/config"
	"github.com/NicabarNimble/go-gitgrab/internal/workspace"
)

// promptDecision is the outcome of the human-in-the-loop confirmation
// step: whether to proceed, and with which (possibly edited) target
// path.
type promptDecision struct {
	confirmedPath string
	accepted      bool
}

// decideFromInput interprets one line of user input against a placement.
// Empty input or y/yes accepts the suggested path, n/no/s/skip declines,
// and any other text is taken as an edited target path.
func decideFromInput(placement workspace.Placement, line string) promptDecision {
	answer := strings.TrimSpace(line)
	switch strings.ToLower(answer) {
	case "", "y", "yes":
		return promptDecision{confirmedPath: placement.TargetPath, accepted: true}
	case "n", "no", "s", "skip":
		return promptDecision{accepted: false}
	default:
		return promptDecision{confirmedPath: answer, accepted: true}
	}
}

// promptConfirm surfaces the placement's prompt message and reads the
// user's decision. EOF with no input declines.
func promptConfirm(in *bufio.Reader, out io.Writer, placement workspace.Placement) promptDecision {
	fmt.Fprintln(out, placement.PromptMessage)
	fmt.Fprint(out, "Press Enter to accept, type another path, or 'n' to skip: ")

	line, err := in.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return promptDecision{accepted: false}
	}
	return decideFromInput(placement, line)
}

// newInspector builds a workspace inspector with the default markers
// extended by any configured extras.
func newInspector(cfg config.Config) *workspace.Inspector {
	inspector := workspace.NewInspector()
	inspector.MarkerFiles = append(inspector.MarkerFiles, cfg.MarkerFiles...)
	inspector.MarkerDirs = append(inspector.MarkerDirs, cfg.MarkerDirs...)
	return inspector
}
