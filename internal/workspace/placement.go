package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NicabarNimble/go-gitgrab/internal/urlutils"
)

// Mode describes how a clone target relates to the workspace.
type Mode int

const (
	// ModeNewInHome places the clone in a fresh folder under the home
	// directory; used when no workspace root is available.
	ModeNewInHome Mode = iota
	// ModeMergeIntoRoot clones directly into the workspace root; only
	// chosen when the root contains no project markers.
	ModeMergeIntoRoot
	// ModeNewSubfolder places the clone in a fresh subfolder of the
	// workspace root.
	ModeNewSubfolder
)

func (m Mode) String() string {
	switch m {
	case ModeNewInHome:
		return "new-in-home"
	case ModeMergeIntoRoot:
		return "merge-into-root"
	case ModeNewSubfolder:
		return "new-subfolder"
	default:
		return "unknown"
	}
}

// Placement is the decision of target filesystem path and
// merge-vs-isolate mode for a clone. PromptMessage describes the
// consequence of the mode and is surfaced verbatim by the confirmation
// step.
type Placement struct {
	TargetPath    string
	Mode          Mode
	PromptMessage string
}

// Resolver decides clone placements, consulting an Inspector for
// project-marker detection.
type Resolver struct {
	inspector *Inspector

	// Swappable for tests.
	homeDir    func() (string, error)
	pathExists func(string) bool
}

// NewResolver creates a Resolver around the given Inspector.
func NewResolver(inspector *Inspector) *Resolver {
	return &Resolver{
		inspector:  inspector,
		homeDir:    os.UserHomeDir,
		pathExists: pathExists,
	}
}

// Resolve decides where repo should be cloned. root is the workspace
// root, or empty when no workspace is open. The existence probe and the
// eventual clone are not atomic; a concurrent writer can race the
// decision, and git itself reports the collision if it loses.
func (r *Resolver) Resolve(repo urlutils.RepositoryReference, root string) Placement {
	if root == "" {
		home, err := r.homeDir()
		if err != nil {
			home = "."
		}
		target := filepath.Join(home, repo.Name)
		return Placement{
			TargetPath: target,
			Mode:       ModeNewInHome,
			PromptMessage: fmt.Sprintf(
				"No workspace is open. Clone %s into the new folder %s?",
				repo.Name, target),
		}
	}

	detection := r.inspector.Inspect(root)
	if detection.HasMarkers {
		target := r.availablePath(filepath.Join(root, repo.Name))
		return Placement{
			TargetPath: target,
			Mode:       ModeNewSubfolder,
			PromptMessage: fmt.Sprintf(
				"The current workspace already contains a project. Clone %s into the new subfolder %s?",
				repo.Name, target),
		}
	}

	return Placement{
		TargetPath: root,
		Mode:       ModeMergeIntoRoot,
		PromptMessage: fmt.Sprintf(
			"The current workspace looks empty. Clone %s directly into %s?",
			repo.Name, root),
	}
}

// availablePath returns base if it does not exist, otherwise the first
// of base-1, base-2, ... that does not exist.
func (r *Resolver) availablePath(base string) string {
	if !r.pathExists(base) {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !r.pathExists(candidate) {
			return candidate
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
