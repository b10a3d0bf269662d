package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NicabarNimble/go-gitgrab/internal/config"
	"github.com/NicabarNimble/go-gitgrab/internal/workspace"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["watch"])
	assert.True(t, names["clone"])
}

func TestCloneCommandArgValidation(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"clone"})

	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestCloneCommandRejectsNonRepositoryURL(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"clone", "not a url", "--yes"})

	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a git repository URL")
}

func TestDecideFromInput(t *testing.T) {
	placement := workspace.Placement{TargetPath: "/work/repo"}

	tests := []struct {
		name     string
		line     string
		accepted bool
		path     string
	}{
		{"empty accepts suggestion", "\n", true, "/work/repo"},
		{"y accepts suggestion", "y\n", true, "/work/repo"},
		{"yes accepts suggestion", "YES\n", true, "/work/repo"},
		{"n declines", "n\n", false, ""},
		{"no declines", "no\n", false, ""},
		{"skip declines", "skip\n", false, ""},
		{"other text edits path", "/elsewhere/repo\n", true, "/elsewhere/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := decideFromInput(placement, tt.line)
			assert.Equal(t, tt.accepted, decision.accepted)
			assert.Equal(t, tt.path, decision.confirmedPath)
		})
	}
}

func TestPromptConfirmShowsMessage(t *testing.T) {
	placement := workspace.Placement{
		TargetPath:    "/work/repo",
		Mode:          workspace.ModeNewSubfolder,
		PromptMessage: "Clone repo into the new subfolder /work/repo?",
	}

	var out bytes.Buffer
	decision := promptConfirm(bufio.NewReader(strings.NewReader("\n")), &out, placement)

	assert.True(t, decision.accepted)
	assert.Equal(t, "/work/repo", decision.confirmedPath)
	assert.Contains(t, out.String(), placement.PromptMessage)
}

func TestPromptConfirmEOFDeclines(t *testing.T) {
	placement := workspace.Placement{TargetPath: "/work/repo"}

	var out bytes.Buffer
	decision := promptConfirm(bufio.NewReader(strings.NewReader("")), &out, placement)

	assert.False(t, decision.accepted)
}

func TestResolveRootPrecedence(t *testing.T) {
	cfg := config.Default()
	cfg.CloneRoot = "/from/config"

	assert.Equal(t, "/from/flag", resolveRoot("/from/flag", cfg))
	assert.Equal(t, "/from/config", resolveRoot("", cfg))

	cfg.CloneRoot = ""
	got := resolveRoot("", cfg)
	assert.NotEmpty(t, got) // falls back to the current directory
}

func TestInspectorPicksUpConfiguredMarkers(t *testing.T) {
	cfg := config.Default()
	cfg.MarkerFiles = []string{"justfile"}
	cfg.MarkerDirs = []string{"contrib"}

	inspector := newInspector(cfg)

	assert.Contains(t, inspector.MarkerFiles, "justfile")
	assert.Contains(t, inspector.MarkerFiles, "package.json")
	assert.Contains(t, inspector.MarkerDirs, "contrib")
	assert.Contains(t, inspector.MarkerDirs, ".git")
}
