// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defenseunicorns/jsv"
	"github.com/defenseunicorns/jsv/cmd"
)

func TestE2E(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("..", "testdata"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "true")
			env.Setenv("HOME", filepath.Join(env.WorkDir, "home"))
			return nil
		},
		RequireUniqueNames: true,
		// UpdateScripts:      true,
	})
}

func executeRoot(t *testing.T, args ...string) error {
	t.Helper()

	root := cmd.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(""))

	ctx := log.WithContext(t.Context(), log.New(io.Discard))
	return root.ExecuteContext(ctx)
}

func TestRootCmdFlagErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := executeRoot(t, "--mode", "sideways")
	require.ErrorContains(t, err, "invalid mode: sideways")

	err = executeRoot(t, "--full", "--mode", "overview")
	require.ErrorContains(t, err, "cannot combine --full with --mode overview")

	err = executeRoot(t, "--log-level", "nope", "some-path.json")
	require.Error(t, err)
}

func TestRootCmdMissingSchemaDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	err := executeRoot(t)
	require.ErrorIs(t, err, jsv.ErrNoSchemaDir)
}

func TestParseExitCode(t *testing.T) {
	assert.Equal(t, 0, cmd.ParseExitCode(nil))
	assert.Equal(t, 1, cmd.ParseExitCode(assert.AnError))
}
