package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirjump/internal/config"
	"dirjump/internal/discovery"
	"dirjump/internal/domain"
	"dirjump/internal/fuzzy"
	"dirjump/internal/ui"
	"dirjump/internal/ui/logic"
	"dirjump/internal/ui/services/search"
)

func TestShellInitBash(t *testing.T) {
	script := shellInit("bash", "dj", "/usr/local/bin/dirjump")

	assert.True(t, strings.HasPrefix(script, "dj() {"))
	assert.Contains(t, script, `dir=$('/usr/local/bin/dirjump' "$@" 2>&1 >/dev/tty)`)
	assert.Contains(t, script, `cd -- "$dir"`)
}

func TestShellInitFish(t *testing.T) {
	script := shellInit("fish", "jump", "/opt/it's/dirjump")

	assert.True(t, strings.HasPrefix(script, "function jump\n"))
	assert.Contains(t, script, `'/opt/it\'s/dirjump' $argv 2>&1 >/dev/tty`)
	assert.True(t, strings.HasSuffix(script, "end\n"))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, q("plain"))
	assert.Equal(t, `'it'"'"'s'`, q("it's"))
}

func TestInitCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", "zsh", "--name", "j"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "j() {"))

	cmd = newRootCmd()
	cmd.SetArgs([]string{"init", "powershell"})
	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "dirjump "))
	assert.Equal(t, "1.2.3", effectiveVersion("1.2.3"))
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("scorer = ["), 0644))

	err := run(&options{configPath: path}, t.TempDir())
	var cfgErr *domain.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestRunRejectsMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	err := run(&options{configPath: path}, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFinishWithoutOutcome(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))

	err := finish(newIdleModel(t), errors.New("no tty"), logger)
	var termErr *domain.TerminalError
	require.True(t, errors.As(err, &termErr))
	assert.Equal(t, "run", termErr.Op)

	assert.ErrorIs(t, finish(newIdleModel(t), nil, logger), errCancelled)
}

func newIdleModel(t *testing.T) *ui.Model {
	t.Helper()
	cfg := config.DefaultConfig()
	machine := logic.NewMachine(discovery.NewFSLister(true), search.NewService(fuzzy.SubsequenceScorer{}), nil)
	initial, err := machine.Start(t.TempDir())
	require.NoError(t, err)
	return ui.NewModel(cfg, machine, initial, ui.NewEmitter(&bytes.Buffer{}), logrus.New())
}
