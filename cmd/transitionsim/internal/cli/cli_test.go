package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	drifterrors "github.com/go-drift/transition/pkg/errors"
	"github.com/go-drift/transition/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prevLogger := logger.Default()
	prevHandler := drifterrors.SetHandler(nil)
	drifterrors.SetHandler(prevHandler)
	t.Cleanup(func() {
		logger.ReplaceDefault(prevLogger)
		drifterrors.SetHandler(prevHandler)
		resetFlags()
	})

	resetFlags()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default, since cobra keeps flag
// state between executions.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCommand(t *testing.T) {
	path := writeFile(t, "toggle.yaml", `
name: toggle
controller:
  animation: fade
  duration: 32ms
steps:
  - into: true
  - advance: 32ms
`)
	out, err := execute(t, "run", "--frame", "16ms", "--presets", writeFile(t, "p.yaml", "presets: {}\n"), path)
	require.NoError(t, err)

	assert.Contains(t, out, "toggle (32ms)")
	assert.Contains(t, out, "exited -> entering")
	assert.Contains(t, out, "start entering for 32ms")
	assert.Contains(t, out, "entering -> entered")
	assert.Contains(t, out, "final: -=entered")
}

func TestRunCommand_Group(t *testing.T) {
	path := writeFile(t, "list.yaml", `
group:
  duration: 0
  children: [a, b]
steps:
  - children: [a]
`)
	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario (0s)")
	assert.Contains(t, out, "removed")
	assert.Contains(t, out, "final: a=entered")
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario")

	_, err = execute(t, "run", "--presets", filepath.Join(t.TempDir(), "nope.yaml"), writeFile(t, "s.yaml", "controller: {}\nsteps: []\n"))
	assert.ErrorContains(t, err, "failed to read")

	_, err = execute(t, "run", "--frame", "0s", writeFile(t, "s.yaml", "controller: {}\nsteps: []\n"))
	assert.ErrorContains(t, err, "--frame must be positive")
}

func TestPresetsCommand(t *testing.T) {
	path := writeFile(t, "presets.yaml", `
presets:
  quick:
    animation: slide
    duration: 120ms
    unmount_on_exit: true
  bare: {}
groups:
  menu:
    component: ul
    appear: true
`)
	out, err := execute(t, "presets", "--presets", path)
	require.NoError(t, err)

	assert.Contains(t, out, "bare")
	assert.Contains(t, out, "fade 500ms")
	assert.Contains(t, out, "slide 120ms unmount-on-exit")
	assert.Contains(t, out, "group:menu")
	assert.Contains(t, out, "<ul> fade 500ms appear")
	assert.Less(t, bytes.Index([]byte(out), []byte("bare")), bytes.Index([]byte(out), []byte("quick")))
}

func TestPresetsCommand_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "no presets defined")
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "transitionsim 1.2.3")
	assert.Contains(t, out, "commit: abc123")
}
