package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passwiz/passwiz-go/internal/clipboard"
	"github.com/passwiz/passwiz-go/internal/config"
	"github.com/passwiz/passwiz-go/internal/controller"
	"github.com/passwiz/passwiz-go/internal/generator"
)

func testConfig() config.Config {
	return config.Config{
		Port:          "0",
		DefaultLength: 8,
		SecureRandom:  true,
	}
}

func execute(t *testing.T, o *rootOptions, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := o.command()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate_Defaults(t *testing.T) {
	out, _, err := execute(t, newRootOptions(testConfig()), "generate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 8)
	for _, c := range lines[0] {
		assert.Contains(t, generator.Letters(), string(c))
	}
}

func TestGenerate_FlagsAndCount(t *testing.T) {
	out, _, err := execute(t, newRootOptions(testConfig()), "generate", "-l", "6", "-n", "-s", "-c", "3", "--insecure-random")
	require.NoError(t, err)

	alphabet := generator.BuildAlphabet(true, true)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 6)
		for _, c := range line {
			assert.Contains(t, alphabet, string(c))
		}
	}
}

func TestGenerate_LengthIsClamped(t *testing.T) {
	out, _, err := execute(t, newRootOptions(testConfig()), "generate", "--length", "99")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), controller.MaxLength)
}

func TestGenerate_InvalidCount(t *testing.T) {
	_, _, err := execute(t, newRootOptions(testConfig()), "generate", "-c", "0")
	assert.Error(t, err)
}

func TestGenerate_Copy(t *testing.T) {
	cb := clipboard.NewMemory()
	o := newRootOptions(testConfig())
	o.newClipboard = func() clipboard.Clipboard { return cb }

	out, _, err := execute(t, o, "generate", "-c", "2", "--copy")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[1], cb.Text())
	assert.Equal(t, 1, cb.Writes())
}

func TestGenerate_CopyFailureIsNotAnError(t *testing.T) {
	cb := clipboard.NewMemory()
	cb.FailWith(clipboard.ErrUnavailable)
	o := newRootOptions(testConfig())
	o.newClipboard = func() clipboard.Clipboard { return cb }

	out, stderr, err := execute(t, o, "generate", "--copy")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.Contains(t, stderr, "copy to clipboard failed")
}

func TestRoot_StartsTUIWithConfiguredDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLength = 14
	cfg.DefaultNumbers = true

	var got *controller.Controller
	o := newRootOptions(cfg)
	o.runTUI = func(c *controller.Controller) error {
		got = c
		return nil
	}

	_, _, err := execute(t, o, "--no-clipboard")
	require.NoError(t, err)
	require.NotNil(t, got)

	state := got.State()
	assert.Equal(t, controller.Configuration{Length: 14, IncludeDigits: true}, state.Configuration)
	assert.Equal(t, 1, state.Generation)
	assert.Len(t, state.Password, 14)
}

func TestTUICommand(t *testing.T) {
	var called bool
	o := newRootOptions(testConfig())
	o.runTUI = func(*controller.Controller) error {
		called = true
		return nil
	}

	_, _, err := execute(t, o, "tui")
	require.NoError(t, err)
	assert.True(t, called)
}
