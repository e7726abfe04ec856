package integration_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type input struct {
	args  []string
	stdin string
	env   []string
}

type result struct {
	stdout   string
	stderr   string
	exitCode int
}

func justifyCmd(t *testing.T, input input) *exec.Cmd {
	const justifyPath = "../justify"
	if _, err := os.Stat(justifyPath); err != nil {
		t.Skipf("integration tests depend on a built justify binary at %s", justifyPath)
	}

	cmd := exec.Command(justifyPath, input.args...)
	cmd.Stdin = strings.NewReader(input.stdin)
	// Keep stored preferences out of the user's home directory
	cmd.Env = append([]string{"HOME=" + t.TempDir(), "PATH=" + os.Getenv("PATH")}, input.env...)

	t.Logf("Executing command: %s\n with env %s\n", cmd.String(), cmd.Env)

	return cmd
}

func runJustify(t *testing.T, input input) result {
	cmd := justifyCmd(t, input)
	var stdoutBuffer, stderrBuffer bytes.Buffer
	cmd.Stdout = &stdoutBuffer
	cmd.Stderr = &stderrBuffer

	err := cmd.Run()

	exitCode := 0

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "justify exited with an error that wasn't an ExitError")
		exitCode = exitErr.ExitCode()
	}

	return result{
		stdout:   stdoutBuffer.String(),
		stderr:   strings.TrimSuffix(stderrBuffer.String(), "\n"),
		exitCode: exitCode,
	}
}

func TestJustify(t *testing.T) {
	t.Run("justifies stdin", func(t *testing.T) {
		result := runJustify(t, input{
			args:  []string{"--width", "12"},
			stdin: "Lorem ipsum dolor sit amet\n",
		})

		require.Equal(t, 0, result.exitCode)
		require.Equal(t, "Lorem  ipsum\ndolor    sit\namet        \n", result.stdout)
	})

	t.Run("reads the width from the environment", func(t *testing.T) {
		result := runJustify(t, input{
			stdin: "test",
			env:   []string{"JUSTIFY_WIDTH=5"},
		})

		require.Equal(t, 0, result.exitCode)
		require.Equal(t, "test \n", result.stdout)
	})

	t.Run("justifies files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.txt")
		require.NoError(t, os.WriteFile(path, []byte("Lorem     ipsum    dolor"), 0o644))

		result := runJustify(t, input{args: []string{"-w", "17", path}})

		require.Equal(t, 0, result.exitCode)
		require.Equal(t, "Lorem ipsum dolor\n", result.stdout)
	})

	t.Run("outputs json", func(t *testing.T) {
		result := runJustify(t, input{
			args:  []string{"--width", "7", "--output", "json"},
			stdin: "aaa bbb c",
		})

		require.Equal(t, 0, result.exitCode)

		var decoded struct {
			Width   int `json:"width"`
			Results []struct {
				Lines []string `json:"lines"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.stdout), &decoded))
		require.Equal(t, 7, decoded.Width)
		require.Equal(t, []string{"aaa bbb", "c      "}, decoded.Results[0].Lines)
	})

	t.Run("errors when a word is too long", func(t *testing.T) {
		result := runJustify(t, input{
			args:  []string{"--width", "5"},
			stdin: "Loremipsumdolor",
		})

		require.Equal(t, 1, result.exitCode)
		require.Equal(t, "", result.stdout)
		require.Contains(t, result.stderr, "'Loremipsumdolor' length is more than 5")
		require.Contains(t, result.stderr, "Use --width 15 or more")
	})

	t.Run("errors on an unknown output format", func(t *testing.T) {
		result := runJustify(t, input{args: []string{"--output", "xml"}})

		require.Equal(t, 1, result.exitCode)
		require.Contains(t, result.stderr, "unknown output format")
	})
}

func TestJustifyConfig(t *testing.T) {
	t.Run("stores the default width", func(t *testing.T) {
		home := t.TempDir()
		env := []string{"HOME=" + home}

		set := runJustify(t, input{args: []string{"config", "set", "width", "6"}, env: env})
		require.Equal(t, 0, set.exitCode)
		require.Equal(t, "Default width set to 6\n", set.stdout)

		get := runJustify(t, input{args: []string{"config", "get", "width"}, env: env})
		require.Equal(t, "6\n", get.stdout)

		justified := runJustify(t, input{stdin: "ab cd", env: env})
		require.Equal(t, "ab  cd\n", justified.stdout)
	})

	t.Run("rejects unknown settings", func(t *testing.T) {
		result := runJustify(t, input{args: []string{"config", "get", "height"}})

		require.Equal(t, 1, result.exitCode)
		require.Contains(t, result.stderr, "unknown setting \"height\"")
	})
}
