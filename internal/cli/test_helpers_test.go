package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rwx-cloud/justify/internal/cli"
	"github.com/rwx-cloud/justify/internal/config"
	"github.com/rwx-cloud/justify/internal/logging"
	"github.com/rwx-cloud/justify/internal/preferences"
	"github.com/stretchr/testify/require"
)

// testSetup contains common test setup data
type testSetup struct {
	config      cli.Config
	service     cli.Service
	preferences *preferences.Store
	mockStdin   *strings.Reader
	mockStdout  *strings.Builder
	mockStderr  *strings.Builder
	tmp         string
}

// setupTest builds a service around in-memory preferences and buffers
func setupTest(t *testing.T) *testSetup {
	return setupTestWithStdin(t, "")
}

func setupTestWithStdin(t *testing.T, stdin string) *testSetup {
	t.Helper()

	setup := &testSetup{
		preferences: preferences.New(config.NewMemoryBackend()),
		mockStdin:   strings.NewReader(stdin),
		mockStdout:  &strings.Builder{},
		mockStderr:  &strings.Builder{},
		tmp:         t.TempDir(),
	}

	setup.config = cli.Config{
		Stdin:       setup.mockStdin,
		Stdout:      setup.mockStdout,
		Stderr:      setup.mockStderr,
		Logger:      logging.New(setup.mockStderr, true),
		Preferences: setup.preferences,
	}

	var err error
	setup.service, err = cli.NewService(setup.config)
	require.NoError(t, err)

	return setup
}

// writeFile creates a file in the test's temporary directory and returns its path
func (s *testSetup) writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(s.tmp, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
