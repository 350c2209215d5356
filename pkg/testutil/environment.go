package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// TestEnvironment is a temp directory tree standing in for the user's
// home, with the XDG variables pointing into it
type TestEnvironment struct {
	HomeDir    string
	ConfigHome string
	ConfigDirs string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment isolates the test from the real environment. Every
// FILEICONS_ variable is unset for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	env := &TestEnvironment{
		HomeDir:    home,
		ConfigHome: filepath.Join(home, ".config"),
		ConfigDirs: filepath.Join(home, "etc", "xdg"),
		StateHome:  filepath.Join(home, ".local", "state"),
		t:          t,
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", env.ConfigDirs)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "FILEICONS_") {
			continue
		}
		name := strings.SplitN(kv, "=", 2)[0]
		// Setenv registers the restore, Unsetenv removes it for the test
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return env
}

// WriteFile writes content to a path relative to HomeDir, creating parent
// directories, and returns the absolute path
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()

	path := filepath.Join(e.HomeDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// WriteUserConfig writes the user config file found through XDG_CONFIG_HOME.
// name is "config.toml", "config.yaml" or "config.yml".
func (e *TestEnvironment) WriteUserConfig(name, content string) string {
	e.t.Helper()

	rel, err := filepath.Rel(e.HomeDir, filepath.Join(e.ConfigHome, "fileicons", name))
	if err != nil {
		e.t.Fatalf("Failed to resolve config path: %v", err)
	}
	return e.WriteFile(rel, content)
}
