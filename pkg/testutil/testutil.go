// Package testutil holds helpers shared by stencil's tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/paths"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// WriteProjectManifest writes m as package.json into dir and returns its path
func WriteProjectManifest(t *testing.T, dir string, m manifest.Manifest) string {
	t.Helper()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		t.Fatalf("Failed to encode manifest: %v", err)
	}
	return CreateFile(t, dir, paths.ManifestFileName, string(data))
}

// IsolateEnvironment points every stencil directory at a fresh temp dir so
// tests never read the developer's own config or write to their log file.
// It returns the directory used as the project root.
func IsolateEnvironment(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv(paths.EnvStencilConfigDir, filepath.Join(root, "config"))
	t.Setenv(paths.EnvStencilStateDir, filepath.Join(root, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg-config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "xdg-state"))
	t.Setenv(paths.EnvProjectRoot, "")
	for _, key := range []string{
		"STENCIL_SELF_NAME", "STENCIL_TEMPLATE_DIR", "STENCIL_TEMPLATE_TARGET",
		"STENCIL_TEMPLATE_OVERRIDE_DIR", "STENCIL_PROMPT_SELECT", "STENCIL_OUTPUT_FORMAT",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	project := filepath.Join(root, "project")
	if err := os.MkdirAll(project, 0755); err != nil {
		t.Fatalf("Failed to create project dir: %v", err)
	}
	return project
}
