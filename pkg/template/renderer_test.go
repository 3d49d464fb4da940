package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedRenderer_PackageTemplate(t *testing.T) {
	r := NewEmbeddedRenderer()

	out, err := r.Render("package", "package.json", map[string]string{
		"toolDependencySelfVersion": "2.3.4",
	})
	require.NoError(t, err)

	var parsed struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "2.3.4", parsed.Dependencies["stencil"])
	assert.NotEmpty(t, parsed.DevDependencies)
}

func TestEmbeddedRenderer_EscapesVersion(t *testing.T) {
	versions := []string{`1.0.0"beta`, `C:\builds\stencil`, "dev\n"}

	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			out, err := NewEmbeddedRenderer().Render("package", "package.json", map[string]string{
				"toolDependencySelfVersion": v,
			})
			require.NoError(t, err)

			var parsed struct {
				Dependencies map[string]string `json:"dependencies"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &parsed), out)
			assert.Equal(t, v, parsed.Dependencies["stencil"])
		})
	}
}

func TestJSONFunc(t *testing.T) {
	fsys := fstest.MapFS{
		"pkg/out.json.tmpl": {Data: []byte(`{"v": {{ json .v }}}`)},
	}
	out, err := NewRenderer(fsys).Render("pkg", "out.json", map[string]string{"v": `a"b`})
	require.NoError(t, err)
	assert.Equal(t, `{"v": "a\"b"}`, out)
}

func TestEmbeddedRenderer_List(t *testing.T) {
	dirs, err := NewEmbeddedRenderer().List()
	require.NoError(t, err)
	assert.Contains(t, dirs, "package")
}

func TestRender(t *testing.T) {
	fsys := fstest.MapFS{
		"pkg/out.txt.tmpl":    {Data: []byte("version={{ .v }}")},
		"broken/out.txt.tmpl": {Data: []byte("{{ .v ")},
	}

	tests := []struct {
		name    string
		dir     string
		target  string
		vars    map[string]string
		want    string
		wantErr string
	}{
		{
			name:   "substitutes variables",
			dir:    "pkg",
			target: "out.txt",
			vars:   map[string]string{"v": "1.0.0"},
			want:   "version=1.0.0",
		},
		{
			name:    "missing variable is an error",
			dir:     "pkg",
			target:  "out.txt",
			vars:    map[string]string{},
			wantErr: "failed to execute template",
		},
		{
			name:    "missing template",
			dir:     "nope",
			target:  "out.txt",
			wantErr: "failed to read template nope/out.txt.tmpl",
		},
		{
			name:    "syntax error",
			dir:     "broken",
			target:  "out.txt",
			wantErr: "failed to parse template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderer(fsys).Render(tt.dir, tt.target, tt.vars)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirRenderer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "package"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "package", "package.json.tmpl"),
		[]byte(`{"dependencies":{"stencil":"{{ .toolDependencySelfVersion }}"},"devDependencies":{}}`),
		0644,
	))

	out, err := NewDirRenderer(dir).Render("package", "package.json", map[string]string{
		"toolDependencySelfVersion": "file:../stencil",
	})
	require.NoError(t, err)
	assert.Contains(t, out, `"stencil":"file:../stencil"`)
}
