package reconcile

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTemplate = `{
  "dependencies": {"stencil": "1.4.0", "react": "^16.0.0"},
  "devDependencies": {"jest": "^21.0.0"}
}`

func TestLoadTemplateManifest(t *testing.T) {
	r := &fakeRenderer{output: validTemplate}
	l := NewLoader(r)

	m, err := l.LoadTemplateManifest("1.4.0")
	require.NoError(t, err)

	assert.Equal(t, "package", r.lastDir)
	assert.Equal(t, "package.json", r.lastTarget)
	assert.Equal(t, map[string]string{"toolDependencySelfVersion": "1.4.0"}, r.lastVars)
	assert.Equal(t, "^16.0.0", m.Dependencies["react"])
	assert.Equal(t, "^21.0.0", m.DevDependencies["jest"])
}

func TestLoadTemplateManifest_RendersEveryCall(t *testing.T) {
	r := &fakeRenderer{output: validTemplate}
	l := NewLoader(r)

	_, err := l.LoadTemplateManifest("1.4.0")
	require.NoError(t, err)
	_, err = l.LoadTemplateManifest("1.5.0")
	require.NoError(t, err)

	assert.Equal(t, 2, r.calls)
	assert.Equal(t, "1.5.0", r.lastVars[SelfVersionVar])
}

func TestLoadTemplateManifest_WithTemplate(t *testing.T) {
	r := &fakeRenderer{output: validTemplate}

	_, err := NewLoader(r, WithTemplate("package-ts", "")).LoadTemplateManifest("1.0.0")
	require.NoError(t, err)

	assert.Equal(t, "package-ts", r.lastDir)
	assert.Equal(t, DefaultTemplateTarget, r.lastTarget)
}

func TestLoadTemplateManifest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		renderer Renderer
	}{
		{"renderer fails", &fakeRenderer{err: stderrors.New("template not found")}},
		{"output is not json", &fakeRenderer{output: "<html>"}},
		{"dependencies missing", &fakeRenderer{output: `{"devDependencies":{}}`}},
		{"devDependencies missing", &fakeRenderer{output: `{"dependencies":{}}`}},
		{"no renderer", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(tt.renderer).LoadTemplateManifest("1.0.0")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender), "got %v", err)
		})
	}
}
