package text

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() reconcile.Report {
	return reconcile.Report{
		"react": {Required: "^16.0.0", Project: "15.0.0", Type: manifest.Dependencies},
		"jest":  {Required: "^21.0.0", Project: reconcile.MissingMarker, Type: manifest.DevDependencies},
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderReport(sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "2 dependencies differ from the project template:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "DEPENDENCY"))
	assert.Equal(t, []string{"jest", "devDependencies", "missing", "^21.0.0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"react", "dependencies", "15.0.0", "^16.0.0"}, strings.Fields(lines[3]))
}

func TestRenderReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderReport(reconcile.Report{}))
	assert.Equal(t, MsgInSync+"\n", buf.String())
}

func TestRenderDecision(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf).RenderDecision(reconcile.Decision{ShouldFix: true, MismatchedModules: sampleReport()}))
		out := buf.String()
		assert.Contains(t, out, MsgRunCommands)
		assert.Contains(t, out, `npm install --save react@"^16.0.0"`)
		assert.Contains(t, out, `npm install --save-dev jest@"^21.0.0"`)
	})

	t.Run("declined", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf).RenderDecision(reconcile.Decision{ShouldFix: false, MismatchedModules: sampleReport()}))
		assert.Equal(t, "Update skipped; 2 dependencies still differ from the project template.\n", buf.String())
	})

	t.Run("in sync", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf).RenderDecision(reconcile.NoAction()))
		assert.Equal(t, MsgInSync+"\n", buf.String())
	})
}

func TestRenderManifest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderManifest(manifest.Manifest{
		Dependencies: map[string]string{"react": "^16.0.0"},
	}))
	out := buf.String()
	assert.Contains(t, out, "dependencies:\n")
	assert.Contains(t, out, "devDependencies:\n")
	assert.Contains(t, out, "react")
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	require.NoError(t, r.RenderError(stderrors.New("boom")))
	require.NoError(t, r.RenderMessage("done"))
	assert.Equal(t, "Error: boom\ndone\n", buf.String())
}
