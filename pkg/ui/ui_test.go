package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/arthur-debert/stencil/pkg/ui"
	"github.com/arthur-debert/stencil/pkg/ui/json"
	"github.com/arthur-debert/stencil/pkg/ui/terminal"
	"github.com/arthur-debert/stencil/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name   string
		format ui.Format
		check  func(t *testing.T, r ui.Renderer)
	}{
		{"auto on a buffer is text", ui.FormatAuto, func(t *testing.T, r ui.Renderer) {
			assert.IsType(t, &text.Renderer{}, r)
		}},
		{"terminal", ui.FormatTerminal, func(t *testing.T, r ui.Renderer) {
			assert.IsType(t, &terminal.Renderer{}, r)
		}},
		{"text", ui.FormatText, func(t *testing.T, r ui.Renderer) {
			assert.IsType(t, &text.Renderer{}, r)
		}},
		{"json", ui.FormatJSON, func(t *testing.T, r ui.Renderer) {
			assert.IsType(t, &json.Renderer{}, r)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestNewRenderer_Unknown(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRenderersShareInterface(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatText, ui.FormatJSON} {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(f, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderDecision(reconcile.NoAction()))
		assert.NotEmpty(t, buf.String(), f.String())
	}
}
