// Package ui provides a unified interface for rendering stencil output in
// different formats. It supports terminal (rich), text (plain), and JSON.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/arthur-debert/stencil/pkg/ui/json"
	"github.com/arthur-debert/stencil/pkg/ui/terminal"
	"github.com/arthur-debert/stencil/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderReport renders a mismatch report without a decision
	RenderReport(report reconcile.Report) error

	// RenderDecision renders the outcome of a reconciliation
	RenderDecision(decision reconcile.Decision) error

	// RenderManifest renders a dependency manifest
	RenderManifest(m manifest.Manifest) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format, resolving FormatAuto against output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
