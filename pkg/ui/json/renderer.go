// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/arthur-debert/stencil/pkg/ui/hints"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

type decisionOutput struct {
	reconcile.Decision
	Commands []string `json:"commands,omitempty"`
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderReport renders the report as a name -> entry object
func (r *Renderer) RenderReport(report reconcile.Report) error {
	if report == nil {
		report = reconcile.Report{}
	}
	return r.encoder.Encode(report)
}

// RenderDecision renders the decision with the suggested fix commands
func (r *Renderer) RenderDecision(decision reconcile.Decision) error {
	if decision.MismatchedModules == nil {
		decision.MismatchedModules = reconcile.Report{}
	}
	out := decisionOutput{Decision: decision}
	if decision.ShouldFix {
		out.Commands = hints.InstallCommands(decision.MismatchedModules)
	}
	return r.encoder.Encode(out)
}

// RenderManifest renders both dependency collections
func (r *Renderer) RenderManifest(m manifest.Manifest) error {
	return r.encoder.Encode(manifest.Normalize(m))
}

// RenderError renders an error as JSON, including its code when it has one
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
