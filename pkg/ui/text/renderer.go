// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/arthur-debert/stencil/pkg/ui/hints"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport renders one line per mismatched dependency
func (r *Renderer) RenderReport(report reconcile.Report) error {
	if report.Len() == 0 {
		_, err := fmt.Fprintln(r.output, MsgInSync)
		return err
	}

	if _, err := fmt.Fprintf(r.output, MsgMismatchCount, report.Len()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "DEPENDENCY\tCOLLECTION\tPROJECT\tREQUIRED"); err != nil {
		return err
	}
	for _, name := range report.Names() {
		entry := report[name]
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, entry.Type, entry.Project, entry.Required); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderDecision renders the outcome and, for approved fixes, the commands to run
func (r *Renderer) RenderDecision(decision reconcile.Decision) error {
	switch {
	case decision.MismatchedModules.Len() == 0:
		_, err := fmt.Fprintln(r.output, MsgInSync)
		return err
	case !decision.ShouldFix:
		_, err := fmt.Fprintf(r.output, MsgSkipped, decision.MismatchedModules.Len())
		return err
	}

	if err := r.RenderReport(decision.MismatchedModules); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, "\n"+MsgRunCommands); err != nil {
		return err
	}
	for _, cmd := range hints.InstallCommands(decision.MismatchedModules) {
		if _, err := fmt.Fprintf(r.output, "  %s\n", cmd); err != nil {
			return err
		}
	}
	return nil
}

// RenderManifest renders each collection as name/version lines
func (r *Renderer) RenderManifest(m manifest.Manifest) error {
	m = manifest.Normalize(m)
	for _, collection := range manifest.Collections() {
		if _, err := fmt.Fprintf(r.output, "%s:\n", collection); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
		for _, name := range m.Names(collection) {
			if _, err := fmt.Fprintf(tw, "  %s\t%s\n", name, m.Get(collection)[name]); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
