// Package terminal renders stencil output for interactive terminals. Reports
// are laid out as markdown tables and rendered with glamour; summary lines
// use the semantic styles from pkg/ui/styles.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/arthur-debert/stencil/pkg/ui/hints"
	"github.com/arthur-debert/stencil/pkg/ui/styles"
	"github.com/charmbracelet/glamour"
)

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer

	Style string // glamour style: "dark", "light", "notty", "auto", or a path
	Width int    // word wrap width, 0 keeps glamour's default
}

// New creates a terminal renderer with automatic style detection
func New(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
		Style:  "auto",
	}
}

// RenderReport renders the mismatch report as a table
func (r *Renderer) RenderReport(report reconcile.Report) error {
	if report.Len() == 0 {
		return r.println(styles.Render("Success", MsgInSync))
	}

	header := fmt.Sprintf(MsgMismatchCount, report.Len())
	if err := r.println(styles.Render("Header", header)); err != nil {
		return err
	}
	_, err := io.WriteString(r.output, r.markdown(reportTable(report)))
	return err
}

// RenderDecision renders the outcome of a reconciliation
func (r *Renderer) RenderDecision(decision reconcile.Decision) error {
	switch {
	case decision.MismatchedModules.Len() == 0:
		return r.println(styles.Render("Success", MsgInSync))
	case !decision.ShouldFix:
		return r.println(styles.Render("Warning",
			fmt.Sprintf(MsgSkipped, decision.MismatchedModules.Len())))
	}

	if err := r.RenderReport(decision.MismatchedModules); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(MsgRunCommands + "\n\n```sh\n")
	for _, cmd := range hints.InstallCommands(decision.MismatchedModules) {
		b.WriteString(cmd + "\n")
	}
	b.WriteString("```\n")
	_, err := io.WriteString(r.output, r.markdown(b.String()))
	return err
}

// RenderManifest renders both collections of m as tables
func (r *Renderer) RenderManifest(m manifest.Manifest) error {
	m = manifest.Normalize(m)

	var b strings.Builder
	for _, collection := range manifest.Collections() {
		fmt.Fprintf(&b, "## %s\n\n", collection)
		names := m.Names(collection)
		if len(names) == 0 {
			b.WriteString("_none_\n\n")
			continue
		}
		b.WriteString("| Dependency | Version |\n|---|---|\n")
		for _, name := range names {
			fmt.Fprintf(&b, "| %s | %s |\n", escape(name), escape(m.Get(collection)[name]))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, r.markdown(b.String()))
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	return r.println(styles.Render("Error", "Error: "+err.Error()))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// markdown renders content with glamour, falling back to the raw markdown
func (r *Renderer) markdown(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

func reportTable(report reconcile.Report) string {
	var b strings.Builder
	b.WriteString("| Dependency | Collection | Project | Required |\n|---|---|---|---|\n")
	for _, name := range report.Names() {
		entry := report[name]
		project := escape(entry.Project)
		if entry.IsMissing() {
			project = "_" + project + "_"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escape(name), entry.Type, project, escape(entry.Required))
	}
	return b.String()
}

// escape keeps version ranges such as "^1 || ^2" from breaking table cells
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
