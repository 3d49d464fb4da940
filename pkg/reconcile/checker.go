package reconcile

import (
	"context"

	"github.com/arthur-debert/stencil/pkg/logging"
	"github.com/arthur-debert/stencil/pkg/manifest"
)

// Checker is the entry point that reconciles a project against the
// template for one stencil version
type Checker struct {
	loader      *Loader
	detector    *Detector
	toolVersion string
}

// NewChecker creates a Checker for the given stencil version
func NewChecker(loader *Loader, detector *Detector, toolVersion string) *Checker {
	return &Checker{
		loader:      loader,
		detector:    detector,
		toolVersion: toolVersion,
	}
}

// CheckForMismatch renders a fresh template manifest and compares the
// project against it, prompting when anything drifted
func (c *Checker) CheckForMismatch(ctx context.Context, project manifest.Manifest, dev bool) (Decision, error) {
	logger := logging.GetLogger("reconcile.checker")
	done := logging.LogOperationStart(logger, "check for mismatch")
	defer done()

	template, err := c.loader.LoadTemplateManifest(c.toolVersion)
	if err != nil {
		return Decision{}, err
	}

	return c.detector.DetectMismatches(ctx, project, template, dev)
}

// Report renders a fresh template manifest and returns the mismatches
// without prompting
func (c *Checker) Report(project manifest.Manifest, dev bool) (Report, error) {
	template, err := c.loader.LoadTemplateManifest(c.toolVersion)
	if err != nil {
		return nil, err
	}
	return c.detector.FindMismatches(project, template, dev), nil
}

// TemplateManifest returns the template manifest for the checker's version
func (c *Checker) TemplateManifest() (manifest.Manifest, error) {
	return c.loader.LoadTemplateManifest(c.toolVersion)
}

// ToolVersion returns the stencil version the checker compares against
func (c *Checker) ToolVersion() string {
	return c.toolVersion
}
