package reconcile

import (
	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/arthur-debert/stencil/pkg/logging"
	"github.com/arthur-debert/stencil/pkg/manifest"
)

const (
	// DefaultTemplateDir is the bundle directory holding the package template
	DefaultTemplateDir = "package"
	// DefaultTemplateTarget is the file the package template produces
	DefaultTemplateTarget = "package.json"
	// SelfVersionVar is the only variable passed to the package template
	SelfVersionVar = "toolDependencySelfVersion"
)

// Loader produces the template manifest for a given stencil version
type Loader struct {
	renderer    Renderer
	templateDir string
	target      string
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithTemplate overrides the template directory and target file
func WithTemplate(templateDir, target string) LoaderOption {
	return func(l *Loader) {
		if templateDir != "" {
			l.templateDir = templateDir
		}
		if target != "" {
			l.target = target
		}
	}
}

// NewLoader creates a Loader rendering through r
func NewLoader(r Renderer, opts ...LoaderOption) *Loader {
	l := &Loader{
		renderer:    r,
		templateDir: DefaultTemplateDir,
		target:      DefaultTemplateTarget,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadTemplateManifest renders and parses the package template for
// toolVersion. The result is never cached.
func (l *Loader) LoadTemplateManifest(toolVersion string) (manifest.Manifest, error) {
	logger := logging.GetLogger("reconcile.loader")

	if l.renderer == nil {
		return manifest.Manifest{}, errors.New(errors.ErrTemplateRender, MsgErrNoRenderer)
	}

	rendered, err := l.renderer.Render(l.templateDir, l.target, map[string]string{
		SelfVersionVar: toolVersion,
	})
	if err != nil {
		return manifest.Manifest{}, errors.Wrapf(err, errors.ErrTemplateRender, MsgErrRender, l.templateDir, l.target).
			WithDetail("toolVersion", toolVersion)
	}

	tm, err := manifest.ParseTemplate([]byte(rendered))
	if err != nil {
		return manifest.Manifest{}, errors.Wrapf(err, errors.ErrTemplateRender, MsgErrParseTemplate, l.templateDir, l.target).
			WithDetail("toolVersion", toolVersion)
	}

	logger.Debug().
		Str("toolVersion", toolVersion).
		Int("dependencies", len(tm.Dependencies)).
		Int("devDependencies", len(tm.DevDependencies)).
		Msg("loaded template manifest")

	return tm, nil
}
