package reconcile

import (
	"context"

	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/arthur-debert/stencil/pkg/logging"
	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/versions"
)

// DefaultSelfName is the package name under which projects depend on stencil
const DefaultSelfName = "stencil"

// Detector compares a project manifest with a template manifest
type Detector struct {
	prompter Prompter
	selfName string
}

// DetectorOption configures a Detector
type DetectorOption func(*Detector)

// WithSelfName overrides the dependency name stencil is published under
func WithSelfName(name string) DetectorOption {
	return func(d *Detector) {
		if name != "" {
			d.selfName = name
		}
	}
}

// NewDetector creates a Detector that asks p about non-empty reports
func NewDetector(p Prompter, opts ...DetectorOption) *Detector {
	d := &Detector{
		prompter: p,
		selfName: DefaultSelfName,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectMismatches finds drift between project and template. An empty report
// resolves to NoAction without prompting; otherwise the prompter's decision
// is returned unchanged.
func (d *Detector) DetectMismatches(ctx context.Context, project, template manifest.Manifest, dev bool) (Decision, error) {
	logger := logging.GetLogger("reconcile.detector")

	report := d.FindMismatches(project, template, dev)
	if report.Len() == 0 {
		logger.Debug().Msg("project dependencies match the template")
		return NoAction(), nil
	}

	if d.prompter == nil {
		return Decision{}, errors.New(errors.ErrPrompt, MsgErrNoPrompter)
	}

	logger.Debug().
		Int("mismatched", report.Len()).
		Strs("modules", report.Names()).
		Msg("prompting for dependency update")

	decision, err := d.prompter.PromptModulesUpdate(ctx, report)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrPrompt) {
			return Decision{}, err
		}
		return Decision{}, errors.Wrap(err, errors.ErrPrompt, MsgErrPrompt)
	}

	return decision, nil
}

// FindMismatches builds the mismatch report without prompting
func (d *Detector) FindMismatches(project, template manifest.Manifest, dev bool) Report {
	logger := logging.GetLogger("reconcile.detector")

	project = manifest.Normalize(project)
	template = manifest.Normalize(template)

	report := Report{}
	for _, collection := range manifest.Collections() {
		required := template.Get(collection)
		declared := project.Get(collection)

		for _, name := range template.Names(collection) {
			projectVersion, present := declared[name]

			if collection == manifest.Dependencies && d.isExemptSelfReference(dev, name, projectVersion) {
				logger.Debug().
					Str("dependency", name).
					Str("project", projectVersion).
					Msg("skipping linked self reference")
				continue
			}

			if !isMismatched(projectVersion, present, required[name]) {
				continue
			}

			entry := Entry{
				Required: required[name],
				Project:  projectVersion,
				Type:     collection,
			}
			if !present || projectVersion == "" {
				entry.Project = MissingMarker
			}
			report[name] = entry

			logger.Debug().
				Str("dependency", name).
				Str("collection", string(collection)).
				Str("required", entry.Required).
				Str("project", entry.Project).
				Msg("dependency mismatch")
		}
	}

	return report
}

// isExemptSelfReference reports whether the project's own stencil dependency
// should be left alone: in dev mode a project usually points stencil at a
// local checkout, which never looks like a release.
func (d *Detector) isExemptSelfReference(dev bool, name, projectVersion string) bool {
	return dev && name == d.selfName && !versions.LooksLikeRelease(projectVersion)
}

func isMismatched(projectVersion string, present bool, required string) bool {
	if !present || projectVersion == "" {
		return true
	}
	return !versions.IsValidVersion(projectVersion, required) && !versions.IsFileDependency(projectVersion)
}
