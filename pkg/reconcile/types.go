package reconcile

import (
	"context"
	"sort"

	"github.com/arthur-debert/stencil/pkg/manifest"
)

// MissingMarker is recorded as the project version of an absent dependency
const MissingMarker = "missing"

// Entry describes one dependency that differs from the template
type Entry struct {
	Required string              `json:"required"`
	Project  string              `json:"project"`
	Type     manifest.Collection `json:"type"`
}

// IsMissing reports whether the project does not declare the dependency at all
func (e Entry) IsMissing() bool {
	return e.Project == MissingMarker
}

// Report maps dependency names to their mismatch
type Report map[string]Entry

// Len returns the number of mismatched dependencies
func (r Report) Len() int {
	return len(r)
}

// Names returns the mismatched dependency names in sorted order
func (r Report) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns the entries belonging to one collection
func (r Report) Filter(c manifest.Collection) Report {
	out := Report{}
	for name, entry := range r {
		if entry.Type == c {
			out[name] = entry
		}
	}
	return out
}

// Decision is the outcome of presenting a report to the user
type Decision struct {
	ShouldFix         bool   `json:"shouldFix"`
	MismatchedModules Report `json:"mismatchedModules"`
}

// NoAction is the decision for a project that is already in sync
func NoAction() Decision {
	return Decision{ShouldFix: false, MismatchedModules: Report{}}
}

// Renderer renders a named template into text
type Renderer interface {
	Render(templateDir, target string, vars map[string]string) (string, error)
}

// Prompter presents a mismatch report to a human and returns their decision.
// Implementations may drop entries the user deselects but must not add any.
type Prompter interface {
	PromptModulesUpdate(ctx context.Context, report Report) (Decision, error)
}

// PrompterFunc adapts a function to the Prompter interface
type PrompterFunc func(ctx context.Context, report Report) (Decision, error)

// PromptModulesUpdate calls f
func (f PrompterFunc) PromptModulesUpdate(ctx context.Context, report Report) (Decision, error) {
	return f(ctx, report)
}
