package reconcile

import (
	"context"

	"github.com/arthur-debert/stencil/pkg/manifest"
)

// fakeRenderer returns canned output and records every call
type fakeRenderer struct {
	output string
	err    error

	calls      int
	lastDir    string
	lastTarget string
	lastVars   map[string]string
}

func (f *fakeRenderer) Render(templateDir, target string, vars map[string]string) (string, error) {
	f.calls++
	f.lastDir = templateDir
	f.lastTarget = target
	f.lastVars = vars
	return f.output, f.err
}

// recordingPrompter answers with a fixed decision and records the report it saw
type recordingPrompter struct {
	shouldFix bool
	err       error

	calls int
	seen  Report
}

func (p *recordingPrompter) PromptModulesUpdate(_ context.Context, report Report) (Decision, error) {
	p.calls++
	p.seen = report
	if p.err != nil {
		return Decision{}, p.err
	}
	return Decision{ShouldFix: p.shouldFix, MismatchedModules: report}, nil
}

func deps(pairs ...string) map[string]string {
	out := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}

func newManifest(dependencies, devDependencies map[string]string) manifest.Manifest {
	return manifest.Manifest{Dependencies: dependencies, DevDependencies: devDependencies}
}
