package reconcile

import (
	"context"
	"testing"

	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckForMismatch_BundledTemplate(t *testing.T) {
	prompter := &recordingPrompter{shouldFix: true}
	checker := NewChecker(
		NewLoader(template.NewEmbeddedRenderer()),
		NewDetector(prompter),
		"2.0.0",
	)

	project := newManifest(deps("stencil", "1.0.0", "react", "15.0.0"), nil)

	decision, err := checker.CheckForMismatch(context.Background(), project, false)
	require.NoError(t, err)
	require.Equal(t, 1, prompter.calls)
	assert.True(t, decision.ShouldFix)

	assert.Equal(t, Entry{Required: "2.0.0", Project: "1.0.0", Type: manifest.Dependencies}, decision.MismatchedModules["stencil"])
	assert.Equal(t, Entry{Required: "^16.0.0", Project: "15.0.0", Type: manifest.Dependencies}, decision.MismatchedModules["react"])
	assert.True(t, decision.MismatchedModules["jest"].IsMissing())
}

func TestCheckForMismatch_InSyncWithBundle(t *testing.T) {
	checker := NewChecker(NewLoader(template.NewEmbeddedRenderer()), NewDetector(nil), "2.0.0")

	tm, err := checker.TemplateManifest()
	require.NoError(t, err)

	// a freshly generated project is in sync by definition
	decision, err := checker.CheckForMismatch(context.Background(), tm, false)
	require.NoError(t, err)
	assert.Equal(t, NoAction(), decision)
}

func TestCheckForMismatch_DevLinkedSelf(t *testing.T) {
	checker := NewChecker(NewLoader(template.NewEmbeddedRenderer()), NewDetector(nil), "2.0.0")

	tm, err := checker.TemplateManifest()
	require.NoError(t, err)
	tm.Dependencies["stencil"] = "link:../stencil"

	report, err := checker.Report(tm, true)
	require.NoError(t, err)
	assert.Empty(t, report)

	report, err = checker.Report(tm, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"stencil"}, report.Names())
}

func TestCheckForMismatch_RenderFailureIsFatal(t *testing.T) {
	prompter := &recordingPrompter{shouldFix: true}
	checker := NewChecker(
		NewLoader(&fakeRenderer{output: `{"dependencies":{}}`}),
		NewDetector(prompter),
		"2.0.0",
	)

	decision, err := checker.CheckForMismatch(context.Background(), newManifest(nil, nil), false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender))
	assert.Equal(t, Decision{}, decision)
	assert.Zero(t, prompter.calls)

	_, err = checker.Report(newManifest(nil, nil), false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender))
}

func TestCheckForMismatch_RerendersPerCall(t *testing.T) {
	r := &fakeRenderer{output: validTemplate}
	checker := NewChecker(NewLoader(r), NewDetector(&recordingPrompter{}), "1.4.0")
	project := newManifest(deps("stencil", "1.4.0", "react", "16.0.0"), deps("jest", "21.0.0"))

	for i := 0; i < 3; i++ {
		decision, err := checker.CheckForMismatch(context.Background(), project, false)
		require.NoError(t, err)
		assert.False(t, decision.ShouldFix)
	}
	assert.Equal(t, 3, r.calls)
	assert.Equal(t, "1.4.0", checker.ToolVersion())
}
