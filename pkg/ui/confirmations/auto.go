package confirmations

import (
	"context"

	"github.com/arthur-debert/stencil/pkg/reconcile"
)

// AutoApprove returns a prompter that accepts every report without asking
func AutoApprove() reconcile.Prompter {
	return reconcile.PrompterFunc(func(_ context.Context, report reconcile.Report) (reconcile.Decision, error) {
		return reconcile.Decision{ShouldFix: true, MismatchedModules: report}, nil
	})
}
