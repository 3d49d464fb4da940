// Package hints turns a mismatch report into the commands a user would run
// to bring the project back in line. stencil never runs them itself.
package hints

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/stencil/pkg/manifest"
	"github.com/arthur-debert/stencil/pkg/reconcile"
)

// InstallCommands returns one npm install command per collection that has
// entries, runtime dependencies first
func InstallCommands(report reconcile.Report) []string {
	var commands []string
	for _, collection := range manifest.Collections() {
		entries := report.Filter(collection)
		if entries.Len() == 0 {
			continue
		}

		flag := "--save"
		if collection == manifest.DevDependencies {
			flag = "--save-dev"
		}

		specs := make([]string, 0, entries.Len())
		for _, name := range entries.Names() {
			specs = append(specs, fmt.Sprintf("%s@%q", name, entries[name].Required))
		}
		commands = append(commands, fmt.Sprintf("npm install %s %s", flag, strings.Join(specs, " ")))
	}
	return commands
}
