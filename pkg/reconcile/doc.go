// Package reconcile detects dependency drift between a generated project and
// the project stencil would generate today.
//
// The Loader renders the bundled package template for the running stencil
// version and parses it into the template manifest. The Detector walks the
// template's runtime and development dependencies, records every project
// entry that is missing or outside the required range, and hands a non-empty
// report to a Prompter. The Checker ties the two together and is the entry
// point used by the CLI.
//
// Nothing here reads files, writes files or installs packages: the project
// manifest arrives already parsed and the decision is returned to the caller.
package reconcile
