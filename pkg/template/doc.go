// Package template renders the project templates bundled with stencil.
//
// A template lives in a directory of the bundle and is addressed by the name
// of the file it produces: rendering target "package.json" in directory
// "package" executes "package/package.json.tmpl" with Go's text/template.
// Variables are a flat string map; referencing a variable that was not
// supplied is an error rather than an empty substitution.
//
// The bundle compiled into the binary is the canonical source. Kit developers
// can point stencil at an on-disk copy with NewDirRenderer to try template
// changes without rebuilding.
package template
