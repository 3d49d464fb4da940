// Package paths resolves project and user locations for stencil.
//
// Project locations (the manifest and the optional .stencil.toml) are relative
// to a project root chosen by the caller. User locations (config, state, log
// file) follow XDG, with STENCIL_* environment overrides.
package paths
