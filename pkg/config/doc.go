// Package config handles configuration management for stencil.
// It layers the embedded defaults, the user config file, the project's
// .stencil.toml and STENCIL_* environment variables, in that order. Project
// files cannot set the [self] and [template] sections.
package config
