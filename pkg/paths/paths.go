// Package paths provides centralized path handling for stencil.
// It follows the XDG Base Directory specification for the tool's own files
// and resolves project-relative locations such as the project manifest.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvProjectRoot overrides the directory treated as the project root
	EnvProjectRoot = "STENCIL_PROJECT_ROOT"

	// EnvStencilConfigDir overrides the XDG config directory for stencil
	EnvStencilConfigDir = "STENCIL_CONFIG_DIR"

	// EnvStencilStateDir overrides the XDG state directory for stencil
	EnvStencilStateDir = "STENCIL_STATE_DIR"
)

// Default directories and files
const (
	// StencilDirName is the directory name for stencil-specific files
	StencilDirName = "stencil"

	// ManifestFileName is the name of a project's dependency manifest
	ManifestFileName = "package.json"

	// LogFileName is the name of the log file
	LogFileName = "stencil.log"
)

// ConfigFileNames are the project configuration files, in lookup order
var ConfigFileNames = []string{".stencil.toml", "stencil.toml"}

// Paths resolves the locations stencil reads from and writes to
type Paths struct {
	projectRoot string
	configDir   string
	stateDir    string
}

// New creates a Paths instance rooted at projectRoot.
// An empty projectRoot falls back to $STENCIL_PROJECT_ROOT, then the working directory.
func New(projectRoot string) (*Paths, error) {
	xdg.Reload()

	if projectRoot == "" {
		projectRoot = os.Getenv(EnvProjectRoot)
	}
	if projectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		projectRoot = wd
	}

	root, err := filepath.Abs(expandHome(projectRoot))
	if err != nil {
		return nil, err
	}

	p := &Paths{projectRoot: root}

	if dir := os.Getenv(EnvStencilConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, StencilDirName)
	}

	if dir := os.Getenv(EnvStencilStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, StencilDirName)
	}

	return p, nil
}

// ProjectRoot returns the absolute project root
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// ManifestPath returns the path of the project's package.json
func (p *Paths) ManifestPath() string {
	return filepath.Join(p.projectRoot, ManifestFileName)
}

// ConfigDir returns the user-level stencil config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the stencil state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the stencil log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ProjectConfigCandidates returns the project config files to try, in order
func (p *Paths) ProjectConfigCandidates() []string {
	candidates := make([]string, 0, len(ConfigFileNames))
	for _, name := range ConfigFileNames {
		candidates = append(candidates, filepath.Join(p.projectRoot, name))
	}
	return candidates
}

// UserConfigPath returns the user-level config file path
func (p *Paths) UserConfigPath() string {
	return filepath.Join(p.configDir, "config.toml")
}

// DefaultLogFilePath returns the log file path without needing a project root.
// It respects STENCIL_STATE_DIR and XDG_STATE_HOME.
func DefaultLogFilePath() string {
	if dir := os.Getenv(EnvStencilStateDir); dir != "" {
		return filepath.Join(expandHome(dir), LogFileName)
	}
	xdg.Reload()
	return filepath.Join(xdg.StateHome, StencilDirName, LogFileName)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
