package stencil

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep stencil projects in line with their template"
	MsgCheckShort      = "Check the project's dependencies against the template"
	MsgTemplateShort   = "Show the dependencies a new project would declare"
	MsgTemplateLong    = "Template renders the package manifest this version of stencil generates for a new project."
	MsgGenConfigShort  = "Generate the default configuration"
	MsgGenConfigLong   = "Output the default configuration to stdout, or write the project-level part of it to .stencil.toml with -w."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "stencil version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten = "Wrote default project configuration to %s"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths"
	MsgErrReadManifest = "failed to read %s"
	MsgErrConfigExists = "%s already exists"
	MsgErrWriteConfig  = "failed to write %s"
	MsgErrFormat       = "invalid output format"
	MsgErrNoCommand    = "no command specified"
	MsgErrYesAndDryRun = "--yes and --dry-run cannot be combined"
	MsgErrSelectAndYes = "--select and --yes cannot be combined"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagDev     = "Ignore non-release references to stencil itself (default: on for development builds)"
	MsgFlagSelect  = "Ask about each dependency separately"
	MsgFlagYes     = "Accept the update without asking"
	MsgFlagDryRun  = "Only report mismatches, never prompt"
	MsgFlagWrite   = "Write the project configuration to .stencil.toml instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
