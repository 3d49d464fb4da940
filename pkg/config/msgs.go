package config

// Messages
const (
	MsgGeneratedHeader        = "# stencil configuration\n# Values here override the built-in defaults.\n\n"
	MsgGeneratedProjectHeader = "# stencil project configuration\n# Only [prompt] and [output] are read from project files.\n\n"

	MsgErrDefaults      = "failed to load defaults"
	MsgErrLoadFile      = "failed to load config from %s"
	MsgErrEnv           = "failed to load environment overrides"
	MsgErrOverrides     = "failed to apply overrides"
	MsgErrUnmarshal     = "failed to unmarshal configuration"
	MsgErrGenerate      = "failed to generate configuration"
	MsgErrEmptySelf     = "self.name must not be empty"
	MsgErrEmptyTemplate = "template.dir and template.target must not be empty"
)
