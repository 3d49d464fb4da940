package reconcile

// Error messages
const (
	MsgErrRender        = "cannot render template %s/%s"
	MsgErrParseTemplate = "rendered template %s/%s is not a usable manifest"
	MsgErrPrompt        = "dependency update prompt failed"
	MsgErrNoRenderer    = "no template renderer configured"
	MsgErrNoPrompter    = "no prompter configured"
)
