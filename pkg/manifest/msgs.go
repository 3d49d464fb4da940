package manifest

// Error messages
const (
	MsgErrParseProject   = "cannot parse project manifest"
	MsgErrParseTemplate  = "cannot parse template manifest"
	MsgErrMissingSection = "template manifest has no %q section"
	MsgErrBadSection     = "template manifest section %q is not a name -> version mapping"
)
