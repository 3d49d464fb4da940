package confirmations

// Messages
const (
	MsgReportHeader = "%d dependencies differ from the project template:"
	MsgUpdateAll    = "Update %d dependencies to match the template?"
	MsgUpdateOne    = "Update %s (%s -> %s)?"
)

// Error messages
const (
	MsgErrRead      = "failed to read user input"
	MsgErrWrite     = "failed to write prompt"
	MsgErrCancelled = "prompt cancelled"
)
