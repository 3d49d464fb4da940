package text

// Messages
const (
	MsgInSync        = "All dependencies match the project template."
	MsgMismatchCount = "%d dependencies differ from the project template:\n"
	MsgSkipped       = "Update skipped; %d dependencies still differ from the project template.\n"
	MsgRunCommands   = "Run the following to update the project:"
)
