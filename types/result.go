package types

// CommandResult is the command/UI boundary: every command execution
// returns exactly this shape, and a UI layer needs nothing else to
// render an outcome.
type CommandResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CountsAsMove bool   `json:"countsAsMove"`
	ScoreChange  int    `json:"scoreChange,omitempty"`
}

// ActionResult is the result shape shared by service-layer operations.
// Business-rule failures are results, never errors: the message says
// why (locked, closed, too heavy, not found) so commands can relay it
// verbatim.
type ActionResult struct {
	Success      bool
	Message      string
	StateChanged bool
}

// Failure builds a failed ActionResult with the given message.
func Failure(message string) ActionResult {
	return ActionResult{Success: false, Message: message}
}

// Ok builds a successful ActionResult that changed state.
func Ok(message string) ActionResult {
	return ActionResult{Success: true, Message: message, StateChanged: true}
}
