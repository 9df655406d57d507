package command

import "github.com/dirkkok101/zorkcore/types"

// base carries the pieces every command shares. Commands embed it and
// override CanExecute only when they have a real precondition.
type base struct {
	svc     *Services
	name    string
	aliases []string
}

func (b *base) Name() string      { return b.name }
func (b *base) Aliases() []string { return b.aliases }
func (b *base) CanExecute() bool  { return true }

// asMove converts a service-layer result into a command result that
// consumes a turn whether or not it succeeded.
func asMove(res types.ActionResult) types.CommandResult {
	return types.CommandResult{
		Success:      res.Success,
		Message:      res.Message,
		CountsAsMove: true,
	}
}

// failMove is a failed result that still consumes a turn.
func failMove(message string) types.CommandResult {
	return types.CommandResult{Success: false, Message: message, CountsAsMove: true}
}

// okMove is a successful result that consumes a turn.
func okMove(message string) types.CommandResult {
	return types.CommandResult{Success: true, Message: message, CountsAsMove: true}
}
