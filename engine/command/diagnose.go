package command

import "github.com/dirkkok101/zorkcore/types"

type diagnoseCommand struct {
	base
}

// NewDiagnoseCommand builds the diagnose report; it costs no turn.
func NewDiagnoseCommand(svc *Services) Command {
	return &diagnoseCommand{base: base{svc: svc, name: "diagnose"}}
}

func (c *diagnoseCommand) Execute(matched, args string) types.CommandResult {
	wounds := 0
	switch v, _ := c.svc.State.Variable("wounds"); n := v.(type) {
	case int:
		wounds = n
	case float64:
		wounds = int(n)
	}

	var msg string
	switch {
	case wounds <= 0:
		msg = "You are in perfect health."
	case wounds == 1:
		msg = "You have a light wound, which will be cured after some rest."
	default:
		msg = "You have several wounds, which will be cured after a long rest."
	}
	return types.CommandResult{Success: true, Message: msg}
}
