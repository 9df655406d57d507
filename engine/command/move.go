package command

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/types"
)

type moveCommand struct {
	base
}

// NewMoveCommand builds the move/push/pull command. It has no built-in
// effect of its own; anything interesting comes from the item's
// authored interactions (moving the rug, pushing the button).
func NewMoveCommand(svc *Services) Command {
	return &moveCommand{base: base{svc: svc, name: "move", aliases: []string{"push", "pull", "shift"}}}
}

func (c *moveCommand) Execute(matched, args string) types.CommandResult {
	if args == "" {
		return types.CommandResult{Success: false, Message: fmt.Sprintf("%s what?", titleVerb(matched))}
	}
	it, ok := c.svc.findReachable(args)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(args)))
	}
	if res, handled := c.svc.Items.Interact(it.ID, matched); handled {
		return asMove(res)
	}
	// Authored interactions are keyed on the primary verb; retry under
	// it when an alias missed.
	if matched != c.name {
		if res, handled := c.svc.Items.Interact(it.ID, c.name); handled {
			return asMove(res)
		}
	}
	return failMove(fmt.Sprintf("Moving the %s reveals nothing.", it.Name))
}
