package command

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/types"
)

type dropCommand struct {
	base
}

// NewDropCommand builds the drop command: moves a carried item onto
// the current scene's floor.
func NewDropCommand(svc *Services) Command {
	return &dropCommand{base: base{svc: svc, name: "drop", aliases: []string{"discard", "leave"}}}
}

func (c *dropCommand) Execute(matched, args string) types.CommandResult {
	if args == "" {
		return types.CommandResult{Success: false, Message: "Drop what?"}
	}
	it, ok := c.svc.findCarried(args)
	if !ok {
		return failMove(fmt.Sprintf("You're not carrying any %s.", stripArticles(args)))
	}
	if res := c.svc.Inventory.RemoveItem(it.ID); !res.Success {
		return failMove(res.Message)
	}
	c.svc.State.AddItemToScene(c.svc.State.CurrentSceneID(), it.ID)
	return okMove("Dropped.")
}
