package command

import (
	"strings"

	"github.com/dirkkok101/zorkcore/types"
)

type inventoryCommand struct {
	base
}

// NewInventoryCommand builds the inventory listing; it costs no turn.
func NewInventoryCommand(svc *Services) Command {
	return &inventoryCommand{base: base{svc: svc, name: "inventory", aliases: []string{"i", "inv"}}}
}

func (c *inventoryCommand) Execute(matched, args string) types.CommandResult {
	ids := c.svc.Inventory.Items()
	if len(ids) == 0 {
		return types.CommandResult{Success: true, Message: "You are empty-handed."}
	}

	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, id := range ids {
		name := id
		if it, ok := c.svc.State.Item(id); ok {
			name = it.Name
		}
		b.WriteString("\n  A " + name)
	}
	return types.CommandResult{Success: true, Message: b.String()}
}
