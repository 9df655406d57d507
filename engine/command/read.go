package command

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/types"
)

type readCommand struct {
	base
}

// NewReadCommand builds the read command. Readable items carry their
// text in properties, falling back to examine text.
func NewReadCommand(svc *Services) Command {
	return &readCommand{base: base{svc: svc, name: "read"}}
}

func (c *readCommand) Execute(matched, args string) types.CommandResult {
	if args == "" {
		return types.CommandResult{Success: false, Message: "Read what?"}
	}
	it, ok := c.svc.findReachable(args)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(args)))
	}
	if res, handled := c.svc.Items.Interact(it.ID, "read"); handled {
		return asMove(res)
	}
	if text := it.Properties.String("text", ""); text != "" {
		return okMove(text)
	}
	if it.Type == types.ItemReadable && it.ExamineText != "" {
		return okMove(it.ExamineText)
	}
	return failMove(fmt.Sprintf("There's nothing written on the %s.", it.Name))
}
