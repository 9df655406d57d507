package command

import (
	"strings"

	"github.com/dirkkok101/zorkcore/types"
)

type lookCommand struct {
	base
	examine *examineCommand
}

// NewLookCommand builds the look command. Bare "look" describes the
// current scene; "look at X" defers to examine.
func NewLookCommand(svc *Services) Command {
	return &lookCommand{
		base:    base{svc: svc, name: "look", aliases: []string{"l"}},
		examine: &examineCommand{base: base{svc: svc, name: "examine"}},
	}
}

func (c *lookCommand) Execute(matched, args string) types.CommandResult {
	args = strings.TrimSpace(strings.TrimPrefix(args, "at "))
	if args != "" {
		return c.examine.Execute("examine", args)
	}
	return okMove(c.svc.Scenes.Describe(c.svc.State.CurrentSceneID()))
}
