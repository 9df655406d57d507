package command

import (
	"fmt"
	"strings"

	"github.com/dirkkok101/zorkcore/types"
)

type lightCommand struct {
	base
	off bool
}

// NewLightCommand and NewExtinguishCommand build the light-source
// toggles.
func NewLightCommand(svc *Services) Command {
	return &lightCommand{base: base{svc: svc, name: "light", aliases: []string{"ignite"}}}
}

func NewExtinguishCommand(svc *Services) Command {
	return &lightCommand{
		base: base{svc: svc, name: "extinguish", aliases: []string{"douse", "blow"}},
		off:  true,
	}
}

func (c *lightCommand) Execute(matched, args string) types.CommandResult {
	args = strings.TrimSpace(strings.TrimPrefix(args, "out "))
	if args == "" {
		return types.CommandResult{Success: false, Message: fmt.Sprintf("%s what?", titleVerb(c.name))}
	}
	it, ok := c.svc.findReachable(args)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(args)))
	}
	if c.off {
		return asMove(c.svc.Items.LightOff(it.ID))
	}
	return asMove(c.svc.Items.LightOn(it.ID))
}

type turnCommand struct {
	base
}

// NewTurnCommand builds the turn command, which routes "turn on X" and
// "turn off X" (or "turn X on/off") to the light toggles and tries an
// authored interaction for anything else.
func NewTurnCommand(svc *Services) Command {
	return &turnCommand{base: base{svc: svc, name: "turn"}}
}

func (c *turnCommand) Execute(matched, args string) types.CommandResult {
	words := strings.Fields(args)
	mode := ""
	var rest []string
	for _, w := range words {
		if w == "on" || w == "off" {
			mode = w
			continue
		}
		rest = append(rest, w)
	}
	phrase := strings.Join(rest, " ")
	if mode == "" || phrase == "" {
		return types.CommandResult{Success: false, Message: "Turn what on or off?"}
	}

	it, ok := c.svc.findReachable(phrase)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(phrase)))
	}
	if res, handled := c.svc.Items.Interact(it.ID, "turn "+mode); handled {
		return asMove(res)
	}
	if mode == "off" {
		return asMove(c.svc.Items.LightOff(it.ID))
	}
	return asMove(c.svc.Items.LightOn(it.ID))
}
