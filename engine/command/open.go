package command

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/engine/scene"
	"github.com/dirkkok101/zorkcore/engine/scoring"
	"github.com/dirkkok101/zorkcore/types"
)

type openCommand struct {
	base
}

// NewOpenCommand builds the open command. Doors open through the scene
// service's flag mechanism; everything else goes through the item
// service, with an optional "with <key>".
func NewOpenCommand(svc *Services) Command {
	return &openCommand{base: base{svc: svc, name: "open"}}
}

func (c *openCommand) Execute(matched, args string) types.CommandResult {
	if args == "" {
		return types.CommandResult{Success: false, Message: "Open what?"}
	}
	objectPhrase, keyPhrase := splitPreposition(args, "with", "using")

	it, ok := c.svc.findReachable(objectPhrase)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(objectPhrase)))
	}

	if _, isDoor := scene.DoorFlag(it.ID); isDoor {
		return asMove(c.svc.Scenes.OpenDoor(it.ID))
	}

	keyID := ""
	if keyPhrase != "" {
		key, carried := c.svc.findCarried(keyPhrase)
		if !carried {
			return failMove(fmt.Sprintf("You're not carrying any %s.", stripArticles(keyPhrase)))
		}
		keyID = key.ID
	}

	res := c.svc.Items.OpenItem(it.ID, keyID)
	if res.Success && it.ID == scoring.TrophyCaseID {
		c.svc.Scoring.AwardEventScore("open_trophy_case")
	}
	return asMove(res)
}

type closeCommand struct {
	base
}

// NewCloseCommand builds the close command, the mirror of open.
func NewCloseCommand(svc *Services) Command {
	return &closeCommand{base: base{svc: svc, name: "close", aliases: []string{"shut"}}}
}

func (c *closeCommand) Execute(matched, args string) types.CommandResult {
	if args == "" {
		return types.CommandResult{Success: false, Message: "Close what?"}
	}
	it, ok := c.svc.findReachable(args)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(args)))
	}
	if _, isDoor := scene.DoorFlag(it.ID); isDoor {
		return asMove(c.svc.Scenes.CloseDoor(it.ID))
	}
	return asMove(c.svc.Items.CloseItem(it.ID))
}
