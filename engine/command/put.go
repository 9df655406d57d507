package command

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/engine/scoring"
	"github.com/dirkkok101/zorkcore/types"
)

type putCommand struct {
	base
}

// NewPutCommand builds the put command: moves a carried item into an
// open container. Treasures placed in the trophy case score their
// deposit value once.
func NewPutCommand(svc *Services) Command {
	return &putCommand{base: base{svc: svc, name: "put", aliases: []string{"place", "insert", "deposit"}}}
}

func (c *putCommand) Execute(matched, args string) types.CommandResult {
	objectPhrase, containerPhrase := splitPreposition(args, "in", "into", "inside", "on")
	if objectPhrase == "" || containerPhrase == "" {
		return types.CommandResult{Success: false, Message: "Put what where?"}
	}

	it, ok := c.svc.findCarried(objectPhrase)
	if !ok {
		return failMove(fmt.Sprintf("You're not carrying any %s.", stripArticles(objectPhrase)))
	}
	container, ok := c.svc.findReachable(containerPhrase)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(containerPhrase)))
	}

	if res := c.svc.Items.AddToContainer(container.ID, it.ID); !res.Success {
		return failMove(res.Message)
	}
	c.svc.State.RemoveFromInventory(it.ID)

	if container.ID == scoring.TrophyCaseID && it.IsTreasure() {
		if c.svc.Scoring.AwardDepositScore(it.ID) {
			return okMove(fmt.Sprintf("As you place the %s in the %s, it gleams with new significance.",
				it.Name, container.Name))
		}
	}
	return okMove("Done.")
}
