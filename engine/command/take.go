package command

import (
	"fmt"
	"strings"

	"github.com/dirkkok101/zorkcore/types"
)

type takeCommand struct {
	base
}

// NewTakeCommand builds the take command: picks an item up off the
// scene floor, or out of an open container when the player says where
// from.
func NewTakeCommand(svc *Services) Command {
	return &takeCommand{base: base{svc: svc, name: "take", aliases: []string{"get", "grab", "pick"}}}
}

func (c *takeCommand) Execute(matched, args string) types.CommandResult {
	args = strings.TrimSpace(strings.TrimPrefix(args, "up "))
	if args == "" {
		return types.CommandResult{Success: false, Message: "Take what?"}
	}

	objectPhrase, containerPhrase := splitPreposition(args, "from", "out")
	if containerPhrase != "" {
		return c.takeFrom(objectPhrase, containerPhrase)
	}

	it, ok := c.svc.Items.Find(stripArticles(objectPhrase), c.svc.Scenes.VisibleItemIDs(c.svc.State.CurrentSceneID()))
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(objectPhrase)))
	}
	if res := c.svc.Items.CanTake(it.ID); !res.Success {
		return failMove(res.Message)
	}
	if res := c.svc.Inventory.AddItem(it.ID); !res.Success {
		return failMove(res.Message)
	}
	c.svc.State.RemoveItemFromScene(c.svc.State.CurrentSceneID(), it.ID)
	if it.IsTreasure() {
		c.svc.Scoring.AwardEventScore("first_treasure")
	}
	return okMove("Taken.")
}

func (c *takeCommand) takeFrom(objectPhrase, containerPhrase string) types.CommandResult {
	container, ok := c.svc.findReachable(containerPhrase)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(containerPhrase)))
	}
	it, ok := c.svc.Items.Find(stripArticles(objectPhrase), container.State.Contents)
	if !ok {
		return failMove(fmt.Sprintf("There's no %s in the %s.", stripArticles(objectPhrase), container.Name))
	}
	if res := c.svc.Items.RemoveFromContainer(container.ID, it.ID); !res.Success {
		return failMove(res.Message)
	}
	if res := c.svc.Inventory.AddItem(it.ID); !res.Success {
		// Undo the removal so the item keeps exactly one location.
		c.svc.State.UpdateItemState(container.ID, func(st *types.ItemState) {
			st.Contents = append(st.Contents, it.ID)
		})
		return failMove(res.Message)
	}
	if it.IsTreasure() {
		c.svc.Scoring.AwardEventScore("first_treasure")
	}
	return okMove("Taken.")
}
