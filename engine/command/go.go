package command

import (
	"strings"

	"github.com/dirkkok101/zorkcore/types"
)

// directionWords maps shortcuts and full names to canonical exit
// directions. Every key is also registered as an alias of go, so a
// bare "n" moves the player north.
var directionWords = map[string]string{
	"north": "north", "n": "north",
	"south": "south", "s": "south",
	"east": "east", "e": "east",
	"west": "west", "w": "west",
	"northeast": "northeast", "ne": "northeast",
	"northwest": "northwest", "nw": "northwest",
	"southeast": "southeast", "se": "southeast",
	"southwest": "southwest", "sw": "southwest",
	"up": "up", "u": "up",
	"down": "down", "d": "down",
	"in": "in", "enter": "in",
	"out": "out", "exit": "out",
}

type goCommand struct {
	base
}

// NewGoCommand builds the movement command. Besides its own aliases it
// answers to every direction word directly.
func NewGoCommand(svc *Services) Command {
	aliases := []string{"walk", "run", "travel", "head"}
	for word := range directionWords {
		aliases = append(aliases, word)
	}
	return &goCommand{base: base{svc: svc, name: "go", aliases: aliases}}
}

func (c *goCommand) Execute(matched, args string) types.CommandResult {
	direction, ok := directionWords[matched]
	if !ok {
		word, _, _ := strings.Cut(strings.TrimSpace(args), " ")
		if word == "" {
			return types.CommandResult{Success: false, Message: "Which direction?"}
		}
		if canonical, known := directionWords[word]; known {
			direction = canonical
		} else {
			direction = word
		}
	}

	if res := c.svc.Scenes.CanMoveTo(direction); !res.Success {
		return failMove(res.Message)
	}

	// First-visit points are tied to the destination's visited state,
	// which MoveTo flips when it describes the scene. Award first.
	if exit, found := c.svc.Scenes.ResolveExit(direction); found {
		c.svc.Scoring.AwardSceneScore(exit.To)
	}
	return asMove(c.svc.Scenes.MoveTo(direction))
}
