package command

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/types"
)

type scoreCommand struct {
	base
}

// NewScoreCommand builds the score report; it costs no turn.
func NewScoreCommand(svc *Services) Command {
	return &scoreCommand{base: base{svc: svc, name: "score"}}
}

func (c *scoreCommand) Execute(matched, args string) types.CommandResult {
	return types.CommandResult{
		Success: true,
		Message: fmt.Sprintf("Your score is %d (total of %d points), in %d moves.",
			c.svc.State.Score(), c.svc.Scoring.MaxScore(), c.svc.State.Moves()),
	}
}

type waitCommand struct {
	base
}

// NewWaitCommand builds the wait command: it does nothing but let the
// world take a turn.
func NewWaitCommand(svc *Services) Command {
	return &waitCommand{base: base{svc: svc, name: "wait", aliases: []string{"z"}}}
}

func (c *waitCommand) Execute(matched, args string) types.CommandResult {
	return okMove("Time passes.")
}
