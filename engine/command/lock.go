package command

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/types"
)

type lockCommand struct {
	base
	unlock bool
}

// NewLockCommand and NewUnlockCommand build the two halves of the
// lock/unlock pair; both require naming a carried key.
func NewLockCommand(svc *Services) Command {
	return &lockCommand{base: base{svc: svc, name: "lock"}}
}

func NewUnlockCommand(svc *Services) Command {
	return &lockCommand{base: base{svc: svc, name: "unlock"}, unlock: true}
}

func (c *lockCommand) Execute(matched, args string) types.CommandResult {
	if args == "" {
		return types.CommandResult{Success: false, Message: fmt.Sprintf("%s what?", titleVerb(c.name))}
	}
	objectPhrase, keyPhrase := splitPreposition(args, "with", "using")

	it, ok := c.svc.findReachable(objectPhrase)
	if !ok {
		return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(objectPhrase)))
	}
	if keyPhrase == "" {
		return failMove(fmt.Sprintf("%s it with what?", titleVerb(c.name)))
	}
	key, carried := c.svc.findCarried(keyPhrase)
	if !carried {
		return failMove(fmt.Sprintf("You're not carrying any %s.", stripArticles(keyPhrase)))
	}

	if c.unlock {
		return asMove(c.svc.Items.UnlockItem(it.ID, key.ID))
	}
	return asMove(c.svc.Items.LockItem(it.ID, key.ID))
}

func titleVerb(verb string) string {
	if verb == "" {
		return verb
	}
	return string(verb[0]-'a'+'A') + verb[1:]
}
