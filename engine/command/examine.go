package command

import (
	"fmt"
	"strings"

	"github.com/dirkkok101/zorkcore/types"
)

type examineCommand struct {
	base
}

// NewExamineCommand builds the examine command. Items use their
// examine text when authored, their description otherwise; open
// containers also report their contents. Monsters in the scene can be
// examined by name or synonym.
func NewExamineCommand(svc *Services) Command {
	return &examineCommand{base: base{svc: svc, name: "examine", aliases: []string{"x", "inspect"}}}
}

func (c *examineCommand) Execute(matched, args string) types.CommandResult {
	if args == "" {
		return types.CommandResult{Success: false, Message: "Examine what?"}
	}

	if it, ok := c.svc.findReachable(args); ok {
		if res, handled := c.svc.Items.Interact(it.ID, "examine"); handled {
			return asMove(res)
		}
		text := it.ExamineText
		if text == "" {
			text = it.Description
		}
		if it.IsContainer() && it.State.Open {
			if len(it.State.Contents) == 0 {
				text += "\nIt is empty."
			} else {
				text += fmt.Sprintf("\nIt contains %s.", c.contentsPhrase(it))
			}
		}
		return okMove(text)
	}

	phrase := strings.ToLower(stripArticles(args))
	for _, m := range c.svc.Scenes.MonstersPresent(c.svc.State.CurrentSceneID()) {
		if monsterAnswersTo(m, phrase) {
			if m.ExamineText != "" {
				return okMove(m.ExamineText)
			}
			return okMove(m.Description)
		}
	}

	return failMove(fmt.Sprintf("You don't see any %s here.", stripArticles(args)))
}

func (c *examineCommand) contentsPhrase(container *types.Item) string {
	var names []string
	for _, id := range container.State.Contents {
		name := id
		if held, ok := c.svc.State.Item(id); ok {
			name = held.Name
		}
		names = append(names, "a "+name)
	}
	switch len(names) {
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func monsterAnswersTo(m *types.Monster, phrase string) bool {
	if strings.EqualFold(m.Name, phrase) || strings.EqualFold(m.ID, phrase) {
		return true
	}
	for _, syn := range m.Synonyms {
		if strings.EqualFold(syn, phrase) {
			return true
		}
	}
	return false
}
