// Package command implements the command registry and dispatch: each
// player-facing verb is a pre-built command object registered under its
// name and aliases, found by exact or first-token lookup, with
// suggestion-based error messages for unknown input.
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dirkkok101/zorkcore/engine/inventory"
	"github.com/dirkkok101/zorkcore/engine/item"
	"github.com/dirkkok101/zorkcore/engine/scene"
	"github.com/dirkkok101/zorkcore/engine/scoring"
	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/logging"
	"github.com/dirkkok101/zorkcore/types"
)

var log = logging.Component("command")

// Services bundles the service layer injected into every command at
// construction.
type Services struct {
	State     *state.Service
	Items     *item.Service
	Inventory *inventory.Service
	Scenes    *scene.Service
	Scoring   *scoring.Service
}

// Command is one player-facing verb. Execute receives the token the
// player actually typed (name or alias) and the rest of the line;
// parsing the rest is the command's own business.
type Command interface {
	Name() string
	Aliases() []string
	CanExecute() bool
	Execute(matched, args string) types.CommandResult
}

// Registry holds every registered command, indexed under each of its
// names. Multiple map entries may reference the same command instance;
// identity, not name, is the unit of uniqueness for listing.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: map[string]Command{}}
}

// Register inserts a command under its name and every alias,
// lower-cased.
func (r *Registry) Register(cmd Command) {
	r.commands[strings.ToLower(cmd.Name())] = cmd
	for _, alias := range cmd.Aliases() {
		r.commands[strings.ToLower(alias)] = cmd
	}
}

// Commands returns the distinct registered commands, sorted by name.
func (r *Registry) Commands() []Command {
	seen := map[string]bool{}
	var out []Command
	for _, cmd := range r.commands {
		if seen[cmd.Name()] {
			continue
		}
		seen[cmd.Name()] = true
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Find locates the command for an input line: exact full-input match
// first (for the rare multi-word command name), then the first
// whitespace-delimited token. Returns the command, the token it
// matched, and the remaining args.
func (r *Registry) Find(input string) (Command, string, string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return nil, "", "", false
	}

	if cmd, ok := r.commands[lower]; ok {
		return cmd, lower, "", true
	}

	token, args, _ := strings.Cut(lower, " ")
	if cmd, ok := r.commands[token]; ok {
		return cmd, token, strings.TrimSpace(args), true
	}
	return nil, token, "", false
}

// Execute runs one input line end to end. Empty input and unknown
// verbs are failures; anything a command panics with is caught here
// and converted to a generic failure — errors never propagate to the
// caller.
func (r *Registry) Execute(input string) (result types.CommandResult) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("command %q panicked: %v", input, rec)
			result = types.CommandResult{
				Success:      false,
				Message:      "Something went wrong. Nothing happens.",
				CountsAsMove: false,
			}
		}
	}()

	if strings.TrimSpace(input) == "" {
		return types.CommandResult{Success: false, Message: "What?"}
	}

	cmd, matched, args, ok := r.Find(input)
	if !ok {
		return types.CommandResult{Success: false, Message: r.unknownMessage(matched)}
	}
	if !cmd.CanExecute() {
		return types.CommandResult{
			Success: false,
			Message: fmt.Sprintf("You can't %s right now.", cmd.Name()),
		}
	}

	return cmd.Execute(matched, args)
}

// unknownMessage names the unrecognized verb and, when the registry
// has anything close, offers deterministic sorted suggestions.
func (r *Registry) unknownMessage(verb string) string {
	suggestions := r.Suggestions(verb)
	if len(suggestions) == 0 {
		return fmt.Sprintf("I don't know the word %q.", verb)
	}
	return fmt.Sprintf("I don't know the word %q. Did you mean %s?",
		verb, strings.Join(suggestions, ", "))
}
