// Package scene implements scene description, exit filtering via
// condition evaluation, movement, and door state. Reading a scene's
// description marks it visited: first-visit text, visit counting and
// first-visit scoring all hang off that one side effect.
package scene

import (
	"fmt"
	"strings"

	"github.com/dirkkok101/zorkcore/engine/inventory"
	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/types"
)

// Service implements the scene business rules.
type Service struct {
	state     *state.Service
	inventory *inventory.Service
}

// NewService creates the scene service. The inventory service backs
// the dynamic exit conditions (light_load, empty_handed).
func NewService(st *state.Service, inv *inventory.Service) *Service {
	return &Service{state: st, inventory: inv}
}

// Get looks up a scene by id.
func (s *Service) Get(sceneID string) (*types.Scene, bool) {
	return s.state.Scene(sceneID)
}

// Current returns the scene the player is in.
func (s *Service) Current() (*types.Scene, bool) {
	return s.state.Scene(s.state.CurrentSceneID())
}

// Description returns the scene's title and description, using the
// first-visit text when the player has never been here and one exists.
// Reading the description marks the scene visited — deliberately a
// write inside a get, so visit state and scoring can never
// desynchronize.
func (s *Service) Description(sceneID string) (string, bool) {
	sc, ok := s.state.Scene(sceneID)
	if !ok {
		return "", false
	}

	body := sc.Description
	if !s.state.Visited(sceneID) && sc.FirstVisitDescription != "" {
		body = sc.FirstVisitDescription
	}
	s.state.MarkVisited(sceneID)

	return sc.Title + "\n" + body, true
}

// Describe renders the full player-facing view of a scene:
// description, visible items, and monsters present.
func (s *Service) Describe(sceneID string) string {
	desc, ok := s.Description(sceneID)
	if !ok {
		return "You are somewhere unknown."
	}

	var b strings.Builder
	b.WriteString(desc)

	for _, it := range s.VisibleItems(sceneID) {
		b.WriteString(fmt.Sprintf("\nThere is a %s here.", it.Name))
	}
	for _, m := range s.MonstersPresent(sceneID) {
		b.WriteString("\n" + m.Description)
	}
	return b.String()
}

// VisibleItems returns the items currently in the scene that the
// player can see: the item itself must be visible, the authored
// placement must be visible, and any placement condition must hold.
func (s *Service) VisibleItems(sceneID string) []*types.Item {
	sc, ok := s.state.Scene(sceneID)
	if !ok {
		return nil
	}

	var items []*types.Item
	for _, id := range s.state.SceneItems(sceneID) {
		it, ok := s.state.Item(id)
		if !ok || !it.Visible {
			continue
		}
		if entry, authored := sc.ItemEntry(id); authored {
			if !entry.Visible {
				continue
			}
			if entry.Condition != "" && !s.evalCondition(entry.Condition) {
				continue
			}
		}
		items = append(items, it)
	}
	return items
}

// MonstersPresent returns the monsters currently in the scene,
// skipping dead and lurking ones.
func (s *Service) MonstersPresent(sceneID string) []*types.Monster {
	var present []*types.Monster
	for _, m := range s.state.Monsters() {
		if m.CurrentSceneID != sceneID {
			continue
		}
		if m.State == types.MonsterDead || m.State == types.MonsterLurking {
			continue
		}
		present = append(present, m)
	}
	return present
}

// AvailableExits returns the exits the player can currently see and
// evaluate: not hidden, with all conditions holding. Locked exits are
// listed (the player can see a locked door) but block movement.
func (s *Service) AvailableExits(sceneID string) []types.Exit {
	sc, ok := s.state.Scene(sceneID)
	if !ok {
		return nil
	}

	var exits []types.Exit
	for _, exit := range sc.Exits {
		if exit.Hidden {
			continue
		}
		if !s.evalConditions(exit.Condition) {
			continue
		}
		exits = append(exits, exit)
	}
	return exits
}

// findExit resolves a direction against a scene's exits: exact match
// first, then the first exit whose direction starts with the input
// ("n" for "north"). Content design keeps direction lists unambiguous;
// the engine takes the first match.
func (s *Service) findExit(sceneID, direction string) (types.Exit, bool) {
	sc, ok := s.state.Scene(sceneID)
	if !ok {
		return types.Exit{}, false
	}
	dir := strings.ToLower(direction)

	for _, exit := range sc.Exits {
		if strings.ToLower(exit.Direction) == dir {
			return exit, true
		}
	}
	for _, exit := range sc.Exits {
		if strings.HasPrefix(strings.ToLower(exit.Direction), dir) {
			return exit, true
		}
	}
	return types.Exit{}, false
}

// VisibleItemIDs is VisibleItems reduced to ids, in the same order.
func (s *Service) VisibleItemIDs(sceneID string) []string {
	items := s.VisibleItems(sceneID)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// ResolveExit resolves a direction from the current scene without
// checking conditions or locks.
func (s *Service) ResolveExit(direction string) (types.Exit, bool) {
	return s.findExit(s.state.CurrentSceneID(), direction)
}

// CanMoveTo checks whether moving in a direction from the current
// scene would succeed, without moving.
func (s *Service) CanMoveTo(direction string) types.ActionResult {
	exit, ok := s.findExit(s.state.CurrentSceneID(), direction)
	if !ok || exit.Hidden {
		return types.Failure("You can't go that way.")
	}
	if !s.evalConditions(exit.Condition) {
		if exit.FailureMessage != "" {
			return types.Failure(exit.FailureMessage)
		}
		return types.Failure("You can't go that way.")
	}
	if exit.Locked {
		if exit.FailureMessage != "" {
			return types.Failure(exit.FailureMessage)
		}
		return types.Failure("The way is locked.")
	}
	return types.ActionResult{Success: true}
}

// MoveTo moves the player in a direction. On success the destination
// becomes the current scene and the result message is its full
// description (marking it visited).
func (s *Service) MoveTo(direction string) types.ActionResult {
	if res := s.CanMoveTo(direction); !res.Success {
		return res
	}

	exit, _ := s.findExit(s.state.CurrentSceneID(), direction)
	s.state.SetCurrentScene(exit.To)
	return types.Ok(s.Describe(exit.To))
}

// evalConditions is a logical AND over each condition in the list. An
// empty list is vacuously true.
func (s *Service) evalConditions(conditions []string) bool {
	for _, c := range conditions {
		if !s.evalCondition(c) {
			return false
		}
	}
	return true
}

// evalCondition evaluates a single condition name. The two reserved
// pseudo-flags are resolved dynamically against the inventory; every
// other name is a flag lookup. A leading "!" negates.
func (s *Service) evalCondition(cond string) bool {
	if cond == "" {
		return true
	}
	if strings.HasPrefix(cond, "!") {
		return !s.evalCondition(cond[1:])
	}
	switch cond {
	case "light_load":
		return s.inventory.HasLightLoad()
	case "empty_handed":
		return s.inventory.IsEmptyHanded()
	default:
		return s.state.Flag(cond)
	}
}
