// Package state provides the sole read/write gateway to the canonical
// GameState. Every other service holds a *Service and never touches the
// state object directly; all mutation is synchronous and in place, so
// multi-step operations must validate before they mutate.
package state

import (
	"github.com/dirkkok101/zorkcore/types"
)

// Service owns the single mutable GameState for a session.
type Service struct {
	gs *types.GameState
}

// NewService wraps an explicitly constructed game state. The state is
// shared by reference: callers that hold the same *GameState observe
// every mutation.
func NewService(gs *types.GameState) *Service {
	return &Service{gs: gs}
}

// CurrentSceneID returns the player's current scene.
func (s *Service) CurrentSceneID() string {
	return s.gs.CurrentSceneID
}

// SetCurrentScene moves the player to sceneID. Callers are expected to
// have validated the move (exit exists, conditions hold).
func (s *Service) SetCurrentScene(sceneID string) {
	s.gs.CurrentSceneID = sceneID
}

// Flag returns the value of a named flag. Unset flags read false.
func (s *Service) Flag(name string) bool {
	return s.gs.Flags[name]
}

// SetFlag sets a named flag.
func (s *Service) SetFlag(name string, value bool) {
	s.gs.Flags[name] = value
}

// HasFlag reports whether the flag has ever been set, regardless of
// value.
func (s *Service) HasFlag(name string) bool {
	_, ok := s.gs.Flags[name]
	return ok
}

// Score returns the current score.
func (s *Service) Score() int {
	return s.gs.Score
}

// AddScore adds points (possibly negative) to the score.
func (s *Service) AddScore(points int) {
	s.gs.Score += points
}

// Moves returns the move counter.
func (s *Service) Moves() int {
	return s.gs.Moves
}

// IncrementMoves advances the move counter by one.
func (s *Service) IncrementMoves() {
	s.gs.Moves++
}

// Item looks up an item by id.
func (s *Service) Item(id string) (*types.Item, bool) {
	it, ok := s.gs.Items[id]
	return it, ok
}

// Scene looks up a scene by id.
func (s *Service) Scene(id string) (*types.Scene, bool) {
	sc, ok := s.gs.Scenes[id]
	return sc, ok
}

// Monster looks up a monster by id.
func (s *Service) Monster(id string) (*types.Monster, bool) {
	m, ok := s.gs.Monsters[id]
	return m, ok
}

// Monsters returns the id-indexed monster map. Callers iterate it for
// per-turn behavior; mutation still goes through the service.
func (s *Service) Monsters() map[string]*types.Monster {
	return s.gs.Monsters
}

// Inventory returns the ordered list of carried item ids. The returned
// slice is the live list; callers that only read must not append.
func (s *Service) Inventory() []string {
	return s.gs.Inventory
}

// AddToInventory appends an item id to the carried list.
func (s *Service) AddToInventory(itemID string) {
	s.gs.Inventory = append(s.gs.Inventory, itemID)
}

// RemoveFromInventory removes an item id from the carried list.
// Returns whether it was present.
func (s *Service) RemoveFromInventory(itemID string) bool {
	for i, id := range s.gs.Inventory {
		if id == itemID {
			s.gs.Inventory = append(s.gs.Inventory[:i], s.gs.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Carrying reports whether the player holds the item.
func (s *Service) Carrying(itemID string) bool {
	for _, id := range s.gs.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// sceneState returns the runtime record for a scene, creating it on
// first touch.
func (s *Service) sceneState(sceneID string) *types.SceneState {
	ss, ok := s.gs.SceneStates[sceneID]
	if !ok {
		ss = &types.SceneState{Items: []string{}, Variables: types.Bag{}}
		s.gs.SceneStates[sceneID] = ss
	}
	return ss
}

// Visited reports whether the player has seen the scene's description.
func (s *Service) Visited(sceneID string) bool {
	return s.sceneState(sceneID).Visited
}

// MarkVisited records that the scene has been described to the player.
func (s *Service) MarkVisited(sceneID string) {
	s.sceneState(sceneID).Visited = true
}

// SceneItems returns the ids of items currently placed in the scene.
func (s *Service) SceneItems(sceneID string) []string {
	return s.sceneState(sceneID).Items
}

// SceneContains reports whether the item is currently in the scene.
func (s *Service) SceneContains(sceneID, itemID string) bool {
	for _, id := range s.sceneState(sceneID).Items {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddItemToScene places an item on the scene floor.
func (s *Service) AddItemToScene(sceneID, itemID string) {
	ss := s.sceneState(sceneID)
	ss.Items = append(ss.Items, itemID)
}

// RemoveItemFromScene takes an item off the scene floor. Returns
// whether it was present.
func (s *Service) RemoveItemFromScene(sceneID, itemID string) bool {
	ss := s.sceneState(sceneID)
	for i, id := range ss.Items {
		if id == itemID {
			ss.Items = append(ss.Items[:i], ss.Items[i+1:]...)
			return true
		}
	}
	return false
}

// SceneVariable reads a scene-local runtime variable.
func (s *Service) SceneVariable(sceneID, key string) (any, bool) {
	v, ok := s.sceneState(sceneID).Variables[key]
	return v, ok
}

// SetSceneVariable writes a scene-local runtime variable.
func (s *Service) SetSceneVariable(sceneID, key string, value any) {
	ss := s.sceneState(sceneID)
	if ss.Variables == nil {
		ss.Variables = types.Bag{}
	}
	ss.Variables[key] = value
}

// Variable reads a global runtime variable.
func (s *Service) Variable(key string) (any, bool) {
	v, ok := s.gs.Variables[key]
	return v, ok
}

// SetVariable writes a global runtime variable.
func (s *Service) SetVariable(key string, value any) {
	if s.gs.Variables == nil {
		s.gs.Variables = types.Bag{}
	}
	s.gs.Variables[key] = value
}

// UpdateItemState applies a partial update to an item's mutable
// sub-record via the mutator, which receives the live state and merges
// only the fields it means to change. Object-valued sub-fields must be
// merged, not replaced, so sibling keys survive.
func (s *Service) UpdateItemState(itemID string, mutate func(*types.ItemState)) bool {
	it, ok := s.gs.Items[itemID]
	if !ok {
		return false
	}
	mutate(&it.State)
	return true
}

// UpdateMonster applies a mutation to a monster in place.
func (s *Service) UpdateMonster(monsterID string, mutate func(*types.Monster)) bool {
	m, ok := s.gs.Monsters[monsterID]
	if !ok {
		return false
	}
	mutate(m)
	return true
}

// MoveMonster relocates a monster to a scene.
func (s *Service) MoveMonster(monsterID, sceneID string) bool {
	return s.UpdateMonster(monsterID, func(m *types.Monster) {
		m.CurrentSceneID = sceneID
	})
}

// State returns the whole game state. Used by persistence, which
// serializes it verbatim.
func (s *Service) State() *types.GameState {
	return s.gs
}

// Replace swaps in a restored game state wholesale. Persistence
// validates before calling; there is no partial apply.
func (s *Service) Replace(gs *types.GameState) {
	*s.gs = *gs
}
