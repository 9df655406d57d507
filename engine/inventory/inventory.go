// Package inventory tracks the player-carried item list and enforces
// the carrying limits that gate narrow passages.
package inventory

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/types"
)

// Limits configures carrying capacity. Zero values fall back to the
// defaults.
type Limits struct {
	MaxItems       int // maximum number of carried items
	MaxWeight      int // maximum total carried weight
	LightLoadLimit int // total weight at or under this counts as a light load
}

// DefaultLimits mirrors the original game's load allowance.
var DefaultLimits = Limits{
	MaxItems:       20,
	MaxWeight:      100,
	LightLoadLimit: 15,
}

// Service enforces carrying-capacity and weight accounting.
type Service struct {
	state  *state.Service
	limits Limits
}

// NewService creates the inventory service. Zero-valued limit fields
// take their defaults.
func NewService(st *state.Service, limits Limits) *Service {
	if limits.MaxItems == 0 {
		limits.MaxItems = DefaultLimits.MaxItems
	}
	if limits.MaxWeight == 0 {
		limits.MaxWeight = DefaultLimits.MaxWeight
	}
	if limits.LightLoadLimit == 0 {
		limits.LightLoadLimit = DefaultLimits.LightLoadLimit
	}
	return &Service{state: st, limits: limits}
}

// Items returns the ordered carried item ids.
func (s *Service) Items() []string {
	return s.state.Inventory()
}

// Has reports whether the player carries the item.
func (s *Service) Has(itemID string) bool {
	return s.state.Carrying(itemID)
}

// Count returns the number of carried items.
func (s *Service) Count() int {
	return len(s.state.Inventory())
}

// TotalWeight sums the weight of every carried item. Items missing
// from the world weigh nothing.
func (s *Service) TotalWeight() int {
	total := 0
	for _, id := range s.state.Inventory() {
		if it, ok := s.state.Item(id); ok {
			total += it.Weight
		}
	}
	return total
}

// AddItem puts an item into the player's hands, enforcing existence,
// the item-count limit, and the weight limit. Checks run before any
// mutation.
func (s *Service) AddItem(itemID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure(fmt.Sprintf("There is no such thing as %q.", itemID))
	}
	if s.Has(itemID) {
		return types.Failure(fmt.Sprintf("You already have the %s.", it.Name))
	}
	if s.Count() >= s.limits.MaxItems {
		return types.Failure("Your hands are full.")
	}
	if s.TotalWeight()+it.Weight > s.limits.MaxWeight {
		return types.Failure(fmt.Sprintf("The %s is too heavy to carry with everything else you have.", it.Name))
	}

	s.state.AddToInventory(itemID)
	return types.Ok(fmt.Sprintf("You take the %s.", it.Name))
}

// RemoveItem takes an item out of the player's hands.
func (s *Service) RemoveItem(itemID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure(fmt.Sprintf("There is no such thing as %q.", itemID))
	}
	if !s.state.RemoveFromInventory(itemID) {
		return types.Failure(fmt.Sprintf("You aren't carrying the %s.", it.Name))
	}
	return types.Ok(fmt.Sprintf("You drop the %s.", it.Name))
}

// HasLightLoad reports whether total carried weight is at or under the
// light-load threshold. Exit conditions use this for passages too
// narrow for a laden adventurer.
func (s *Service) HasLightLoad() bool {
	return s.TotalWeight() <= s.limits.LightLoadLimit
}

// IsEmptyHanded reports whether the player carries nothing at all.
func (s *Service) IsEmptyHanded() bool {
	return s.Count() == 0
}
