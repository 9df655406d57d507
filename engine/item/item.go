// Package item encapsulates all item interaction rules: taking,
// containers, locks, light sources, and fuzzy name matching. Expected
// failures are results with a reason, never errors.
package item

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/engine/script"
	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/logging"
	"github.com/dirkkok101/zorkcore/types"
)

const (
	defaultItemSize          = 5
	defaultContainerCapacity = 10
)

var log = logging.Component("item")

// Service implements the item business rules.
type Service struct {
	state *state.Service
}

// NewService creates the item service.
func NewService(st *state.Service) *Service {
	return &Service{state: st}
}

// Get looks up an item by id.
func (s *Service) Get(itemID string) (*types.Item, bool) {
	return s.state.Item(itemID)
}

// CanTake reports whether the item can be picked up at all: it must be
// portable and visible.
func (s *Service) CanTake(itemID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !it.Visible {
		return types.Failure("You can't see any such thing.")
	}
	if !it.Portable {
		return types.Failure(fmt.Sprintf("The %s is securely anchored.", it.Name))
	}
	return types.ActionResult{Success: true}
}

// OpenItem opens a container or openable item. A locked item fails
// with a locked message unless a key is supplied, in which case unlock
// is attempted first and opening proceeds only on success.
func (s *Service) OpenItem(itemID, keyID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !it.IsOpenable() {
		return types.Failure(fmt.Sprintf("You can't open the %s.", it.Name))
	}
	if it.State.Open {
		return types.Failure(fmt.Sprintf("The %s is already open.", it.Name))
	}
	if it.State.IsLocked {
		if keyID == "" {
			return types.Failure(fmt.Sprintf("The %s is locked.", it.Name))
		}
		if res := s.UnlockItem(itemID, keyID); !res.Success {
			return res
		}
	}

	s.state.UpdateItemState(itemID, func(st *types.ItemState) {
		st.Open = true
	})
	msg := fmt.Sprintf("You open the %s.", it.Name)
	if len(it.State.Contents) > 0 {
		msg += fmt.Sprintf(" It contains %s.", s.contentsList(it))
	}
	return types.Ok(msg)
}

// CloseItem closes an open container or openable item.
func (s *Service) CloseItem(itemID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !it.IsOpenable() {
		return types.Failure(fmt.Sprintf("You can't close the %s.", it.Name))
	}
	if !it.State.Open {
		return types.Failure(fmt.Sprintf("The %s is already closed.", it.Name))
	}

	s.state.UpdateItemState(itemID, func(st *types.ItemState) {
		st.Open = false
	})
	return types.Ok(fmt.Sprintf("You close the %s.", it.Name))
}

// LockItem locks a lockable item, checking the key against the item's
// required key when one is specified.
func (s *Service) LockItem(itemID, keyID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !it.IsLockable() {
		return types.Failure(fmt.Sprintf("The %s has no lock.", it.Name))
	}
	if it.State.IsLocked {
		return types.Failure(fmt.Sprintf("The %s is already locked.", it.Name))
	}
	if res := s.checkKey(it, keyID); !res.Success {
		return res
	}

	s.state.UpdateItemState(itemID, func(st *types.ItemState) {
		st.IsLocked = true
	})
	return types.Ok(fmt.Sprintf("The %s is now locked.", it.Name))
}

// UnlockItem unlocks a lockable item with a matching key.
func (s *Service) UnlockItem(itemID, keyID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !it.IsLockable() {
		return types.Failure(fmt.Sprintf("The %s has no lock.", it.Name))
	}
	if !it.State.IsLocked {
		return types.Failure(fmt.Sprintf("The %s is already unlocked.", it.Name))
	}
	if res := s.checkKey(it, keyID); !res.Success {
		return res
	}

	s.state.UpdateItemState(itemID, func(st *types.ItemState) {
		st.IsLocked = false
	})
	return types.Ok(fmt.Sprintf("The %s is now unlocked.", it.Name))
}

// checkKey validates the supplied key against the item's required key.
// Items without a required key accept any key.
func (s *Service) checkKey(it *types.Item, keyID string) types.ActionResult {
	required := it.Properties.String("requiredKey", "")
	if required == "" {
		return types.ActionResult{Success: true}
	}
	if keyID == "" {
		return types.Failure(fmt.Sprintf("The %s needs a key.", it.Name))
	}
	if keyID != required {
		key, ok := s.state.Item(keyID)
		if ok {
			return types.Failure(fmt.Sprintf("The %s doesn't fit the %s.", key.Name, it.Name))
		}
		return types.Failure(fmt.Sprintf("That doesn't fit the %s.", it.Name))
	}
	return types.ActionResult{Success: true}
}

// AddToContainer places an item inside a container. The checks run in
// a fixed order — existence, is-a-container, not locked, open (before
// any size check), item fits, cumulative capacity — and the first
// failure short-circuits with its own message. Only full success
// mutates state.
func (s *Service) AddToContainer(containerID, itemID string) types.ActionResult {
	container, ok := s.state.Item(containerID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !container.IsContainer() {
		return types.Failure(fmt.Sprintf("You can't put anything in the %s.", container.Name))
	}
	if container.State.IsLocked {
		return types.Failure(fmt.Sprintf("The %s is locked.", container.Name))
	}
	if !container.State.Open {
		return types.Failure(fmt.Sprintf("The %s is closed.", container.Name))
	}

	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	for _, id := range container.State.Contents {
		if id == itemID {
			return types.Failure(fmt.Sprintf("The %s is already in the %s.", it.Name, container.Name))
		}
	}

	capacity := container.Properties.Int("capacity", defaultContainerCapacity)
	size := itemSize(it)
	if size > capacity {
		return types.Failure(fmt.Sprintf("The %s won't fit in the %s.", it.Name, container.Name))
	}
	used := 0
	for _, id := range container.State.Contents {
		if held, ok := s.state.Item(id); ok {
			used += itemSize(held)
		}
	}
	if used+size > capacity {
		return types.Failure(fmt.Sprintf("There's no room for the %s in the %s.", it.Name, container.Name))
	}

	s.state.UpdateItemState(containerID, func(st *types.ItemState) {
		st.Contents = append(st.Contents, itemID)
	})
	return types.Ok(fmt.Sprintf("You put the %s in the %s.", it.Name, container.Name))
}

// RemoveFromContainer takes an item out of a container's contents.
func (s *Service) RemoveFromContainer(containerID, itemID string) types.ActionResult {
	container, ok := s.state.Item(containerID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !container.State.Open {
		return types.Failure(fmt.Sprintf("The %s is closed.", container.Name))
	}

	found := false
	for _, id := range container.State.Contents {
		if id == itemID {
			found = true
			break
		}
	}
	if !found {
		return types.Failure(fmt.Sprintf("The %s isn't in the %s.", it.Name, container.Name))
	}

	s.state.UpdateItemState(containerID, func(st *types.ItemState) {
		for i, id := range st.Contents {
			if id == itemID {
				st.Contents = append(st.Contents[:i], st.Contents[i+1:]...)
				return
			}
		}
	})
	return types.Ok(fmt.Sprintf("You take the %s out of the %s.", it.Name, container.Name))
}

// LightOn lights a light source. A fuel-tracked source with no fuel
// left won't light.
func (s *Service) LightOn(itemID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !it.IsLightSource() {
		return types.Failure(fmt.Sprintf("You can't light the %s.", it.Name))
	}
	if it.State.IsLit {
		return types.Failure(fmt.Sprintf("The %s is already on.", it.Name))
	}
	if it.Properties.Has("remainingFuel") && it.Properties.Int("remainingFuel", 0) <= 0 {
		return types.Failure(fmt.Sprintf("The %s has burned out.", it.Name))
	}

	s.state.UpdateItemState(itemID, func(st *types.ItemState) {
		st.IsLit = true
	})
	return types.Ok(fmt.Sprintf("The %s is now on.", it.Name))
}

// LightOff extinguishes a light source.
func (s *Service) LightOff(itemID string) types.ActionResult {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	if !it.IsLightSource() {
		return types.Failure(fmt.Sprintf("You can't turn off the %s.", it.Name))
	}
	if !it.State.IsLit {
		return types.Failure(fmt.Sprintf("The %s is already off.", it.Name))
	}

	s.state.UpdateItemState(itemID, func(st *types.ItemState) {
		st.IsLit = false
	})
	return types.Ok(fmt.Sprintf("The %s is now off.", it.Name))
}

// Interact runs the item's authored interaction for a verb, if one
// exists and its condition holds. Script failures are logged and
// treated as no interaction rather than surfacing to the player.
func (s *Service) Interact(itemID, verb string) (types.ActionResult, bool) {
	it, ok := s.state.Item(itemID)
	if !ok {
		return types.ActionResult{}, false
	}
	for _, in := range it.Interactions {
		if in.Command != verb {
			continue
		}
		pass, err := script.EvalCondition(in.Condition, it)
		if err != nil {
			log.Warnf("item %s interaction %q: %v", it.ID, verb, err)
			continue
		}
		if !pass {
			continue
		}
		if err := script.RunEffect(in.Effect, it); err != nil {
			log.Warnf("item %s interaction %q: %v", it.ID, verb, err)
			continue
		}
		return types.ActionResult{Success: true, Message: in.Message, StateChanged: in.Effect != ""}, true
	}
	return types.ActionResult{}, false
}

// contentsList renders a container's contents as prose.
func (s *Service) contentsList(container *types.Item) string {
	names := ""
	for i, id := range container.State.Contents {
		name := id
		if held, ok := s.state.Item(id); ok {
			name = held.Name
		}
		switch {
		case i == 0:
			names = "a " + name
		case i == len(container.State.Contents)-1:
			names += " and a " + name
		default:
			names += ", a " + name
		}
	}
	return names
}

// itemSize returns the space an item takes up in a container:
// properties.size, falling back to the item's weight, falling back to
// a constant.
func itemSize(it *types.Item) int {
	if it.Properties.Has("size") {
		return it.Properties.Int("size", defaultItemSize)
	}
	if it.Weight > 0 {
		return it.Weight
	}
	return defaultItemSize
}
