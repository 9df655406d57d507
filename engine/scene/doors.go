package scene

import (
	"fmt"

	"github.com/dirkkok101/zorkcore/types"
)

// doorFlags maps door item ids to the named flag that tracks their
// open state. Doors are scene-level obstacles shared across exit
// conditions and descriptions, so their state lives in the flag table
// rather than on the item.
var doorFlags = map[string]string{
	"trap_door":      "trap_door_open",
	"front_door":     "front_door_open",
	"kitchen_window": "kitchen_window_open",
	"grating":        "grating_open",
	"barrow_door":    "barrow_door_open",
}

// DoorFlag returns the flag name tracking a door's open state.
func DoorFlag(doorID string) (string, bool) {
	flag, ok := doorFlags[doorID]
	return flag, ok
}

// isDoor reports whether the item is a door obstacle.
func (s *Service) isDoor(doorID string) (*types.Item, bool) {
	it, ok := s.state.Item(doorID)
	if !ok || !it.HasTag("door") {
		return nil, false
	}
	return it, true
}

// CanOpenDoor checks whether the door exists and is currently closed.
func (s *Service) CanOpenDoor(doorID string) types.ActionResult {
	it, ok := s.isDoor(doorID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	flag, ok := doorFlags[doorID]
	if !ok {
		return types.Failure(fmt.Sprintf("The %s won't budge.", it.Name))
	}
	if s.state.Flag(flag) {
		return types.Failure(fmt.Sprintf("The %s is already open.", it.Name))
	}
	return types.ActionResult{Success: true}
}

// OpenDoor opens a door by setting its tracking flag.
func (s *Service) OpenDoor(doorID string) types.ActionResult {
	if res := s.CanOpenDoor(doorID); !res.Success {
		return res
	}
	it, _ := s.isDoor(doorID)
	flag, _ := doorFlags[doorID]
	s.state.SetFlag(flag, true)
	return types.Ok(fmt.Sprintf("The %s opens.", it.Name))
}

// CanCloseDoor checks whether the door exists and is currently open.
func (s *Service) CanCloseDoor(doorID string) types.ActionResult {
	it, ok := s.isDoor(doorID)
	if !ok {
		return types.Failure("You can't see any such thing.")
	}
	flag, ok := doorFlags[doorID]
	if !ok {
		return types.Failure(fmt.Sprintf("The %s won't budge.", it.Name))
	}
	if !s.state.Flag(flag) {
		return types.Failure(fmt.Sprintf("The %s is already closed.", it.Name))
	}
	return types.ActionResult{Success: true}
}

// CloseDoor closes a door by clearing its tracking flag.
func (s *Service) CloseDoor(doorID string) types.ActionResult {
	if res := s.CanCloseDoor(doorID); !res.Success {
		return res
	}
	it, _ := s.isDoor(doorID)
	flag, _ := doorFlags[doorID]
	s.state.SetFlag(flag, false)
	return types.Ok(fmt.Sprintf("The %s closes.", it.Name))
}
