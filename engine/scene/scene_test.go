package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zorkcore/engine/inventory"
	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/types"
)

func testServices() (*state.Service, *inventory.Service, *Service) {
	items := []*types.Item{
		{ID: "coil", Name: "large coil of rope", Portable: true, Visible: true, Weight: 10,
			State: types.ItemState{Contents: []string{}}},
		{ID: "lamp", Name: "brass lantern", Portable: true, Visible: true, Weight: 8,
			State: types.ItemState{Contents: []string{}}},
		{ID: "trap_door", Name: "trap door", Visible: true, Tags: []string{"door"},
			State: types.ItemState{Contents: []string{}}},
	}
	scenes := []*types.Scene{
		{
			ID: "attic", Title: "Attic",
			Description:           "This is the attic. A narrow stairway leads down.",
			FirstVisitDescription: "You find yourself in a dusty attic you have never seen before.",
			Exits: []types.Exit{
				{Direction: "down", To: "kitchen", Condition: []string{"light_load"},
					FailureMessage: "The stairway is too narrow to descend with such a load."},
			},
			Items: []types.SceneItem{{ItemID: "coil", Visible: true}},
		},
		{
			ID: "kitchen", Title: "Kitchen", Description: "You are in the kitchen.",
			Exits: []types.Exit{
				{Direction: "up", To: "attic"},
				{Direction: "west", To: "living_room", Condition: []string{"trap_door_open"}},
				{Direction: "east", To: "pantry", Hidden: true},
			},
			Items: []types.SceneItem{
				{ItemID: "lamp", Visible: true},
				{ItemID: "trap_door", Visible: true, Condition: "rug_moved"},
			},
		},
		{ID: "living_room", Title: "Living Room", Description: "A comfortable living room."},
		{ID: "pantry", Title: "Pantry", Description: "A cramped pantry."},
	}
	monsters := []*types.Monster{
		{ID: "thief", Name: "thief", Description: "A seedy thief lurks in the shadows.",
			State: types.MonsterHostile, CurrentSceneID: "kitchen"},
		{ID: "ghost", Name: "ghost", Description: "A ghost.",
			State: types.MonsterLurking, CurrentSceneID: "kitchen"},
	}
	st := state.NewService(types.NewGameState("attic", items, scenes, monsters))
	inv := inventory.NewService(st, inventory.DefaultLimits)
	return st, inv, NewService(st, inv)
}

func TestDescriptionMarksVisited(t *testing.T) {
	st, _, svc := testServices()

	require.False(t, st.Visited("attic"))

	desc, ok := svc.Description("attic")
	require.True(t, ok)
	assert.Contains(t, desc, "dusty attic", "first visit uses first-visit text")
	assert.True(t, st.Visited("attic"), "reading the description marks the scene visited")

	desc, _ = svc.Description("attic")
	assert.Contains(t, desc, "narrow stairway", "later visits use the standard text")
}

func TestDescribeListsItemsAndMonsters(t *testing.T) {
	_, _, svc := testServices()

	out := svc.Describe("kitchen")
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "There is a brass lantern here.")
	assert.Contains(t, out, "seedy thief", "hostile monsters are described")
	assert.NotContains(t, out, "ghost", "lurking monsters stay unseen")
	assert.NotContains(t, out, "trap door", "condition-gated placement hidden until flag set")
}

func TestVisibleItemsCondition(t *testing.T) {
	st, _, svc := testServices()

	ids := svc.VisibleItemIDs("kitchen")
	assert.Equal(t, []string{"lamp"}, ids)

	st.SetFlag("rug_moved", true)
	ids = svc.VisibleItemIDs("kitchen")
	assert.Equal(t, []string{"lamp", "trap_door"}, ids)
}

func TestAvailableExits(t *testing.T) {
	st, _, svc := testServices()

	exits := svc.AvailableExits("kitchen")
	require.Len(t, exits, 1, "hidden and condition-failed exits are filtered")
	assert.Equal(t, "up", exits[0].Direction)

	st.SetFlag("trap_door_open", true)
	exits = svc.AvailableExits("kitchen")
	require.Len(t, exits, 2)
}

func TestNarrowPassageBlocksHeavyLoad(t *testing.T) {
	st, inv, svc := testServices()

	// Carrying 18 of weight: over the light-load threshold.
	require.True(t, inv.AddItem("coil").Success)
	require.True(t, inv.AddItem("lamp").Success)
	require.False(t, inv.HasLightLoad())

	res := svc.CanMoveTo("down")
	assert.False(t, res.Success)
	assert.Equal(t, "The stairway is too narrow to descend with such a load.", res.Message)

	res = svc.MoveTo("down")
	assert.False(t, res.Success)
	assert.Equal(t, "attic", st.CurrentSceneID(), "failed moves go nowhere")

	// Dropping the rope brings the load back under the threshold.
	require.True(t, inv.RemoveItem("coil").Success)
	require.True(t, inv.HasLightLoad())

	res = svc.MoveTo("down")
	require.True(t, res.Success)
	assert.Equal(t, "kitchen", st.CurrentSceneID())
	assert.Contains(t, res.Message, "Kitchen", "arrival describes the destination")
}

func TestDirectionPrefixMatching(t *testing.T) {
	_, _, svc := testServices()

	exit, ok := svc.ResolveExit("d")
	require.True(t, ok)
	assert.Equal(t, "kitchen", exit.To)

	exit, ok = svc.ResolveExit("down")
	require.True(t, ok)
	assert.Equal(t, "kitchen", exit.To)

	_, ok = svc.ResolveExit("north")
	assert.False(t, ok)
}

func TestMoveUnknownDirection(t *testing.T) {
	_, _, svc := testServices()

	res := svc.CanMoveTo("north")
	assert.False(t, res.Success)
	assert.Equal(t, "You can't go that way.", res.Message)
}

func TestNegatedCondition(t *testing.T) {
	st, _, svc := testServices()

	assert.True(t, svc.evalCondition("!dam_open"))
	st.SetFlag("dam_open", true)
	assert.False(t, svc.evalCondition("!dam_open"))
}

func TestDoorFlags(t *testing.T) {
	st, _, svc := testServices()

	flag, ok := DoorFlag("trap_door")
	require.True(t, ok)
	assert.Equal(t, "trap_door_open", flag)

	res := svc.OpenDoor("trap_door")
	require.True(t, res.Success)
	assert.True(t, st.Flag("trap_door_open"))

	res = svc.OpenDoor("trap_door")
	assert.False(t, res.Success, "already open")

	res = svc.CloseDoor("trap_door")
	require.True(t, res.Success)
	assert.False(t, st.Flag("trap_door_open"))
}
