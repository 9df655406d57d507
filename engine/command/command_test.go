package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zorkcore/engine/inventory"
	"github.com/dirkkok101/zorkcore/engine/item"
	"github.com/dirkkok101/zorkcore/engine/scene"
	"github.com/dirkkok101/zorkcore/engine/scoring"
	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/types"
)

// testWorld builds a small house: living room with trophy case and
// rug, attic above with a rope coil, kitchen to the east.
func testWorld() (*Services, *Registry) {
	items := []*types.Item{
		{
			ID: "trophy_case", Name: "trophy case", Type: types.ItemContainer,
			Visible: true, Aliases: []string{"case", "trophy"},
			Properties: types.Bag{
				"capacity":      30,
				"depositValues": map[string]any{"coil": float64(10)},
			},
			State: types.ItemState{Contents: []string{}},
		},
		{
			ID: "coil", Name: "large coil of rope", Type: types.ItemTreasure,
			Portable: true, Visible: true, Weight: 10,
			Aliases:    []string{"coil", "large", "rope"},
			Properties: types.Bag{"treasurePoints": 5, "size": 4},
			State:      types.ItemState{Contents: []string{}},
		},
		{
			ID: "lamp", Name: "brass lantern", Type: types.ItemLightSource,
			Portable: true, Visible: true, Weight: 8,
			Aliases:    []string{"lamp", "lantern"},
			Properties: types.Bag{"remainingFuel": 100},
			State:      types.ItemState{Contents: []string{}},
		},
		{
			ID: "rug", Name: "oriental rug", Visible: true,
			Description: "A large oriental rug covers the floor.",
			Aliases:     []string{"rug", "carpet"},
			Interactions: []types.Interaction{
				{Command: "move", Condition: "not state.open",
					Effect:  "state.open = true",
					Message: "Moving the rug reveals a trap door."},
			},
			State: types.ItemState{Contents: []string{}},
		},
		{
			ID: "leaflet", Name: "small leaflet", Type: types.ItemReadable,
			Description: "A small leaflet lies here.",
			Portable:    true, Visible: true, Weight: 1,
			Aliases:    []string{"leaflet", "paper"},
			Properties: types.Bag{"text": "WELCOME TO ZORK!"},
			State:      types.ItemState{Contents: []string{}},
		},
	}
	scenes := []*types.Scene{
		{
			ID: "living_room", Title: "Living Room",
			Description: "You are in the living room.",
			Exits: []types.Exit{
				{Direction: "east", To: "kitchen"},
				{Direction: "up", To: "attic", Condition: []string{"light_load"},
					FailureMessage: "The stairway is too narrow with such a load."},
			},
			Items: []types.SceneItem{
				{ItemID: "trophy_case", Visible: true},
				{ItemID: "rug", Visible: true},
				{ItemID: "coil", Visible: true},
				{ItemID: "leaflet", Visible: true},
			},
		},
		{
			ID: "kitchen", Title: "Kitchen", Description: "You are in the kitchen.",
			Exits: []types.Exit{{Direction: "west", To: "living_room"}},
			Items: []types.SceneItem{{ItemID: "lamp", Visible: true}},
			State: types.Bag{"firstVisitPoints": 10},
		},
		{ID: "attic", Title: "Attic", Description: "A dusty attic.",
			Exits: []types.Exit{{Direction: "down", To: "living_room"}}},
	}

	st := state.NewService(types.NewGameState("living_room", items, scenes, nil))
	inv := inventory.NewService(st, inventory.DefaultLimits)
	svc := &Services{
		State:     st,
		Items:     item.NewService(st),
		Inventory: inv,
		Scenes:    scene.NewService(st, inv),
		Scoring:   scoring.NewService(st),
	}
	return svc, DefaultRegistry(svc)
}

func TestExecuteEmptyInput(t *testing.T) {
	_, reg := testWorld()

	for _, input := range []string{"", "   ", "\t"} {
		res := reg.Execute(input)
		assert.False(t, res.Success)
		assert.Equal(t, "What?", res.Message)
		assert.False(t, res.CountsAsMove)
	}
}

func TestExecuteUnknownVerb(t *testing.T) {
	_, reg := testWorld()

	res := reg.Execute("xyzzy zzz")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, `"xyzzy"`, "message names the unrecognized verb")
	assert.NotContains(t, res.Message, "Did you mean", "nothing close enough to suggest")
}

func TestExecuteDeterministic(t *testing.T) {
	_, reg := testWorld()

	first := reg.Execute("frobnicate")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, reg.Execute("frobnicate"),
			"identical input produces identical results")
	}
}

func TestSuggestions(t *testing.T) {
	_, reg := testWorld()

	assert.Equal(t, []string{"inventory"}, reg.Suggestions("inven"),
		"prefix match")
	assert.Contains(t, reg.Suggestions("tak"), "take",
		"edit distance 1 within tolerance for length 3")
	assert.Empty(t, reg.Suggestions("xy"),
		"two-letter verbs get no fuzzy guesses")
	assert.Empty(t, reg.Suggestions("xyzzy"),
		"nothing within distance 2")
}

func TestFindFirstToken(t *testing.T) {
	_, reg := testWorld()

	cmd, matched, args, ok := reg.Find("take the large coil")
	require.True(t, ok)
	assert.Equal(t, "take", cmd.Name())
	assert.Equal(t, "take", matched)
	assert.Equal(t, "the large coil", args)

	cmd, matched, _, ok = reg.Find("GET COIL")
	require.True(t, ok)
	assert.Equal(t, "take", cmd.Name(), "aliases reach the same command")
	assert.Equal(t, "get", matched)
}

func TestCommandsListsDistinct(t *testing.T) {
	_, reg := testWorld()

	cmds := reg.Commands()
	seen := map[string]bool{}
	for _, c := range cmds {
		assert.False(t, seen[c.Name()], "no duplicate instances for aliases")
		seen[c.Name()] = true
	}
	assert.True(t, seen["go"])
	assert.True(t, seen["take"])
}

type panicCommand struct{ base }

func (c *panicCommand) Execute(matched, args string) types.CommandResult {
	panic("boom")
}

func TestExecuteRecoversPanic(t *testing.T) {
	_, reg := testWorld()
	reg.Register(&panicCommand{base: base{name: "explode"}})

	res := reg.Execute("explode")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
	assert.False(t, res.CountsAsMove)
}
