package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zorkcore/types"
)

func TestLoadWorld(t *testing.T) {
	world, err := LoadWorld(filepath.Join("testdata", "world"))
	require.NoError(t, err)

	assert.Len(t, world.Items, 5, "broken item should be skipped")
	assert.Len(t, world.Scenes, 3)
	assert.Len(t, world.Monsters, 2)

	var itemReport *Report
	for i := range world.Reports {
		if world.Reports[i].Kind == "items" {
			itemReport = &world.Reports[i]
		}
	}
	require.NotNil(t, itemReport)
	assert.Equal(t, 6, itemReport.Total)
	assert.Equal(t, 6, itemReport.Attempted)
	assert.Equal(t, 5, itemReport.Loaded)
	require.Len(t, itemReport.Errors, 1)
	assert.Equal(t, "broken", itemReport.Errors[0].File)
}

func TestLoadWorldBadIndexIsFatal(t *testing.T) {
	_, err := LoadWorld(filepath.Join("testdata", "badindex"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")
}

func TestLoadAllItemsDefaults(t *testing.T) {
	items, _, err := LoadAllItems(filepath.Join("testdata", "world", "items"))
	require.NoError(t, err)

	byID := map[string]*types.Item{}
	for _, it := range items {
		byID[it.ID] = it
	}

	tc := byID["trophy_case"]
	require.NotNil(t, tc)
	assert.False(t, tc.Portable, "portable defaults to false")
	assert.True(t, tc.Visible, "visible defaults to true")
	assert.Equal(t, 1, tc.Weight, "weight defaults to 1")
	assert.False(t, tc.State.Open)
	assert.NotNil(t, tc.State.Contents)

	lamp := byID["lamp"]
	require.NotNil(t, lamp)
	assert.False(t, lamp.State.IsLit, `"lit" key accepted for initial state`)
	assert.Equal(t, 100, lamp.Properties.Int("remainingFuel", 0))
}

func TestLoadAllScenesExits(t *testing.T) {
	scenes, _, err := LoadAllScenes(filepath.Join("testdata", "world", "scenes"))
	require.NoError(t, err)

	byID := map[string]*types.Scene{}
	for _, sc := range scenes {
		byID[sc.ID] = sc
	}

	west := byID["west_of_house"]
	require.NotNil(t, west)
	// Blocked east and null south are dropped at load.
	require.Len(t, west.Exits, 1)
	assert.Equal(t, "north", west.Exits[0].Direction)
	assert.Equal(t, "kitchen", west.Exits[0].To)
	assert.Equal(t, 1, west.State.Int("firstVisitPoints", 0))

	attic := byID["attic"]
	require.NotNil(t, attic)
	require.Len(t, attic.Exits, 1)
	down := attic.Exits[0]
	assert.Equal(t, []string{"light_load"}, down.Condition)
	assert.Equal(t, "The stairway is too narrow to descend with such a load.", down.FailureMessage)
	assert.Equal(t, types.LightDark, attic.Lighting)

	kitchen := byID["kitchen"]
	require.NotNil(t, kitchen)
	// Canonical ordering: south before up.
	require.Len(t, kitchen.Exits, 2)
	assert.Equal(t, "south", kitchen.Exits[0].Direction)
	assert.Equal(t, "up", kitchen.Exits[1].Direction)
	assert.Equal(t, []string{"thief"}, kitchen.Monsters)
}

func TestLoadAllMonstersThief(t *testing.T) {
	monsters, _, err := LoadAllMonsters(filepath.Join("testdata", "world", "monsters"))
	require.NoError(t, err)
	require.Len(t, monsters, 2)

	byID := map[string]*types.Monster{}
	for _, m := range monsters {
		byID[m.ID] = m
	}
	thief := byID["thief"]
	require.NotNil(t, thief)
	// VILLAIN outranks OVISON.
	assert.Equal(t, types.MonsterHostile, thief.State)
	assert.Equal(t, types.MoveFollow, thief.MovementPattern)
	assert.Equal(t, 20, thief.Health, "health falls back to maxHealth")
	assert.Equal(t, "kitchen", thief.CurrentSceneID, "location falls back to startingSceneId")
	assert.Contains(t, thief.Behaviors, "steal")
	assert.Equal(t, false, thief.Variables["hasStolen"], "seeded variable")
	assert.Equal(t, 2, thief.Variables.Int("aggression", 0), "authored variable merged on top")

	troll := byID["troll"]
	require.NotNil(t, troll)
	assert.Equal(t, types.MonsterHostile, troll.State, "VILLAIN outranks the GUARD behavior function")
	assert.Equal(t, types.MoveStationary, troll.MovementPattern)
	assert.Contains(t, troll.Behaviors, "guard")
}
