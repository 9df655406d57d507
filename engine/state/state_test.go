package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zorkcore/types"
)

func testService() *Service {
	items := []*types.Item{
		{ID: "lamp", Name: "brass lantern", Portable: true, Visible: true, Weight: 8},
		{ID: "sword", Name: "elvish sword", Portable: true, Visible: true, Weight: 10},
	}
	scenes := []*types.Scene{
		{ID: "cellar", Title: "Cellar", Description: "A dank cellar.",
			Items: []types.SceneItem{{ItemID: "sword", Visible: true}}},
		{ID: "gallery", Title: "Gallery", Description: "An art gallery."},
	}
	monsters := []*types.Monster{
		{ID: "troll", Name: "troll", State: types.MonsterGuarding, CurrentSceneID: "cellar"},
	}
	return NewService(types.NewGameState("cellar", items, scenes, monsters))
}

func TestFlags(t *testing.T) {
	s := testService()

	assert.False(t, s.Flag("door_open"))
	assert.False(t, s.HasFlag("door_open"))

	s.SetFlag("door_open", true)
	assert.True(t, s.Flag("door_open"))
	assert.True(t, s.HasFlag("door_open"))

	s.SetFlag("door_open", false)
	assert.False(t, s.Flag("door_open"))
	assert.True(t, s.HasFlag("door_open"), "a false flag still exists")
}

func TestScoreAndMoves(t *testing.T) {
	s := testService()

	s.AddScore(10)
	s.AddScore(5)
	assert.Equal(t, 15, s.Score())

	s.IncrementMoves()
	s.IncrementMoves()
	assert.Equal(t, 2, s.Moves())
}

func TestInventory(t *testing.T) {
	s := testService()

	assert.Empty(t, s.Inventory())
	assert.False(t, s.Carrying("lamp"))

	s.AddToInventory("lamp")
	assert.True(t, s.Carrying("lamp"))
	assert.Equal(t, []string{"lamp"}, s.Inventory())

	assert.True(t, s.RemoveFromInventory("lamp"))
	assert.False(t, s.Carrying("lamp"))
	assert.False(t, s.RemoveFromInventory("lamp"), "second removal reports absence")
}

func TestSceneItems(t *testing.T) {
	s := testService()

	assert.Equal(t, []string{"sword"}, s.SceneItems("cellar"),
		"scene state seeded from authored item list")
	assert.True(t, s.SceneContains("cellar", "sword"))

	assert.True(t, s.RemoveItemFromScene("cellar", "sword"))
	assert.False(t, s.SceneContains("cellar", "sword"))

	s.AddItemToScene("gallery", "sword")
	assert.True(t, s.SceneContains("gallery", "sword"))
}

func TestVisited(t *testing.T) {
	s := testService()

	assert.False(t, s.Visited("gallery"))
	s.MarkVisited("gallery")
	assert.True(t, s.Visited("gallery"))
	assert.False(t, s.Visited("no_such_scene"))
}

func TestUpdateItemState(t *testing.T) {
	s := testService()

	ok := s.UpdateItemState("lamp", func(st *types.ItemState) {
		st.IsLit = true
	})
	require.True(t, ok)

	it, _ := s.Item("lamp")
	assert.True(t, it.State.IsLit)

	assert.False(t, s.UpdateItemState("no_such_item", func(st *types.ItemState) {}))
}

func TestMoveMonster(t *testing.T) {
	s := testService()

	require.True(t, s.MoveMonster("troll", "gallery"))
	m, _ := s.Monster("troll")
	assert.Equal(t, "gallery", m.CurrentSceneID)

	assert.False(t, s.MoveMonster("grue", "gallery"))
}
