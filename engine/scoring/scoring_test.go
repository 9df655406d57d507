package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/types"
)

func testServices() (*state.Service, *Service) {
	items := []*types.Item{
		{
			ID: "trophy_case", Name: "trophy case", Type: types.ItemContainer,
			Visible: true,
			Properties: types.Bag{
				"depositValues": map[string]any{"egg": float64(5), "coil": float64(10)},
			},
			State: types.ItemState{Contents: []string{}},
		},
		{
			ID: "egg", Name: "jeweled egg", Type: types.ItemTreasure,
			Portable: true, Visible: true,
			Properties: types.Bag{"treasurePoints": 5},
			State:      types.ItemState{Contents: []string{}},
		},
		{ID: "leaflet", Name: "leaflet", Portable: true, Visible: true,
			State: types.ItemState{Contents: []string{}}},
	}
	scenes := []*types.Scene{
		{ID: "west_of_house", Title: "West of House", Description: "An open field.",
			State: types.Bag{"firstVisitPoints": 1}},
		{ID: "forest", Title: "Forest", Description: "A forest."},
	}
	st := state.NewService(types.NewGameState("west_of_house", items, scenes, nil))
	return st, NewService(st)
}

func TestAwardFoundScoreOnce(t *testing.T) {
	st, svc := testServices()

	require.True(t, svc.AwardFoundScore("egg"))
	assert.Equal(t, 5, st.Score())
	assert.True(t, st.Flag("treasure_found_egg"))

	assert.False(t, svc.AwardFoundScore("egg"), "second award is refused")
	assert.Equal(t, 5, st.Score(), "score unchanged")

	assert.False(t, svc.AwardFoundScore("leaflet"), "non-treasures award nothing")
}

func TestAwardDepositScoreOnce(t *testing.T) {
	st, svc := testServices()

	assert.Equal(t, 5, svc.DepositValue("egg"))
	assert.Equal(t, 0, svc.DepositValue("leaflet"))

	require.True(t, svc.AwardDepositScore("egg"))
	assert.Equal(t, 5, st.Score())
	assert.True(t, st.Flag("treasure_deposited_egg"))

	assert.False(t, svc.AwardDepositScore("egg"))
	assert.Equal(t, 5, st.Score())
}

func TestAwardEventScoreOnce(t *testing.T) {
	st, svc := testServices()

	require.True(t, svc.AwardEventScore("open_trophy_case"))
	assert.Equal(t, 15, st.Score())

	assert.False(t, svc.AwardEventScore("open_trophy_case"))
	assert.Equal(t, 15, st.Score())

	assert.False(t, svc.AwardEventScore("unknown_event"))
}

func TestAwardSceneScoreGatedByVisited(t *testing.T) {
	st, svc := testServices()

	require.True(t, svc.AwardSceneScore("west_of_house"))
	assert.Equal(t, 1, st.Score())

	// The gate is the visit state itself: once marked visited, no
	// score, and the first award set no separate flag.
	st.MarkVisited("west_of_house")
	assert.False(t, svc.AwardSceneScore("west_of_house"))
	assert.Equal(t, 1, st.Score())

	assert.False(t, svc.AwardSceneScore("forest"), "scenes without points award nothing")
}

func TestMaxScore(t *testing.T) {
	_, svc := testServices()
	assert.Equal(t, 350, svc.MaxScore())
}
