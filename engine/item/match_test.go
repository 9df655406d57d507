package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/types"
)

func TestMatches(t *testing.T) {
	coil := &types.Item{
		ID: "coil", Name: "large coil of rope",
		Aliases: []string{"COIL", "LARGE"},
	}
	lamp := &types.Item{
		ID: "lamp", Name: "brass lantern",
		Aliases: []string{"lamp", "lantern", "light"},
	}

	tests := []struct {
		query string
		item  *types.Item
		want  bool
	}{
		{"large coil of rope", coil, true}, // exact name
		{"coil", coil, true},               // exact alias, case-insensitive
		{"the coil", coil, true},           // leading article stripped
		{"large coil", coil, true},         // multi-word, both words hit aliases
		{"lar", coil, true},                // single-word alias prefix
		{"rop", coil, true},                // substring of a name word
		{"la", coil, false},                // below the 3-char floor
		{"sword", coil, false},
		{"lantern", lamp, true},
		{"lan", lamp, true},
		{"brass", lamp, true}, // name word
		{"", lamp, false},
		{"the", lamp, false}, // nothing left after articles
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.item, tt.query),
				"Matches(%s, %q)", tt.item.ID, tt.query)
		})
	}
}

func TestFindReturnsFirstMatch(t *testing.T) {
	items := []*types.Item{
		{ID: "small_key", Name: "small key", Portable: true, Visible: true,
			Aliases: []string{"key"}, State: types.ItemState{Contents: []string{}}},
		{ID: "large_key", Name: "large key", Portable: true, Visible: true,
			Aliases: []string{"key"}, State: types.ItemState{Contents: []string{}}},
	}
	scenes := []*types.Scene{{ID: "hall", Title: "Hall", Description: "A hall."}}
	st := state.NewService(types.NewGameState("hall", items, scenes, nil))
	svc := NewService(st)

	it, ok := svc.Find("key", []string{"small_key", "large_key"})
	assert.True(t, ok)
	assert.Equal(t, "small_key", it.ID, "first candidate wins")

	it, ok = svc.Find("large key", []string{"large_key", "small_key"})
	assert.True(t, ok)
	assert.Equal(t, "large_key", it.ID, "candidate order, not match quality, breaks ties")

	_, ok = svc.Find("sword", []string{"small_key", "large_key"})
	assert.False(t, ok)
}
