package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zorkcore/engine"
	"github.com/dirkkok101/zorkcore/loader"
	"github.com/dirkkok101/zorkcore/types"
)

func testEngine() *engine.Engine {
	world := &loader.World{
		Items: []*types.Item{
			{ID: "leaflet", Name: "small leaflet", Type: types.ItemReadable,
				Description: "A small leaflet.",
				Portable:    true, Visible: true, Weight: 1,
				Aliases:    []string{"leaflet"},
				Properties: types.Bag{"text": "WELCOME TO ZORK!"},
				State:      types.ItemState{Contents: []string{}}},
		},
		Scenes: []*types.Scene{
			{ID: "mailbox_field", Title: "West of House",
				Description: "You are standing in an open field.",
				Items:       []types.SceneItem{{ItemID: "leaflet", Visible: true}}},
		},
	}
	return engine.New(world, engine.Options{StartScene: "mailbox_field", Seed: 1})
}

func runScript(t *testing.T, c *CLI, script string) string {
	t.Helper()
	var out strings.Builder
	c.In = strings.NewReader(script)
	c.Out = &out
	c.Run()
	return out.String()
}

func TestRunScript(t *testing.T) {
	c := New(testEngine())

	out := runScript(t, c, "take leaflet\nread leaflet\n/quit\n")

	assert.Contains(t, out, "West of House", "opening describes the start scene")
	assert.Contains(t, out, "Taken.")
	assert.Contains(t, out, "WELCOME TO ZORK!")
	assert.Contains(t, out, "[Goodbye.]")
}

func TestRunSkipsCommentsAndBlanks(t *testing.T) {
	c := New(testEngine())

	out := runScript(t, c, "# walkthrough\n\n   \nscore\n")

	assert.NotContains(t, out, "walkthrough")
	assert.Contains(t, out, "Your score is 0")
}

func TestRunAgainRepeats(t *testing.T) {
	c := New(testEngine())

	out := runScript(t, c, "g\nwait\nagain\n")

	assert.Contains(t, out, "Nothing to repeat.")
	assert.Equal(t, 2, strings.Count(out, "Time passes."))
	assert.Equal(t, 2, c.Engine.State().Moves())
}

func TestRunUnknownMeta(t *testing.T) {
	c := New(testEngine())

	out := runScript(t, c, "/frotz\n")

	assert.Contains(t, out, "Unknown command: /frotz")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c := New(testEngine())
	c.SaveDir = t.TempDir()

	out := runScript(t, c, "take leaflet\n/save slot1\ndrop leaflet\n/load slot1\n")

	assert.Contains(t, out, "Game saved to slot1.")
	assert.Contains(t, out, "Game loaded from slot1 (move 1).")
	assert.True(t, c.Engine.State().Carrying("leaflet"),
		"load rewinds the drop")

	assert.FileExists(t, filepath.Join(c.SaveDir, "slot1.json"))
}

func TestLoadMissingSave(t *testing.T) {
	c := New(testEngine())
	c.SaveDir = t.TempDir()

	out := runScript(t, c, "/load nothing\n")

	require.Contains(t, out, "Load failed:")
}
