// Package engine wires the loaded world, the service layer, and the
// command registry into a turn processor: one input line in, one
// CommandResult out, with move counting, score application, and the
// monster movement tick handled as post-processing.
package engine

import (
	"time"

	"github.com/dirkkok101/zorkcore/engine/command"
	"github.com/dirkkok101/zorkcore/engine/inventory"
	"github.com/dirkkok101/zorkcore/engine/item"
	"github.com/dirkkok101/zorkcore/engine/scene"
	"github.com/dirkkok101/zorkcore/engine/scoring"
	"github.com/dirkkok101/zorkcore/engine/state"
	"github.com/dirkkok101/zorkcore/loader"
	"github.com/dirkkok101/zorkcore/logging"
	"github.com/dirkkok101/zorkcore/types"
)

var log = logging.Component("engine")

// Options tune engine construction.
type Options struct {
	StartScene string
	Limits     inventory.Limits
	Seed       int64
}

// DefaultStartScene is where a fresh game begins.
const DefaultStartScene = "west_of_house"

// Engine owns the game session: the mutable state, the services over
// it, and the command registry.
type Engine struct {
	state    *state.Service
	items    *item.Service
	invent   *inventory.Service
	scenes   *scene.Service
	scoring  *scoring.Service
	registry *command.Registry
	rng      *RNG
	limits   inventory.Limits
}

// New builds an engine for a fresh game over the loaded world.
func New(world *loader.World, opts Options) *Engine {
	if opts.StartScene == "" {
		opts.StartScene = DefaultStartScene
	}
	if opts.Limits == (inventory.Limits{}) {
		opts.Limits = inventory.DefaultLimits
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	gs := types.NewGameState(opts.StartScene, world.Items, world.Scenes, world.Monsters)
	gs.RNGSeed = opts.Seed

	e := &Engine{rng: NewRNG(opts.Seed)}
	e.wire(gs, opts.Limits)
	return e
}

// wire builds the service layer and registry over a game state. It is
// also the re-entry point after a restore.
func (e *Engine) wire(gs *types.GameState, limits inventory.Limits) {
	e.limits = limits
	e.state = state.NewService(gs)
	e.items = item.NewService(e.state)
	e.invent = inventory.NewService(e.state, limits)
	e.scenes = scene.NewService(e.state, e.invent)
	e.scoring = scoring.NewService(e.state)
	e.registry = command.DefaultRegistry(&command.Services{
		State:     e.state,
		Items:     e.items,
		Inventory: e.invent,
		Scenes:    e.scenes,
		Scoring:   e.scoring,
	})
}

// State exposes the state service for front ends and persistence.
func (e *Engine) State() *state.Service { return e.state }

// Scenes exposes the scene service for front ends.
func (e *Engine) Scenes() *scene.Service { return e.scenes }

// Scoring exposes the scoring service.
func (e *Engine) Scoring() *scoring.Service { return e.scoring }

// Registry exposes the command registry, mainly for help listings.
func (e *Engine) Registry() *command.Registry { return e.registry }

// Limits returns the inventory limits the session runs with.
func (e *Engine) Limits() inventory.Limits { return e.limits }

// Opening returns the text shown when a session starts: the starting
// scene's description. First-visit points for the start are awarded
// here since no movement command ever enters it.
func (e *Engine) Opening() string {
	e.scoring.AwardSceneScore(e.state.CurrentSceneID())
	return e.scenes.Describe(e.state.CurrentSceneID())
}

// ProcessCommand runs one full turn: dispatch, then the post-steps the
// result asks for. Only turns that count as a move advance the clock
// and the monsters.
func (e *Engine) ProcessCommand(input string) types.CommandResult {
	result := e.registry.Execute(input)

	if result.ScoreChange != 0 {
		e.state.AddScore(result.ScoreChange)
	}
	if result.CountsAsMove {
		e.state.IncrementMoves()
		e.tickMonsters()
	}
	return result
}

// SyncRNG copies the RNG stream position into the game state so a
// save captures it.
func (e *Engine) SyncRNG() {
	gs := e.state.State()
	gs.RNGSeed = e.rng.Seed()
	gs.RNGPosition = e.rng.Position()
}

// Restore replaces the session state wholesale and replays the RNG to
// the saved position.
func (e *Engine) Restore(gs *types.GameState, limits inventory.Limits) {
	if limits == (inventory.Limits{}) {
		limits = inventory.DefaultLimits
	}
	e.wire(gs, limits)
	e.rng = RestoreRNG(gs.RNGSeed, gs.RNGPosition)
	log.WithField("scene", gs.CurrentSceneID).Info("session restored")
}
