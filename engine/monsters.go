package engine

import (
	"github.com/dirkkok101/zorkcore/types"
)

// Movement chances per tick, in percent. Wanderers drift slowly;
// followers and fleers react most turns but not every turn, which
// keeps them escapable.
const (
	wanderChance = 30
	followChance = 75
	fleeChance   = 75
)

// tickMonsters advances every mobile monster by at most one scene.
// Dead monsters never move; stationary ones have no allowed scenes to
// move through.
func (e *Engine) tickMonsters() {
	playerScene := e.state.CurrentSceneID()

	for _, m := range e.state.Monsters() {
		if m.State == types.MonsterDead || len(m.AllowedScenes) == 0 {
			continue
		}

		var dest string
		switch m.MovementPattern {
		case types.MoveRandom:
			if e.rng.Chance(wanderChance) {
				dest = e.rng.Pick(e.adjacentAllowed(m))
			}
		case types.MovePatrol:
			dest = e.patrolNext(m)
		case types.MoveFollow:
			if m.CurrentSceneID != playerScene && e.rng.Chance(followChance) {
				dest = e.stepToward(m, playerScene)
			}
		case types.MoveFlee:
			if m.CurrentSceneID == playerScene && e.rng.Chance(fleeChance) {
				dest = e.rng.Pick(e.adjacentAllowed(m))
			}
		}

		if dest == "" || dest == m.CurrentSceneID {
			continue
		}
		if !m.CanEnter(dest) {
			continue
		}
		e.state.MoveMonster(m.ID, dest)
		log.WithField("monster", m.ID).WithField("scene", dest).Debug("monster moved")
	}
}

// adjacentAllowed lists the monster's allowed scenes reachable in one
// exit from where it stands. When its current scene links to none of
// them, the whole allowed list is the fallback so a monster displaced
// by a restore can re-enter its territory.
func (e *Engine) adjacentAllowed(m *types.Monster) []string {
	sc, ok := e.state.Scene(m.CurrentSceneID)
	if !ok {
		return m.AllowedScenes
	}
	var out []string
	for _, exit := range sc.Exits {
		if m.CanEnter(exit.To) {
			out = append(out, exit.To)
		}
	}
	if len(out) == 0 {
		return m.AllowedScenes
	}
	return out
}

// patrolNext cycles through the allowed scene list in order, tracking
// progress in the monster's own variables.
func (e *Engine) patrolNext(m *types.Monster) string {
	idx := m.Variables.Int("patrolIndex", 0)
	next := (idx + 1) % len(m.AllowedScenes)
	e.state.UpdateMonster(m.ID, func(mm *types.Monster) {
		if mm.Variables == nil {
			mm.Variables = types.Bag{}
		}
		mm.Variables["patrolIndex"] = next
	})
	return m.AllowedScenes[next]
}

// stepToward moves one exit closer to the target scene: the direct
// exit when one exists, otherwise any allowed adjacent scene.
func (e *Engine) stepToward(m *types.Monster, target string) string {
	sc, ok := e.state.Scene(m.CurrentSceneID)
	if ok {
		for _, exit := range sc.Exits {
			if exit.To == target && m.CanEnter(target) {
				return target
			}
		}
	}
	return e.rng.Pick(e.adjacentAllowed(m))
}
