// Package scoring implements the one-shot scoring rules: treasures
// score once on find and once on deposit, named events score once, and
// scene first visits score once. Every award is gated by a flag (or by
// visit state) so re-triggering never double-counts.
package scoring

import (
	"github.com/dirkkok101/zorkcore/engine/state"
)

// TrophyCaseID is the item whose depositValues property is the single
// source of truth for deposit points.
const TrophyCaseID = "trophy_case"

// maxScore is the canonical total. Fixed on purpose: it is not derived
// from live data.
const maxScore = 350

// eventScores is the fixed table of one-time named events.
var eventScores = map[string]int{
	"first_treasure":   5,
	"defeat_troll":     25,
	"defeat_thief":     10,
	"open_trophy_case": 15,
	"solve_maze":       20,
	"reach_endgame":    50,
}

// Service implements the scoring rules.
type Service struct {
	state *state.Service
}

// NewService creates the scoring service.
func NewService(st *state.Service) *Service {
	return &Service{state: st}
}

// MaxScore returns the canonical maximum score.
func (s *Service) MaxScore() int {
	return maxScore
}

// TreasureScore returns the find-time value of a treasure from its own
// properties. Non-treasures are worth nothing.
func (s *Service) TreasureScore(treasureID string) int {
	it, ok := s.state.Item(treasureID)
	if !ok || !it.IsTreasure() {
		return 0
	}
	return it.Properties.Int("treasurePoints", 0)
}

// DepositValue returns the deposit value of a treasure, read from the
// trophy case's depositValues table.
func (s *Service) DepositValue(treasureID string) int {
	tc, ok := s.state.Item(TrophyCaseID)
	if !ok {
		return 0
	}
	return tc.Properties.Sub("depositValues").Int(treasureID, 0)
}

// AwardFoundScore awards a treasure's find score exactly once, gated
// by the treasure_found_<id> flag. Returns whether anything was
// awarded.
func (s *Service) AwardFoundScore(treasureID string) bool {
	flag := "treasure_found_" + treasureID
	if s.state.Flag(flag) {
		return false
	}
	points := s.TreasureScore(treasureID)
	if points == 0 {
		return false
	}
	s.state.SetFlag(flag, true)
	s.state.AddScore(points)
	return true
}

// AwardDepositScore awards a treasure's full deposit value exactly
// once, gated by the treasure_deposited_<id> flag. The deposit value
// is the whole award — finding the treasure earns nothing by itself
// unless routed through AwardFoundScore.
func (s *Service) AwardDepositScore(treasureID string) bool {
	flag := "treasure_deposited_" + treasureID
	if s.state.Flag(flag) {
		return false
	}
	points := s.DepositValue(treasureID)
	if points == 0 {
		return false
	}
	s.state.SetFlag(flag, true)
	s.state.AddScore(points)
	return true
}

// AwardEventScore awards a named one-time event exactly once, gated by
// the scoring_event_<id> flag. Unknown events award nothing.
func (s *Service) AwardEventScore(eventID string) bool {
	points, ok := eventScores[eventID]
	if !ok {
		return false
	}
	flag := "scoring_event_" + eventID
	if s.state.Flag(flag) {
		return false
	}
	s.state.SetFlag(flag, true)
	s.state.AddScore(points)
	return true
}

// AwardSceneScore awards a scene's first-visit score. The gate is the
// same visited tracking the scene service maintains — no separate
// flag, so scoring and visit state can never disagree. Call before the
// scene is marked visited.
func (s *Service) AwardSceneScore(sceneID string) bool {
	if s.state.Visited(sceneID) {
		return false
	}
	sc, ok := s.state.Scene(sceneID)
	if !ok {
		return false
	}
	points := sc.State.Int("firstVisitPoints", 0)
	if points == 0 {
		return false
	}
	s.state.AddScore(points)
	return true
}
