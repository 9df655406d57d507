// Package save implements the save-file envelope: versioned JSON
// wrapping a full game state snapshot, with strict validation on
// restore so a corrupt or truncated file is rejected before any of it
// touches the running session.
package save

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/dirkkok101/zorkcore/types"
)

// Version is written into every envelope and checked on restore.
const Version = "1.0"

// Envelope is the on-disk save format. GameState is kept raw until
// validation has passed; a restore is all-or-nothing.
type Envelope struct {
	Version    string          `json:"version"`
	Mode       string          `json:"mode"`
	Timestamp  time.Time       `json:"timestamp"`
	GameState  json.RawMessage `json:"gameState"`
	PlayerName string          `json:"playerName,omitempty"`
	GameStyle  string          `json:"gameStyle,omitempty"`
}

// Meta carries the optional envelope fields a caller may set.
type Meta struct {
	Mode       string
	PlayerName string
	GameStyle  string
}

// Marshal wraps a game state in a fresh envelope.
func Marshal(gs *types.GameState, meta Meta) ([]byte, error) {
	raw, err := json.Marshal(gs)
	if err != nil {
		return nil, errors.Wrap(err, "encoding game state")
	}
	env := Envelope{
		Version:    Version,
		Mode:       meta.Mode,
		Timestamp:  time.Now().UTC(),
		GameState:  raw,
		PlayerName: meta.PlayerName,
		GameStyle:  meta.GameStyle,
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding envelope")
	}
	return out, nil
}

// Unmarshal parses and validates an envelope, returning the restored
// game state. Every required field must be present and well-typed or
// the whole restore fails.
func Unmarshal(data []byte) (*types.GameState, *Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, errors.Wrap(err, "parsing save file")
	}
	if env.Version != Version {
		return nil, nil, errors.Errorf("unsupported save version %q", env.Version)
	}
	if len(env.GameState) == 0 {
		return nil, nil, errors.New("save file has no gameState")
	}
	if err := validateGameState(env.GameState); err != nil {
		return nil, nil, err
	}

	var gs types.GameState
	if err := json.Unmarshal(env.GameState, &gs); err != nil {
		return nil, nil, errors.Wrap(err, "decoding game state")
	}
	normalize(&gs)
	return &gs, &env, nil
}

// WriteFile saves to path, creating parent directories as needed.
func WriteFile(path string, gs *types.GameState, meta Meta) error {
	data, err := Marshal(gs, meta)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating save directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing save file")
	}
	return nil
}

// ReadFile restores from path.
func ReadFile(path string) (*types.GameState, *Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading save file")
	}
	return Unmarshal(data)
}

// requiredFields maps each mandatory gameState field to a checker for
// its JSON shape.
var requiredFields = []struct {
	name  string
	check func(any) bool
}{
	{"currentSceneId", func(v any) bool { s, ok := v.(string); return ok && s != "" }},
	{"inventory", isArray},
	{"score", isNumber},
	{"moves", isNumber},
	{"sceneStates", isObject},
	{"flags", isObject},
	{"variables", isObject},
	{"items", isObject},
	{"scenes", isObject},
	{"monsters", isObject},
}

func validateGameState(raw json.RawMessage) error {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return errors.Wrap(err, "parsing game state")
	}
	for _, rf := range requiredFields {
		v, ok := fields[rf.name]
		if !ok || v == nil {
			return errors.Errorf("save file missing field %q", rf.name)
		}
		if !rf.check(v) {
			return errors.Errorf("save file field %q has wrong type (%s)", rf.name, fmt.Sprintf("%T", v))
		}
	}
	return nil
}

func isArray(v any) bool  { _, ok := v.([]any); return ok }
func isObject(v any) bool { _, ok := v.(map[string]any); return ok }
func isNumber(v any) bool { _, ok := v.(float64); return ok }

// normalize replaces nil collections with empty ones so services never
// see a nil map or slice after a restore.
func normalize(gs *types.GameState) {
	if gs.Inventory == nil {
		gs.Inventory = []string{}
	}
	if gs.SceneStates == nil {
		gs.SceneStates = map[string]*types.SceneState{}
	}
	if gs.Flags == nil {
		gs.Flags = map[string]bool{}
	}
	if gs.Variables == nil {
		gs.Variables = types.Bag{}
	}
	for _, ss := range gs.SceneStates {
		if ss.Items == nil {
			ss.Items = []string{}
		}
	}
}
