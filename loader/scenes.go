package loader

import (
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/dirkkok101/zorkcore/types"
)

// canonicalDirections fixes the presentation order of exits converted
// from the authored direction map.
var canonicalDirections = map[string]int{
	"north": 0, "south": 1, "east": 2, "west": 3,
	"northeast": 4, "northwest": 5, "southeast": 6, "southwest": 7,
	"up": 8, "down": 9, "in": 10, "out": 11,
}

// LoadAllScenes reads the scene index and every listed scene file.
// Per-file failures are logged and skipped; an index failure is fatal.
func LoadAllScenes(dir string) ([]*types.Scene, *Report, error) {
	idx, err := readIndex(dir, "scenes", "regions")
	if err != nil {
		return nil, nil, err
	}

	rep := &Report{Kind: "scenes", Total: idx.Total}
	var scenes []*types.Scene
	for _, entry := range idx.Entries {
		rep.Attempted++
		scene, err := loadSceneFile(entryPath(dir, entry))
		if err != nil {
			log.Warnf("skipping scene %s: %v", entry, err)
			rep.Errors = append(rep.Errors, FileError{File: entry, Err: err})
			continue
		}
		scenes = append(scenes, scene)
		rep.Loaded++
	}

	if rep.Loaded < rep.Total {
		log.Warnf("loaded %d of %d scenes", rep.Loaded, rep.Total)
	}
	return scenes, rep, nil
}

func loadSceneFile(path string) (*types.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return convertScene(obj, path)
}

func convertScene(obj map[string]any, file string) (*types.Scene, error) {
	id, err := requireString(obj, file, "id")
	if err != nil {
		return nil, err
	}
	title, err := requireString(obj, file, "title")
	if err != nil {
		return nil, err
	}
	desc, err := requireString(obj, file, "description")
	if err != nil {
		return nil, err
	}

	lighting := types.Lighting(optString(obj, "lighting"))
	if lighting == "" {
		lighting = types.LightLit
	}
	if !types.ValidLighting[lighting] {
		return nil, fieldError(file, "lighting", fmt.Sprintf("has unknown value %q", lighting))
	}

	exits, err := convertExits(obj, file)
	if err != nil {
		return nil, err
	}
	items, err := convertSceneItems(obj, file)
	if err != nil {
		return nil, err
	}
	monsters, err := convertMonsterRefs(obj, file)
	if err != nil {
		return nil, err
	}
	atmosphere, err := optStrings(obj, file, "atmosphere")
	if err != nil {
		return nil, err
	}
	entryActions, err := optStrings(obj, file, "entryActions")
	if err != nil {
		return nil, err
	}
	tags, err := optStrings(obj, file, "tags")
	if err != nil {
		return nil, err
	}

	return &types.Scene{
		ID:                    id,
		Title:                 title,
		Description:           desc,
		FirstVisitDescription: optString(obj, "firstVisitDescription"),
		Exits:                 exits,
		Items:                 items,
		Monsters:              monsters,
		Lighting:              lighting,
		Region:                optString(obj, "region"),
		Atmosphere:            atmosphere,
		EntryActions:          entryActions,
		State:                 optBag(obj, "state"),
		Tags:                  tags,
	}, nil
}

// convertExits turns the authored exits map (direction → destination
// shorthand or full object) into the ordered exit list. Exits marked
// blocked or pointing at a null destination are dropped here and never
// reach the runtime scene.
func convertExits(obj map[string]any, file string) ([]types.Exit, error) {
	raw, ok := obj["exits"]
	if !ok || raw == nil {
		return nil, nil
	}
	exitMap, ok := raw.(map[string]any)
	if !ok {
		return nil, fieldError(file, "exits", fmt.Sprintf("must be an object, got %T", raw))
	}

	var exits []types.Exit
	for dir, v := range exitMap {
		switch spec := v.(type) {
		case string:
			// Shorthand: "north": "kitchen".
			exits = append(exits, types.Exit{Direction: dir, To: spec})

		case nil:
			// Null destination: unusable, drop.

		case map[string]any:
			if blocked, ok := spec["blocked"].(bool); ok && blocked {
				continue
			}
			to, ok := spec["to"].(string)
			if !ok || to == "" {
				continue
			}
			cond, err := convertCondition(spec["condition"], file, "exits."+dir+".condition")
			if err != nil {
				return nil, err
			}
			exits = append(exits, types.Exit{
				Direction:      dir,
				To:             to,
				Description:    optString(spec, "description"),
				Condition:      cond,
				Locked:         optBool(spec, "locked", false),
				KeyID:          optString(spec, "keyId"),
				Hidden:         optBool(spec, "hidden", false),
				OneWay:         optBool(spec, "oneWay", false),
				FailureMessage: optString(spec, "failureMessage"),
			})

		default:
			return nil, fieldError(file, "exits."+dir, fmt.Sprintf("must be a string or object, got %T", v))
		}
	}

	sort.SliceStable(exits, func(i, j int) bool {
		return directionRank(exits[i].Direction) < directionRank(exits[j].Direction)
	})
	return exits, nil
}

func directionRank(dir string) int {
	if rank, ok := canonicalDirections[dir]; ok {
		return rank
	}
	return len(canonicalDirections)
}

// convertCondition normalizes a condition authored as a single flag
// name or an array of flag names into a list. All entries of a list
// must hold for the exit to be usable.
func convertCondition(raw any, file, field string) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fieldError(file, fmt.Sprintf("%s[%d]", field, i), "must be a string")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fieldError(file, field, fmt.Sprintf("must be a string or array, got %T", raw))
	}
}

// convertSceneItems normalizes the mixed string/object item list. A
// bare string id places a visible item.
func convertSceneItems(obj map[string]any, file string) ([]types.SceneItem, error) {
	raw, ok := obj["items"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fieldError(file, "items", fmt.Sprintf("must be an array, got %T", raw))
	}

	var items []types.SceneItem
	for i, e := range list {
		switch v := e.(type) {
		case string:
			items = append(items, types.SceneItem{ItemID: v, Visible: true})
		case map[string]any:
			itemID, err := requireString(v, file, "itemId")
			if err != nil {
				return nil, fieldError(file, fmt.Sprintf("items[%d].itemId", i), "is missing or empty")
			}
			items = append(items, types.SceneItem{
				ItemID:    itemID,
				Visible:   optBool(v, "visible", true),
				Condition: optString(v, "condition"),
			})
		default:
			return nil, fieldError(file, fmt.Sprintf("items[%d]", i), "must be a string or object")
		}
	}
	return items, nil
}

// convertMonsterRefs normalizes the mixed string/object monster list.
func convertMonsterRefs(obj map[string]any, file string) ([]string, error) {
	raw, ok := obj["monsters"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fieldError(file, "monsters", fmt.Sprintf("must be an array, got %T", raw))
	}

	var refs []string
	for i, e := range list {
		switch v := e.(type) {
		case string:
			refs = append(refs, v)
		case map[string]any:
			id, err := requireString(v, file, "monsterId")
			if err != nil {
				return nil, fieldError(file, fmt.Sprintf("monsters[%d].monsterId", i), "is missing or empty")
			}
			refs = append(refs, id)
		default:
			return nil, fieldError(file, fmt.Sprintf("monsters[%d]", i), "must be a string or object")
		}
	}
	return refs, nil
}
