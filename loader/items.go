package loader

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/dirkkok101/zorkcore/types"
)

// LoadAllItems reads the item index and every listed item file.
// Per-file failures are logged and skipped; an index failure is fatal.
func LoadAllItems(dir string) ([]*types.Item, *Report, error) {
	idx, err := readIndex(dir, "items", "types")
	if err != nil {
		return nil, nil, err
	}

	rep := &Report{Kind: "items", Total: idx.Total}
	var items []*types.Item
	for _, entry := range idx.Entries {
		rep.Attempted++
		item, err := loadItemFile(entryPath(dir, entry))
		if err != nil {
			log.Warnf("skipping item %s: %v", entry, err)
			rep.Errors = append(rep.Errors, FileError{File: entry, Err: err})
			continue
		}
		items = append(items, item)
		rep.Loaded++
	}

	if rep.Loaded < rep.Total {
		log.Warnf("loaded %d of %d items", rep.Loaded, rep.Total)
	}
	return items, rep, nil
}

func loadItemFile(path string) (*types.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return convertItem(obj, path)
}

// convertItem validates the raw item record and produces the typed
// runtime item.
func convertItem(obj map[string]any, file string) (*types.Item, error) {
	id, err := requireString(obj, file, "id")
	if err != nil {
		return nil, err
	}
	name, err := requireString(obj, file, "name")
	if err != nil {
		return nil, err
	}
	desc, err := requireString(obj, file, "description")
	if err != nil {
		return nil, err
	}
	examine, err := requireString(obj, file, "examineText")
	if err != nil {
		return nil, err
	}
	typeStr, err := requireString(obj, file, "type")
	if err != nil {
		return nil, err
	}
	itemType := types.ItemType(typeStr)
	if !types.ValidItemTypes[itemType] {
		return nil, fieldError(file, "type", fmt.Sprintf("has unknown value %q", typeStr))
	}

	aliases, err := optStrings(obj, file, "aliases")
	if err != nil {
		return nil, err
	}
	tags, err := optStrings(obj, file, "tags")
	if err != nil {
		return nil, err
	}

	weight, _ := optInt(obj, "weight", 1)

	item := &types.Item{
		ID:          id,
		Name:        name,
		Description: desc,
		ExamineText: examine,
		Aliases:     aliases,
		Type:        itemType,
		Portable:    optBool(obj, "portable", false),
		Visible:     optBool(obj, "visible", true),
		Weight:      weight,
		Size:        optString(obj, "size"),
		Tags:        tags,
		Properties:  optBag(obj, "properties"),
		State:       convertItemState(optBag(obj, "initialState")),
	}
	if item.Properties == nil {
		item.Properties = types.Bag{}
	}

	interactions, err := convertInteractions(obj, file)
	if err != nil {
		return nil, err
	}
	item.Interactions = interactions

	return item, nil
}

// convertItemState maps an authored initialState record to the mutable
// runtime sub-record. Both "isLit" and the older "lit" key are
// accepted.
func convertItemState(raw types.Bag) types.ItemState {
	st := types.ItemState{Contents: []string{}}
	if raw == nil {
		return st
	}
	st.Open = raw.Bool("open", false)
	st.IsLit = raw.Bool("isLit", raw.Bool("lit", false))
	st.IsLocked = raw.Bool("isLocked", raw.Bool("locked", false))
	if contents := raw.Strings("contents"); contents != nil {
		st.Contents = contents
	}
	return st
}

func convertInteractions(obj map[string]any, file string) ([]types.Interaction, error) {
	raw, ok := obj["interactions"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fieldError(file, "interactions", fmt.Sprintf("must be an array, got %T", raw))
	}

	var out []types.Interaction
	for i, e := range list {
		entry, ok := e.(map[string]any)
		if !ok {
			return nil, fieldError(file, fmt.Sprintf("interactions[%d]", i), "must be an object")
		}
		cmd, err := requireString(entry, file, "command")
		if err != nil {
			return nil, fieldError(file, fmt.Sprintf("interactions[%d].command", i), "is missing or empty")
		}
		out = append(out, types.Interaction{
			Command:   cmd,
			Condition: optString(entry, "condition"),
			Effect:    optString(entry, "effect"),
			Message:   optString(entry, "message"),
		})
	}
	return out, nil
}
