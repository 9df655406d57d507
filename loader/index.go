package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// index is the decoded, validated shape of an index.json file: the
// entity listing, the declared total, and the grouping structure
// (types for items and monsters, regions for scenes).
type index struct {
	Entries []string
	Total   int
	Groups  map[string][]string
}

// readIndex reads and validates dir/index.json. listField names the
// array of entity ids/files, groupField names the grouping object. Any
// malformation is fatal: the caller must not read a single entity file
// when the index is bad.
func readIndex(dir, listField, groupField string) (*index, error) {
	path := filepath.Join(dir, "index.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading index %s", path)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parsing index %s", path)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("index %s: expected an object, got %T", path, raw)
	}

	idx := &index{Groups: map[string][]string{}}

	// Listing array.
	listRaw, ok := obj[listField]
	if !ok {
		return nil, fmt.Errorf("index %s: missing %q field", path, listField)
	}
	listSlice, ok := listRaw.([]any)
	if !ok {
		return nil, fmt.Errorf("index %s: %q must be an array, got %T", path, listField, listRaw)
	}
	for i, e := range listSlice {
		s, ok := e.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("index %s: %s[%d] must be a non-empty string", path, listField, i)
		}
		idx.Entries = append(idx.Entries, s)
	}

	// Total.
	totalRaw, ok := obj["total"]
	if !ok {
		return nil, fmt.Errorf("index %s: missing \"total\" field", path)
	}
	totalNum, ok := totalRaw.(float64)
	if !ok {
		return nil, fmt.Errorf("index %s: \"total\" must be a number, got %T", path, totalRaw)
	}
	idx.Total = int(totalNum)

	// Grouping object.
	groupRaw, ok := obj[groupField]
	if !ok {
		return nil, fmt.Errorf("index %s: missing %q field", path, groupField)
	}
	groupObj, ok := groupRaw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("index %s: %q must be an object, got %T", path, groupField, groupRaw)
	}
	for group, members := range groupObj {
		list, ok := members.([]any)
		if !ok {
			return nil, fmt.Errorf("index %s: %s.%s must be an array", path, groupField, group)
		}
		for _, m := range list {
			if s, ok := m.(string); ok {
				idx.Groups[group] = append(idx.Groups[group], s)
			}
		}
	}

	return idx, nil
}

// entryID normalizes an index entry to an entity id. Entries may be
// bare ids or file names, with or without a subdirectory prefix.
func entryID(entry string) string {
	entry = strings.TrimSuffix(entry, ".json")
	if i := strings.LastIndexByte(entry, '/'); i >= 0 {
		entry = entry[i+1:]
	}
	return entry
}

// entryPath resolves an index entry to the file to read.
func entryPath(dir, entry string) string {
	if !strings.HasSuffix(entry, ".json") {
		entry += ".json"
	}
	return filepath.Join(dir, filepath.FromSlash(entry))
}
