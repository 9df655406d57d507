// Package loader reads hand-authored JSON world data (items, scenes,
// monsters) and converts it into typed runtime entities. Each kind has
// an index.json naming the entity files; a malformed index aborts the
// load, while a malformed entity file is logged and skipped so a batch
// degrades to "N of total loaded".
package loader

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dirkkok101/zorkcore/logging"
	"github.com/dirkkok101/zorkcore/types"
)

var log = logging.Component("loader")

// FileError records one entity file that failed to load.
type FileError struct {
	File string
	Err  error
}

func (fe FileError) Error() string {
	return fmt.Sprintf("%s: %v", fe.File, fe.Err)
}

// Report summarizes one kind's batch load.
type Report struct {
	Kind      string
	Total     int // declared by the index
	Attempted int
	Loaded    int
	Errors    []FileError
}

// World is the fully loaded entity set plus per-kind load reports.
type World struct {
	Items    []*types.Item
	Scenes   []*types.Scene
	Monsters []*types.Monster
	Reports  []Report
}

// LoadWorld loads all three entity kinds from dir (expects items/,
// scenes/ and monsters/ subdirectories). The kind loaders are
// independent and produce disjoint parts of the world, so they run
// concurrently. Any index failure fails the whole load.
func LoadWorld(dir string) (*World, error) {
	var (
		wg       sync.WaitGroup
		items    []*types.Item
		scenes   []*types.Scene
		monsters []*types.Monster
		itemRep  *Report
		sceneRep *Report
		monRep   *Report
		errs     [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		items, itemRep, errs[0] = LoadAllItems(filepath.Join(dir, "items"))
	}()
	go func() {
		defer wg.Done()
		scenes, sceneRep, errs[1] = LoadAllScenes(filepath.Join(dir, "scenes"))
	}()
	go func() {
		defer wg.Done()
		monsters, monRep, errs[2] = LoadAllMonsters(filepath.Join(dir, "monsters"))
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	w := &World{
		Items:    items,
		Scenes:   scenes,
		Monsters: monsters,
		Reports:  []Report{*itemRep, *sceneRep, *monRep},
	}
	log.Infof("world loaded: %d items, %d scenes, %d monsters",
		len(items), len(scenes), len(monsters))
	return w, nil
}

// fieldError builds the standard "file: field violation" error.
func fieldError(file, field, problem string) error {
	return fmt.Errorf("%s: field %q %s", file, field, problem)
}

// requireString extracts a required non-empty string field.
func requireString(obj map[string]any, file, field string) (string, error) {
	v, ok := obj[field]
	if !ok {
		return "", fieldError(file, field, "is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", fieldError(file, field, fmt.Sprintf("must be a string, got %T", v))
	}
	if s == "" {
		return "", fieldError(file, field, "must not be empty")
	}
	return s, nil
}

// optString extracts an optional string field, returning "" if absent.
func optString(obj map[string]any, field string) string {
	s, _ := obj[field].(string)
	return s
}

// optStrings extracts an optional array-of-strings field. A present
// field of the wrong shape is an error; absence returns nil.
func optStrings(obj map[string]any, file, field string) ([]string, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fieldError(file, field, fmt.Sprintf("must be an array, got %T", v))
	}
	out := make([]string, 0, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, fieldError(file, fmt.Sprintf("%s[%d]", field, i), "must be a string")
		}
		out = append(out, s)
	}
	return out, nil
}

// optBool extracts an optional bool field with a default.
func optBool(obj map[string]any, field string, fallback bool) bool {
	if v, ok := obj[field].(bool); ok {
		return v
	}
	return fallback
}

// optInt extracts an optional numeric field with a default. Returns
// whether the field was present.
func optInt(obj map[string]any, field string, fallback int) (int, bool) {
	if v, ok := obj[field].(float64); ok {
		return int(v), true
	}
	return fallback, false
}

// optBag extracts an optional object field as a Bag.
func optBag(obj map[string]any, field string) types.Bag {
	if v, ok := obj[field].(map[string]any); ok {
		return types.Bag(v)
	}
	return nil
}
