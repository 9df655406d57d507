package loader

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/dirkkok101/zorkcore/types"
)

// seedVariables are the known starting variables for specific monsters,
// keyed by id. properties.variables from the file is merged on top and
// may override any seeded default.
var seedVariables = map[string]types.Bag{
	"thief": {
		"hasStolen":       false,
		"stolenItems":     []string{},
		"engagedInCombat": false,
	},
	"troll": {
		"hasBeenPaid": false,
		"isGuarding":  true,
	},
	"cyclops": {
		"isAsleep":        true,
		"hasBeenAwakened": false,
	},
}

// LoadAllMonsters reads the monster index and every listed monster
// file. Per-file failures are logged and skipped, so the result may be
// shorter than index.total; an index failure is fatal.
func LoadAllMonsters(dir string) ([]*types.Monster, *Report, error) {
	idx, err := readIndex(dir, "monsters", "types")
	if err != nil {
		return nil, nil, err
	}

	rep := &Report{Kind: "monsters", Total: idx.Total}
	var monsters []*types.Monster
	for _, entry := range idx.Entries {
		rep.Attempted++
		m, err := loadMonsterFile(entryPath(dir, entry))
		if err != nil {
			log.Warnf("skipping monster %s: %v", entry, err)
			rep.Errors = append(rep.Errors, FileError{File: entry, Err: err})
			continue
		}
		monsters = append(monsters, m)
		rep.Loaded++
	}

	if rep.Loaded < rep.Total {
		log.Warnf("loaded %d of %d monsters", rep.Loaded, rep.Total)
	}
	return monsters, rep, nil
}

func loadMonsterFile(path string) (*types.Monster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return convertMonster(obj, path)
}

func convertMonster(obj map[string]any, file string) (*types.Monster, error) {
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
	mType := types.MonsterType(typeStr)

	flags := convertFlags(optBag(obj, "flags"))
	behaviorFn := optString(obj, "behaviorFunction")
	demon := optString(obj, "movementDemon")
	properties := optBag(obj, "properties")

	inventory, err := optStrings(obj, file, "inventory")
	if err != nil {
		return nil, err
	}
	synonyms, err := optStrings(obj, file, "synonyms")
	if err != nil {
		return nil, err
	}
	meleeMessages, err := optStrings(obj, file, "meleeMessages")
	if err != nil {
		return nil, err
	}

	// Health: health ?? maxHealth ?? 100.
	maxHealth, _ := optInt(obj, "maxHealth", 100)
	health, ok := optInt(obj, "health", 0)
	if !ok {
		health = maxHealth
	}

	// Location: currentSceneId ?? startingSceneId ?? none.
	starting := optString(obj, "startingSceneId")
	current := optString(obj, "currentSceneId")
	if current == "" {
		current = starting
	}

	pattern, allowed, err := inferMovement(obj, demon, file)
	if err != nil {
		return nil, err
	}

	combatStrength, _ := optInt(obj, "combatStrength", 0)
	defeatScore, _ := optInt(obj, "defeatScore", 0)

	m := &types.Monster{
		ID:               id,
		Name:             name,
		Description:      desc,
		ExamineText:      examine,
		Health:           health,
		MaxHealth:        maxHealth,
		State:            inferState(obj, id, mType, flags, behaviorFn),
		CurrentSceneID:   current,
		StartingSceneID:  starting,
		MovementPattern:  pattern,
		AllowedScenes:    allowed,
		Inventory:        inventory,
		Synonyms:         synonyms,
		Flags:            flags,
		CombatStrength:   combatStrength,
		MeleeMessages:    meleeMessages,
		BehaviorFunction: behaviorFn,
		MovementDemon:    demon,
		Type:             mType,
		Properties:       properties,
		Variables:        buildVariables(id, properties),
		Behaviors:        extractBehaviors(obj, behaviorFn, properties),
		DefeatScore:      defeatScore,
	}
	return m, nil
}

func convertFlags(raw types.Bag) map[string]bool {
	if raw == nil {
		return nil
	}
	flags := make(map[string]bool, len(raw))
	for k := range raw {
		flags[k] = raw.Bool(k, false)
	}
	return flags
}

// inferState derives the monster's initial state. Precedence: explicit
// state field, VILLAIN flag, INVISIBLE/OVISON flags, a GUARD behavior
// function, then a type-based default.
func inferState(obj map[string]any, id string, mType types.MonsterType,
	flags map[string]bool, behaviorFn string) types.MonsterState {

	if explicit := optString(obj, "state"); explicit != "" {
		st := types.MonsterState(strings.ToLower(explicit))
		if types.ValidMonsterStates[st] {
			return st
		}
		log.Warnf("monster %s: unknown state %q, falling back to idle", id, explicit)
		return types.MonsterIdle
	}

	if flags["VILLAIN"] {
		return types.MonsterHostile
	}
	if flags["INVISIBLE"] || flags["OVISON"] {
		return types.MonsterLurking
	}
	if strings.Contains(behaviorFn, "GUARD") {
		return types.MonsterGuarding
	}

	switch mType {
	case types.MonsterHumanoid:
		return types.MonsterIdle
	case types.MonsterCreature:
		return types.MonsterWandering
	case types.MonsterEnvironmental:
		return types.MonsterLurking
	default:
		return types.MonsterIdle
	}
}

// inferMovement derives the movement pattern. An explicit
// movementPattern.type always wins; otherwise the movement demon name
// is scanned for known keywords in priority order, and no match means
// stationary. Keyword matching is case-sensitive substring containment.
func inferMovement(obj map[string]any, demon, file string) (types.MovementKind, []string, error) {
	var allowed []string

	if mp, ok := obj["movementPattern"].(map[string]any); ok {
		if data, ok := mp["data"].(map[string]any); ok {
			allowed = types.Bag(data).Strings("validScenes")
		}
		if t, ok := mp["type"].(string); ok && t != "" {
			kind := types.MovementKind(t)
			if !types.ValidMovementKinds[kind] {
				return "", nil, fieldError(file, "movementPattern.type", fmt.Sprintf("has unknown value %q", t))
			}
			return kind, allowed, nil
		}
	}
	if list, err := optStrings(obj, file, "allowedScenes"); err == nil && len(list) > 0 && allowed == nil {
		allowed = list
	}

	switch {
	case strings.Contains(demon, "ROBBER"), strings.Contains(demon, "FOLLOW"):
		return types.MoveFollow, allowed, nil
	case strings.Contains(demon, "FLEE"):
		return types.MoveFlee, allowed, nil
	case strings.Contains(demon, "PATROL"):
		return types.MovePatrol, allowed, nil
	case strings.Contains(demon, "RANDOM"):
		return types.MoveRandom, allowed, nil
	default:
		return types.MoveStationary, allowed, nil
	}
}

// extractBehaviors scans the behavior function name for known keywords
// and unions the result with explicit specialAbilities and
// properties.behaviors arrays. An empty result stays nil rather than
// becoming an empty slice.
func extractBehaviors(obj map[string]any, behaviorFn string, properties types.Bag) []string {
	seen := map[string]bool{}
	var behaviors []string
	add := func(b string) {
		if b != "" && !seen[b] {
			seen[b] = true
			behaviors = append(behaviors, b)
		}
	}

	if strings.Contains(behaviorFn, "ROBBER") {
		add("steal")
	}
	if strings.Contains(behaviorFn, "GUARD") {
		add("guard")
	}
	if strings.Contains(behaviorFn, "VANISH") {
		add("vanish")
	}

	if abilities, err := optStrings(obj, "", "specialAbilities"); err == nil {
		for _, a := range abilities {
			add(a)
		}
	}
	for _, b := range properties.Strings("behaviors") {
		add(b)
	}

	return behaviors
}

// buildVariables seeds known per-monster variables by id, then merges
// properties.variables on top so authored data can override the seeds.
func buildVariables(id string, properties types.Bag) types.Bag {
	vars := types.Bag{}
	if seed, ok := seedVariables[id]; ok {
		vars.Merge(seed.Clone())
	}
	if authored := properties.Sub("variables"); authored != nil {
		vars.Merge(authored)
	}
	if len(vars) == 0 {
		return nil
	}
	return vars
}
