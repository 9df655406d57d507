package types

// MonsterState is a monster's current disposition.
type MonsterState string

const (
	MonsterIdle      MonsterState = "idle"
	MonsterAlert     MonsterState = "alert"
	MonsterHostile   MonsterState = "hostile"
	MonsterFleeing   MonsterState = "fleeing"
	MonsterFriendly  MonsterState = "friendly"
	MonsterDead      MonsterState = "dead"
	MonsterGuarding  MonsterState = "guarding"
	MonsterWandering MonsterState = "wandering"
	MonsterLurking   MonsterState = "lurking"
	MonsterSleeping  MonsterState = "sleeping"
)

// ValidMonsterStates is the set of state values a monster file may use.
var ValidMonsterStates = map[MonsterState]bool{
	MonsterIdle:      true,
	MonsterAlert:     true,
	MonsterHostile:   true,
	MonsterFleeing:   true,
	MonsterFriendly:  true,
	MonsterDead:      true,
	MonsterGuarding:  true,
	MonsterWandering: true,
	MonsterLurking:   true,
	MonsterSleeping:  true,
}

// MovementKind categorizes how a monster moves between scenes.
type MovementKind string

const (
	MoveStationary MovementKind = "stationary"
	MoveRandom     MovementKind = "random"
	MovePatrol     MovementKind = "patrol"
	MoveFollow     MovementKind = "follow"
	MoveFlee       MovementKind = "flee"
)

// ValidMovementKinds is the set of movement pattern values a monster
// file may use.
var ValidMovementKinds = map[MovementKind]bool{
	MoveStationary: true,
	MoveRandom:     true,
	MovePatrol:     true,
	MoveFollow:     true,
	MoveFlee:       true,
}

// MonsterType is the broad category of a monster.
type MonsterType string

const (
	MonsterHumanoid      MonsterType = "humanoid"
	MonsterCreature      MonsterType = "creature"
	MonsterEnvironmental MonsterType = "environmental"
)

// Monster is a creature in the world. The original game drove monsters
// with MDL "demon" routines; here the demon name only survives as a
// string the loader uses to infer the movement pattern.
type Monster struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ExamineText      string          `json:"examineText"`
	Health           int             `json:"health"`
	MaxHealth        int             `json:"maxHealth"`
	State            MonsterState    `json:"state"`
	CurrentSceneID   string          `json:"currentSceneId"`
	StartingSceneID  string          `json:"startingSceneId"`
	MovementPattern  MovementKind    `json:"movementPattern"`
	AllowedScenes    []string        `json:"allowedScenes,omitempty"`
	Inventory        []string        `json:"inventory"`
	Synonyms         []string        `json:"synonyms,omitempty"`
	Flags            map[string]bool `json:"flags,omitempty"`
	CombatStrength   int             `json:"combatStrength,omitempty"`
	MeleeMessages    []string        `json:"meleeMessages,omitempty"`
	BehaviorFunction string          `json:"behaviorFunction,omitempty"`
	MovementDemon    string          `json:"movementDemon,omitempty"`
	Type             MonsterType     `json:"type"`
	Properties       Bag             `json:"properties,omitempty"`
	Variables        Bag             `json:"variables,omitempty"`
	Behaviors        []string        `json:"behaviors,omitempty"`
	DefeatScore      int             `json:"defeatScore,omitempty"`
}

// HasBehavior reports whether the monster carries the named behavior.
func (m *Monster) HasBehavior(name string) bool {
	for _, b := range m.Behaviors {
		if b == name {
			return true
		}
	}
	return false
}

// CanEnter reports whether sceneID is in the monster's allowed scene
// list. An empty list means the monster may go anywhere.
func (m *Monster) CanEnter(sceneID string) bool {
	if len(m.AllowedScenes) == 0 {
		return true
	}
	for _, id := range m.AllowedScenes {
		if id == sceneID {
			return true
		}
	}
	return false
}
