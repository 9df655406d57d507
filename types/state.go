package types

// SceneState is the per-scene runtime record: whether the player has
// been here, which items are currently on the floor, and any scene-local
// variables set by commands.
type SceneState struct {
	Visited   bool     `json:"visited"`
	Items     []string `json:"items"`
	Variables Bag      `json:"variables,omitempty"`
}

// GameState is the single canonical mutable state for a session. It is
// created once at startup and passed by reference into every service;
// all reads and writes go through the state service. The id-indexed
// entity maps are the only mutable copies of loaded entities.
type GameState struct {
	CurrentSceneID string                 `json:"currentSceneId"`
	Inventory      []string               `json:"inventory"`
	SceneStates    map[string]*SceneState `json:"sceneStates"`
	Score          int                    `json:"score"`
	Moves          int                    `json:"moves"`
	Flags          map[string]bool        `json:"flags"`
	Variables      Bag                    `json:"variables"`
	Items          map[string]*Item       `json:"items"`
	Scenes         map[string]*Scene      `json:"scenes"`
	Monsters       map[string]*Monster    `json:"monsters"`
	RNGSeed        int64                  `json:"rngSeed"`
	RNGPosition    int64                  `json:"rngPosition"`
}

// NewGameState builds the initial state from loaded entities. Scene
// states are seeded from each scene's authored item list so runtime
// item placement starts out matching the world files.
func NewGameState(startScene string, items []*Item, scenes []*Scene, monsters []*Monster) *GameState {
	gs := &GameState{
		CurrentSceneID: startScene,
		Inventory:      []string{},
		SceneStates:    map[string]*SceneState{},
		Flags:          map[string]bool{},
		Variables:      Bag{},
		Items:          map[string]*Item{},
		Scenes:         map[string]*Scene{},
		Monsters:       map[string]*Monster{},
	}
	for _, it := range items {
		gs.Items[it.ID] = it
	}
	for _, sc := range scenes {
		gs.Scenes[sc.ID] = sc
		ss := &SceneState{Items: []string{}, Variables: Bag{}}
		for _, si := range sc.Items {
			ss.Items = append(ss.Items, si.ItemID)
		}
		gs.SceneStates[sc.ID] = ss
	}
	for _, m := range monsters {
		gs.Monsters[m.ID] = m
	}
	return gs
}
