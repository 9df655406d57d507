package types

// Lighting describes how well a scene is lit.
type Lighting string

const (
	LightDaylight   Lighting = "daylight"
	LightLit        Lighting = "lit"
	LightDark       Lighting = "dark"
	LightPitchBlack Lighting = "pitch_black"
)

// ValidLighting is the set of lighting values a scene file may use.
var ValidLighting = map[Lighting]bool{
	LightDaylight:   true,
	LightLit:        true,
	LightDark:       true,
	LightPitchBlack: true,
}

// Exit is one way out of a scene. Condition lists flag names that must
// all be true; the pseudo-flags "light_load" and "empty_handed" are
// evaluated against the player's inventory instead of the flag table.
// Exits authored as blocked or with a null destination never survive
// loading.
type Exit struct {
	Direction      string   `json:"direction"`
	To             string   `json:"to"`
	Description    string   `json:"description,omitempty"`
	Condition      []string `json:"condition,omitempty"`
	Locked         bool     `json:"locked,omitempty"`
	KeyID          string   `json:"keyId,omitempty"`
	Hidden         bool     `json:"hidden,omitempty"`
	OneWay         bool     `json:"oneWay,omitempty"`
	FailureMessage string   `json:"failureMessage,omitempty"`
}

// SceneItem places an item in a scene, optionally gated by a condition
// flag and a visibility marker.
type SceneItem struct {
	ItemID    string `json:"itemId"`
	Visible   bool   `json:"visible"`
	Condition string `json:"condition,omitempty"`
}

// Scene is a location. Pure data: description rendering, exit
// filtering and movement all live in the scene service. Visited status
// is not stored here — it lives in GameState.SceneStates.
type Scene struct {
	ID                    string      `json:"id"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	FirstVisitDescription string      `json:"firstVisitDescription,omitempty"`
	Exits                 []Exit      `json:"exits"`
	Items                 []SceneItem `json:"items"`
	Monsters              []string    `json:"monsters"`
	Lighting              Lighting    `json:"lighting"`
	Region                string      `json:"region,omitempty"`
	Atmosphere            []string    `json:"atmosphere,omitempty"`
	EntryActions          []string    `json:"entryActions,omitempty"`
	State                 Bag         `json:"state,omitempty"`
	Tags                  []string    `json:"tags,omitempty"`
}

// ItemEntry returns the authored placement record for an item id, if
// the scene ever listed it.
func (sc *Scene) ItemEntry(itemID string) (SceneItem, bool) {
	for _, si := range sc.Items {
		if si.ItemID == itemID {
			return si, true
		}
	}
	return SceneItem{}, false
}
