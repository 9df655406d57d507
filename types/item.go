// Package types defines the shared data structures for the zorkcore
// engine. This package contains only data definitions and typed
// accessors — game logic lives in the engine services.
package types

// ItemType classifies an item's primary behavior.
type ItemType string

const (
	ItemGeneric     ItemType = "generic"
	ItemContainer   ItemType = "container"
	ItemLightSource ItemType = "light_source"
	ItemReadable    ItemType = "readable"
	ItemTreasure    ItemType = "treasure"
	ItemLockable    ItemType = "lockable"
	ItemWeapon      ItemType = "weapon"
	ItemTool        ItemType = "tool"
	ItemFood        ItemType = "food"
)

// ValidItemTypes is the set of item type values a world file may use.
var ValidItemTypes = map[ItemType]bool{
	ItemGeneric:     true,
	ItemContainer:   true,
	ItemLightSource: true,
	ItemReadable:    true,
	ItemTreasure:    true,
	ItemLockable:    true,
	ItemWeapon:      true,
	ItemTool:        true,
	ItemFood:        true,
}

// ItemState is the mutable sub-record of an item. Services mutate it in
// place for the life of a session.
type ItemState struct {
	Open     bool     `json:"open"`
	IsLit    bool     `json:"isLit"`
	IsLocked bool     `json:"isLocked"`
	Contents []string `json:"contents"`
}

// Interaction is a data-driven response to a verb applied to an item.
// Condition and Effect are optional Lua expressions evaluated against
// the item's state table.
type Interaction struct {
	Command   string `json:"command"`
	Condition string `json:"condition,omitempty"`
	Effect    string `json:"effect,omitempty"`
	Message   string `json:"message"`
}

// Item is a world object. Items are created once at load and never
// destroyed; their location is tracked by membership in the player
// inventory, a container's contents, or a scene's item list — never by
// a field on the item itself.
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	ExamineText  string        `json:"examineText"`
	Aliases      []string      `json:"aliases"`
	Type         ItemType      `json:"type"`
	Portable     bool          `json:"portable"`
	Visible      bool          `json:"visible"`
	Weight       int           `json:"weight"`
	Size         string        `json:"size"`
	Tags         []string      `json:"tags"`
	Properties   Bag           `json:"properties"`
	State        ItemState     `json:"state"`
	Interactions []Interaction `json:"interactions,omitempty"`
}

// HasTag reports whether the item carries the given tag.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsContainer reports whether the item can hold other items.
func (it *Item) IsContainer() bool {
	return it.Type == ItemContainer || it.Properties.Bool("container", false)
}

// IsOpenable reports whether open/close apply to the item at all.
func (it *Item) IsOpenable() bool {
	return it.IsContainer() || it.Properties.Bool("openable", false)
}

// IsLightSource reports whether the item can be lit.
func (it *Item) IsLightSource() bool {
	return it.Type == ItemLightSource || it.Properties.Bool("lightSource", false)
}

// IsLockable reports whether lock/unlock apply to the item.
func (it *Item) IsLockable() bool {
	return it.Type == ItemLockable || it.Properties.Bool("lockable", false)
}

// IsTreasure reports whether the item scores as a treasure.
func (it *Item) IsTreasure() bool {
	return it.Type == ItemTreasure || it.Properties.Has("treasurePoints")
}
