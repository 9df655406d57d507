package command

import "github.com/dirkkok101/zorkcore/types"

// reachableIDs returns the item ids a phrase could refer to: carried
// items, items visible in the current scene, and the contents of any
// open container among those. Order is deterministic so fuzzy matching
// resolves the same way every time.
func (s *Services) reachableIDs() []string {
	var ids []string
	ids = append(ids, s.State.Inventory()...)
	for _, it := range s.Scenes.VisibleItems(s.State.CurrentSceneID()) {
		ids = append(ids, it.ID)
	}
	for _, id := range append([]string{}, ids...) {
		it, ok := s.State.Item(id)
		if !ok || !it.IsContainer() || !it.State.Open {
			continue
		}
		ids = append(ids, it.State.Contents...)
	}
	return ids
}

// findReachable resolves a noun phrase against everything in reach.
func (s *Services) findReachable(phrase string) (*types.Item, bool) {
	return s.Items.Find(stripArticles(phrase), s.reachableIDs())
}

// findCarried resolves a noun phrase against the inventory only.
func (s *Services) findCarried(phrase string) (*types.Item, bool) {
	return s.Items.Find(stripArticles(phrase), s.State.Inventory())
}
