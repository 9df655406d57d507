package item

import (
	"strings"

	"github.com/dirkkok101/zorkcore/types"
)

var leadingArticles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Matches resolves a player-typed noun phrase against an item. Players
// type partial and abbreviated phrases ("take large coil" for an item
// aliased ["coil", "large"]), so matching is a cascade: exact name,
// exact alias, multi-word alias partial match, single-word alias
// prefix, then substring against the words of the item's name.
func Matches(it *types.Item, query string) bool {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	for len(words) > 0 && leadingArticles[words[0]] {
		words = words[1:]
	}
	if len(words) == 0 {
		return false
	}
	phrase := strings.Join(words, " ")

	// Exact name.
	name := strings.ToLower(it.Name)
	if name == phrase {
		return true
	}

	// Exact alias.
	aliases := make([]string, 0, len(it.Aliases))
	for _, a := range it.Aliases {
		aliases = append(aliases, strings.ToLower(a))
	}
	for _, a := range aliases {
		if a == phrase {
			return true
		}
	}

	if len(words) > 1 {
		// Multi-word partial: at least half the search words must hit
		// an alias, exactly or by shared stem.
		hits := 0
		for _, w := range words {
			if wordHitsAlias(w, aliases) {
				hits++
			}
		}
		if hits*2 >= len(words) && hits > 0 {
			return true
		}
	} else {
		// Single-word prefix against aliases.
		w := words[0]
		if len(w) >= 3 {
			for _, a := range aliases {
				if strings.HasPrefix(a, w) {
					return true
				}
			}
		}
	}

	// Substring against individual words of the item's name.
	for _, nameWord := range strings.Fields(name) {
		for _, w := range words {
			if len(w) >= 3 && strings.Contains(nameWord, w) {
				return true
			}
		}
	}

	return false
}

// wordHitsAlias reports whether a single search word matches an alias,
// exactly or by prefix in either direction (same stem).
func wordHitsAlias(word string, aliases []string) bool {
	for _, a := range aliases {
		if a == word {
			return true
		}
		if len(word) >= 3 && (strings.HasPrefix(a, word) || strings.HasPrefix(word, a)) {
			return true
		}
	}
	return false
}

// Find resolves a noun phrase against a list of candidate item ids,
// returning the first match in candidate order.
func (s *Service) Find(query string, candidates []string) (*types.Item, bool) {
	for _, id := range candidates {
		if it, ok := s.state.Item(id); ok {
			if Matches(it, query) {
				return it, true
			}
		}
	}
	return nil, false
}
