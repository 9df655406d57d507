package command

import "sort"

// Suggestions returns candidate verbs for an unrecognized one: names
// the verb is a prefix of, or failing that, names within a small edit
// distance. The result is sorted so the same typo always produces the
// same list.
func (r *Registry) Suggestions(verb string) []string {
	names := map[string]bool{}
	for name := range r.commands {
		names[name] = true
	}

	var prefixed []string
	for name := range names {
		if len(verb) > 0 && len(name) > len(verb) && name[:len(verb)] == verb {
			prefixed = append(prefixed, name)
		}
	}
	if len(prefixed) > 0 {
		sort.Strings(prefixed)
		return prefixed
	}

	// Edit-distance fallback. Tolerance scales with verb length but is
	// capped at 2; a tolerance of zero means the verb is too short to
	// guess about.
	tolerance := len(verb) / 3
	if tolerance > 2 {
		tolerance = 2
	}
	if tolerance == 0 {
		return nil
	}

	var close []string
	for name := range names {
		d := levenshtein(verb, name)
		if d > 0 && d <= tolerance {
			close = append(close, name)
		}
	}
	sort.Strings(close)
	return close
}

func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
