package command

import "strings"

var articles = map[string]bool{"a": true, "an": true, "the": true}

// stripArticles removes leading/interior articles from a phrase so
// "the brass lantern" and "brass lantern" name the same thing.
func stripArticles(phrase string) string {
	words := strings.Fields(phrase)
	kept := words[:0]
	for _, w := range words {
		if articles[strings.ToLower(w)] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// splitPreposition splits "X <prep> Y" into object and target phrases
// on the first occurrence of any of the given prepositions. When no
// preposition is present the whole phrase is the object and target is
// empty.
func splitPreposition(phrase string, preps ...string) (object, target string) {
	words := strings.Fields(phrase)
	for i, w := range words {
		lw := strings.ToLower(w)
		for _, p := range preps {
			if lw == p {
				return strings.Join(words[:i], " "), strings.Join(words[i+1:], " ")
			}
		}
	}
	return phrase, ""
}
