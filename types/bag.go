package types

// Bag is an open-ended key/value record carried by entities for
// authored data that has no fixed schema (capacities, treasure points,
// per-monster variables). Unknown keys round-trip through save files
// untouched; typed access goes through the accessor methods so callers
// never type-assert raw values themselves.
type Bag map[string]any

// Int returns the value for key as an int. JSON numbers decode as
// float64, so both forms are accepted. Missing or non-numeric values
// return fallback.
func (b Bag) Int(key string, fallback int) int {
	v, ok := b[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}

// Bool returns the value for key as a bool, or fallback if missing or
// not a bool.
func (b Bag) Bool(key string, fallback bool) bool {
	if v, ok := b[key].(bool); ok {
		return v
	}
	return fallback
}

// String returns the value for key as a string, or fallback.
func (b Bag) String(key, fallback string) string {
	if v, ok := b[key].(string); ok {
		return v
	}
	return fallback
}

// Strings returns the value for key as a string slice. JSON arrays
// decode as []any, so both forms are accepted. Missing keys return nil.
func (b Bag) Strings(key string) []string {
	switch v := b[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Sub returns the value for key as a nested Bag. JSON objects decode as
// map[string]any. Missing keys return nil.
func (b Bag) Sub(key string) Bag {
	switch v := b[key].(type) {
	case Bag:
		return v
	case map[string]any:
		return Bag(v)
	default:
		return nil
	}
}

// Has reports whether key is present at all.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Clone returns a shallow copy. Nil bags clone to nil.
func (b Bag) Clone() Bag {
	if b == nil {
		return nil
	}
	out := make(Bag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge copies every key from other into b, overwriting existing keys.
func (b Bag) Merge(other Bag) {
	for k, v := range other {
		b[k] = v
	}
}
