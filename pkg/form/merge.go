package form

// MergeOptions deep-merges configuration maps left to right. String-keyed
// maps merge recursively with later sources winning per key; []any sequences
// concatenate; for any other type collision the later value replaces the
// earlier one wholesale. Inputs are never mutated.
func MergeOptions(sources ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, source := range sources {
		for key, value := range source {
			out[key] = mergeValue(out[key], value)
		}
	}
	return out
}

func mergeValue(existing, incoming any) any {
	switch next := incoming.(type) {
	case map[string]any:
		prev, ok := existing.(map[string]any)
		if !ok {
			return copyMap(next)
		}
		merged := copyMap(prev)
		for key, value := range next {
			merged[key] = mergeValue(merged[key], value)
		}
		return merged
	case []any:
		prev, ok := existing.([]any)
		if !ok {
			return append([]any(nil), next...)
		}
		combined := make([]any, 0, len(prev)+len(next))
		combined = append(combined, prev...)
		combined = append(combined, next...)
		return combined
	default:
		return incoming
	}
}

func copyMap(source map[string]any) map[string]any {
	out := make(map[string]any, len(source))
	for key, value := range source {
		switch v := value.(type) {
		case map[string]any:
			out[key] = copyMap(v)
		case []any:
			out[key] = append([]any(nil), v...)
		default:
			out[key] = value
		}
	}
	return out
}
