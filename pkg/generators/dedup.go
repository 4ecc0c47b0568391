package generators

// inclusion is an unordered (vertex, edge) pair candidate, keyed for
// duplicate detection during generation.
type inclusion struct {
	v, e uint64
}

// removeDuplicates filters candidate inclusions down to the first
// occurrence of each (v, e) pair, returning the deduplicated slice and the
// count of duplicates dropped.
func removeDuplicates(candidates []inclusion) ([]inclusion, int) {
	seen := make(map[inclusion]struct{}, len(candidates))
	out := make([]inclusion, 0, len(candidates))
	dropped := 0
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			dropped++
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, dropped
}
