package news

// Dedup removes near-duplicates within a single batch. First seen wins: the
// earliest item in input order that represents a story survives and every
// later match is dropped, regardless of score. Quadratic, which is fine for
// the hundreds of items a run produces.
func (m Matcher) Dedup(items []Item) []Item {
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		dup := false
		for _, existing := range kept {
			if m.Match(existing, it) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, it)
		}
	}
	return kept
}
