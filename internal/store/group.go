package store

// GroupBySource partitions guidelines by source document, preserving both
// first-seen source order and guideline order within each group. With
// append-only stores the last group belongs to the most recent source.
func GroupBySource(guidelines []Guideline) [][]Guideline {
	index := make(map[string]int)

	var groups [][]Guideline

	for _, g := range guidelines {
		i, seen := index[g.SourceID]
		if !seen {
			i = len(groups)
			index[g.SourceID] = i
			groups = append(groups, nil)
		}

		groups[i] = append(groups[i], g)
	}

	return groups
}
