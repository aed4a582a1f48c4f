package frequency

// indexed pairs an entry with the first-seen index of its token, which is
// the tie-break when counts are equal.
type indexed struct {
	Entry
	seen int
}

// before reports whether a ranks ahead of b: higher count first, earlier
// first appearance on ties.
func before(a, b indexed) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.seen < b.seen
}

// rank orders items by count descending with ties in first-seen order,
// using an explicit merge sort. The order is part of the result contract.
func rank(items []indexed) []Entry {
	sorted := mergeSort(items)
	entries := make([]Entry, len(sorted))
	for i, item := range sorted {
		entries[i] = item.Entry
	}
	return entries
}

func mergeSort(items []indexed) []indexed {
	if len(items) <= 1 {
		return items
	}
	mid := len(items) / 2
	return merge(mergeSort(items[:mid]), mergeSort(items[mid:]))
}

func merge(left, right []indexed) []indexed {
	merged := make([]indexed, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if before(right[j], left[i]) {
			merged = append(merged, right[j])
			j++
		} else {
			merged = append(merged, left[i])
			i++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}
