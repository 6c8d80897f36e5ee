package matching

// jaccard is |a ∩ b| / |a ∪ b|, zero when both are empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := intersection(a, b)
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// coverage is the share of required held by owned.
func coverage(owned, required map[string]struct{}) float64 {
	if len(required) == 0 {
		return 0
	}
	return float64(intersection(owned, required)) / float64(len(required))
}

func intersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func intersects(a, b map[string]struct{}) bool {
	return intersection(a, b) > 0
}
