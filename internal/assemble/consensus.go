package assemble

// consensus merges a Match's two sequences into one. The matched sequence
// keeps its full content in the overlapping region, the base contributes
// only the flanks the matched sequence doesn't reach. Slices past either
// end of the base contribute nothing
func consensus(m Match) string {
	head := 0
	if m.Offset > 0 {
		head = m.Offset
	}
	if head > len(m.Base) {
		head = len(m.Base)
	}

	tail := len(m.Matched) + m.Offset
	if tail < 0 {
		tail = 0
	}
	if tail > len(m.Base) {
		tail = len(m.Base)
	}

	return m.Base[:head] + m.Matched + m.Base[tail:]
}
