package assemble

// Match is the best pairing found between two sequences: the Matched
// sequence slid to Offset against the Base sequence, with Score positions
// agreeing between the two.
type Match struct {
	// Score is the number of positions where the two sequences agree
	Score int

	// Offset is the shift applied to Matched so that its first symbol
	// lines up with Base's symbol at that index. Negative offsets hang
	// the matched sequence off the left end of the base
	Offset int

	// Matched is the candidate sequence that was slid against Base
	Matched string

	// Base is the sequence the candidate was scored against
	Base string
}

// better reports whether m wins against other. Ties on score go to the
// larger offset, then to the greater Matched string, then the greater
// Base string. The string comparisons have no biological meaning, they
// only keep the selection deterministic
func (m Match) better(other Match) bool {
	if m.Score != other.Score {
		return m.Score > other.Score
	}
	if m.Offset != other.Offset {
		return m.Offset > other.Offset
	}
	if m.Matched != other.Matched {
		return m.Matched > other.Matched
	}
	return m.Base > other.Base
}

// score counts the positions where cand, slid to offset against base,
// carries the same symbol as base. Symbols compare exactly: an ambiguity
// code matches only itself, never the bases it stands for
func score(base, cand string, offset int) (count int) {
	start := 0
	if -offset > 0 {
		start = -offset
	}

	end := len(cand)
	if len(cand)-offset < end {
		end = len(cand) - offset
	}
	if len(base)-offset < end {
		end = len(base) - offset
	}

	for p := start; p < end; p++ {
		if cand[p] == base[p+offset] {
			count++
		}
	}

	return
}

// bestOffset scans every offset at which base and cand overlap by at
// least one position and returns the highest scoring Match. Empty
// sequences have no overlapping offsets and get a zero Match
func bestOffset(base, cand string) Match {
	if len(base) == 0 || len(cand) == 0 {
		return Match{Matched: cand, Base: base}
	}

	best := Match{Score: -1}
	for offset := 1 - len(cand); offset <= len(base)-1; offset++ {
		m := Match{
			Score:   score(base, cand, offset),
			Offset:  offset,
			Matched: cand,
			Base:    base,
		}

		if m.better(best) {
			best = m
		}
	}

	return best
}
