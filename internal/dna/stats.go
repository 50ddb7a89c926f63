package dna

import "fmt"

// CountBases returns how often every symbol occurs in seq
func CountBases(seq string) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}

	return counts
}

// GC returns the GC percentage of seq. N symbols don't count toward the
// total. A sequence of nothing but N symbols (or nothing at all) has no
// defined GC content
func GC(seq string) (float64, error) {
	var gc, n int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'g', 'C', 'c':
			gc++
		case 'N', 'n':
			n++
		}
	}

	total := len(seq) - n
	if total < 1 {
		return 0, fmt.Errorf("GC content undefined: no unambiguous bases in sequence")
	}

	return float64(gc) * 100 / float64(total), nil
}
