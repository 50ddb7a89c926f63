// Package dna has utilities for single nucleotide sequences: complement
// tables over the extended ambiguity alphabet, composition statistics,
// reading frames with stop codon detection and random generation
package dna

import (
	"fmt"
	"math/rand"
	"strings"
)

// complements maps every symbol of the extended ambiguity alphabet to its
// complement, in both cases. W and S are their own complements
var complements = map[byte]byte{
	'A': 'T', 'a': 't', 'T': 'A', 't': 'a', 'C': 'G', 'c': 'g', 'G': 'C', 'g': 'c',
	'N': 'N', 'n': 'n', 'M': 'K', 'm': 'k', 'K': 'M', 'k': 'm', 'R': 'Y', 'r': 'y',
	'Y': 'R', 'y': 'r', 'W': 'W', 'w': 'w', 'S': 'S', 's': 's', 'V': 'B', 'v': 'b',
	'B': 'V', 'b': 'v', 'H': 'D', 'h': 'd', 'D': 'H', 'd': 'h',
}

// Reverse returns seq reversed
func Reverse(seq string) string {
	r := []byte(seq)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}

// Complement returns the complement of seq, preserving case. A symbol
// outside the ambiguity alphabet is an error
func Complement(seq string) (string, error) {
	comp := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b, known := complements[seq[i]]
		if !known {
			return "", fmt.Errorf("unknown base %q at position %d", seq[i], i)
		}
		comp[i] = b
	}

	return string(comp), nil
}

// ReverseComplement returns the reverse complement of seq
func ReverseComplement(seq string) (string, error) {
	return Complement(Reverse(seq))
}

// StripWhitespace removes every whitespace character from seq
func StripWhitespace(seq string) string {
	return strings.Join(strings.Fields(seq), "")
}

// Random returns a sequence of n symbols drawn uniformly from alphabet.
// An empty alphabet defaults to acgt
func Random(n int, alphabet string) string {
	if alphabet == "" {
		alphabet = "acgt"
	}

	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return string(seq)
}
