package dna

import (
	"fmt"
	"strings"
)

// FrameNames lists the six reading frames in output order
var FrameNames = []string{"f1", "f2", "f3", "r1", "r2", "r3"}

// stopCodons are the three translation stop codons, compared lowercase
var stopCodons = map[string]bool{
	"tga": true,
	"tag": true,
	"taa": true,
}

// Frames returns the three forward and three reverse reading frames of
// seq, keyed f1-f3 and r1-r3. Frames past the end of a short sequence
// are empty
func Frames(seq string) (map[string]string, error) {
	rc, err := ReverseComplement(seq)
	if err != nil {
		return nil, err
	}

	frames := make(map[string]string, 6)
	for i := 0; i < 3; i++ {
		frames[fmt.Sprintf("f%d", i+1)] = tailFrom(seq, i)
		frames[fmt.Sprintf("r%d", i+1)] = tailFrom(rc, i)
	}

	return frames, nil
}

// StopCodons returns the index of every in-frame stop codon in seq.
// frame is the zero-based offset codons are read from
func StopCodons(seq string, frame int) (indexes []int) {
	if frame < 0 {
		frame = 0
	}

	for i := frame; i+3 <= len(seq); i += 3 {
		if stopCodons[strings.ToLower(seq[i:i+3])] {
			indexes = append(indexes, i)
		}
	}

	return
}

// HasStopCodon reports whether the frame holds at least one stop codon
func HasStopCodon(seq string, frame int) bool {
	return len(StopCodons(seq, frame)) > 0
}

func tailFrom(seq string, i int) string {
	if i > len(seq) {
		return ""
	}
	return seq[i:]
}
