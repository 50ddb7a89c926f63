// Package assemble builds a single consensus sequence from a pool of
// overlapping DNA reads by greedily merging the best scoring pair until
// one sequence remains.
package assemble

import (
	"context"
	"errors"
	"log"
	"os"
	"runtime"
	"sync"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

var (
	// ErrEmptyPool is returned when an assembly is started with no reads
	ErrEmptyPool = errors.New("empty read pool: nothing to assemble")

	// ErrNoCandidates is returned when every remaining read has the same
	// sequence as the current consensus and no merge partner is left
	ErrNoCandidates = errors.New("no candidate reads left to merge")
)

// Read is a single input fragment. IDs come from FASTA headers and stay
// stable for the life of the pool
type Read struct {
	ID  string
	Seq string
}

// Assembler holds one immutable read pool. Every call to Assemble runs an
// independent reduction over its own copy of the pool
type Assembler struct {
	reads   []Read
	workers int
}

// New creates an Assembler over the reads. workers is the number of
// goroutines scanning merge candidates, anything below one means
// GOMAXPROCS. Reads sharing a sequence are legal input but every copy is
// consumed by the single merge that matches their shared sequence, so
// duplicates are flagged with a warning
func New(reads []Read, workers int) (*Assembler, error) {
	if len(reads) == 0 {
		return nil, ErrEmptyPool
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	seen := make(map[string]string)
	for _, r := range reads {
		if firstID, duplicate := seen[r.Seq]; duplicate {
			stderr.Printf(
				"warning: %s has the same sequence as %s, both will be consumed by a single merge\n",
				r.ID,
				firstID,
			)
		} else {
			seen[r.Seq] = r.ID
		}
	}

	pool := make([]Read, len(reads))
	copy(pool, reads)

	return &Assembler{
		reads:   pool,
		workers: workers,
	}, nil
}

// Assemble merges the pool's reads until a single consensus remains and
// returns it. The reduction is strictly greedy: each step merges the
// remaining read with the best overlap against the current consensus and
// the choice is never revisited. ctx is checked between merge steps
func (a *Assembler) Assemble(ctx context.Context) (string, error) {
	current := a.reads[0].Seq
	remaining := make([]Read, len(a.reads)-1)
	copy(remaining, a.reads[1:])

	for len(remaining) > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		match, err := a.bestMatch(current, remaining)
		if err != nil {
			return "", err
		}

		current = consensus(match)
		remaining = withoutSequence(remaining, match.Matched)
	}

	return current, nil
}

// bestMatch finds the remaining read with the best overlap against the
// current consensus. Reads whose sequence equals the consensus cannot be
// merged and are skipped
func (a *Assembler) bestMatch(current string, remaining []Read) (Match, error) {
	var candidates []string
	for _, r := range remaining {
		if r.Seq != current {
			candidates = append(candidates, r.Seq)
		}
	}

	if len(candidates) == 0 {
		return Match{}, ErrNoCandidates
	}

	if a.workers < 2 || len(candidates) == 1 {
		return scanSerial(current, candidates), nil
	}

	return a.scanParallel(current, candidates), nil
}

// scanSerial picks the winning Match across the candidates one at a time
func scanSerial(current string, candidates []string) Match {
	best := bestOffset(current, candidates[0])
	for _, cand := range candidates[1:] {
		if m := bestOffset(current, cand); m.better(best) {
			best = m
		}
	}

	return best
}

// scanParallel fans the candidate scan out across the worker count. The
// workers' local winners are combined under the same ordering as the
// serial scan, so the selected Match is identical
func (a *Assembler) scanParallel(current string, candidates []string) Match {
	jobs := make(chan string, len(candidates))
	results := make(chan Match, a.workers)

	wg := &sync.WaitGroup{}
	for i := 0; i < a.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var local Match
			found := false
			for cand := range jobs {
				if m := bestOffset(current, cand); !found || m.better(local) {
					local = m
					found = true
				}
			}

			if found {
				results <- local
			}
		}()
	}

	for _, cand := range candidates {
		jobs <- cand
	}
	close(jobs)

	wg.Wait()
	close(results)

	best := <-results
	for m := range results {
		if m.better(best) {
			best = m
		}
	}

	return best
}

// withoutSequence removes every read whose sequence equals seq. Removal
// is by value: duplicate reads all leave the pool with the merge that
// consumed their shared sequence
func withoutSequence(reads []Read, seq string) []Read {
	kept := reads[:0]
	for _, r := range reads {
		if r.Seq != seq {
			kept = append(kept, r)
		}
	}

	return kept
}
