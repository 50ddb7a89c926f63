package assemble

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/KonsKons26/dna-tools/config"
	"github.com/KonsKons26/dna-tools/internal/fasta"
	"github.com/spf13/cobra"
)

// AssembleCmd reads a pool of reads from a FASTA file, assembles them
// into a single consensus sequence and writes that back out as FASTA
func AssembleCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		stderr.Fatal("no input file specified: pass a FASTA file of reads with -i")
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil || out == "" {
		out = guessOutput(in)
	}

	c := config.New()
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil || workers == 0 {
		workers = c.Assembly.Workers
	}

	start := time.Now()

	id, seq, err := run(cmd, in, out, workers, c)
	if err != nil {
		stderr.Fatalf("failed to assemble the reads in %s: %v", in, err)
	}

	fmt.Printf("wrote %s (%d bp) to %s in %s\n", id, len(seq), out, time.Since(start))
}

// run parses the read pool, reduces it to one consensus and serializes
// the result
func run(cmd *cobra.Command, in, out string, workers int, c *config.Config) (id, seq string, err error) {
	records, err := fasta.Read(in)
	if err != nil {
		return "", "", fmt.Errorf("failed to read the reads from %s: %v", in, err)
	}

	reads := make([]Read, len(records))
	for i, r := range records {
		reads[i] = Read{ID: r.ID, Seq: r.Seq}
	}

	a, err := New(reads, workers)
	if err != nil {
		return "", "", err
	}

	if seq, err = a.Assemble(cmd.Context()); err != nil {
		return "", "", err
	}

	id = fmt.Sprintf("consensus_of_%d_reads", len(reads))
	record := fasta.Record{ID: id, Seq: seq}
	if err = fasta.Write(out, []fasta.Record{record}, c.Output.LineLength, c.Output.WordLength); err != nil {
		return "", "", err
	}

	return id, seq, nil
}

// guessOutput names an output file after the input when none was given
func guessOutput(in string) string {
	ext := filepath.Ext(in)
	return in[:len(in)-len(ext)] + ".consensus.fasta"
}
