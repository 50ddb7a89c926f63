package dna

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KonsKons26/dna-tools/config"
	"github.com/KonsKons26/dna-tools/internal/fasta"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// RevCompCmd reverse complements every record of the input FASTA and
// writes the results to the output FASTA
func RevCompCmd(cmd *cobra.Command, args []string) {
	in, out := ioFlags(cmd, ".revcomp.fasta")

	records, err := fasta.Read(in)
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", in, err)
	}

	for i, r := range records {
		rc, err := ReverseComplement(r.Seq)
		if err != nil {
			stderr.Fatalf("failed to reverse complement %s: %v", r.ID, err)
		}
		records[i].Seq = rc
	}

	c := config.New()
	if err := fasta.Write(out, records, c.Output.LineLength, c.Output.WordLength); err != nil {
		stderr.Fatalf("failed to write %s: %v", out, err)
	}
}

// StatsCmd prints length, GC percentage and base composition for every
// record of the input FASTA
func StatsCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		stderr.Fatal("no input file specified: pass a FASTA file with -i")
	}

	records, err := fasta.Read(in)
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", in, err)
	}

	for _, r := range records {
		fmt.Printf("%s\t%d bp", r.ID, len(r.Seq))

		if gc, err := GC(r.Seq); err == nil {
			fmt.Printf("\tGC %.2f%%", gc)
		}

		counts := CountBases(r.Seq)
		bases := make([]byte, 0, len(counts))
		for b := range counts {
			bases = append(bases, b)
		}
		sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })
		for _, b := range bases {
			fmt.Printf("\t%c=%d", b, counts[b])
		}
		fmt.Println()
	}
}

// FramesCmd prints the six reading frames of every record, optionally
// with the indexes of in-frame stop codons
func FramesCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		stderr.Fatal("no input file specified: pass a FASTA file with -i")
	}
	codons, _ := cmd.Flags().GetBool("codons")

	records, err := fasta.Read(in)
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", in, err)
	}

	for _, r := range records {
		frames, err := Frames(r.Seq)
		if err != nil {
			stderr.Fatalf("failed to build frames for %s: %v", r.ID, err)
		}

		fmt.Printf(">%s\n", r.ID)
		for _, name := range FrameNames {
			fmt.Printf("%s\t%s", name, frames[name])
			if codons {
				fmt.Printf("\tstops=%v", StopCodons(frames[name], 0))
			}
			fmt.Println()
		}
	}
}

// RandomCmd writes randomly generated records to a FASTA file
func RandomCmd(cmd *cobra.Command, args []string) {
	length, err := cmd.Flags().GetInt("length")
	if err != nil || length < 1 {
		stderr.Fatal("no sequence length specified: pass a positive length with -n")
	}

	count, err := cmd.Flags().GetInt("count")
	if err != nil || count < 1 {
		count = 1
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil || out == "" {
		out = "random.fasta"
	}

	c := config.New()
	alphabet, err := cmd.Flags().GetString("alphabet")
	if err != nil || alphabet == "" {
		alphabet = c.Random.Alphabet
	}

	records := make([]fasta.Record, count)
	for i := range records {
		records[i] = fasta.Record{
			ID:  fmt.Sprintf("random_%d", i+1),
			Seq: Random(length, alphabet),
		}
	}

	if err := fasta.Write(out, records, c.Output.LineLength, c.Output.WordLength); err != nil {
		stderr.Fatalf("failed to write %s: %v", out, err)
	}
}

// ioFlags reads the in and out flags, deriving an output name from the
// input when out wasn't given
func ioFlags(cmd *cobra.Command, suffix string) (in, out string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		stderr.Fatal("no input file specified: pass a FASTA file with -i")
	}

	out, err = cmd.Flags().GetString("out")
	if err != nil || out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + suffix
	}

	return in, out
}
