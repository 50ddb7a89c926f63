// Package fasta reads and writes FASTA sequence files
package fasta

import (
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Record is a single FASTA entry: the first word of its header line and
// the whitespace-stripped sequence body beneath it
type Record struct {
	ID  string
	Seq string
}

// Read parses the FASTA file at path into records. A path without a
// recognized FASTA extension gets ".fasta" appended, mirroring how the
// files are written
func Read(path string) (records []Record, err error) {
	path = withExtension(path)

	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fasta file: %v", err)
	}
	defer fp.Close()

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to map fasta file %s: %v", path, err)
	}
	defer func() {
		// the contents were copied out before the unmap
		if uerr := mm.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("failed to unmap fasta file %s: %v", path, uerr)
		}
	}()

	return parse(string(mm), path)
}

// parse splits the file contents on headers and accumulates the sequence
// lines between them. Only the first word of a header keys the record
func parse(contents, path string) (records []Record, err error) {
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, ">") {
			id := ""
			if words := strings.Fields(line[1:]); len(words) > 0 {
				id = words[0]
			}
			records = append(records, Record{ID: id})
			continue
		}

		if len(records) == 0 {
			// sequence content before any header
			continue
		}
		records[len(records)-1].Seq += strings.Join(strings.Fields(line), "")
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse any records from %s", path)
	}

	return records, nil
}

// Write saves the records to path in FASTA format. Sequence lines hold
// lineLength symbols split into wordLength-symbol groups separated by
// single spaces, with a blank line after every record
func Write(path string, records []Record, lineLength, wordLength int) error {
	if lineLength < 1 {
		lineLength = 50
	}
	if wordLength < 1 {
		wordLength = 10
	}
	path = withExtension(path)

	var b strings.Builder
	for _, r := range records {
		b.WriteString(">" + r.ID + "\n")
		for _, line := range chunks(r.Seq, lineLength) {
			b.WriteString(strings.Join(chunks(line, wordLength), " ") + "\n")
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0666); err != nil {
		return fmt.Errorf("failed to write fasta file %s: %v", path, err)
	}

	return nil
}

// chunks splits seq into pieces of at most n symbols
func chunks(seq string, n int) (pieces []string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		pieces = append(pieces, seq[i:end])
	}

	return
}

// withExtension defaults a path without a FASTA extension to ".fasta"
func withExtension(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range []string{".fasta", ".fa", ".faa"} {
		if strings.HasSuffix(lower, ext) {
			return path
		}
	}

	return path + ".fasta"
}
