package fasta

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func Test_parse(t *testing.T) {
	type args struct {
		contents string
	}
	tests := []struct {
		name    string
		args    args
		want    []Record
		wantErr bool
	}{
		{
			"single record",
			args{">seq1\nATCG\n"},
			[]Record{{"seq1", "ATCG"}},
			false,
		},
		{
			"header keyed by its first word",
			args{">seq1 homo sapiens chr1\nATCG\nGGCC\n"},
			[]Record{{"seq1", "ATCGGGCC"}},
			false,
		},
		{
			"multiple records with whitespace in the body",
			args{">a\nAT CG\n\n>b\n  ggcc  \n"},
			[]Record{{"a", "ATCG"}, {"b", "ggcc"}},
			false,
		},
		{
			"windows line endings",
			args{">a\r\nATCG\r\n"},
			[]Record{{"a", "ATCG"}},
			false,
		},
		{
			"no records",
			args{"ATCG\n"},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.args.contents, "test.fasta")
			if (err != nil) != tt.wantErr {
				t.Fatalf("parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reads.fasta")

	contents := ">read1 first\nATCGATCG\nGGGG\n>read2\ncccc\n"
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}

	want := []Record{
		{"read1", "ATCGATCGGGGG"},
		{"read2", "cccc"},
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}

	// a path without an extension gets .fasta appended
	got, err = Read(filepath.Join(dir, "reads"))
	if err != nil {
		t.Fatalf("Read() without extension error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() without extension = %v, want %v", got, want)
	}
}

// sequence lines hold 50 symbols in space separated groups of 10
func Test_Write_format(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fasta")

	seq := strings.Repeat("ACGTACGTAC", 12) // 120 symbols
	if err := Write(path, []Record{{ID: "r1", Seq: seq}}, 50, 10); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	fullLine := strings.Repeat("ACGTACGTAC ", 4) + "ACGTACGTAC"
	want := strings.Join([]string{
		">r1",
		fullLine,
		fullLine,
		"ACGTACGTAC ACGTACGTAC",
		"",
	}, "\n") + "\n"

	if string(dat) != want {
		t.Errorf("Write() file contents = %q, want %q", string(dat), want)
	}
}

func Test_roundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.fasta")

	records := []Record{
		{"a", strings.Repeat("ACGTN", 31)},
		{"b", "TTAA"},
	}

	if err := Write(path, records, 50, 10); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("Read() after Write() = %v, want %v", got, records)
	}
}

func Test_withExtension(t *testing.T) {
	type args struct {
		path string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"fasta kept", args{"reads.fasta"}, "reads.fasta"},
		{"fa kept", args{"reads.fa"}, "reads.fa"},
		{"faa kept", args{"proteins.faa"}, "proteins.faa"},
		{"missing extension appended", args{"reads"}, "reads.fasta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withExtension(tt.args.path); got != tt.want {
				t.Errorf("withExtension() = %v, want %v", got, tt.want)
			}
		})
	}
}
