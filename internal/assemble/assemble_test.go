package assemble

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func Test_New(t *testing.T) {
	if _, err := New(nil, 1); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("New() error = %v, want %v", err, ErrEmptyPool)
	}

	reads := []Read{
		{"r1", "ATCG"},
		{"r2", "ATCG"},
	}
	if _, err := New(reads, 1); err != nil {
		t.Errorf("New() with duplicate reads error = %v, want nil", err)
	}
}

func Test_Assembler_Assemble(t *testing.T) {
	tests := []struct {
		name    string
		reads   []Read
		want    string
		wantErr error
	}{
		{
			"single read returns unchanged",
			[]Read{{"r1", "ATCGT"}},
			"ATCGT",
			nil,
		},
		{
			"three overlapping reads",
			[]Read{{"r1", "ATCGT"}, {"r2", "CGTAC"}, {"r3", "TACGG"}},
			"TACGGAC",
			nil,
		},
		{
			"duplicate reads are consumed by a single merge",
			[]Read{{"r1", "AAAA"}, {"r2", "CCCC"}, {"r3", "CCCC"}},
			"AAACCCC",
			nil,
		},
		{
			"pool of identical reads has no merge partner",
			[]Read{{"r1", "ATCG"}, {"r2", "ATCG"}},
			"",
			ErrNoCandidates,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.reads, 1)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			got, err := a.Assemble(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Assemble() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Assemble() = %v, want %v", got, tt.want)
			}
		})
	}
}

// every assembly of the same pool must produce the same consensus, no
// matter how many workers scan the candidates
func Test_Assembler_Assemble_parallel(t *testing.T) {
	reads := []Read{
		{"r1", "GATTACAGATTACA"},
		{"r2", "ACAGATTACAGGGG"},
		{"r3", "GGGGTTTTCCCC"},
		{"r4", "CCCCAAAATTTT"},
		{"r5", "TTTTGGGGACGT"},
	}

	serial, err := New(reads, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	wantSeq, err := serial.Assemble(context.Background())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for _, workers := range []int{2, 4, 8} {
		parallel, err := New(reads, workers)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		got, err := parallel.Assemble(context.Background())
		if err != nil {
			t.Fatalf("Assemble() with %d workers error = %v", workers, err)
		}
		if got != wantSeq {
			t.Errorf("Assemble() with %d workers = %v, want %v", workers, got, wantSeq)
		}
	}
}

func Test_Assembler_Assemble_cancelled(t *testing.T) {
	a, err := New([]Read{{"r1", "ATCGT"}, {"r2", "CGTAC"}}, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Assemble(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Assemble() error = %v, want %v", err, context.Canceled)
	}
}

func Test_Assembler_bestMatch(t *testing.T) {
	a := &Assembler{workers: 1}

	// scores all tie at zero, the lexicographically greater candidate wins
	m, err := a.bestMatch("AA", []Read{{"r1", "CC"}, {"r2", "GG"}})
	if err != nil {
		t.Fatalf("bestMatch() error = %v", err)
	}
	if want := (Match{0, 1, "GG", "AA"}); !reflect.DeepEqual(m, want) {
		t.Errorf("bestMatch() = %+v, want %+v", m, want)
	}

	// reads equal to the current consensus are not candidates
	if _, err = a.bestMatch("AA", []Read{{"r1", "AA"}}); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("bestMatch() error = %v, want %v", err, ErrNoCandidates)
	}
}

func Test_withoutSequence(t *testing.T) {
	reads := []Read{
		{"r1", "AAAA"},
		{"r2", "CCCC"},
		{"r3", "AAAA"},
	}

	got := withoutSequence(reads, "AAAA")
	want := []Read{{"r2", "CCCC"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("withoutSequence() = %v, want %v", got, want)
	}
}
