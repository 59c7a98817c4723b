package lib

import (
	"errors"
	"testing"
)

func TestRunBatchSequential(t *testing.T) {
	out, err := runBatch(5, &BatchOptions{Parallel: false}, func(i int) (float64, error) {
		return float64(i * i), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 4, 9, 16}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestRunBatchParallelMatchesSequential(t *testing.T) {
	n := 256
	fn := func(i int) (float64, error) { return float64(i) * 1.5, nil }

	seq, err := runBatch(n, &BatchOptions{Parallel: false}, fn)
	if err != nil {
		t.Fatal(err)
	}
	par, err := runBatch(n, &BatchOptions{Parallel: true, Workers: 4}, fn)
	if err != nil {
		t.Fatal(err)
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Errorf("out[%d]: sequential=%v parallel=%v", i, seq[i], par[i])
		}
	}
}

func TestRunBatchPropagatesFirstError(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := runBatch(100, &BatchOptions{Parallel: true, Workers: 2}, func(i int) (float64, error) {
		if i == 3 {
			return 0, sentinel
		}
		return float64(i), nil
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
}

func TestRunBatchNilOpts(t *testing.T) {
	out, err := runBatch(3, nil, func(i int) (float64, error) { return float64(i), nil })
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Errorf("len(out) = %d, want 3", len(out))
	}
}
