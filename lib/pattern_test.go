package lib

import (
	"errors"
	"math"
	"testing"
)

func straightPattern(t *testing.T) *Pattern {
	t.Helper()
	angles := make([]float64, HorizontalSamples)
	gains := make([]float64, HorizontalSamples)
	for i := 0; i < HorizontalSamples; i++ {
		a := float64(i - 180)
		angles[i] = a
		gains[i] = -math.Abs(a) / 2
	}
	p, err := NewPattern(angles, gains)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	return p
}

func TestNewPatternRejectsMismatchedLength(t *testing.T) {
	_, err := NewPattern([]float64{0, 1}, []float64{0})
	if !errors.Is(err, ErrPatternMalformed) {
		t.Errorf("expected ErrPatternMalformed, got %v", err)
	}
}

func TestNewPatternRejectsIncompleteSpan(t *testing.T) {
	_, err := NewPattern([]float64{0, 90, 180}, []float64{0, -1, -2})
	if !errors.Is(err, ErrPatternIncomplete) {
		t.Errorf("expected ErrPatternIncomplete, got %v", err)
	}
}

func TestNewPatternRejectsDuplicateAngle(t *testing.T) {
	_, err := NewPattern([]float64{-180, 0, 0, 180}, []float64{0, -1, -1, 0})
	if !errors.Is(err, ErrPatternMalformed) {
		t.Errorf("expected ErrPatternMalformed, got %v", err)
	}
}

func TestBoresightAndBackLobeGain(t *testing.T) {
	p := straightPattern(t)
	g, err := p.BoresightGain()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g) > 1e-9 {
		t.Errorf("BoresightGain = %v, want 0", g)
	}
	g, err = p.BackLobeGain()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g+90) > 1e-9 {
		t.Errorf("BackLobeGain = %v, want -90", g)
	}
}

// Property: interpolation round-trips exactly on sample angles.
func TestInterpRoundTrip(t *testing.T) {
	p := straightPattern(t)
	for i := 0; i < p.Len(); i += 37 {
		got, err := Interp(p.Angles[i], p)
		if err != nil {
			t.Fatalf("Interp(%v): %v", p.Angles[i], err)
		}
		if math.Abs(got-p.Gains[i]) > 1e-9 {
			t.Errorf("Interp(%v) = %v, want %v", p.Angles[i], got, p.Gains[i])
		}
	}
}

func TestInterpBetweenSamples(t *testing.T) {
	p := straightPattern(t)
	got, err := Interp(10.5, p)
	if err != nil {
		t.Fatal(err)
	}
	want := -10.5 / 2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Interp(10.5) = %v, want %v", got, want)
	}
}

func TestInterpFoldsOutOfRange(t *testing.T) {
	angles := []float64{-180, -90, 0, 90, 180}
	gains := []float64{-5, -2.5, 0, -2.5, -5}
	p, err := NewPattern(angles, gains)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Interp(190, p)
	if err != nil {
		t.Fatalf("Interp(190): %v", err)
	}
	want, _ := Interp(-170, p)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Interp(190) = %v, want %v (== Interp(-170))", got, want)
	}
}

func TestInterpMany(t *testing.T) {
	p := straightPattern(t)
	got, err := InterpMany([]float64{0, 90, -90}, p)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, -45, -45}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("InterpMany[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
