package lib

import (
	"math"
	"testing"
)

// property: shape preservation. Each element of a vector call must
// agree with the scalar call for the same direction.
func TestCbsdGainManyShapePreservation(t *testing.T) {
	inst := &CbsdInstallation{PeakGain: 10}
	dirs := []Direction{NewDirection(0, 0), NewDirection(45, 10), NewDirection(-90, -5)}

	many, err := CbsdGainMany(inst, nil, dirs, &BatchOptions{Parallel: false})
	if err != nil {
		t.Fatal(err)
	}
	if len(many) != len(dirs) {
		t.Fatalf("len(many) = %d, want %d", len(many), len(dirs))
	}
	for i, d := range dirs {
		single, err := CbsdGain(inst, nil, d)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(many[i]-single) > 1e-9 {
			t.Errorf("CbsdGainMany[%d] = %v, want %v", i, many[i], single)
		}
	}
}

func TestCbsdGainManyDefaultOpts(t *testing.T) {
	inst := &CbsdInstallation{PeakGain: 5}
	dirs := []Direction{NewDirection(0, 0)}
	got, err := CbsdGainMany(inst, nil, dirs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || math.Abs(got[0]-5) > 1e-9 {
		t.Errorf("CbsdGainMany(nil opts) = %v, want [5]", got)
	}
}

func TestRadarGainMany(t *testing.T) {
	angles := []float64{0, 30, 60}
	got, err := RadarGainMany(35, angles, DefaultRadarBW, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range angles {
		want := RadarGain(35, a, DefaultRadarBW)
		if got[i] != want {
			t.Errorf("RadarGainMany[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestFssGainMany(t *testing.T) {
	angles := []float64{0, 10, -10}
	got, err := FssGainMany(35, angles, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range angles {
		want := FssGain(35, a)
		if got[i] != want {
			t.Errorf("FssGainMany[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestCbsdGainManyPropagatesError(t *testing.T) {
	inst := &CbsdInstallation{
		PeakGain: 10,
		Azimuth:  f64(90),
		AntennaModel: &AntennaModel{
			HorizontalPattern: "does-not-exist",
			VerticalPattern:   "does-not-exist",
		},
	}
	_, err := CbsdGainMany(inst, &PatternDatabase{entries: map[string]entry{}}, []Direction{NewDirection(0, 0)}, nil)
	if err == nil {
		t.Error("expected error to propagate from batch evaluation")
	}
}
