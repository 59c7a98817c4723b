package lib

import "testing"

func TestCombineWeightBoresight(t *testing.T) {
	w, err := CombineWeight(0)
	if err != nil {
		t.Fatal(err)
	}
	if w != 0 {
		t.Errorf("CombineWeight(0) = %v, want 0", w)
	}
}

func TestCombineWeightBackLobe(t *testing.T) {
	w, err := CombineWeight(180)
	if err != nil {
		t.Fatal(err)
	}
	if w != 1 {
		t.Errorf("CombineWeight(180) = %v, want 1", w)
	}
}

func TestCombineWeightSymmetric(t *testing.T) {
	w1, _ := CombineWeight(45)
	w2, _ := CombineWeight(-45)
	if w1 != w2 {
		t.Errorf("CombineWeight(45)=%v != CombineWeight(-45)=%v", w1, w2)
	}
}

// S2: boresight direction, every reference term is zero (no pattern
// sample is below peak at boresight), so the formula collapses to the
// bare peak gain regardless of the weight.
func TestCombine2DBoresightScenario(t *testing.T) {
	got := Combine2D(10, 0, 0, 0, 0, 0, 0.37)
	if got != 10 {
		t.Errorf("Combine2D boresight = %v, want 10", got)
	}
}

// Regression: peak=10, az=0, downtilt=0, BWh=120, BWv=60, FBR=20,
// dir(hor=60,ver=0). Spec §4.5's four-reference formula yields 7.
func TestCombine2DFourReferenceFormula(t *testing.T) {
	gH := synthRel(60, 120, 20)   // -3
	gV := synthRel(0, 60, 20)     // 0
	gH0 := synthRel(0, 120, 20)   // 0
	gH180 := synthRel(180, 120, 20) // -20 (floored)
	gVSupp := synthRel(180, 60, 20) // -20 (floored)
	weight, err := CombineWeight(60)
	if err != nil {
		t.Fatal(err)
	}

	got := Combine2D(10, gH, gV, gH0, gH180, gVSupp, weight)
	want := 7.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Combine2D = %v, want %v", got, want)
	}
}

func TestCombine2DAppliesReferenceSubtraction(t *testing.T) {
	// A non-zero gH0/gH180 must shift the blended vertical terms, not
	// just be ignored: with gV==gH0 and gVSupp==gH180 the vertical
	// contribution vanishes regardless of weight.
	got := Combine2D(10, -2, -5, -5, -8, -8, 0.5)
	want := 8.0 // 10 + (-2) + 0 + 0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Combine2D = %v, want %v", got, want)
	}
}
