//----------------------------------------------------------------------
// This file is part of eapgain.
// Copyright (C) 2026-present eapgain authors
//
// eapgain is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// eapgain is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import (
	"fmt"
	"sort"
)

// Pattern is an immutable, ordered set of (angle,gain) samples read
// from a pattern CSV. Angles/Gains preserve the file's row order,
// which is load-bearing for the canonical horizontal-pattern indexing
// convention (gain[0] = back lobe, gain[180] = boresight); Sorted*
// is a separate angle-ascending view used only by Interp.
type Pattern struct {
	Angles []float64 // raw, load-order angles (degrees)
	Gains  []float64 // raw, load-order gains (dB, relative to peak)

	sortedAngles []float64
	sortedGains  []float64
}

// NewPattern builds a Pattern from parallel angle/gain slices and
// validates the §3 invariants: strictly monotonic (once sorted), full
// revolution coverage (counting the wrap-around step), at least two
// samples.
func NewPattern(angles, gains []float64) (*Pattern, error) {
	if len(angles) != len(gains) {
		return nil, fmt.Errorf("%w: angle/gain length mismatch (%d vs %d)",
			ErrPatternMalformed, len(angles), len(gains))
	}
	if len(angles) < 2 {
		return nil, fmt.Errorf("%w: fewer than two samples", ErrPatternMalformed)
	}
	p := &Pattern{Angles: angles, Gains: gains}

	idx := make([]int, len(angles))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return angles[idx[i]] < angles[idx[j]] })
	p.sortedAngles = make([]float64, len(angles))
	p.sortedGains = make([]float64, len(angles))
	for i, j := range idx {
		p.sortedAngles[i] = angles[j]
		p.sortedGains[i] = gains[j]
	}
	maxStep := 0.
	for i := 1; i < len(p.sortedAngles); i++ {
		step := p.sortedAngles[i] - p.sortedAngles[i-1]
		if step < eps {
			return nil, fmt.Errorf("%w: duplicate or non-monotonic angle at %.3f",
				ErrPatternMalformed, p.sortedAngles[i])
		}
		if step > maxStep {
			maxStep = step
		}
	}
	// the wrap-around step from the last sample back to the first counts
	// as covered when it is no wider than the widest sampled step, so a
	// 360-sample pattern at 1° spacing (span 359°) is complete
	span := p.sortedAngles[len(p.sortedAngles)-1] - p.sortedAngles[0]
	if span+maxStep < 360-eps {
		return nil, fmt.Errorf("%w: pattern spans only %.3f degrees", ErrPatternIncomplete, span)
	}
	return p, nil
}

// Len returns the number of samples.
func (p *Pattern) Len() int {
	return len(p.Angles)
}

// BoresightGain returns G_H(0): the gain at 0°. The canonical
// convention stores it at raw index 180 for a 360-sample horizontal
// pattern; for any other layout it falls back to interpolation.
func (p *Pattern) BoresightGain() (float64, error) {
	if len(p.Gains) == HorizontalSamples {
		return p.Gains[180], nil
	}
	return Interp(0, p)
}

// BackLobeGain returns G_H(180): the gain at the back lobe. The
// canonical convention stores it at raw index 0.
func (p *Pattern) BackLobeGain() (float64, error) {
	if len(p.Gains) == HorizontalSamples {
		return p.Gains[0], nil
	}
	return Interp(180, p)
}

// Interp returns the pattern gain at angle (degrees), linearly
// interpolating between the nearest bracketing samples. Exact sample
// hits return the sample verbatim (property 8: interpolation
// round-trip). Angles outside the sampled span are folded via
// Fold180 before lookup.
func Interp(angle float64, p *Pattern) (float64, error) {
	g, err := interpOnce(angle, p)
	if err == nil {
		return g, nil
	}
	if folded, ferr := Fold180(angle); ferr == nil && folded != angle {
		if g2, err2 := interpOnce(folded, p); err2 == nil {
			return g2, nil
		}
	}
	return 0, err
}

func interpOnce(angle float64, p *Pattern) (float64, error) {
	n := len(p.sortedAngles)
	lo, hi := p.sortedAngles[0], p.sortedAngles[n-1]
	if angle < lo-eps || angle > hi+eps {
		return 0, fmt.Errorf("%w: angle %.3f outside sampled range [%.3f,%.3f]",
			ErrPatternIncomplete, angle, lo, hi)
	}
	// exact hit
	i := sort.SearchFloat64s(p.sortedAngles, angle)
	if i < n && IsNull(p.sortedAngles[i]-angle) {
		return p.sortedGains[i], nil
	}
	if i > 0 && IsNull(p.sortedAngles[i-1]-angle) {
		return p.sortedGains[i-1], nil
	}
	// i is the first sample >= angle (and not an exact hit), so the
	// bracketing pair is (i-1, i)
	if i == 0 || i >= n {
		return 0, fmt.Errorf("%w: no bracketing pair for angle %.3f", ErrPatternIncomplete, angle)
	}
	aLo, aHi := p.sortedAngles[i-1], p.sortedAngles[i]
	gLo, gHi := p.sortedGains[i-1], p.sortedGains[i]
	g := ((aHi-angle)*gLo + (angle-aLo)*gHi) / (aHi - aLo)
	return g, nil
}

// InterpMany interpolates a pattern at each of a slice of angles.
func InterpMany(angles []float64, p *Pattern) ([]float64, error) {
	out := make([]float64, len(angles))
	for i, a := range angles {
		g, err := Interp(a, p)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}
