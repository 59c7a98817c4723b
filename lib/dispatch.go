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

import "fmt"

// SelectMethod picks the WInnForum gain method for an installation,
// without evaluating it. Evaluation order: an undeclared/zero azimuth
// forces the isotropic method F regardless of what else is declared;
// otherwise B1 (both patterns, downtilt declared) beats C (horizontal
// pattern + vertical beamwidth, downtilt declared) beats D (both
// beamwidths, downtilt declared, no horizontal pattern) beats E (a
// horizontal pattern or beamwidth is present but the vertical inputs
// of B1/C/D are not, so the vertical contribution is dropped), falling
// back to F if nothing
// usable was declared. B1/C/D all require antennaDowntilt per
// antenna.py:94-123; without it a CBSD with full horizontal+vertical
// patterns still falls to E rather than B1.
func SelectMethod(inst *CbsdInstallation) MethodTag {
	n := normalize(inst)
	return selectMethod(n)
}

func selectMethod(n *normalized) MethodTag {
	if !n.hasAzimuth() {
		return MethodF
	}
	switch {
	case n.hasHorizontalPattern() && n.hasVerticalPattern() && n.hasDowntilt():
		return MethodB1
	case n.hasHorizontalPattern() && n.hasVerticalBeamwidth() && n.hasDowntilt():
		return MethodC
	case n.hasHorizontalBeamwidth() && n.hasVerticalBeamwidth() && n.hasDowntilt():
		return MethodD
	case n.hasHorizontalPattern() || n.hasHorizontalBeamwidth():
		return MethodE
	default:
		return MethodF
	}
}

// ComputeCbsd evaluates the CBSD gain toward dir, dispatching to the
// method SelectMethod picks. db is consulted only by methods that
// declare a pattern reference (B1, C, E); it may be nil otherwise.
func ComputeCbsd(inst *CbsdInstallation, db *PatternDatabase, dir Direction) (float64, error) {
	n := normalize(inst)
	switch selectMethod(n) {
	case MethodF:
		return n.PeakGain, nil
	case MethodB1:
		return computeB1(n, db, dir)
	case MethodC:
		return computeC(n, db, dir)
	case MethodD:
		return computeD(n, dir)
	case MethodE:
		return computeE(n, db, dir)
	default:
		return n.PeakGain, nil
	}
}

// relative derives the boresight-relative angles used by every
// non-isotropic method. downtilt is passed pre-clamp to
// BoresightRelative (it multiplies cos(theta_r) there); no method
// consumes the clamped value.
func relative(n *normalized, dir Direction) (thetaR, phiR float64, err error) {
	return BoresightRelative(dir, *n.Azimuth, n.Downtilt)
}

func computeB1(n *normalized, db *PatternDatabase, dir Direction) (float64, error) {
	thetaR, phiR, err := relative(n, dir)
	if err != nil {
		return 0, err
	}
	horPat, err := db.HorizontalPattern(n.AntennaModel.HorizontalPattern)
	if err != nil {
		return 0, fmt.Errorf("method B1: %w", err)
	}
	verPat, err := db.VerticalPattern(n.AntennaModel.VerticalPattern)
	if err != nil {
		return 0, fmt.Errorf("method B1: %w", err)
	}
	supp, err := Supplementary(phiR)
	if err != nil {
		return 0, err
	}
	gH, err := Interp(thetaR, horPat)
	if err != nil {
		return 0, fmt.Errorf("method B1: %w", err)
	}
	gV, err := Interp(phiR, verPat)
	if err != nil {
		return 0, fmt.Errorf("method B1: %w", err)
	}
	gVSupp, err := Interp(supp, verPat)
	if err != nil {
		return 0, fmt.Errorf("method B1: %w", err)
	}
	gH0, err := horPat.BoresightGain()
	if err != nil {
		return 0, fmt.Errorf("method B1: %w", err)
	}
	gH180, err := horPat.BackLobeGain()
	if err != nil {
		return 0, fmt.Errorf("method B1: %w", err)
	}
	weight, err := CombineWeight(dir.Hor)
	if err != nil {
		return 0, err
	}
	return Combine2D(n.PeakGain, gH, gV, gH0, gH180, gVSupp, weight), nil
}

func computeC(n *normalized, db *PatternDatabase, dir Direction) (float64, error) {
	thetaR, phiR, err := relative(n, dir)
	if err != nil {
		return 0, err
	}
	horPat, err := db.HorizontalPattern(n.AntennaModel.HorizontalPattern)
	if err != nil {
		return 0, fmt.Errorf("method C: %w", err)
	}
	supp, err := Supplementary(phiR)
	if err != nil {
		return 0, err
	}
	gH, err := Interp(thetaR, horPat)
	if err != nil {
		return 0, fmt.Errorf("method C: %w", err)
	}
	gH0, err := horPat.BoresightGain()
	if err != nil {
		return 0, fmt.Errorf("method C: %w", err)
	}
	gH180, err := horPat.BackLobeGain()
	if err != nil {
		return 0, fmt.Errorf("method C: %w", err)
	}
	gV := synthRel(phiR, *n.VerticalBeamwidth, n.fbr)
	gVSupp := synthRel(supp, *n.VerticalBeamwidth, n.fbr)
	weight, err := CombineWeight(dir.Hor)
	if err != nil {
		return 0, err
	}
	return Combine2D(n.PeakGain, gH, gV, gH0, gH180, gVSupp, weight), nil
}

func computeD(n *normalized, dir Direction) (float64, error) {
	thetaR, phiR, err := relative(n, dir)
	if err != nil {
		return 0, err
	}
	supp, err := Supplementary(phiR)
	if err != nil {
		return 0, err
	}
	gH := synthRel(thetaR, *n.HorizontalBeamwidth, n.fbr)
	gV := synthRel(phiR, *n.VerticalBeamwidth, n.fbr)
	gH0 := synthRel(0, *n.HorizontalBeamwidth, n.fbr)
	gH180 := synthRel(180, *n.HorizontalBeamwidth, n.fbr)
	gVSupp := synthRel(supp, *n.VerticalBeamwidth, n.fbr)
	weight, err := CombineWeight(dir.Hor)
	if err != nil {
		return 0, err
	}
	return Combine2D(n.PeakGain, gH, gV, gH0, gH180, gVSupp, weight), nil
}

// computeE handles the horizontal-pattern-or-beamwidth-only case: the
// vertical contribution is exactly zero in the 2-D combine (spec.md §4,
// open question c), meaning both combine differences (G_V(phi_r)-G_H(0))
// and (G_V(180-phi_r)-G_H(180)) vanish, not that G_V is clamped to a
// literal zero gain: gV/gVSupp are set equal to gH0/gH180, letting
// Combine2D collapse to peak+gH regardless of weight.
func computeE(n *normalized, db *PatternDatabase, dir Direction) (float64, error) {
	thetaR, _, err := relative(n, dir)
	if err != nil {
		return 0, err
	}
	weight, err := CombineWeight(dir.Hor)
	if err != nil {
		return 0, err
	}
	if n.hasHorizontalPattern() {
		horPat, err := db.HorizontalPattern(n.AntennaModel.HorizontalPattern)
		if err != nil {
			return 0, fmt.Errorf("method E: %w", err)
		}
		gH, err := Interp(thetaR, horPat)
		if err != nil {
			return 0, fmt.Errorf("method E: %w", err)
		}
		gH0, err := horPat.BoresightGain()
		if err != nil {
			return 0, fmt.Errorf("method E: %w", err)
		}
		gH180, err := horPat.BackLobeGain()
		if err != nil {
			return 0, fmt.Errorf("method E: %w", err)
		}
		return Combine2D(n.PeakGain, gH, gH0, gH0, gH180, gH180, weight), nil
	}
	gH := synthRel(thetaR, *n.HorizontalBeamwidth, n.fbr)
	gH0 := synthRel(0, *n.HorizontalBeamwidth, n.fbr)
	gH180 := synthRel(180, *n.HorizontalBeamwidth, n.fbr)
	return Combine2D(n.PeakGain, gH, gH0, gH0, gH180, gH180, weight), nil
}
