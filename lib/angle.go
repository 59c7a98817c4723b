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
	"math"
)

// Fold180 maps degrees to (-180,180]. Exact back-lobe values (odd
// multiples of 180) fold to +180, never -180 (the canonical back lobe).
func Fold180(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: non-finite angle %v", ErrInvalidArgument, x)
	}
	r := math.Mod(x+180, 360)
	if r <= 0 {
		r += 360
	}
	return r - 180, nil
}

// FoldMany maps a slice of degrees into (-180,180].
func FoldMany(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := Fold180(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ClampDowntilt bounds a mechanical downtilt to [-15,15].
func ClampDowntilt(d float64) float64 {
	return Clamp(d, DowntiltMin, DowntiltMax)
}

// Supplementary returns 180-phi folded into (-180,180].
func Supplementary(phi float64) (float64, error) {
	return Fold180(180 - phi)
}

// BoresightRelative derives the boresight-relative horizontal and
// vertical angles of a direction.
//
// θ_r = fold180(dir.Hor - azimuth)
// φ_r = dir.Ver + downtilt·cos(θ_r·180/π), if downtilt is declared
//
// The cos argument reproduces the certification reference's degrees/
// radians mixup verbatim: theta_r (already in degrees) is multiplied
// by 180/π, not converted to radians, before being handed to cos. This
// is deliberate for bit-for-bit parity against the reference gain
// tables; set Cfg.Def.FixDowntiltCosUnits to use the dimensionally
// correct θ_r·π/180 instead. Do not change the default silently.
//
// The *declared* (pre-clamp) downtilt is used here; callers that need
// the clamped value must clamp it themselves with ClampDowntilt (the
// methods in dispatch.go do not).
func BoresightRelative(dir Direction, azimuth float64, downtilt *float64) (thetaR, phiR float64, err error) {
	if thetaR, err = Fold180(dir.Hor - azimuth); err != nil {
		return
	}
	phiR = dir.Ver
	if downtilt != nil {
		conv := Rad2Deg
		if Cfg.Def.FixDowntiltCosUnits {
			conv = Deg2Rad
		}
		phiR += *downtilt * math.Cos(thetaR*conv)
	}
	return
}
