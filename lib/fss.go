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

import "math"

// RadarGain returns the normalized radar antenna gain at an
// off-boresight angle (degrees), using the same synthetic parabolic
// curve as the CBSD methods. A beamwidth of RadarIsotropicBW signals
// an isotropic radar: the gain is peak regardless of angle.
func RadarGain(peak, offBoresight, bw float64) float64 {
	if bw >= RadarIsotropicBW {
		return peak
	}
	return peak + synthRel(offBoresight, bw, Cfg.Def.FBR)
}

// FssGain returns the FSS earth-station off-axis gain (dBi) at an
// off-axis angle (degrees) from boresight, using the 47 CFR 25.209
// reference antenna pattern. The angle is folded to its absolute value
// first: the mask is symmetric about boresight (property: symmetry)
// and evaluating it twice at the same angle always returns the same
// value (property: idempotence).
func FssGain(peak, offAxis float64) float64 {
	theta := math.Abs(offAxis)

	theta0 := math.Pow(10, (29-peak)/25)
	switch {
	case theta < theta0:
		return peak
	case theta < 7:
		return 29 - 25*math.Log10(theta)
	case theta < 9.2:
		return 8
	case theta < 48:
		return 32 - 25*math.Log10(theta)
	default:
		return -10
	}
}
