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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SweepStats summarizes a batch of gain values for the CLI's
// `sweep --stats` output.
type SweepStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// ComputeSweepStats summarizes gains. It panics on an empty slice; the
// sweep command rejects an empty directions file before calling it.
func ComputeSweepStats(gains []float64) SweepStats {
	mean, std := stat.MeanStdDev(gains, nil)
	return SweepStats{
		Min:    floats.Min(gains),
		Max:    floats.Max(gains),
		Mean:   mean,
		StdDev: std,
	}
}
