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

// Fixed geometry/defaults from the WInnForum Release-2 EAP methods.
const (
	DowntiltMin = -15. // lower clamp for mechanical downtilt (degrees)
	DowntiltMax = 15.  // upper clamp for mechanical downtilt (degrees)

	DefaultFBR = 20. // front-to-back ratio used when not declared (dB)

	LegacyFloor = 20. // flat floor for the legacy 1D attenuation curve (dB)

	RadarIsotropicBW = 360. // radar beamwidth signalling an isotropic pattern
	DefaultRadarBW   = 3.   // default radar main-lobe beamwidth (degrees)

	HorizontalSamples = 360 // canonical sample count of a horizontal pattern
)
