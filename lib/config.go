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
	"encoding/json"
	"os"
)

// Defaults applied by the method dispatcher when registration fields
// are absent.
type Defaults struct {
	FBR     float64 `json:"fbr"`     // front-to-back ratio (dB)
	RadarBW float64 `json:"radarBw"` // radar main-lobe beamwidth (degrees)
	WeightT float64 `json:"weightT"` // FSS tangent-plane weight
	WeightP float64 `json:"weightP"` // FSS perpendicular-plane weight

	// FixDowntiltCosUnits corrects the degrees/radians mixup in the
	// certification reference implementation's downtilt projection
	// (theta_r*180/pi fed to cos instead of theta_r*pi/180). Off by
	// default so BoresightRelative reproduces the reference bit for
	// bit; set true only for a deliberately non-certified run.
	FixDowntiltCosUnits bool `json:"fixDowntiltCosUnits"`
}

// Batch parameters for the vector (sweep) evaluation path.
type Batch struct {
	Workers    int  `json:"workers"`    // worker-pool size (0: runtime.NumCPU())
	MinParalel int  `json:"minParalel"` // min. batch size before pooling pays off
	Parallel   bool `json:"parallel"`   // default Parallel setting for BatchOptions
}

// Cache parameters for the sqlite-backed pattern cache.
type Cache struct {
	Path    string `json:"path"`    // sqlite file (empty: cache disabled)
	Enabled bool   `json:"enabled"` // cache turned on
}

// Config for the EAP gain engine.
type Config struct {
	Def   *Defaults `json:"defaults"`
	Batch *Batch    `json:"batch"`
	Cache *Cache    `json:"cache"`
}

// Cfg is the globally-accessible configuration (pre-set).
var Cfg = &Config{
	Def: &Defaults{
		FBR:                 DefaultFBR,
		RadarBW:             DefaultRadarBW,
		WeightT:             0,
		WeightP:             1,
		FixDowntiltCosUnits: false,
	},
	Batch: &Batch{
		Workers:    0,
		MinParalel: 64,
		Parallel:   false,
	},
	Cache: &Cache{
		Path:    "",
		Enabled: false,
	},
}

// ReadConfig loads configuration overrides from a JSON file.
func ReadConfig(fname string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fname); err == nil {
		err = json.Unmarshal(data, &Cfg)
	}
	return
}
