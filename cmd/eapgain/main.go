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

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/cbrs-sas/eapgain/lib"
)

func installationFromFlags(c *cli.Context) *lib.CbsdInstallation {
	inst := &lib.CbsdInstallation{PeakGain: c.Float64("peak-gain")}
	if c.IsSet("azimuth") {
		v := c.Float64("azimuth")
		inst.Azimuth = &v
	}
	if c.IsSet("downtilt") {
		v := c.Float64("downtilt")
		inst.Downtilt = &v
	}
	if c.IsSet("hor-beamwidth") {
		v := c.Float64("hor-beamwidth")
		inst.HorizontalBeamwidth = &v
	}
	if c.IsSet("ver-beamwidth") {
		v := c.Float64("ver-beamwidth")
		inst.VerticalBeamwidth = &v
	}
	if c.IsSet("fbr") {
		v := c.Float64("fbr")
		inst.FrontToBackRatio = &v
	}
	if c.IsSet("hor-pattern") || c.IsSet("ver-pattern") {
		inst.AntennaModel = &lib.AntennaModel{
			HorizontalPattern: c.String("hor-pattern"),
			VerticalPattern:   c.String("ver-pattern"),
		}
	}
	inst.Indoor = c.Bool("indoor")
	return inst
}

func openDatabase(c *cli.Context) (*lib.PatternDatabase, error) {
	index := c.String("pattern-index")
	if index == "" {
		return nil, nil
	}
	if cache := c.String("pattern-cache"); cache != "" {
		return lib.LoadDatabaseCached(index, cache)
	}
	return lib.LoadDatabase(index)
}

var installationFlags = []cli.Flag{
	&cli.Float64Flag{Name: "peak-gain", Usage: "peak antenna gain, dBi", Required: true},
	&cli.Float64Flag{Name: "azimuth", Usage: "declared azimuth, degrees"},
	&cli.Float64Flag{Name: "downtilt", Usage: "mechanical downtilt, degrees"},
	&cli.Float64Flag{Name: "hor-beamwidth", Usage: "3 dB horizontal beamwidth, degrees"},
	&cli.Float64Flag{Name: "ver-beamwidth", Usage: "3 dB vertical beamwidth, degrees"},
	&cli.Float64Flag{Name: "fbr", Usage: "front-to-back ratio, dB"},
	&cli.StringFlag{Name: "hor-pattern", Usage: "antennaPatternId of the horizontal pattern"},
	&cli.StringFlag{Name: "ver-pattern", Usage: "antennaPatternId of the vertical pattern"},
	&cli.StringFlag{Name: "pattern-index", Usage: "path to the pattern index CSV"},
	&cli.StringFlag{Name: "pattern-cache", Usage: "path to a sqlite3 pattern cache file"},
	&cli.BoolFlag{Name: "indoor", Usage: "installation is indoor"},
}

func gainCommand() *cli.Command {
	return &cli.Command{
		Name:  "gain",
		Usage: "evaluate the CBSD gain toward a single direction",
		Flags: append(installationFlags,
			&cli.Float64Flag{Name: "hor", Usage: "receiver horizontal direction, degrees", Required: true},
			&cli.Float64Flag{Name: "ver", Usage: "receiver vertical direction, degrees"},
		),
		Action: func(c *cli.Context) error {
			inst := installationFromFlags(c)
			db, err := openDatabase(c)
			if err != nil {
				return err
			}
			dir := lib.NewDirection(c.Float64("hor"), c.Float64("ver"))
			g, err := lib.CbsdGain(inst, db, dir)
			if err != nil {
				return err
			}
			method := lib.SelectMethod(inst)
			fmt.Printf("method=%s gain=%.4f\n", method, g)
			return nil
		},
	}
}

func sweepCommand() *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "evaluate the CBSD gain across a CSV of directions (hor,ver columns)",
		Flags: append(installationFlags,
			&cli.StringFlag{Name: "directions", Usage: "path to a CSV of hor,ver directions", Required: true},
			&cli.BoolFlag{Name: "parallel", Usage: "submit directions to a worker pool"},
			&cli.IntFlag{Name: "workers", Usage: "worker pool size (0: NumCPU)"},
			&cli.BoolFlag{Name: "stats", Usage: "print summary statistics instead of per-direction gains"},
		),
		Action: func(c *cli.Context) error {
			inst := installationFromFlags(c)
			db, err := openDatabase(c)
			if err != nil {
				return err
			}
			dirs, err := readDirections(c.String("directions"))
			if err != nil {
				return err
			}
			opts := &lib.BatchOptions{Parallel: c.Bool("parallel"), Workers: c.Int("workers")}
			gains, err := lib.CbsdGainMany(inst, db, dirs, opts)
			if err != nil {
				return err
			}
			if c.Bool("stats") {
				if len(gains) == 0 {
					return fmt.Errorf("no directions in %s", c.String("directions"))
				}
				s := lib.ComputeSweepStats(gains)
				fmt.Printf("min=%.4f max=%.4f mean=%.4f stddev=%.4f\n", s.Min, s.Max, s.Mean, s.StdDev)
				return nil
			}
			for i, g := range gains {
				fmt.Printf("%.3f,%.3f,%.4f\n", dirs[i].Hor, dirs[i].Ver, g)
			}
			return nil
		},
	}
}

func radarCommand() *cli.Command {
	return &cli.Command{
		Name:  "radar",
		Usage: "evaluate the normalized radar gain at an off-boresight angle",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "peak-gain", Usage: "peak radar gain, dBi", Required: true},
			&cli.Float64Flag{Name: "angle", Usage: "off-boresight angle, degrees", Required: true},
			&cli.Float64Flag{Name: "beamwidth", Value: lib.DefaultRadarBW, Usage: "radar main-lobe beamwidth, degrees"},
		},
		Action: func(c *cli.Context) error {
			g := lib.RadarGain(c.Float64("peak-gain"), c.Float64("angle"), c.Float64("beamwidth"))
			fmt.Printf("gain=%.4f\n", g)
			return nil
		},
	}
}

func fssCommand() *cli.Command {
	return &cli.Command{
		Name:  "fss",
		Usage: "evaluate the FSS earth-station off-axis gain",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "peak-gain", Usage: "peak earth-station gain, dBi", Required: true},
			&cli.Float64Flag{Name: "angle", Usage: "off-axis angle, degrees", Required: true},
		},
		Action: func(c *cli.Context) error {
			g := lib.FssGain(c.Float64("peak-gain"), c.Float64("angle"))
			fmt.Printf("gain=%.4f\n", g)
			return nil
		},
	}
}

// readDirections parses a headerless hor,ver CSV of receiver directions.
func readDirections(path string) ([]lib.Direction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var dirs []lib.Direction
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 1 || row[0] == "" {
			continue
		}
		hor, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad hor value %q: %w", row[0], err)
		}
		var ver float64
		if len(row) > 1 && row[1] != "" {
			if ver, err = strconv.ParseFloat(row[1], 64); err != nil {
				return nil, fmt.Errorf("bad ver value %q: %w", row[1], err)
			}
		}
		dirs = append(dirs, lib.NewDirection(hor, ver))
	}
	return dirs, nil
}

func main() {
	if cfg := os.Getenv("EAPGAIN_CONFIG"); cfg != "" {
		if err := lib.ReadConfig(cfg); err != nil {
			log.Fatal(err)
		}
	}
	app := &cli.App{
		Name:  "eapgain",
		Usage: "WInnForum Release-2 Enhanced Antenna Pattern gain engine",
		Commands: []*cli.Command{
			gainCommand(),
			sweepCommand(),
			radarCommand(),
			fssCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
