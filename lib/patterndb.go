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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// entry is one antennaPatternId's resolved pair of patterns.
type entry struct {
	hor *Pattern
	ver *Pattern // nil if no elevation pattern was declared
}

// PatternDatabase is an immutable, shared mapping from antennaPatternId
// to its horizontal (and optional vertical) pattern. Construct once
// with LoadDatabase/LoadDatabaseCached and share by reference; never
// mutate after load (spec.md §3, §5).
type PatternDatabase struct {
	entries map[string]entry
}

// Lookup returns the horizontal and (possibly nil) vertical pattern
// for an antennaPatternId.
func (db *PatternDatabase) Lookup(id string) (hor, ver *Pattern, err error) {
	e, ok := db.entries[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrPatternNotFound, id)
	}
	return e.hor, e.ver, nil
}

// HorizontalPattern returns the azimuth pattern registered under id.
func (db *PatternDatabase) HorizontalPattern(id string) (*Pattern, error) {
	e, ok := db.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPatternNotFound, id)
	}
	return e.hor, nil
}

// VerticalPattern returns the elevation pattern registered under id.
// Returns ErrPatternNotFound if id was never declared an elevation
// pattern in the index.
func (db *PatternDatabase) VerticalPattern(id string) (*Pattern, error) {
	e, ok := db.entries[id]
	if !ok || e.ver == nil {
		return nil, fmt.Errorf("%w: %q has no elevation pattern", ErrPatternNotFound, id)
	}
	return e.ver, nil
}

// IDs returns the set of loaded antennaPatternId values.
func (db *PatternDatabase) IDs() []string {
	return lo.Keys(db.entries)
}

//----------------------------------------------------------------------

// LoadDatabase reads the index CSV at indexPath (columns
// antennaPatternId, azimuthRadiationPattern, optional
// elevationRadiationPattern) and every pattern CSV it references,
// relative to the index file's directory.
func LoadDatabase(indexPath string) (*PatternDatabase, error) {
	metas, err := readIndex(indexPath)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(indexPath)
	db := &PatternDatabase{entries: make(map[string]entry, len(metas))}
	for _, m := range metas {
		hor, err := loadPatternFile(filepath.Join(dir, m.AzimuthFile))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", m.AntennaPatternID, err)
		}
		var ver *Pattern
		if m.ElevationFile != "" {
			if ver, err = loadPatternFile(filepath.Join(dir, m.ElevationFile)); err != nil {
				return nil, fmt.Errorf("pattern %q: %w", m.AntennaPatternID, err)
			}
		}
		db.entries[m.AntennaPatternID] = entry{hor: hor, ver: ver}
	}
	return db, nil
}

// PatternMeta is one row of the index CSV.
type PatternMeta struct {
	AntennaPatternID string
	AzimuthFile      string
	ElevationFile    string // empty if not declared
}

// readIndex parses the index CSV's header and rows. Extra columns are
// ignored; blank rows are skipped.
func readIndex(indexPath string) ([]PatternMeta, error) {
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read index header: %v", ErrPatternMalformed, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	idIdx, ok := col["antennaPatternId"]
	if !ok {
		return nil, fmt.Errorf("%w: index missing column antennaPatternId", ErrPatternMalformed)
	}
	azIdx, ok := col["azimuthRadiationPattern"]
	if !ok {
		return nil, fmt.Errorf("%w: index missing column azimuthRadiationPattern", ErrPatternMalformed)
	}
	elIdx, hasEl := col["elevationRadiationPattern"]

	var metas []PatternMeta
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPatternMalformed, err)
		}
		if isBlankRow(row) {
			continue
		}
		m := PatternMeta{
			AntennaPatternID: strings.TrimSpace(row[idIdx]),
			AzimuthFile:      strings.TrimSpace(row[azIdx]),
		}
		if hasEl && elIdx < len(row) {
			m.ElevationFile = strings.TrimSpace(row[elIdx])
		}
		metas = append(metas, m)
	}
	return metas, nil
}

// isBlankRow reports whether every field in a CSV row is empty.
func isBlankRow(row []string) bool {
	return lo.EveryBy(row, func(f string) bool { return strings.TrimSpace(f) == "" })
}

//----------------------------------------------------------------------

// loadPatternFile reads a pattern CSV: two numeric columns
// (angle_deg, gain_dB), comma- or tab-delimited (autodetected from
// the first non-empty row), blank rows skipped.
func loadPatternFile(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	delim := detectDelimiter(data)

	r := csv.NewReader(strings.NewReader(string(data)))
	r.Comma = delim
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var angles, gains []float64
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPatternMalformed, err)
		}
		if isBlankRow(row) {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %v has fewer than two columns", ErrPatternMalformed, row)
		}
		a, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric angle %q", ErrPatternMalformed, row[0])
		}
		g, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric gain %q", ErrPatternMalformed, row[1])
		}
		angles = append(angles, a)
		gains = append(gains, g)
	}
	return NewPattern(angles, gains)
}

// detectDelimiter inspects the first non-empty line of pattern data
// and returns ',' or '\t'.
func detectDelimiter(data []byte) rune {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.ContainsRune(line, '\t') {
			return '\t'
		}
		return ','
	}
	return ','
}
