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
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// database initialization statement. Samples are stored as a single
// JSON blob per (id,plane): patterns are small (hundreds of samples)
// and read whole, so there is no value in a row-per-sample schema.
var cacheIni = `
create table pattern (
    id       varchar(127) not null, -- antennaPatternId
    plane    varchar(3) not null,   -- 'hor' or 'ver'
    mtime    integer not null,      -- source file mtime (unix seconds)
    size     integer not null,      -- source file size (bytes)
    samples  blob not null          -- json-encoded angle/gain arrays
);
create unique index idx_pattern on pattern(id, plane);
`

type sampleBlob struct {
	Angles []float64 `json:"angles"`
	Gains  []float64 `json:"gains"`
}

// PatternCache memoizes parsed Pattern values in a sqlite3 file,
// keyed by antennaPatternId plus the source file's mtime/size so a
// stale cache entry is invalidated the moment its CSV changes.
type PatternCache struct {
	inst *sql.DB
}

// OpenPatternCache opens (and, on first use, initializes) a sqlite3
// cache file.
func OpenPatternCache(fname string) (*PatternCache, error) {
	inst, err := sql.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}
	var num int64
	row := inst.QueryRow("select count(*) from pattern")
	if err = row.Scan(&num); err != nil {
		if _, err = inst.Exec(cacheIni); err != nil {
			return nil, fmt.Errorf("initializing pattern cache: %w", err)
		}
	}
	return &PatternCache{inst: inst}, nil
}

// Close releases the underlying sqlite3 handle.
func (c *PatternCache) Close() error {
	return c.inst.Close()
}

// get returns a cached Pattern if the stored mtime/size still matches
// the file at path.
func (c *PatternCache) get(id, plane, path string) (*Pattern, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	var blob []byte
	row := c.inst.QueryRow(
		"select samples from pattern where id=? and plane=? and mtime=? and size=?",
		id, plane, fi.ModTime().Unix(), fi.Size())
	if err := row.Scan(&blob); err != nil {
		return nil, false
	}
	var sb sampleBlob
	if err := json.Unmarshal(blob, &sb); err != nil {
		return nil, false
	}
	p, err := NewPattern(sb.Angles, sb.Gains)
	if err != nil {
		return nil, false
	}
	return p, true
}

// put stores a parsed Pattern under (id,plane), replacing any stale
// entry for the same key.
func (c *PatternCache) put(id, plane, path string, p *Pattern) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(sampleBlob{Angles: p.Angles, Gains: p.Gains})
	if err != nil {
		return err
	}
	_, err = c.inst.Exec(
		"replace into pattern(id,plane,mtime,size,samples) values(?,?,?,?,?)",
		id, plane, fi.ModTime().Unix(), fi.Size(), blob)
	return err
}

//----------------------------------------------------------------------

// LoadDatabaseCached behaves like LoadDatabase but consults (and
// populates) a PatternCache for every pattern file, avoiding a
// re-parse of unchanged CSVs across runs.
func LoadDatabaseCached(indexPath, cachePath string) (*PatternDatabase, error) {
	cache, err := OpenPatternCache(cachePath)
	if err != nil {
		return nil, err
	}
	defer cache.Close()

	metas, err := readIndex(indexPath)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(indexPath)
	db := &PatternDatabase{entries: make(map[string]entry, len(metas))}
	for _, m := range metas {
		horPath := filepath.Join(dir, m.AzimuthFile)
		hor, err := cachedLoad(cache, m.AntennaPatternID, "hor", horPath)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", m.AntennaPatternID, err)
		}
		var ver *Pattern
		if m.ElevationFile != "" {
			verPath := filepath.Join(dir, m.ElevationFile)
			if ver, err = cachedLoad(cache, m.AntennaPatternID, "ver", verPath); err != nil {
				return nil, fmt.Errorf("pattern %q: %w", m.AntennaPatternID, err)
			}
		}
		db.entries[m.AntennaPatternID] = entry{hor: hor, ver: ver}
	}
	return db, nil
}

func cachedLoad(cache *PatternCache, id, plane, path string) (*Pattern, error) {
	if p, ok := cache.get(id, plane, path); ok {
		return p, nil
	}
	p, err := loadPatternFile(path)
	if err != nil {
		return nil, err
	}
	_ = cache.put(id, plane, path, p)
	return p, nil
}
