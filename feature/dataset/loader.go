package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// MetadataFileName is the single file in the data directory that carries the
// ID to name tables instead of units.
const MetadataFileName = "metadata.json"

type metadataEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type metadataFile struct {
	Factions []metadataEntry `json:"factions"`
	Weapons  []metadataEntry `json:"weapons"`
	Skills   []metadataEntry `json:"skills"`
	Equips   []metadataEntry `json:"equips"`
}

// LoadMetadata reads and decodes <dir>/metadata.json. A missing or malformed
// metadata file is a hard error: without the name tables no faction or item
// can be attributed.
func LoadMetadata(dir string) (Metadata, error) {
	path := filepath.Join(dir, MetadataFileName)

	b, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}

	var mf metadataFile
	if err := json.Unmarshal(b, &mf); err != nil {
		return Metadata{}, fmt.Errorf("parse %s: %w", path, err)
	}

	md := Metadata{
		Factions:  make(map[int]string, len(mf.Factions)),
		Weapons:   make(map[int]string, len(mf.Weapons)),
		Skills:    make(map[int]string, len(mf.Skills)),
		Equipment: make(map[int]string, len(mf.Equips)),
	}
	for _, e := range mf.Factions {
		md.Factions[e.ID] = e.Name
	}
	for _, e := range mf.Weapons {
		md.Weapons[e.ID] = e.Name
	}
	for _, e := range mf.Skills {
		md.Skills[e.ID] = e.Name
	}
	for _, e := range mf.Equips {
		md.Equipment[e.ID] = e.Name
	}
	return md, nil
}

// LoadFiles decodes every *.json data file in dir except metadata.json and
// returns them in file name order. Unreadable or malformed files, and files
// without a top-level "units" list, are logged and skipped; a bad file never
// aborts the load. Access sets of every returned unit are already computed.
func LoadFiles(dir string, logg *zap.Logger) ([]DataFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var files []DataFile
	for _, path := range paths {
		name := filepath.Base(path)
		if name == MetadataFileName {
			continue
		}

		b, err := os.ReadFile(path)
		if err != nil {
			logg.Warn("Skipping unreadable data file", zap.String("file", name), zap.Error(err))
			continue
		}

		// Units is a pointer so a file without the key can be told apart
		// from a file with an empty list.
		var df struct {
			Units *[]*Unit `json:"units"`
		}
		if err := json.Unmarshal(b, &df); err != nil {
			logg.Warn("Skipping malformed data file", zap.String("file", name), zap.Error(err))
			continue
		}
		if df.Units == nil {
			logg.Debug("Skipping file without unit list", zap.String("file", name))
			continue
		}

		units := *df.Units
		for _, u := range units {
			u.ComputeAccess()
		}
		files = append(files, DataFile{Name: name, Units: units})
	}
	return files, nil
}

// Load builds the complete in-memory database for dir: metadata tables plus
// every unit from every data file, with access sets computed. Duplicate ISC
// codes are tolerated (search collapses them to the first occurrence) but
// logged so bad data is visible.
func Load(dir string, logg *zap.Logger) (*Database, error) {
	md, err := LoadMetadata(dir)
	if err != nil {
		return nil, err
	}

	files, err := LoadFiles(dir, logg)
	if err != nil {
		return nil, err
	}

	db := &Database{Metadata: md}
	seen := make(map[string]string)
	for _, f := range files {
		for _, u := range f.Units {
			if prev, dup := seen[u.ISC]; dup {
				logg.Warn("Duplicate ISC code",
					zap.String("isc", u.ISC),
					zap.String("file", f.Name),
					zap.String("first_seen", prev),
				)
			} else {
				seen[u.ISC] = f.Name
			}
			db.Units = append(db.Units, u)
		}
	}
	return db, nil
}
