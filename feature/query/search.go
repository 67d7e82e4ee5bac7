package query

import (
	"sort"
	"strings"

	"infinity-tools/feature/dataset"
)

// Filters holds the optional name substrings to search for. Empty fields are
// ignored; matching is case-insensitive with surrounding whitespace trimmed.
type Filters struct {
	Weapon string
	Skill  string
	Equip  string
}

// Empty reports whether no filter is set at all.
func (f Filters) Empty() bool {
	return normalize(f.Weapon) == "" && normalize(f.Skill) == "" && normalize(f.Equip) == ""
}

// Match is one unit that satisfied the filters, with a human-readable reason
// per matching metadata entry, e.g. "Weapon: Combi Rifle".
type Match struct {
	Unit    *dataset.Unit
	Reasons []string
}

// Engine answers substring searches against a loaded database.
type Engine struct {
	db *dataset.Database
}

// NewEngine creates a search engine over db.
func NewEngine(db *dataset.Database) *Engine {
	return &Engine{db: db}
}

// Search resolves each filter substring to the metadata IDs whose names
// contain it, then returns every unit whose access sets intersect the
// resolved IDs. Results are deduplicated by ISC code, first occurrence wins.
// With no filters set the result is empty: nothing to search for.
func (e *Engine) Search(f Filters) []Match {
	weaponIDs := resolve(f.Weapon, e.db.Weapons)
	skillIDs := resolve(f.Skill, e.db.Skills)
	equipIDs := resolve(f.Equip, e.db.Equipment)

	if len(weaponIDs) == 0 && len(skillIDs) == 0 && len(equipIDs) == 0 {
		return nil
	}

	var matches []Match
	seen := make(map[string]struct{})

	for _, u := range e.db.Units {
		var reasons []string
		for _, id := range weaponIDs {
			if u.HasWeapon(id) {
				reasons = append(reasons, "Weapon: "+e.db.Weapons[id])
			}
		}
		for _, id := range skillIDs {
			if u.HasSkill(id) {
				reasons = append(reasons, "Skill: "+e.db.Skills[id])
			}
		}
		for _, id := range equipIDs {
			if u.HasEquipment(id) {
				reasons = append(reasons, "Equip: "+e.db.Equipment[id])
			}
		}
		if len(reasons) == 0 {
			continue
		}

		if _, dup := seen[u.ISC]; dup {
			continue
		}
		seen[u.ISC] = struct{}{}
		matches = append(matches, Match{Unit: u, Reasons: reasons})
	}
	return matches
}

// resolve returns the IDs of every table entry whose name contains the query
// substring, in ascending ID order so reasons come out deterministic.
func resolve(query string, table map[int]string) []int {
	q := normalize(query)
	if q == "" {
		return nil
	}

	var ids []int
	for id, name := range table {
		if strings.Contains(normalize(name), q) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
