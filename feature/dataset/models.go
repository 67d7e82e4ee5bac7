package dataset

import "fmt"

// Ref is a reference to a weapon, skill or equipment entry in the metadata
// tables. Data files carry additional per-reference fields (order, extras)
// that the tooling does not need.
type Ref struct {
	ID int `json:"id"`
}

// Profile is one stat line of a unit. Options share the same shape, so the
// type covers both.
type Profile struct {
	Skills  []Ref `json:"skills"`
	Equip   []Ref `json:"equip"`
	Weapons []Ref `json:"weapons"`
}

// ProfileGroup is one loadout variant of a unit, holding its profiles and
// the selectable options.
type ProfileGroup struct {
	Profiles []Profile `json:"profiles"`
	Options  []Profile `json:"options"`
}

// IDSet is a set of metadata IDs.
type IDSet map[int]struct{}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) add(refs []Ref) {
	for _, r := range refs {
		s[r.ID] = struct{}{}
	}
}

// Unit is a single unit entry from a data file. The three access sets are
// derived from ProfileGroups by ComputeAccess and are read-only afterwards.
type Unit struct {
	ID            int            `json:"id"`
	ISC           string         `json:"isc"`
	Name          string         `json:"name"`
	Factions      []int          `json:"factions"`
	ProfileGroups []ProfileGroup `json:"profileGroups"`

	weapons   IDSet
	skills    IDSet
	equipment IDSet
}

// ComputeAccess rebuilds the cached ID sets from the unit's profile groups.
// Every weapon, skill and equipment reference in any profile or option is
// included. Absent lists contribute nothing; a unit without profile groups
// ends up with empty sets.
func (u *Unit) ComputeAccess() {
	u.weapons = make(IDSet)
	u.skills = make(IDSet)
	u.equipment = make(IDSet)

	for _, pg := range u.ProfileGroups {
		for _, p := range pg.Profiles {
			u.skills.add(p.Skills)
			u.equipment.add(p.Equip)
			u.weapons.add(p.Weapons)
		}
		for _, opt := range pg.Options {
			u.skills.add(opt.Skills)
			u.equipment.add(opt.Equip)
			u.weapons.add(opt.Weapons)
		}
	}
}

// HasWeapon reports whether any profile or option of the unit carries the weapon.
func (u *Unit) HasWeapon(id int) bool { return u.weapons.Contains(id) }

// HasSkill reports whether any profile or option of the unit carries the skill.
func (u *Unit) HasSkill(id int) bool { return u.skills.Contains(id) }

// HasEquipment reports whether any profile or option of the unit carries the equipment.
func (u *Unit) HasEquipment(id int) bool { return u.equipment.Contains(id) }

// Metadata holds the ID to display name tables from metadata.json.
type Metadata struct {
	Factions  map[int]string
	Weapons   map[int]string
	Skills    map[int]string
	Equipment map[int]string
}

// FactionName resolves a faction ID to its display name, or a placeholder
// when the ID is not in the table.
func (m Metadata) FactionName(id int) string {
	if name, ok := m.Factions[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

// DataFile is the decoded unit list of a single per-faction data file.
type DataFile struct {
	Name  string
	Units []*Unit
}

// Database is the fully loaded dataset: metadata tables plus the flat unit
// list across all data files. It is built once by Load and never mutated.
type Database struct {
	Metadata
	Units []*Unit
}
