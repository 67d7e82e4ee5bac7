package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAccess_UnionsProfilesAndOptions(t *testing.T) {
	u := &Unit{
		ID:   1,
		ISC:  "fusilier",
		Name: "Fusilier",
		ProfileGroups: []ProfileGroup{
			{
				Profiles: []Profile{
					{
						Weapons: []Ref{{ID: 1}, {ID: 2}},
						Skills:  []Ref{{ID: 10}},
					},
					{
						Weapons: []Ref{{ID: 2}}, // duplicate across profiles
						Equip:   []Ref{{ID: 20}},
					},
				},
				Options: []Profile{
					{
						Weapons: []Ref{{ID: 3}},
						Skills:  []Ref{{ID: 11}},
						Equip:   []Ref{{ID: 21}},
					},
				},
			},
			{
				Options: []Profile{
					{Skills: []Ref{{ID: 12}}},
				},
			},
		},
	}
	u.ComputeAccess()

	assert.Equal(t, IDSet{1: {}, 2: {}, 3: {}}, u.weapons)
	assert.Equal(t, IDSet{10: {}, 11: {}, 12: {}}, u.skills)
	assert.Equal(t, IDSet{20: {}, 21: {}}, u.equipment)

	assert.True(t, u.HasWeapon(3))
	assert.True(t, u.HasSkill(12))
	assert.True(t, u.HasEquipment(20))
	assert.False(t, u.HasWeapon(99))
}

func TestComputeAccess_Idempotent(t *testing.T) {
	u := &Unit{
		ProfileGroups: []ProfileGroup{
			{Profiles: []Profile{{Weapons: []Ref{{ID: 5}}, Skills: []Ref{{ID: 6}}}}},
		},
	}
	u.ComputeAccess()
	first := u.weapons

	u.ComputeAccess()
	assert.Equal(t, first, u.weapons)
	assert.Equal(t, IDSet{6: {}}, u.skills)
	assert.Empty(t, u.equipment)
}

func TestComputeAccess_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		unit *Unit
	}{
		{"NoProfileGroups", &Unit{}},
		{"EmptyGroup", &Unit{ProfileGroups: []ProfileGroup{{}}}},
		{"ProfileWithoutLists", &Unit{ProfileGroups: []ProfileGroup{{Profiles: []Profile{{}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.unit.ComputeAccess()
			assert.Empty(t, tt.unit.weapons)
			assert.Empty(t, tt.unit.skills)
			assert.Empty(t, tt.unit.equipment)
		})
	}
}

func TestMetadata_FactionName(t *testing.T) {
	md := Metadata{Factions: map[int]string{3: "PanOceania"}}

	assert.Equal(t, "PanOceania", md.FactionName(3))
	assert.Equal(t, "Unknown (9)", md.FactionName(9))
}
