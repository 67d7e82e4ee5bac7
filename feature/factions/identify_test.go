package factions_test

import (
	"testing"

	"infinity-tools/feature/dataset"
	"infinity-tools/feature/factions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var md = dataset.Metadata{Factions: map[int]string{
	3: "PanOceania",
	5: "Nomads",
	7: "Combined Army",
}}

func unitsWithFactions(factionLists ...[]int) []*dataset.Unit {
	units := make([]*dataset.Unit, len(factionLists))
	for i, fids := range factionLists {
		units[i] = &dataset.Unit{ID: i + 1, Factions: fids}
	}
	return units
}

func TestIdentify_SoleOwner(t *testing.T) {
	// Two files, both 100% faction 7.
	for _, units := range [][]*dataset.Unit{
		unitsWithFactions([]int{7}, []int{7}, []int{7}),
		unitsWithFactions([]int{7}, []int{7}),
	} {
		rep := factions.Identify(units)
		require.Len(t, rep.Candidates, 1)
		assert.Equal(t, 7, rep.Candidates[0].ID)
		assert.Equal(t, 100.0, rep.Candidates[0].Percent)

		idCol, desc := rep.Columns(md)
		assert.Equal(t, "7", idCol)
		assert.Equal(t, "Combined Army (100%)", desc)
	}
}

func TestIdentify_MultipleCandidates(t *testing.T) {
	// Sectorial file: every unit in 3, three quarters also in 5.
	units := unitsWithFactions([]int{3, 5}, []int{3, 5}, []int{3, 5}, []int{3})

	rep := factions.Identify(units)
	require.Len(t, rep.Candidates, 2)
	assert.Equal(t, 3, rep.Candidates[0].ID)
	assert.Equal(t, 5, rep.Candidates[1].ID)

	_, desc := rep.Columns(md)
	assert.Equal(t, "PanOceania (100%), Nomads (75%)", desc)
}

func TestIdentify_ExactlyHalfIsMixed(t *testing.T) {
	// Threshold is strictly greater than 50%.
	units := unitsWithFactions([]int{3}, []int{3}, []int{5}, []int{7})

	rep := factions.Identify(units)
	assert.Empty(t, rep.Candidates)
	assert.Equal(t, 3, rep.Top.ID)

	idCol, desc := rep.Columns(md)
	assert.Equal(t, "MIXED", idCol)
	assert.Equal(t, "Top: PanOceania (2/4)", desc)
}

func TestIdentify_Empty(t *testing.T) {
	t.Run("NoUnits", func(t *testing.T) {
		rep := factions.Identify(nil)
		assert.True(t, rep.Empty)

		idCol, desc := rep.Columns(md)
		assert.Equal(t, "EMPTY", idCol)
		assert.Equal(t, "Unit list is empty", desc)
	})

	t.Run("NoFactionRefs", func(t *testing.T) {
		rep := factions.Identify(unitsWithFactions(nil, nil))
		assert.True(t, rep.Empty)

		_, desc := rep.Columns(md)
		assert.Equal(t, "No faction data found", desc)
	})
}
