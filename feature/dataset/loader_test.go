package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const metadataJSON = `{
	"factions": [{"id": 3, "name": "PanOceania"}, {"id": 5, "name": "Nomads"}],
	"weapons":  [{"id": 1, "name": "Combi Rifle"}],
	"skills":   [{"id": 10, "name": "Mimetism"}],
	"equips":   [{"id": 20, "name": "Multispectral Visor"}]
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadMetadata(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, MetadataFileName, metadataJSON)

		md, err := LoadMetadata(dir)
		require.NoError(t, err)
		assert.Equal(t, "PanOceania", md.Factions[3])
		assert.Equal(t, "Combi Rifle", md.Weapons[1])
		assert.Equal(t, "Mimetism", md.Skills[10])
		assert.Equal(t, "Multispectral Visor", md.Equipment[20])
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadMetadata(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, MetadataFileName, "{not json")

		_, err := LoadMetadata(dir)
		assert.Error(t, err)
	})
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, MetadataFileName, metadataJSON)
	writeFile(t, dir, "panoceania.json", `{"units": [
		{"id": 1, "isc": "fusilier", "name": "Fusilier", "factions": [3],
		 "profileGroups": [{"profiles": [{"weapons": [{"id": 1}]}]}]}
	]}`)
	writeFile(t, dir, "broken.json", `{"units": [`)
	writeFile(t, dir, "notunits.json", `{"filters": {"extras": []}}`)
	writeFile(t, dir, "readme.txt", "not even json")

	files, err := LoadFiles(dir, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "panoceania.json", files[0].Name)
	require.Len(t, files[0].Units, 1)

	// Access sets are already computed on the way in.
	assert.True(t, files[0].Units[0].HasWeapon(1))
}

func TestLoad(t *testing.T) {
	t.Run("FullDataset", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, MetadataFileName, metadataJSON)
		writeFile(t, dir, "panoceania.json", `{"units": [
			{"id": 1, "isc": "fusilier", "name": "Fusilier", "factions": [3], "profileGroups": []}
		]}`)
		writeFile(t, dir, "nomads.json", `{"units": [
			{"id": 2, "isc": "alguacil", "name": "Alguacil", "factions": [5], "profileGroups": []}
		]}`)

		db, err := Load(dir, zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, db.Units, 2)
		assert.Equal(t, "Nomads", db.FactionName(5))
	})

	t.Run("MissingMetadataIsFatal", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "panoceania.json", `{"units": []}`)

		_, err := Load(dir, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("DuplicateISCIsKept", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, MetadataFileName, metadataJSON)
		writeFile(t, dir, "a.json", `{"units": [{"id": 1, "isc": "fusilier", "name": "Fusilier", "factions": [3]}]}`)
		writeFile(t, dir, "b.json", `{"units": [{"id": 2, "isc": "fusilier", "name": "Fusilier Clone", "factions": [5]}]}`)

		// The loader keeps both; collapsing is the search engine's policy.
		db, err := Load(dir, zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, db.Units, 2)
	})
}
