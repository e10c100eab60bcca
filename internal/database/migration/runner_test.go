package migration

import (
	"testing"
	"testing/fstest"

	"skill-match/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SortsAndSkipsForeignFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__swipes.sql":  {Data: []byte("CREATE TABLE b();")},
		"V1__init.sql":    {Data: []byte("  CREATE TABLE a();\n")},
		"README.md":       {Data: []byte("docs")},
		"V3_bad_name.sql": {Data: []byte("SELECT 1;")},
	}

	migs, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE a();", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoad_RejectsDuplicatesAndEmptyFiles(t *testing.T) {
	_, err := Load(fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")

	_, err = Load(fstest.MapFS{"V1__a.sql": {Data: []byte("   ")}})
	assert.ErrorContains(t, err, "empty migration file")
}

func TestLoad_EmbeddedSchema(t *testing.T) {
	migs, err := Load(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Contains(t, migs[0].SQL, "skill_categories")
}
