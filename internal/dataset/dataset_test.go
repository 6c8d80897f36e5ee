package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"skill-gap/internal/domain/skill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersJSON = `[
	{"id": 1, "name": "Alice", "skills": "Python,SQL", "primary_focus": "Data Science", "experience_years": 2},
	{"id": 2, "skills": ["Go", " Docker "], "primary_focus": "Backend"}
]`

const jobsJSON = `[
	{"id": 10, "title": "Data Scientist", "company": "Acme", "skills": ["Python", "SQL"], "role_type": "Data Science"}
]`

func writeFiles(t *testing.T, users, jobs string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	up := filepath.Join(dir, "users.json")
	jp := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(up, []byte(users), 0o644))
	require.NoError(t, os.WriteFile(jp, []byte(jobs), 0o644))
	return up, jp
}

func TestLoad_NormalizesSkills(t *testing.T) {
	up, jp := writeFiles(t, usersJSON, jobsJSON)

	snap, err := Load(context.Background(), up, jp)
	require.NoError(t, err)
	require.Len(t, snap.Users, 2)
	require.Len(t, snap.Jobs, 1)

	assert.Equal(t, skill.List{"Python", "SQL"}, snap.Users[0].Skills)
	assert.Equal(t, skill.List{"Go", "Docker"}, snap.Users[1].Skills)
	assert.Zero(t, snap.Users[1].ExperienceYears)
	assert.True(t, snap.Ready())
}

func TestLoadOrEmpty_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	snap := LoadOrEmpty(context.Background(), filepath.Join(dir, "nope.json"), filepath.Join(dir, "nada.json"))
	require.NotNil(t, snap)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Jobs)
	assert.False(t, snap.Ready())
}

func TestLoadOrEmpty_BrokenJSON(t *testing.T) {
	up, jp := writeFiles(t, `{not json`, jobsJSON)

	snap := LoadOrEmpty(context.Background(), up, jp)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Jobs)
}

func TestValidateUsers(t *testing.T) {
	users, err := ValidateUsers([]byte(usersJSON))
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = ValidateUsers([]byte(`[{"name": "no id", "skills": []}]`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "id")

	_, err = ValidateUsers([]byte(`{"id": 1}`))
	assert.ErrorAs(t, err, &ve)

	_, err = ValidateUsers([]byte(`[{"id": 1, "skills": 5}]`))
	assert.ErrorAs(t, err, &ve)

	_, err = ValidateUsers([]byte(`not json`))
	assert.ErrorAs(t, err, &ve)
}

func TestValidateJobs(t *testing.T) {
	jobs, err := ValidateJobs([]byte(jobsJSON))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].Company)

	_, err = ValidateJobs([]byte(`[{"id": "ten", "skills": []}]`))
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestWriteFile_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "users.json")

	require.NoError(t, WriteFile(path, []byte(`[]`)))
	require.NoError(t, WriteFile(path, []byte(usersJSON)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, usersJSON, string(b))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestStore_ReplaceBuildsRecommenderOnlyWhenReady(t *testing.T) {
	store := NewStore(nil)
	snap, rec := store.Current()
	require.NotNil(t, snap)
	assert.Nil(t, rec)

	up, jp := writeFiles(t, usersJSON, jobsJSON)
	loaded, err := Load(context.Background(), up, jp)
	require.NoError(t, err)

	rec = store.Replace(loaded)
	require.NotNil(t, rec)
	cur, curRec := store.Current()
	assert.Equal(t, loaded.ID, cur.ID)
	assert.Same(t, rec, curRec)

	up, jp = writeFiles(t, usersJSON, `[]`)
	loaded, err = Load(context.Background(), up, jp)
	require.NoError(t, err)
	assert.Nil(t, store.Replace(loaded))
}
