package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill-gap/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	execQuery string
	execArgs  []any
	rows      *fakeRows
	queryErr  error
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.execQuery = q
	f.execArgs = args
	return 1, nil
}
func (f *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}
func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (f *fakeDB) Begin(context.Context) (database.Tx, error)            { return nil, errors.New("no tx") }

type fakeRows struct {
	items  []Upload
	i      int
	closed bool
}

func (r *fakeRows) Close()     { r.closed = true }
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.items)
}
func (r *fakeRows) Scan(dest ...any) error {
	u := r.items[r.i-1]
	*dest[0].(*uuid.UUID) = u.ID
	*dest[1].(*string) = u.Kind
	*dest[2].(*string) = u.Filename
	*dest[3].(*int) = u.RecordCount
	*dest[4].(*int64) = u.SizeBytes
	*dest[5].(*uuid.UUID) = u.SnapshotID
	*dest[6].(*time.Time) = u.UploadedAt
	return nil
}

func TestUploadAudit_RecordFillsDefaults(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresUploadAuditRepository(db)

	err := repo.Record(context.Background(), Upload{Kind: "users", Filename: "users.json", RecordCount: 3})
	require.NoError(t, err)
	assert.Contains(t, db.execQuery, "INSERT INTO dataset_uploads")
	require.Len(t, db.execArgs, 7)
	assert.NotEqual(t, uuid.Nil, db.execArgs[0])
	assert.Equal(t, "users", db.execArgs[1])
	assert.False(t, db.execArgs[6].(time.Time).IsZero())
}

func TestUploadAudit_ListRecent(t *testing.T) {
	now := time.Now().UTC()
	rows := &fakeRows{items: []Upload{
		{ID: uuid.New(), Kind: "jobs", Filename: "jobs.json", RecordCount: 4, UploadedAt: now},
		{ID: uuid.New(), Kind: "users", Filename: "users.json", RecordCount: 2, UploadedAt: now.Add(-time.Minute)},
	}}
	repo := NewPostgresUploadAuditRepository(&fakeDB{rows: rows})

	got, err := repo.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "jobs", got[0].Kind)
	assert.Equal(t, 2, got[1].RecordCount)
	assert.True(t, rows.closed)

	_, err = NewPostgresUploadAuditRepository(&fakeDB{queryErr: errors.New("down")}).ListRecent(context.Background(), 0)
	assert.Error(t, err)
}
