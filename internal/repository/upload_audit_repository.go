package repository

import (
	"context"
	"time"

	"skill-gap/internal/database"

	"github.com/google/uuid"
)

// Upload is one accepted data file upload.
type Upload struct {
	ID          uuid.UUID
	Kind        string
	Filename    string
	RecordCount int
	SizeBytes   int64
	SnapshotID  uuid.UUID
	UploadedAt  time.Time
}

type UploadAuditRepository interface {
	Record(ctx context.Context, u Upload) error
	ListRecent(ctx context.Context, limit int) ([]Upload, error)
}

type PostgresUploadAuditRepository struct {
	db database.DB
}

func NewPostgresUploadAuditRepository(db database.DB) *PostgresUploadAuditRepository {
	return &PostgresUploadAuditRepository{db: db}
}

func (r *PostgresUploadAuditRepository) Record(ctx context.Context, u Upload) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.UploadedAt.IsZero() {
		u.UploadedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO dataset_uploads (id, kind, filename, record_count, size_bytes, snapshot_id, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Kind, u.Filename, u.RecordCount, u.SizeBytes, u.SnapshotID, u.UploadedAt,
	)
	return err
}

func (r *PostgresUploadAuditRepository) ListRecent(ctx context.Context, limit int) ([]Upload, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, kind, filename, record_count, size_bytes, snapshot_id, uploaded_at
		 FROM dataset_uploads
		 ORDER BY uploaded_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Upload, 0, limit)
	for rows.Next() {
		var u Upload
		if err := rows.Scan(&u.ID, &u.Kind, &u.Filename, &u.RecordCount, &u.SizeBytes, &u.SnapshotID, &u.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
