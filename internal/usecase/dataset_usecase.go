package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"skill-gap/internal/dataset"
	"skill-gap/internal/domain/job"
	"skill-gap/internal/domain/user"
	"skill-gap/internal/metrics"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	KindUsers = "users"
	KindJobs  = "jobs"

	recentUploadsLimit = 5
)

// DatasetNotifier is told about every dataset swap.
type DatasetNotifier interface {
	NotifyDatasetUpdated(kind string, usersCount, jobsCount int, ready bool)
}

type Status struct {
	Ready         bool
	UsersCount    int
	JobsCount     int
	LoadedAt      time.Time
	RecentUploads []repository.Upload
}

type DatasetUsecase interface {
	ListUsers(ctx context.Context, limit int) ([]user.User, error)
	ListJobs(ctx context.Context, limit int) ([]job.Job, error)
	UploadUsers(ctx context.Context, filename string, raw []byte) error
	UploadJobs(ctx context.Context, filename string, raw []byte) error
	Refresh(ctx context.Context) (bool, error)
	Status(ctx context.Context) (Status, error)
}

type DatasetPaths struct {
	Users string
	Jobs  string
}

type Dataset struct {
	store    *dataset.Store
	paths    DatasetPaths
	cache    ResultCache
	audit    repository.UploadAuditRepository
	notifier DatasetNotifier
	logger   zerolog.Logger

	// uploadMu serialises write-file + reload.
	uploadMu sync.Mutex
}

// NewDatasetUsecase wires the dataset operations. cache, audit and notifier
// may be nil.
func NewDatasetUsecase(store *dataset.Store, paths DatasetPaths, cache ResultCache, audit repository.UploadAuditRepository, notifier DatasetNotifier, logger zerolog.Logger) *Dataset {
	return &Dataset{
		store:    store,
		paths:    paths,
		cache:    cache,
		audit:    audit,
		notifier: notifier,
		logger:   logger,
	}
}

func (u *Dataset) ListUsers(_ context.Context, limit int) ([]user.User, error) {
	snap, _ := u.store.Current()
	return head(snap.Users, limit), nil
}

func (u *Dataset) ListJobs(_ context.Context, limit int) ([]job.Job, error) {
	snap, _ := u.store.Current()
	return head(snap.Jobs, limit), nil
}

// head returns the first limit items; a negative limit means all of them.
func head[T any](items []T, limit int) []T {
	if limit < 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}

func (u *Dataset) UploadUsers(ctx context.Context, filename string, raw []byte) error {
	if err := checkFilename(filename); err != nil {
		metrics.UploadsTotal.WithLabelValues(KindUsers, "rejected").Inc()
		return err
	}
	users, err := dataset.ValidateUsers(raw)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(KindUsers, "rejected").Inc()
		return invalidUpload(err)
	}
	return u.replaceFile(ctx, KindUsers, u.paths.Users, filename, raw, len(users))
}

func (u *Dataset) UploadJobs(ctx context.Context, filename string, raw []byte) error {
	if err := checkFilename(filename); err != nil {
		metrics.UploadsTotal.WithLabelValues(KindJobs, "rejected").Inc()
		return err
	}
	jobs, err := dataset.ValidateJobs(raw)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(KindJobs, "rejected").Inc()
		return invalidUpload(err)
	}
	return u.replaceFile(ctx, KindJobs, u.paths.Jobs, filename, raw, len(jobs))
}

func checkFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return ErrNoSelectedFile
	}
	if !strings.EqualFold(filepath.Ext(filename), ".json") {
		return ErrNotJSONFile
	}
	return nil
}

func invalidUpload(err error) error {
	var ve *dataset.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ve)
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func (u *Dataset) replaceFile(ctx context.Context, kind, path, filename string, raw []byte, count int) error {
	u.uploadMu.Lock()
	defer u.uploadMu.Unlock()

	if err := dataset.WriteFile(path, raw); err != nil {
		metrics.UploadsTotal.WithLabelValues(kind, "failed").Inc()
		u.logger.Error().Err(err).Str("kind", kind).Str("path", path).Msg("write data file failed")
		return fmt.Errorf("save %s file: %w", kind, err)
	}

	snap := u.reload(ctx, "upload_"+kind)
	metrics.UploadsTotal.WithLabelValues(kind, "accepted").Inc()
	u.logger.Info().
		Str("kind", kind).
		Str("filename", filename).
		Int("records", count).
		Str("snapshot_id", snap.ID.String()).
		Msg("data file uploaded")

	if u.audit != nil {
		err := u.audit.Record(ctx, repository.Upload{
			ID:          uuid.New(),
			Kind:        kind,
			Filename:    filename,
			RecordCount: count,
			SizeBytes:   int64(len(raw)),
			SnapshotID:  snap.ID,
			UploadedAt:  time.Now().UTC(),
		})
		if err != nil {
			u.logger.Warn().Err(err).Str("kind", kind).Msg("record upload audit failed")
		}
	}

	u.notify(kind, snap)
	return nil
}

// Refresh reloads both files and reports whether a recommender could be
// built from them.
func (u *Dataset) Refresh(ctx context.Context) (bool, error) {
	u.uploadMu.Lock()
	defer u.uploadMu.Unlock()

	snap := u.reload(ctx, "refresh")
	u.notify("refresh", snap)
	return snap.Ready(), nil
}

func (u *Dataset) reload(ctx context.Context, trigger string) *dataset.Snapshot {
	prev, _ := u.store.Current()

	snap := dataset.LoadOrEmpty(ctx, u.paths.Users, u.paths.Jobs)
	u.store.Replace(snap)

	metrics.DatasetReloads.WithLabelValues(trigger).Inc()
	metrics.SetDataset(len(snap.Users), len(snap.Jobs), snap.Ready())

	if u.cache != nil && prev != nil {
		if err := u.cache.DeleteByPrefix(ctx, snapshotCachePrefix(prev.ID)); err != nil {
			u.logger.Warn().Err(err).Msg("cache invalidation failed")
		}
	}
	return snap
}

func (u *Dataset) notify(kind string, snap *dataset.Snapshot) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyDatasetUpdated(kind, len(snap.Users), len(snap.Jobs), snap.Ready())
}

func (u *Dataset) Status(ctx context.Context) (Status, error) {
	snap, rec := u.store.Current()
	st := Status{
		Ready:      rec != nil,
		UsersCount: len(snap.Users),
		JobsCount:  len(snap.Jobs),
		LoadedAt:   snap.LoadedAt,
	}

	if u.audit != nil {
		recent, err := u.audit.ListRecent(ctx, recentUploadsLimit)
		if err != nil {
			u.logger.Warn().Err(err).Msg("list recent uploads failed")
		} else {
			st.RecentUploads = recent
		}
	}
	return st, nil
}
