package dataset

import (
	"context"
	"fmt"
	"os"
	"time"

	"skill-gap/internal/domain/job"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/domain/user"
	"skill-gap/internal/logging"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one load of the users and jobs files.
type Snapshot struct {
	ID       uuid.UUID
	Users    []user.User
	Jobs     []job.Job
	LoadedAt time.Time
}

// Ready reports whether both record sets are non-empty, the condition for
// building a recommender.
func (s *Snapshot) Ready() bool {
	return s != nil && len(s.Users) > 0 && len(s.Jobs) > 0
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		ID:       uuid.New(),
		Users:    []user.User{},
		Jobs:     []job.Job{},
		LoadedAt: time.Now().UTC(),
	}
}

// Load reads both files concurrently.
func Load(ctx context.Context, usersPath, jobsPath string) (*Snapshot, error) {
	var users []user.User
	var jobs []job.Job

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		users, err = readRecords[user.User](usersPath)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		jobs, err = readRecords[job.Job](jobsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Skills == nil {
			users[i].Skills = skill.List{}
		}
	}
	for i := range jobs {
		if jobs[i].Skills == nil {
			jobs[i].Skills = skill.List{}
		}
	}

	return &Snapshot{ID: uuid.New(), Users: users, Jobs: jobs, LoadedAt: time.Now().UTC()}, nil
}

// LoadOrEmpty falls back to an empty snapshot when either file cannot be
// read, so a fresh install starts in the not-initialized state.
func LoadOrEmpty(ctx context.Context, usersPath, jobsPath string) *Snapshot {
	s, err := Load(ctx, usersPath, jobsPath)
	if err != nil {
		l := logging.WithComponent("dataset")
		l.Warn().Err(err).Str("users_path", usersPath).Str("jobs_path", jobsPath).Msg("error loading data from JSON, starting empty")
		return emptySnapshot()
	}
	return s
}

func readRecords[T any](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeRecords[T](path, b)
}

func decodeRecords[T any](name string, b []byte) ([]T, error) {
	out := make([]T, 0)
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}
