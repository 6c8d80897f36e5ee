package usecase

import (
	"context"
	"errors"
	"time"

	"skill-gap/internal/dataset"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/user"
	"skill-gap/internal/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	recommendationCount = 5
	skillGapCount       = 10
)

type JobMatch struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	MatchScore float64 `json:"match_score"`
}

type Recommendation struct {
	MarketRecommendations        []string   `json:"market_recommendations"`
	CollaborativeRecommendations []string   `json:"collaborative_recommendations"`
	Analysis                     string     `json:"analysis"`
	JobMatches                   []JobMatch `json:"job_matches"`
}

type SkillGap struct {
	Skill      string  `json:"skill"`
	Importance float64 `json:"importance"`
}

type RecommendationUsecase interface {
	RecommendSkills(ctx context.Context, userID int) (Recommendation, error)
	AnalyzeSkillGaps(ctx context.Context, userID int, jobID *int) ([]SkillGap, error)
}

type Recommendations struct {
	store  *dataset.Store
	cache  ResultCache
	logger zerolog.Logger

	group singleflight.Group
}

// NewRecommendationUsecase builds the recommendation operations. cache may
// be nil.
func NewRecommendationUsecase(store *dataset.Store, cache ResultCache, logger zerolog.Logger) *Recommendations {
	return &Recommendations{store: store, cache: cache, logger: logger}
}

func (u *Recommendations) current() (*dataset.Snapshot, *matching.Recommender, error) {
	snap, rec := u.store.Current()
	if rec == nil {
		return nil, nil, ErrRecommenderNotReady
	}
	return snap, rec, nil
}

func (u *Recommendations) RecommendSkills(ctx context.Context, userID int) (Recommendation, error) {
	snap, rec, err := u.current()
	if err != nil {
		return Recommendation{}, err
	}
	usr, ok := user.Find(snap.Users, userID)
	if !ok {
		return Recommendation{}, ErrUserNotFound
	}

	key := RecommendCacheKey(snap.ID, userID)
	var out Recommendation
	if u.cacheGet(ctx, key, &out) {
		return out, nil
	}

	v, err, _ := u.group.Do(key, func() (any, error) {
		start := time.Now()
		defer func() {
			metrics.RecommendDuration.WithLabelValues("recommend_skills").Observe(time.Since(start).Seconds())
		}()

		collab, err := rec.RecommendCollaborative(userID, recommendationCount)
		if err != nil {
			return nil, mapMatchingErr(err)
		}
		matches, err := rec.FindRelevantJobs(userID, recommendationCount)
		if err != nil {
			return nil, mapMatchingErr(err)
		}

		r := Recommendation{
			MarketRecommendations:        rec.RecommendForMarket(usr.Skills, usr.PrimaryFocus, usr.ExperienceYears, recommendationCount),
			CollaborativeRecommendations: collab,
			Analysis:                     rec.GenerateRecommendationText(usr.Skills, usr.PrimaryFocus, usr.ExperienceYears, recommendationCount),
			JobMatches:                   make([]JobMatch, 0, len(matches)),
		}
		for _, m := range matches {
			r.JobMatches = append(r.JobMatches, JobMatch{
				ID:         m.Job.ID,
				Title:      m.Job.Title,
				Company:    m.Job.Company,
				MatchScore: m.Score,
			})
		}

		u.cacheSet(ctx, key, r)
		return r, nil
	})
	if err != nil {
		return Recommendation{}, err
	}
	return v.(Recommendation), nil
}

func (u *Recommendations) AnalyzeSkillGaps(ctx context.Context, userID int, jobID *int) ([]SkillGap, error) {
	snap, rec, err := u.current()
	if err != nil {
		return nil, err
	}

	key := GapsCacheKey(snap.ID, userID, jobID)
	var out []SkillGap
	if u.cacheGet(ctx, key, &out) {
		return out, nil
	}

	v, err, _ := u.group.Do(key, func() (any, error) {
		start := time.Now()
		defer func() {
			metrics.RecommendDuration.WithLabelValues("analyze_skill_gaps").Observe(time.Since(start).Seconds())
		}()

		gaps, err := rec.AnalyzeSkillGaps(userID, jobID)
		if err != nil {
			return nil, mapMatchingErr(err)
		}
		if len(gaps) > skillGapCount {
			gaps = gaps[:skillGapCount]
		}

		res := make([]SkillGap, 0, len(gaps))
		for _, g := range gaps {
			res = append(res, SkillGap{Skill: g.Skill, Importance: g.Importance})
		}

		u.cacheSet(ctx, key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]SkillGap), nil
}

func (u *Recommendations) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.Debug().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}
	return hit
}

func (u *Recommendations) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value); err != nil {
		u.logger.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func mapMatchingErr(err error) error {
	switch {
	case errors.Is(err, matching.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, matching.ErrJobNotFound):
		return ErrJobNotFound
	default:
		return err
	}
}
