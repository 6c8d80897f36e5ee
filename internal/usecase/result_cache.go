package usecase

import (
	"context"
	"strconv"

	"github.com/google/uuid"
)

// ResultCache stores computed recommendation results as JSON.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

const cacheNamespace = "skillgap:"

// snapshotCachePrefix scopes keys to one dataset load, so a reload makes
// every older entry unreachable.
func snapshotCachePrefix(snapshotID uuid.UUID) string {
	return cacheNamespace + snapshotID.String() + ":"
}

func RecommendCacheKey(snapshotID uuid.UUID, userID int) string {
	return snapshotCachePrefix(snapshotID) + "recommend:user:" + strconv.Itoa(userID)
}

func GapsCacheKey(snapshotID uuid.UUID, userID int, jobID *int) string {
	job := "market"
	if jobID != nil {
		job = strconv.Itoa(*jobID)
	}
	return snapshotCachePrefix(snapshotID) + "gaps:user:" + strconv.Itoa(userID) + ":job:" + job
}
