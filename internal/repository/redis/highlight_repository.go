package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HighlightRepository stores the transient "just updated" markers shown
// on a section right after an accepted refinement. The marker is a
// redis key with a TTL, so the highlight clears itself without a
// cleanup job and survives backend restarts within the window.
type HighlightRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewHighlightRepository(rdb *redis.Client, ttl time.Duration) *HighlightRepository {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return &HighlightRepository{rdb: rdb, ttl: ttl}
}

func (r *HighlightRepository) key(brdID, sectionKey string) string {
	return fmt.Sprintf("brd:%s:highlight:%s", brdID, sectionKey)
}

func (r *HighlightRepository) Mark(ctx context.Context, brdID, sectionKey string) error {
	return r.rdb.Set(ctx, r.key(brdID, sectionKey), "1", r.ttl).Err()
}

func (r *HighlightRepository) IsMarked(ctx context.Context, brdID, sectionKey string) (bool, error) {
	n, err := r.rdb.Exists(ctx, r.key(brdID, sectionKey)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkedSections returns the set of section keys currently flagged for
// a document. Used when rendering the whole BRD in one call.
func (r *HighlightRepository) MarkedSections(ctx context.Context, brdID string, sectionKeys []string) (map[string]bool, error) {
	marked := make(map[string]bool, len(sectionKeys))
	if len(sectionKeys) == 0 {
		return marked, nil
	}

	keys := make([]string, len(sectionKeys))
	for i, sk := range sectionKeys {
		keys[i] = r.key(brdID, sk)
	}

	pipe := r.rdb.Pipeline()
	cmds := make([]*redis.IntCmd, len(keys))
	for i, k := range keys {
		cmds[i] = pipe.Exists(ctx, k)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}
	for i, cmd := range cmds {
		if cmd.Val() > 0 {
			marked[sectionKeys[i]] = true
		}
	}
	return marked, nil
}
