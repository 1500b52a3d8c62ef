package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"menucatalog/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateCounter counts hits per key inside a fixed window. Hit returns the
// count including this hit and the time left until the window resets.
type RateCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiter returns a fixed-window limiter keyed by client IP.
// When the counter fails the request is let through; availability of the
// catalog wins over strict limiting.
func RateLimiter(counter RateCounter, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, resetIn, err := counter.Hit(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			log.Warn().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if count > limit {
			secs := int(resetIn.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}

// ── In-process counter ────────────────────────────────────────────────────────

// rateEntry tracks request counts per IP for the in-process limiter.
type rateEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryCounter keeps windows in a map. Expired entries are purged lazily,
// at most once per purgeInterval, so no background goroutine is needed.
type MemoryCounter struct {
	mu        sync.Mutex
	entries   map[string]*rateEntry
	lastPurge time.Time
	now       func() time.Time
}

const purgeInterval = 5 * time.Minute

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{entries: make(map[string]*rateEntry), now: time.Now}
}

func (m *MemoryCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.purgeLocked(now)

	entry, ok := m.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(window)}
		m.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.windowEnd.Sub(now), nil
}

func (m *MemoryCounter) purgeLocked(now time.Time) {
	if now.Sub(m.lastPurge) < purgeInterval {
		return
	}
	m.lastPurge = now
	purged := 0
	for key, entry := range m.entries {
		if now.After(entry.windowEnd) {
			delete(m.entries, key)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", len(m.entries)).
			Msg("rate limiter map purged")
	}
}

// ── Redis counter ─────────────────────────────────────────────────────────────

// RedisCounter shares windows between instances. INCR and the first EXPIRE
// run in one MULTI so a crash cannot leave a key without a TTL.
type RedisCounter struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb, prefix: "ratelimit:"}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	k := r.prefix + key
	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}
