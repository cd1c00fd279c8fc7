package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slidingWindow 每个 IP 在窗口内的请求时间戳
type slidingWindow struct {
	mu     sync.Mutex
	window time.Duration
	limit  int
	store  map[string][]time.Time
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		window: window,
		limit:  limit,
		store:  make(map[string][]time.Time),
	}
}

// allow 记录一次请求，超出限制时返回 false 和需要等待的时间
func (s *slidingWindow) allow(key string, now time.Time) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := prune(s.store[key], now.Add(-s.window))
	if len(ts) >= s.limit {
		s.store[key] = ts
		return false, ts[0].Add(s.window).Sub(now)
	}
	s.store[key] = append(ts, now)
	return true, 0
}

// cleanup 清理过期数据
func (s *slidingWindow) cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.window)
	for key, ts := range s.store {
		ts = prune(ts, cutoff)
		if len(ts) == 0 {
			delete(s.store, key)
		} else {
			s.store[key] = ts
		}
	}
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// RateLimit 按 IP 限流中间件
// 每 IP 在 window 内最多 maxRequests 次请求，超过则返回 429
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingWindow(maxRequests, window)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			limiter.cleanup(now)
		}
	}()

	return func(c *gin.Context) {
		ok, retryAfter := limiter.allow(c.ClientIP(), time.Now())
		if !ok {
			seconds := int(retryAfter/time.Second) + 1
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
