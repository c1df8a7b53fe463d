package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничение частоты запросов по IP клиента
type RateLimiter struct {
	mu             sync.Mutex
	visitors       map[string]*visitor
	limit          rate.Limit
	burst          int
	trustForwarded bool
	reject         http.HandlerFunc
	now            func() time.Time
}

// RateLimiterOption настройка ограничителя
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxy брать адрес клиента из X-Forwarded-For
// Включать только за прокси, который перезаписывает заголовок
func WithTrustedProxy() RateLimiterOption {
	return func(l *RateLimiter) {
		l.trustForwarded = true
	}
}

// WithRejectHandler ответ на превышение лимита в формате маршрута
func WithRejectHandler(reject http.HandlerFunc) RateLimiterOption {
	return func(l *RateLimiter) {
		l.reject = reject
	}
}

// NewRateLimiter создает ограничитель: perMinute запросов в минуту, burst подряд
func NewRateLimiter(perMinute, burst int, opts ...RateLimiterOption) *RateLimiter {
	l := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
		reject:   tooManyRequests,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Middleware отвечает 429, если клиент превысил лимит
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(ClientIP(r, l.trustForwarded)) {
			w.Header().Set("Retry-After", "60")
			l.reject(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tooManyRequests(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondError(w, http.StatusTooManyRequests, "too many requests, try again later")
}

// Allow проверяет и расходует токен клиента
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Cleanup забывает клиентов, не приходивших дольше maxIdle
func (l *RateLimiter) Cleanup(maxIdle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := l.now().Add(-maxIdle)
	removed := 0
	for key, v := range l.visitors {
		if v.lastSeen.Before(threshold) {
			delete(l.visitors, key)
			removed++
		}
	}
	return removed
}

// ClientIP адрес клиента; X-Forwarded-For учитывается только от доверенного прокси
func ClientIP(r *http.Request, trustForwarded bool) string {
	if trustForwarded {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
