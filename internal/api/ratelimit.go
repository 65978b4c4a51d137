package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

//shortest time a client is remembered after its last request
const minimumIdle = time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

//IPRateLimiter keeps one token bucket per client address.
//
//A client idle long enough for its bucket to refill is forgotten, the next request
//starts from a full bucket as it would have anyway.
type IPRateLimiter struct {
	clients   map[string]*client
	mu        sync.Mutex
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

//NewIPRateLimiter creates a limiter allowing requestsPerMinute with the burst specified
func NewIPRateLimiter(requestsPerMinute float64, burst int) *IPRateLimiter {
	l := &IPRateLimiter{
		clients: make(map[string]*client),
		r:       rate.Limit(requestsPerMinute / 60),
		b:       burst,
		idle:    minimumIdle,
		now:     time.Now,
	}
	if l.r > 0 {
		if refill := time.Duration(float64(burst) / float64(l.r) * float64(time.Second)); refill > l.idle {
			l.idle = refill
		}
	}
	l.lastSweep = l.now()
	return l
}

//Limiter returns the bucket of the address, creating it on the first request
func (l *IPRateLimiter) Limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	c, exists := l.clients[ip]
	if !exists {
		c = &client{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

//sweep forgets the idle clients, l.mu must be held
func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.idle {
			delete(l.clients, ip)
		}
	}
	l.lastSweep = now
}

//Len returns the number of clients remembered
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

//Middleware rejects requests over the limit with 429
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Limiter(clientIP(r)).Allow() {
			//a client refused is not worth a log line per request
			_ = writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
