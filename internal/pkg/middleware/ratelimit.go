package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"gocollect/internal/api/response"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/cache"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/metrics"
)

const rateLimitKeyPrefix = "gocollect:rate-limit:"

// RateLimiter aplica uma janela fixa por IP: INCR no primeiro acesso cria a chave com TTL = period.
// Se o Redis estiver indisponível a requisição segue (fail-open) e a falha é registrada.
func RateLimiter(client cache.Client, limit int, period time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := rateLimitKeyPrefix + clientIP(r)
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limiter indisponível; requisição liberada", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, period); err != nil {
					log.Warn("Falha ao definir TTL do rate limiter", map[string]interface{}{"error": err.Error()})
				}
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > limit {
				retryAfter := period
				if ttl, err := client.TTL(ctx, key); err == nil && ttl > 0 {
					retryAfter = ttl
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
				metrics.RateLimitedTotal.Inc()
				response.Error(w, r, log, &apperror.LimitExceededError{
					Msg:   fmt.Sprintf("limite de %d requisições por %s atingido.", limit, period),
					Limit: limit,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
