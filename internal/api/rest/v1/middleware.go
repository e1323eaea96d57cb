package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RequestIDHeader is the header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Bounds for the per-client limiter cache.
const (
	limiterCacheSize = 1024
	limiterCacheTTL  = 10 * time.Minute
)

// RequestID attaches a correlation id to every request, echoing an incoming
// id when the caller supplied one.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set("request_id", requestID)
		ctx.Writer.Header().Set(RequestIDHeader, requestID)
		ctx.Next()
	}
}

// RateLimit enforces a per-client request budget with a token bucket per
// client IP. Limiters for idle clients expire from the cache. A non-positive
// budget disables limiting.
func RateLimit(requestsPerMin int) gin.HandlerFunc {
	if requestsPerMin <= 0 {
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL)
	limit := rate.Limit(float64(requestsPerMin) / 60.0)

	return func(ctx *gin.Context) {
		key := ctx.ClientIP()

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, requestsPerMin)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Message: "rate limit exceeded",
			})
			return
		}

		ctx.Next()
	}
}
