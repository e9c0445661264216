package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/nasirisan/AirlinePro-sub000/internal/config"
)

// captureWriter tees the response body so a successful reply can be
// stored in Redis after it has been sent to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 || cw.size < cw.limit {
		remain := cw.limit - cw.size
		if cw.limit <= 0 || int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// cachedResponse is the envelope stored in Redis.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// cacheKeyFrom builds a stable key from the configured strategy.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	parts := []string{}
	switch strings.ToLower(cfg.KeyStrategy) {
	case "route":
		parts = append(parts, "route", c.Path())
	case "method_route":
		parts = append(parts, "method", r.Method, "route", c.Path())
	default: // "route_query"
		parts = append(parts, "route", c.Path(), "q", r.URL.RawQuery)
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// NewRedisCache caches successful responses on the public browse
// endpoints.  Seat availability is time-sensitive, so the TTL is kept
// short (see config.LoadCacheConfig); hits carry an X-Cache header.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKeyFrom(cfg, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cr cachedResponse
				if json.Unmarshal(bs, &cr) == nil {
					if cr.ContentType != "" {
						c.Response().Header().Set(echo.HeaderContentType, cr.ContentType)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(cr.Status)
					_, werr := c.Response().Write(cr.Body)
					return werr
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: int64(cfg.MaxBodyBytes)}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK {
				payload, err := json.Marshal(cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				})
				if err == nil {
					_ = rdb.SetEx(context.Background(), key, payload, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}
