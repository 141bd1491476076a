package middleware

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"pokereview/pkg/metrics"
)

type CacheConfig struct {
	TTL     time.Duration
	Enabled bool
}

// ResponseCache memoizes successful GET responses per path for a short
// TTL. Mutations are never cached, so staleness is bounded by the TTL.
type ResponseCache struct {
	cache   *cache.Cache
	config  map[string]CacheConfig
	metrics *metrics.AppMetrics
}

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Timestamp   time.Time
}

func NewResponseCache(appMetrics *metrics.AppMetrics) *ResponseCache {
	configs := map[string]CacheConfig{
		"/categories": {TTL: 3 * time.Second, Enabled: true},
		"/countries":  {TTL: 3 * time.Second, Enabled: true},
		"/pokemon":    {TTL: 3 * time.Second, Enabled: true},
		"default":     {TTL: time.Second, Enabled: false},
	}

	return &ResponseCache{
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		config:  configs,
		metrics: appMetrics,
	}
}

func (rc *ResponseCache) SetConfig(path string, config CacheConfig) {
	rc.config[path] = config
}

func (rc *ResponseCache) CacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		config, exists := rc.config[path]

		if !exists {
			config = rc.config["default"]
		}

		if !config.Enabled {
			c.Next()
			return
		}

		cacheKey := rc.generateCacheKey(c, path)

		if entry, found := rc.cache.Get(cacheKey); found {
			cached := entry.(cachedResponse)

			if time.Since(cached.Timestamp) < config.TTL {
				if rc.metrics != nil {
					rc.metrics.RecordCacheHit(c.Request.Context(), path)
				}

				c.Header("X-Cache", "HIT")
				c.Header("X-Cache-Age", fmt.Sprintf("%.0f", time.Since(cached.Timestamp).Seconds()))
				c.Data(cached.StatusCode, cached.ContentType, cached.Body)
				c.Abort()
				return
			}

			rc.cache.Delete(cacheKey)
		}

		if rc.metrics != nil {
			rc.metrics.RecordCacheMiss(c.Request.Context(), path)
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Header("X-Cache", "MISS")
		c.Next()

		if writer.Status() == 200 {
			rc.cache.Set(cacheKey, cachedResponse{
				StatusCode:  writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
				Timestamp:   time.Now(),
			}, config.TTL)
		}
	}
}

func (rc *ResponseCache) generateCacheKey(c *gin.Context, path string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(path+"?"+c.Request.URL.RawQuery)))
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
