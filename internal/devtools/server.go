package devtools

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/priyanka857/Major-Project-1/internal/store"
)

const headerRequestID = "X-Request-ID"

// NewServer builds the inspection router. It is read-only: nothing it serves
// can dispatch into the store.
func NewServer[S any](st *store.Store[S], rec *Recorder, log *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), logger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/state", func(c *gin.Context) {
		c.JSON(200, st.GetState())
	})

	r.GET("/actions", func(c *gin.Context) {
		c.JSON(200, rec.Entries())
	})

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set(headerRequestID, rid)
		c.Next()
	}
}

func logger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		l.LogAttrs(c.Request.Context(), level, "devtools_request",
			slog.String("request_id", c.GetString("request_id")),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
