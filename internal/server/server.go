package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// RecommendFunc runs the full recommendation pipeline for one raw query.
type RecommendFunc func(ctx context.Context, rawText string) (*engine.RecommendationResponse, error)

// Handler serves the recommendation API over HTTP. Both renderings of the
// response (JSON and plain text) go through the same pipeline call and
// differ only at the formatting step.
type Handler struct {
	recommend RecommendFunc
	ready     func() bool
}

// NewHandler creates the handler around its pipeline dependency. ready
// reports whether the extraction backend was initialized at startup.
func NewHandler(recommend RecommendFunc, ready func() bool) *Handler {
	return &Handler{recommend: recommend, ready: ready}
}

// NewRouter builds the gin engine: permissive CORS, request ids, recovery,
// and the API routes.
func NewRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLog())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	r.Use(cors.New(config))

	r.GET("/", h.Banner)
	r.GET("/health", h.Health)
	r.GET("/metrics", h.Metrics)
	r.GET("/favicon.ico", h.Favicon)
	r.POST("/recommend", h.Recommend)
	r.POST("/recommend/text", h.RecommendText)
	return r
}

// requestLog tags every request with a uuid, echoes it in X-Request-ID and
// logs one line per request.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Header("X-Request-ID", id)
		start := time.Now()
		c.Next()
		slog.Info("http: request",
			slog.String("id", id),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

type recommendRequest struct {
	Query string `json:"query" binding:"required"`
}

// Recommend is the POST /recommend endpoint: structured JSON response.
func (h *Handler) Recommend(c *gin.Context) {
	resp, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecommendText is the POST /recommend/text endpoint: the same pipeline,
// rendered as plain text.
func (h *Handler) RecommendText(c *gin.Context) {
	resp, ok := h.run(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, engine.FormatText(resp))
}

// run binds the request and executes the pipeline. On failure it writes
// the error response and reports ok=false.
func (h *Handler) run(c *gin.Context) (*engine.RecommendationResponse, bool) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return nil, false
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return nil, false
	}

	resp, err := h.recommend(c.Request.Context(), req.Query)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, engine.ErrNotReady) {
			status = http.StatusServiceUnavailable
		}
		slog.Error("recommend: pipeline failed", slog.Any("error", err))
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return resp, true
}

// Health is the GET /health endpoint. ready=false means the extraction
// backend never came up and every recommendation will fail fast.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ready": h.ready()})
}

// Metrics is the GET /metrics endpoint: engine counters as plain text.
func (h *Handler) Metrics(c *gin.Context) {
	c.String(http.StatusOK, engine.FormatMetrics())
}

// Favicon answers browsers with 204 instead of a logged 404.
func (h *Handler) Favicon(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

const banner = `go_rojgar: natural-language job recommendations

POST /recommend        structured JSON response
POST /recommend/text   plain-text response
GET  /health           readiness
GET  /metrics          counters
`

// Banner answers GET / with a short service description.
func (h *Handler) Banner(c *gin.Context) {
	c.String(http.StatusOK, banner)
}
