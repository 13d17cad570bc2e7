// Package server exposes the property analyzer over an HTTP API with
// in-memory, per-session property collections.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/propwise/propwise/internal/analysis"
	"github.com/propwise/propwise/internal/session"
	"github.com/propwise/propwise/pkg/constants"
	"github.com/propwise/propwise/pkg/export"
	"github.com/propwise/propwise/pkg/property"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type handler struct {
	logger   *zap.Logger
	store    *session.Store
	analyzer *analysis.Analyzer
	version  string
}

// outcomeResponse is the wire form of one analysis outcome: exactly one of
// Result or Error is set, preserving the input position.
type outcomeResponse struct {
	Result *property.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

type chartResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// NewRouter constructs the gin engine serving the analyzer API.
func NewRouter(logger *zap.Logger, store *session.Store, cfg *Config, version string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = session.NewStore()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:   logger,
		store:    store,
		analyzer: analysis.NewAnalyzer(logger),
		version:  trimmedVersion,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestLogger(logger))
	if cfg != nil && cfg.MaxBodyBytes() > 0 {
		router.Use(limitBodySize(cfg.MaxBodyBytes()))
	}

	api := router.Group("/api")
	{
		api.GET("/version", h.getVersion)
		api.POST("/sessions", h.createSession)
		api.GET("/sessions/:id/properties", h.listProperties)
		api.POST("/sessions/:id/properties", h.addProperty)
		api.GET("/sessions/:id/properties/:index/schedule", h.getSchedule)
		api.GET("/sessions/:id/analysis", h.getAnalysis)
		api.GET("/sessions/:id/chart", h.getChart)
		api.GET("/sessions/:id/export", h.exportSession)
	}

	return router
}

// requestLogger logs each request with method, path, status, and duration.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("handled request",
			zap.String("op", "server.requestLogger"),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// limitBodySize caps request body reads; oversized uploads fail the bind.
func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func (h *handler) getVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

func (h *handler) createSession(c *gin.Context) {
	id, err := h.store.Create()
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.logger.Debug("created session",
		zap.String("op", "server.createSession"),
		zap.String("session", id),
	)
	c.JSON(http.StatusCreated, gin.H{"sessionId": id})
}

func (h *handler) listProperties(c *gin.Context) {
	inputs, err := h.store.Properties(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if inputs == nil {
		inputs = []property.Input{}
	}
	c.JSON(http.StatusOK, gin.H{"properties": inputs})
}

func (h *handler) addProperty(c *gin.Context) {
	var in property.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid property payload: %v", err)})
		return
	}
	if err := in.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	index, err := h.store.Append(c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.logger.Debug(fmt.Sprintf("added property %s at position %d", in.Name, index),
		zap.String("op", "server.addProperty"),
		zap.String("session", c.Param("id")),
	)
	c.JSON(http.StatusCreated, gin.H{"index": index})
}

func (h *handler) getSchedule(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid property index %q", c.Param("index"))})
		return
	}

	in, err := h.store.Property(c.Param("id"), index)
	if err != nil {
		h.respondError(c, err)
		return
	}

	schedule, err := h.analyzer.Schedule(in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": in.Name, "schedule": schedule})
}

func (h *handler) getAnalysis(c *gin.Context) {
	inputs, err := h.store.Properties(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	outcomes := h.analyzer.AnalyzeAll(inputs)
	responses := make([]outcomeResponse, len(outcomes))
	for i, outcome := range outcomes {
		if outcome.Err != nil {
			responses[i] = outcomeResponse{Error: outcome.Err.Error()}
			continue
		}
		responses[i] = outcomeResponse{Result: outcome.Result}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(responses), "outcomes": responses})
}

func (h *handler) getChart(c *gin.Context) {
	inputs, err := h.store.Properties(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	labels, values := analysis.ChartSeries(h.analyzer.AnalyzeAll(inputs))
	if labels == nil {
		labels = []string{}
	}
	if values == nil {
		values = []float64{}
	}
	c.JSON(http.StatusOK, chartResponse{Labels: labels, Values: values})
}

func (h *handler) exportSession(c *gin.Context) {
	inputs, err := h.store.Properties(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	outcomes := h.analyzer.AnalyzeAll(inputs)

	format := c.DefaultQuery("format", constants.ExportFormatCSV)
	var buf bytes.Buffer
	switch format {
	case constants.ExportFormatCSV:
		if err := export.WriteCSV(&buf, inputs, outcomes); err != nil {
			h.respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="propwise_analysis.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	case constants.ExportFormatXLSX:
		if err := export.WriteXLSX(&buf, inputs, outcomes); err != nil {
			h.respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="propwise_analysis.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("expected export format of %s or %s, got %s",
			constants.ExportFormatCSV, constants.ExportFormatXLSX, format)})
	}
}

// respondError maps domain errors to HTTP statuses.
func (h *handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrPropertyNotFound):
		status = http.StatusNotFound
	case errors.Is(err, property.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, property.ErrArithmeticDegenerate):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("op", "server.respondError"),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
