// Package server exposes the download service over a small HTTP API with a
// WebSocket event stream, for driving yt-grabber from a browser or script.
package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/probe"
)

// Prober resolves a URL to a media item or collection
type Prober interface {
	Probe(ctx context.Context, url string) (*model.ProbeResult, error)
}

// Server wires the HTTP handlers to the download service
type Server struct {
	downloads download.Downloader
	prober    Prober
	store     config.Store
	hub       *Hub
	logger    *zap.Logger

	allowedOrigins []string
}

// Option configures a Server
type Option func(*Server)

// WithAllowedOrigins lets browser pages served from origins call the API.
// Same-origin requests are always accepted.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = append(s.allowedOrigins, origins...)
	}
}

// New creates a server and subscribes its event hub to the download service
func New(downloads download.Downloader, prober Prober, store config.Store, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		downloads: downloads,
		prober:    prober,
		store:     store,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = NewHub(logger, s.allowedOrigins)

	downloads.SetUpdateCallback(func(task *model.DownloadTask) {
		s.hub.Broadcast(Event{Type: EventTask, Task: task})
	})
	downloads.SetLineCallback(func(taskID, line string) {
		s.hub.Broadcast(Event{Type: EventLine, TaskID: taskID, Line: line})
	})

	return s
}

// Hub returns the event hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Router builds the gin engine
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.originGuard())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/probe", s.handleProbe)
	api.GET("/qualities", s.handleQualities)

	api.POST("/downloads", s.handleStartDownload)
	api.GET("/downloads", s.handleListDownloads)
	api.GET("/downloads/:id", s.handleGetDownload)
	api.DELETE("/downloads/:id", s.handleStopDownload)

	api.GET("/settings", s.handleGetSettings)
	api.PUT("/settings", s.handlePutSettings)

	r.GET("/ws", func(c *gin.Context) {
		s.hub.Serve(c.Writer, c.Request)
	})

	return r
}

// Handler returns the router wrapped with CORS
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(s.allowedOrigins, origin)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.Router())
}

// originGuard rejects cross-origin browser requests that CORS alone would
// only hide the response of
func (s *Server) originGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !originAllowed(c.Request, s.allowedOrigins) {
			s.logger.Warn("rejected cross-origin request",
				zap.String("origin", c.GetHeader("Origin")),
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "origin not allowed"})
			return
		}
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}

func errorJSON(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) handleHealth(c *gin.Context) {
	_, busy := s.downloads.ActiveTask()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "busy": busy})
}

func (s *Server) handleProbe(c *gin.Context) {
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		errorJSON(c, http.StatusBadRequest, errors.New("url query parameter is required"))
		return
	}

	result, err := s.prober.Probe(c.Request.Context(), url)
	if err != nil {
		var extErr *probe.ExtractionError
		if errors.As(err, &extErr) {
			errorJSON(c, http.StatusUnprocessableEntity, err)
			return
		}
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleQualities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"qualities": download.QualityTiers()})
}

// downloadBody is the payload of POST /api/downloads. A request with URLs
// starts a batch; otherwise URL is downloaded alone. File and Directory are
// resolved against the default download directory and may not leave it.
type downloadBody struct {
	URL       string   `json:"url"`
	URLs      []string `json:"urls"`
	Kind      string   `json:"kind"`
	FormatID  string   `json:"format_id"`
	Quality   string   `json:"quality"`
	File      string   `json:"file"`
	Directory string   `json:"directory"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
}

func (s *Server) handleStartDownload(c *gin.Context) {
	var body downloadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	kind := model.MediaKind(body.Kind)
	if kind == "" {
		kind = model.MediaKindVideo
	}

	root, err := config.ResolveDownloadDirectory(s.store)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	dir := root
	if body.Directory != "" {
		if dir, err = insideDirectory(root, body.Directory); err != nil {
			errorJSON(c, http.StatusBadRequest, err)
			return
		}
	}

	var task *model.DownloadTask
	if len(body.URLs) > 0 {
		if body.FormatID != "" || body.File != "" {
			errorJSON(c, http.StatusBadRequest, errors.New("format_id and file apply to single downloads; use quality and directory for batches"))
			return
		}
		reqs := download.BatchRequests(body.URLs, dir, kind, body.Quality)
		for i := range reqs {
			reqs[i].TrimStart = body.Start
			reqs[i].TrimEnd = body.End
		}
		task, err = s.downloads.StartBatch(reqs)
	} else {
		req := model.DownloadRequest{
			SourceURL:      body.URL,
			Kind:           kind,
			FormatSelector: body.FormatID,
			TrimStart:      body.Start,
			TrimEnd:        body.End,
		}
		if body.File != "" {
			if req.File, err = insideDirectory(root, body.File); err != nil {
				errorJSON(c, http.StatusBadRequest, err)
				return
			}
		} else {
			req.Directory = dir
		}
		task, err = s.downloads.StartSingle(req)
	}

	switch {
	case errors.Is(err, download.ErrTaskInProgress):
		errorJSON(c, http.StatusConflict, err)
	case err != nil:
		errorJSON(c, http.StatusBadRequest, err)
	default:
		c.JSON(http.StatusAccepted, task)
	}
}

func (s *Server) handleListDownloads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": s.downloads.GetAllTasks()})
}

func (s *Server) handleGetDownload(c *gin.Context) {
	task, ok := s.downloads.GetTask(c.Param("id"))
	if !ok {
		errorJSON(c, http.StatusNotFound, download.ErrTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleStopDownload(c *gin.Context) {
	err := s.downloads.StopTask(c.Param("id"))
	switch {
	case errors.Is(err, download.ErrTaskNotFound):
		errorJSON(c, http.StatusNotFound, err)
	case errors.Is(err, download.ErrTaskNotActive):
		errorJSON(c, http.StatusConflict, err)
	case err != nil:
		errorJSON(c, http.StatusInternalServerError, err)
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleGetSettings(c *gin.Context) {
	settings, err := s.store.Load()
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) handlePutSettings(c *gin.Context) {
	var body config.Settings
	if err := c.ShouldBindJSON(&body); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	if err := config.SetDefaultDirectory(s.store, body.DefaultDirectory); err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	settings, err := s.store.Load()
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("settings updated", zap.String("default_directory", settings.DefaultDirectory))
	c.JSON(http.StatusOK, settings)
}
