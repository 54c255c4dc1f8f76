// Package web exposes the grader over HTTP for the browser interface.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
	"github.com/HugeFrog24/cefs-video-grader/internal/store"
	"github.com/HugeFrog24/cefs-video-grader/internal/workflow"
)

// Runner is satisfied by *workflow.Orchestrator.
type Runner interface {
	Run(ctx context.Context, in workflow.Input) (*workflow.Report, error)
	State() workflow.State
}

// Results is the read side of the result store.
type Results interface {
	List() ([]domain.HistoryEntry, error)
	Load(name string) (string, error)
	Path(name, ext string) (string, error)
}

type Server struct {
	runner  Runner
	videos  store.VideoRepository
	results Results
	metrics http.Handler
	log     logger.Logger
}

// New builds a Server. metrics may be nil, in which case /metrics is not served.
func New(runner Runner, videos store.VideoRepository, results Results, metrics http.Handler, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		runner:  runner,
		videos:  videos,
		results: results,
		metrics: metrics,
		log:     log,
	}
}

// Handler returns the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	s.RegisterRoutes(r)
	return r
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.healthCheck)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}

	api := r.Group("/api")
	{
		api.GET("/videos", s.listVideos)
		api.POST("/runs", s.startRun)
		api.GET("/runs/current", s.currentRun)
		api.GET("/results", s.listResults)
		api.GET("/results/:name", s.getResult)
		api.GET("/results/:name/download", s.downloadResult)
	}
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info(ctx, "Shutting down HTTP server")
		return srv.Shutdown(context.Background())
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Debug(c.Request.Context(), "%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
