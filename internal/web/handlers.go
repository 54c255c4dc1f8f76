package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/report"
	"github.com/HugeFrog24/cefs-video-grader/internal/store"
	"github.com/HugeFrog24/cefs-video-grader/internal/workflow"
)

type runRequest struct {
	Video      string `json:"video" binding:"required"`
	Fardamento string `json:"fardamento" binding:"required"`
	Leitura    *int   `json:"leitura" binding:"required"`
}

func (s *Server) healthCheck(c *gin.Context) {
	success(c, gin.H{
		"status":  "ok",
		"service": "avaliador-cefs",
	})
}

func (s *Server) listVideos(c *gin.Context) {
	videos, err := s.videos.List()
	if err != nil {
		s.log.Error(c.Request.Context(), "Failed to list videos: %v", err)
		failure(c, http.StatusInternalServerError, "failed to list videos")
		return
	}
	if videos == nil {
		videos = []domain.VideoAsset{}
	}
	success(c, gin.H{"videos": videos})
}

// startRun blocks until the run finishes. A failed run still returns its
// report so the client can show which stage broke. A stage that started is
// never cancelled, so the run outlives a dropped connection.
func (s *Server) startRun(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())

	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	fardamento, err := domain.ParseFardamento(req.Fardamento)
	if err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.videos.Get(req.Video); err != nil {
		failure(c, statusFor(err), err.Error())
		return
	}

	rep, err := s.runner.Run(ctx, workflow.Input{
		Video:      req.Video,
		Fardamento: fardamento,
		Leitura:    domain.Leitura(*req.Leitura),
	})
	if errors.Is(err, workflow.ErrBusy) {
		failure(c, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		c.JSON(statusFor(err), gin.H{
			"success": false,
			"error":   err.Error(),
			"data":    gin.H{"report": rep},
		})
		return
	}
	success(c, gin.H{"report": rep})
}

func (s *Server) currentRun(c *gin.Context) {
	state := s.runner.State()
	success(c, gin.H{
		"state":   state,
		"running": state.InFlight(),
		"message": state.Message(),
	})
}

func (s *Server) listResults(c *gin.Context) {
	history, err := s.results.List()
	if err != nil {
		s.log.Error(c.Request.Context(), "Failed to list results: %v", err)
		failure(c, http.StatusInternalServerError, "failed to list results")
		return
	}
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	success(c, gin.H{"results": history})
}

func (s *Server) getResult(c *gin.Context) {
	name := c.Param("name")
	text, err := s.results.Load(name)
	if err != nil {
		failure(c, statusFor(err), err.Error())
		return
	}
	data := gin.H{"name": name, "text": text}
	if sections := report.ParseSections(text); sections != nil {
		data["sections"] = sections
	}
	success(c, data)
}

func (s *Server) downloadResult(c *gin.Context) {
	name := resultName(c.Param("name"))
	format := c.DefaultQuery("format", "txt")

	switch format {
	case "txt", "md":
		ext := store.ResultExt
		if format == "md" {
			ext = store.MarkdownExt
		}
		path, err := s.results.Path(name, ext)
		if err != nil {
			failure(c, statusFor(err), err.Error())
			return
		}
		c.FileAttachment(path, name+ext)
	case "docx":
		s.downloadDocx(c, name)
	default:
		failure(c, http.StatusBadRequest, "format must be txt, md or docx")
	}
}

func (s *Server) downloadDocx(c *gin.Context, name string) {
	ctx := c.Request.Context()

	text, err := s.results.Load(name)
	if err != nil {
		failure(c, statusFor(err), err.Error())
		return
	}

	tmp, err := os.CreateTemp("", "avaliador-*.docx")
	if err != nil {
		s.log.Error(ctx, "Failed to create temp file: %v", err)
		failure(c, http.StatusInternalServerError, "failed to render docx")
		return
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := report.WriteDocx(name, text, tmp.Name()); err != nil {
		s.log.Error(ctx, "Failed to render %s as docx: %v", name, err)
		failure(c, http.StatusInternalServerError, "failed to render docx")
		return
	}
	c.FileAttachment(tmp.Name(), name+".docx")
}

func resultName(name string) string {
	for _, ext := range []string{store.ResultExt, store.MarkdownExt} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
