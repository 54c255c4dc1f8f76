package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func failure(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}

// statusFor maps an error kind to the HTTP status reported to the client.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindStorageNotFound:
		return http.StatusNotFound
	case domain.KindExtraction, domain.KindTranscription, domain.KindEvaluation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
