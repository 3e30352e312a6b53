package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/engine"
	"github.com/oghanim/triviarena/internal/export"
	"github.com/oghanim/triviarena/internal/service"
	"github.com/oghanim/triviarena/internal/version"
)

// GetSession returns the full session state plus the derived display
// countdown for the open question, if any.
func (h *SessionHandler) GetSession(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":             s,
		"countdown_remaining": engine.CountdownRemaining(s.QuestionOpenedAt, time.Now()),
	})
}

// Rankings returns the participants ordered by score, highest first.
func (h *SessionHandler) Rankings(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rankings": service.Rankings(s)})
}

// Export serializes the approved question set. ?format=json (default)
// or ?format=text.
func (h *SessionHandler) Export(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	format := export.Format(c.DefaultQuery("format", string(export.FormatJSON)))
	body, err := export.Questions(s.ApprovedQuestions(), format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		return
	}

	filename := export.Filename(format, time.Now().Format("2006-01-02"))
	c.Header(constants.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	contentType := constants.ContentTypeJSON
	if format == export.FormatText {
		contentType = constants.ContentTypeText
	}
	c.Data(http.StatusOK, contentType, body)
}

// Version returns build metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
