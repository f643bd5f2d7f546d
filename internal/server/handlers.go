package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promptdeck/promptdeck-cli/internal/httperr"
	"github.com/promptdeck/promptdeck-cli/internal/store"
	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// PromptRequest is the body for create and update calls.
type PromptRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

func (r PromptRequest) draft() models.Draft {
	return models.Draft{
		Name:        r.Name,
		Description: r.Description,
		Content:     r.Content,
	}
}

func writeError(c *gin.Context, err *httperr.Error) {
	c.JSON(err.HTTPStatus, err)
}

// GET /api/v1/prompts
func (s *Server) listPrompts(c *gin.Context) {
	prompts, err := s.store.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list prompts", zap.Error(err))
		writeError(c, httperr.Internal("failed to list prompts", err))
		return
	}
	if prompts == nil {
		prompts = []models.Prompt{}
	}
	c.JSON(http.StatusOK, prompts)
}

// POST /api/v1/prompts
func (s *Server) createPrompt(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httperr.BadRequest("invalid request body"))
		return
	}
	draft := req.draft()
	if err := draft.Validate(); err != nil {
		writeError(c, httperr.BadRequest(err.Error()))
		return
	}

	prompt, err := s.store.Create(c.Request.Context(), draft)
	if err != nil {
		s.logger.Error("failed to create prompt", zap.Error(err))
		writeError(c, httperr.Internal("failed to create prompt", err))
		return
	}
	c.JSON(http.StatusCreated, prompt)
}

// PUT /api/v1/prompts/:id
func (s *Server) updatePrompt(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httperr.BadRequest("invalid request body"))
		return
	}
	draft := req.draft()
	if err := draft.Validate(); err != nil {
		writeError(c, httperr.BadRequest(err.Error()))
		return
	}

	prompt, err := s.store.Update(c.Request.Context(), id, draft)
	if errors.Is(err, store.ErrNotFound) {
		writeError(c, httperr.NotFound("prompt", id))
		return
	}
	if err != nil {
		s.logger.Error("failed to update prompt", zap.Int64("id", id), zap.Error(err))
		writeError(c, httperr.Internal("failed to update prompt", err))
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// DELETE /api/v1/prompts/:id
func (s *Server) deletePrompt(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}
	err := s.store.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(c, httperr.NotFound("prompt", id))
		return
	}
	if err != nil {
		s.logger.Error("failed to delete prompt", zap.Int64("id", id), zap.Error(err))
		writeError(c, httperr.Internal("failed to delete prompt", err))
		return
	}
	c.Status(http.StatusNoContent)
}

func promptID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, httperr.BadRequest("id must be a positive integer"))
		return 0, false
	}
	return id, true
}
