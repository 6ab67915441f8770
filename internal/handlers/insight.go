package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/constants"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/dto"
	apperrors "github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/errors"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/services"
)

type InsightHandler struct {
	insights *services.InsightService
}

func NewInsightHandler(insights *services.InsightService) *InsightHandler {
	return &InsightHandler{insights: insights}
}

// Summarize returns a status report for a project's task list. A project
// without tasks gets a canned message, not an error.
func (h *InsightHandler) Summarize(c *gin.Context) {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return
	}

	summary, err := h.insights.Summarize(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apperrors.NotFound(c, "Project not found")
			return
		}
		logrus.WithError(err).Error("failed to generate summary")
		apperrors.InternalError(c, "Unable to generate summary at this time. Please try again.")
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{Summary: summary})
}

// Ask answers a free-text question about a project's task list
func (h *InsightHandler) Ask(c *gin.Context) {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return
	}

	type AskRequest struct {
		Question string `json:"question"`
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Please provide a question")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		apperrors.BadRequest(c, "Please provide a question")
		return
	}
	if len(question) > constants.MaxQuestionLength {
		apperrors.BadRequest(c, "Question is too long")
		return
	}

	answer, err := h.insights.Ask(c.Request.Context(), projectID, question)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apperrors.NotFound(c, "Project not found")
			return
		}
		logrus.WithError(err).Error("failed to answer question")
		apperrors.InternalError(c, "Unable to process your question at this time. Please try again.")
		return
	}

	c.JSON(http.StatusOK, dto.AnswerResponse{Question: question, Answer: answer})
}
