package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/models"
)

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return false
	}
	return true
}

// intakeError reports an upload or text problem with its user-facing message
func intakeError(c *gin.Context, err error) {
	var extractErr *intake.ExtractionError
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, intake.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, intake.ErrUnsupportedFormat):
		status = http.StatusUnsupportedMediaType
	case errors.As(err, &extractErr):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, models.ErrorResponse{
		Error: intake.UserMessage(err),
		Code:  status,
	})
}

func isStateError(err error) bool {
	return errors.Is(err, agent.ErrAnalysisInProgress) ||
		errors.Is(err, agent.ErrInvalidTransition) ||
		errors.Is(err, agent.ErrNoInput) ||
		errors.Is(err, agent.ErrUnknownMatch)
}

// stateError reports an event the session rejected
func stateError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Failed to update session"
	switch {
	case errors.Is(err, agent.ErrAnalysisInProgress):
		status, msg = http.StatusConflict, "Analysis already in progress"
	case errors.Is(err, agent.ErrNoInput):
		status, msg = http.StatusBadRequest, intake.UserMessage(intake.ErrEmptyInput)
	case errors.Is(err, agent.ErrUnknownMatch):
		status, msg = http.StatusNotFound, "Match not found"
	case errors.Is(err, agent.ErrInvalidTransition):
		status, msg = http.StatusConflict, "Action not allowed in the current state"
	}
	c.JSON(status, models.ErrorResponse{
		Error:   msg,
		Code:    status,
		Details: err.Error(),
	})
}
