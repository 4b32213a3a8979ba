package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"procureflow.io/procureflow/internal/api/middleware"
	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// CreateStep handles POST /requests/{request_id}/steps.
//
// The caller supplies only the decision; the level is assigned server-side
// and the request status is recomputed in the same transaction.
func (s *Server) CreateStep(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	approverID := middleware.GetUserID(ctx)

	var input DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return
	}

	decision := domain.Decision(input.Decision)
	if !decision.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    apperrors.CodeValidationFailed,
			Message: "decision must be APPROVED or REJECTED",
		})
		return
	}

	result, err := s.gateway.Decide(ctx, requestID, approverID, decision, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             result.StepID,
		"request_id":     result.RequestID,
		"level":          result.Level,
		"decision":       string(result.Decision),
		"request_status": string(result.RequestStatus),
	})
}

// ApproveRequest handles POST /requests/{request_id}/approve.
//
// Shortcut for recording an APPROVED step; the body carries an optional
// comment and may be omitted entirely.
func (s *Server) ApproveRequest(c *gin.Context) {
	s.recordDecision(c, domain.DecisionApproved)
}

// RejectRequest handles POST /requests/{request_id}/reject.
func (s *Server) RejectRequest(c *gin.Context) {
	s.recordDecision(c, domain.DecisionRejected)
}

func (s *Server) recordDecision(c *gin.Context, decision domain.Decision) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	approverID := middleware.GetUserID(ctx)

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return
	}

	result, err := s.gateway.Decide(ctx, requestID, approverID, decision, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             result.StepID,
		"request_id":     result.RequestID,
		"level":          result.Level,
		"decision":       string(result.Decision),
		"request_status": string(result.RequestStatus),
	})
}

// DeleteStep handles DELETE /steps/{step_id} — admin correction.
//
// Bypasses the edit guard: removing the rejecting step of a REJECTED request
// returns the request to whatever the remaining decisions resolve to.
func (s *Server) DeleteStep(c *gin.Context) {
	ctx := c.Request.Context()
	stepID := c.Param("step_id")
	actorID := middleware.GetUserID(ctx)

	result, err := s.gateway.RemoveStep(ctx, stepID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id":     result.RequestID,
		"request_status": string(result.RequestStatus),
	})
}
