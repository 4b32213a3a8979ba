package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/internal/api/middleware"
	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/pkg/logger"
)

// AttachArtifacts handles PATCH /requests/{request_id}/artifacts.
//
// Finance-only: attaches purchase_order and/or receipt references to an
// APPROVED request. All other fields stay frozen.
func (s *Server) AttachArtifacts(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	actorID := middleware.GetUserID(ctx)
	role := domain.Role(middleware.GetUserRole(ctx))

	var input ArtifactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return
	}

	result, err := s.gateway.Attach(ctx, requestID, actorID, role, input.PurchaseOrder, input.Receipt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     result.ID,
		"status": string(result.Status),
	})
}

// CreateFinanceNote handles POST /requests/{request_id}/finance-notes.
func (s *Server) CreateFinanceNote(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	authorID := middleware.GetUserID(ctx)

	var input FinanceNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return
	}

	// Notes attach to approved requests only, same as artifacts.
	r, err := s.client.PurchaseRequest.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: apperrors.CodeRequestNotFound})
			return
		}
		logger.Error("failed to get request for finance note", zap.Error(err), zap.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}
	if r.Status != purchaserequest.StatusAPPROVED {
		respondError(c, apperrors.EditLocked("finance notes may only be added to approved requests"))
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		logger.Error("failed to generate finance note id", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	note, err := s.client.FinanceNote.Create().
		SetID(id.String()).
		SetRequestID(requestID).
		SetAuthorID(authorID).
		SetNote(input.Note).
		Save(ctx)
	if err != nil {
		logger.Error("failed to create finance note", zap.Error(err), zap.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		_ = s.audit.LogRequestMutation(ctx, "finance_note_added", requestID, authorID)
	}

	c.JSON(http.StatusCreated, financeNoteToAPI(note))
}

// UpdateFinanceNote handles PUT /requests/{request_id}/finance-notes/{note_id}.
//
// Only the author may rewrite a note; admins may correct any note.
func (s *Server) UpdateFinanceNote(c *gin.Context) {
	ctx := c.Request.Context()
	actorID := middleware.GetUserID(ctx)
	role := domain.Role(middleware.GetUserRole(ctx))

	var input FinanceNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return
	}

	note, ok := s.findFinanceNote(c)
	if !ok {
		return
	}
	if note.AuthorID != actorID && role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    apperrors.CodeValidationFailed,
			Message: "finance notes may only be edited by their author",
		})
		return
	}

	updated, err := note.Update().SetNote(input.Note).Save(ctx)
	if err != nil {
		logger.Error("failed to update finance note", zap.Error(err), zap.String("note_id", note.ID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		_ = s.audit.LogRequestMutation(ctx, "finance_note_updated", note.RequestID, actorID)
	}

	c.JSON(http.StatusOK, financeNoteToAPI(updated))
}

// DeleteFinanceNote handles DELETE /requests/{request_id}/finance-notes/{note_id}.
func (s *Server) DeleteFinanceNote(c *gin.Context) {
	ctx := c.Request.Context()
	actorID := middleware.GetUserID(ctx)
	role := domain.Role(middleware.GetUserRole(ctx))

	note, ok := s.findFinanceNote(c)
	if !ok {
		return
	}
	if note.AuthorID != actorID && role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    apperrors.CodeValidationFailed,
			Message: "finance notes may only be deleted by their author",
		})
		return
	}

	if err := s.client.FinanceNote.DeleteOne(note).Exec(ctx); err != nil {
		logger.Error("failed to delete finance note", zap.Error(err), zap.String("note_id", note.ID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		_ = s.audit.LogRequestMutation(ctx, "finance_note_deleted", note.RequestID, actorID)
	}

	c.Status(http.StatusNoContent)
}

// findFinanceNote loads the note addressed by the route, scoped to the
// request in the path so note IDs cannot be guessed across requests.
func (s *Server) findFinanceNote(c *gin.Context) (*ent.FinanceNote, bool) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	noteID := c.Param("note_id")

	note, err := s.client.FinanceNote.Query().
		Where(financenote.IDEQ(noteID), financenote.RequestIDEQ(requestID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: apperrors.CodeNoteNotFound})
			return nil, false
		}
		logger.Error("failed to get finance note", zap.Error(err), zap.String("note_id", noteID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return nil, false
	}
	return note, true
}

// ListFinanceNotes handles GET /requests/{request_id}/finance-notes.
func (s *Server) ListFinanceNotes(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")

	notes, err := s.client.FinanceNote.Query().
		Where(financenote.RequestIDEQ(requestID)).
		Order(ent.Asc(financenote.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list finance notes", zap.Error(err), zap.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]FinanceNoteView, 0, len(notes))
	for _, n := range notes {
		items = append(items, financeNoteToAPI(n))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
