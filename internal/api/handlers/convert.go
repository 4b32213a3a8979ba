package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"procureflow.io/procureflow/ent"
)

// API response and request types. Amounts are serialized as decimal strings
// to keep "10.50" exact on the wire.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// Pagination describes a page of a list response.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ItemInput is a request item in a create/update payload.
type ItemInput struct {
	Name      string `json:"name" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	UnitPrice string `json:"unit_price" binding:"required"`
}

// CreateRequestInput is the payload for POST /requests.
type CreateRequestInput struct {
	Title           string      `json:"title" binding:"required"`
	Description     string      `json:"description"`
	ProformaInvoice string      `json:"proforma_invoice"`
	Items           []ItemInput `json:"items" binding:"required,min=1"`
}

// UpdateItemsInput is the payload for PUT /requests/{id}/items.
type UpdateItemsInput struct {
	Items []ItemInput `json:"items" binding:"required,min=1"`
}

// DecisionInput is the payload for POST /requests/{id}/steps.
type DecisionInput struct {
	Decision string `json:"decision" binding:"required"`
	Comment  string `json:"comment"`
}

// CommentInput is the optional payload for the approve/reject shortcuts.
type CommentInput struct {
	Comment string `json:"comment"`
}

// ArtifactInput is the payload for PATCH /requests/{id}/artifacts.
type ArtifactInput struct {
	PurchaseOrder string `json:"purchase_order"`
	Receipt       string `json:"receipt"`
}

// FinanceNoteInput is the payload for POST /requests/{id}/finance-notes.
type FinanceNoteInput struct {
	Note string `json:"note" binding:"required"`
}

// PolicyInput is the payload for policy create/update.
type PolicyInput struct {
	Title          string `json:"title" binding:"required"`
	MinAmount      string `json:"min_amount" binding:"required"`
	MaxAmount      string `json:"max_amount" binding:"required"`
	RequiredLevels int    `json:"required_levels" binding:"required,min=1"`
	Active         *bool  `json:"active"`
}

// LoginInput is the payload for POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the body for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserInfo describes the authenticated user.
type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// RequestItemView is an item line in a request response.
type RequestItemView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

// ApprovalStepView is an approval step in a request response.
type ApprovalStepView struct {
	ID         string    `json:"id"`
	ApproverID string    `json:"approver_id"`
	Level      int       `json:"level"`
	Decision   string    `json:"decision"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FinanceNoteView is a finance note in a request response.
type FinanceNoteView struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// PurchaseRequestView is the full request representation.
type PurchaseRequestView struct {
	ID              string             `json:"id"`
	RequesterID     string             `json:"requester_id"`
	RequesterName   string             `json:"requester_name,omitempty"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Amount          string             `json:"amount"`
	Status          string             `json:"status"`
	RequiredLevels  int                `json:"required_levels"`
	ApprovedCount   int                `json:"approved_count"`
	ProformaInvoice string             `json:"proforma_invoice,omitempty"`
	PurchaseOrder   string             `json:"purchase_order,omitempty"`
	Receipt         string             `json:"receipt,omitempty"`
	Items           []RequestItemView  `json:"items,omitempty"`
	Steps           []ApprovalStepView `json:"steps,omitempty"`
	FinanceNotes    []FinanceNoteView  `json:"finance_notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// PurchaseRequestList is the body for GET /requests.
type PurchaseRequestList struct {
	Items      []PurchaseRequestView `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

// PolicyView is the policy representation.
type PolicyView struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	MinAmount      string    `json:"min_amount"`
	MaxAmount      string    `json:"max_amount"`
	RequiredLevels int       `json:"required_levels"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationView is the inbox notification representation.
type NotificationView struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationList is the body for GET /notifications.
type NotificationList struct {
	Items      []NotificationView `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

// ---- Converters ----

func requestToAPI(r *ent.PurchaseRequest) PurchaseRequestView {
	view := PurchaseRequestView{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		Title:           r.Title,
		Description:     r.Description,
		Amount:          r.Amount.StringFixed(2),
		Status:          r.Status.String(),
		RequiredLevels:  r.RequiredLevels,
		ProformaInvoice: r.ProformaInvoice,
		PurchaseOrder:   r.PurchaseOrder,
		Receipt:         r.Receipt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Edges.Requester != nil {
		view.RequesterName = r.Edges.Requester.FullName
	}
	for _, item := range r.Edges.Items {
		view.Items = append(view.Items, itemToAPI(item))
	}
	for _, step := range r.Edges.Steps {
		view.Steps = append(view.Steps, stepToAPI(step))
		if step.Decision.String() == "APPROVED" {
			view.ApprovedCount++
		}
	}
	for _, note := range r.Edges.FinanceNotes {
		view.FinanceNotes = append(view.FinanceNotes, financeNoteToAPI(note))
	}
	return view
}

func itemToAPI(i *ent.RequestItem) RequestItemView {
	return RequestItemView{
		ID:         i.ID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice.StringFixed(2),
		TotalPrice: i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).StringFixed(2),
	}
}

func stepToAPI(s *ent.ApprovalStep) ApprovalStepView {
	return ApprovalStepView{
		ID:         s.ID,
		ApproverID: s.ApproverID,
		Level:      s.Level,
		Decision:   s.Decision.String(),
		Comment:    s.Comment,
		CreatedAt:  s.CreatedAt,
	}
}

func financeNoteToAPI(n *ent.FinanceNote) FinanceNoteView {
	return FinanceNoteView{
		ID:        n.ID,
		AuthorID:  n.AuthorID,
		Note:      n.Note,
		CreatedAt: n.CreatedAt,
	}
}

func policyToAPI(p *ent.ApprovalPolicy) PolicyView {
	return PolicyView{
		ID:             p.ID,
		Title:          p.Title,
		MinAmount:      p.MinAmount.StringFixed(2),
		MaxAmount:      p.MaxAmount.StringFixed(2),
		RequiredLevels: p.RequiredLevels,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
	}
}

func notificationToAPI(n *ent.Notification) NotificationView {
	return NotificationView{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		Read:         n.Read,
		CreatedAt:    n.CreatedAt,
	}
}
