// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/user"
)

// PurchaseRequest is the model entity for the PurchaseRequest schema.
type PurchaseRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// RequesterID holds the value of the "requester_id" field.
	RequesterID string `json:"requester_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// Status holds the value of the "status" field.
	Status purchaserequest.Status `json:"status,omitempty"`
	// RequiredLevels holds the value of the "required_levels" field.
	RequiredLevels int `json:"required_levels,omitempty"`
	// LastLevel holds the value of the "last_level" field.
	LastLevel int `json:"last_level,omitempty"`
	// ProformaInvoice holds the value of the "proforma_invoice" field.
	ProformaInvoice string `json:"proforma_invoice,omitempty"`
	// PurchaseOrder holds the value of the "purchase_order" field.
	PurchaseOrder string `json:"purchase_order,omitempty"`
	// Receipt holds the value of the "receipt" field.
	Receipt string `json:"receipt,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PurchaseRequestQuery when eager-loading is set.
	Edges        PurchaseRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PurchaseRequestEdges holds the relations/edges for other nodes in the graph.
type PurchaseRequestEdges struct {
	// Requester holds the value of the requester edge.
	Requester *User `json:"requester,omitempty"`
	// Items holds the value of the items edge.
	Items []*RequestItem `json:"items,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*ApprovalStep `json:"steps,omitempty"`
	// FinanceNotes holds the value of the finance_notes edge.
	FinanceNotes []*FinanceNote `json:"finance_notes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// RequesterOrErr returns the Requester value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PurchaseRequestEdges) RequesterOrErr() (*User, error) {
	if e.Requester != nil {
		return e.Requester, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "requester"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e PurchaseRequestEdges) ItemsOrErr() ([]*RequestItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e PurchaseRequestEdges) StepsOrErr() ([]*ApprovalStep, error) {
	if e.loadedTypes[2] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// FinanceNotesOrErr returns the FinanceNotes value or an error if the edge
// was not loaded in eager-loading.
func (e PurchaseRequestEdges) FinanceNotesOrErr() ([]*FinanceNote, error) {
	if e.loadedTypes[3] {
		return e.FinanceNotes, nil
	}
	return nil, &NotLoadedError{edge: "finance_notes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PurchaseRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case purchaserequest.FieldAmount:
			values[i] = new(decimal.Decimal)
		case purchaserequest.FieldRequiredLevels, purchaserequest.FieldLastLevel:
			values[i] = new(sql.NullInt64)
		case purchaserequest.FieldID, purchaserequest.FieldRequesterID, purchaserequest.FieldTitle, purchaserequest.FieldDescription, purchaserequest.FieldStatus, purchaserequest.FieldProformaInvoice, purchaserequest.FieldPurchaseOrder, purchaserequest.FieldReceipt:
			values[i] = new(sql.NullString)
		case purchaserequest.FieldCreatedAt, purchaserequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PurchaseRequest fields.
func (_m *PurchaseRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case purchaserequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case purchaserequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case purchaserequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case purchaserequest.FieldRequesterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_id", values[i])
			} else if value.Valid {
				_m.RequesterID = value.String
			}
		case purchaserequest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case purchaserequest.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case purchaserequest.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				_m.Amount = *value
			}
		case purchaserequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = purchaserequest.Status(value.String)
			}
		case purchaserequest.FieldRequiredLevels:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_levels", values[i])
			} else if value.Valid {
				_m.RequiredLevels = int(value.Int64)
			}
		case purchaserequest.FieldLastLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_level", values[i])
			} else if value.Valid {
				_m.LastLevel = int(value.Int64)
			}
		case purchaserequest.FieldProformaInvoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proforma_invoice", values[i])
			} else if value.Valid {
				_m.ProformaInvoice = value.String
			}
		case purchaserequest.FieldPurchaseOrder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_order", values[i])
			} else if value.Valid {
				_m.PurchaseOrder = value.String
			}
		case purchaserequest.FieldReceipt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field receipt", values[i])
			} else if value.Valid {
				_m.Receipt = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PurchaseRequest.
// This includes values selected through modifiers, order, etc.
func (_m *PurchaseRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequester queries the "requester" edge of the PurchaseRequest entity.
func (_m *PurchaseRequest) QueryRequester() *UserQuery {
	return NewPurchaseRequestClient(_m.config).QueryRequester(_m)
}

// QueryItems queries the "items" edge of the PurchaseRequest entity.
func (_m *PurchaseRequest) QueryItems() *RequestItemQuery {
	return NewPurchaseRequestClient(_m.config).QueryItems(_m)
}

// QuerySteps queries the "steps" edge of the PurchaseRequest entity.
func (_m *PurchaseRequest) QuerySteps() *ApprovalStepQuery {
	return NewPurchaseRequestClient(_m.config).QuerySteps(_m)
}

// QueryFinanceNotes queries the "finance_notes" edge of the PurchaseRequest entity.
func (_m *PurchaseRequest) QueryFinanceNotes() *FinanceNoteQuery {
	return NewPurchaseRequestClient(_m.config).QueryFinanceNotes(_m)
}

// Update returns a builder for updating this PurchaseRequest.
// Note that you need to call PurchaseRequest.Unwrap() before calling this method if this PurchaseRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PurchaseRequest) Update() *PurchaseRequestUpdateOne {
	return NewPurchaseRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PurchaseRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PurchaseRequest) Unwrap() *PurchaseRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PurchaseRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PurchaseRequest) String() string {
	var builder strings.Builder
	builder.WriteString("PurchaseRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("requester_id=")
	builder.WriteString(_m.RequesterID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("required_levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredLevels))
	builder.WriteString(", ")
	builder.WriteString("last_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastLevel))
	builder.WriteString(", ")
	builder.WriteString("proforma_invoice=")
	builder.WriteString(_m.ProformaInvoice)
	builder.WriteString(", ")
	builder.WriteString("purchase_order=")
	builder.WriteString(_m.PurchaseOrder)
	builder.WriteString(", ")
	builder.WriteString("receipt=")
	builder.WriteString(_m.Receipt)
	builder.WriteByte(')')
	return builder.String()
}

// PurchaseRequests is a parsable slice of PurchaseRequest.
type PurchaseRequests []*PurchaseRequest
