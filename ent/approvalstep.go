// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/purchaserequest"
)

// ApprovalStep is the model entity for the ApprovalStep schema.
type ApprovalStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// ApproverID holds the value of the "approver_id" field.
	ApproverID string `json:"approver_id,omitempty"`
	// Level holds the value of the "level" field.
	Level int `json:"level,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision approvalstep.Decision `json:"decision,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovalStepQuery when eager-loading is set.
	Edges        ApprovalStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovalStepEdges holds the relations/edges for other nodes in the graph.
type ApprovalStepEdges struct {
	// Request holds the value of the request edge.
	Request *PurchaseRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovalStepEdges) RequestOrErr() (*PurchaseRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: purchaserequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalstep.FieldLevel:
			values[i] = new(sql.NullInt64)
		case approvalstep.FieldID, approvalstep.FieldRequestID, approvalstep.FieldApproverID, approvalstep.FieldDecision, approvalstep.FieldComment:
			values[i] = new(sql.NullString)
		case approvalstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalStep fields.
func (_m *ApprovalStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalstep.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case approvalstep.FieldApproverID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver_id", values[i])
			} else if value.Valid {
				_m.ApproverID = value.String
			}
		case approvalstep.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case approvalstep.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = approvalstep.Decision(value.String)
			}
		case approvalstep.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalStep.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the ApprovalStep entity.
func (_m *ApprovalStep) QueryRequest() *PurchaseRequestQuery {
	return NewApprovalStepClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this ApprovalStep.
// Note that you need to call ApprovalStep.Unwrap() before calling this method if this ApprovalStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalStep) Update() *ApprovalStepUpdateOne {
	return NewApprovalStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalStep) Unwrap() *ApprovalStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalStep) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("approver_id=")
	builder.WriteString(_m.ApproverID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalSteps is a parsable slice of ApprovalStep.
type ApprovalSteps []*ApprovalStep
