// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/approvalpolicy"
)

// ApprovalPolicy is the model entity for the ApprovalPolicy schema.
type ApprovalPolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// MinAmount holds the value of the "min_amount" field.
	MinAmount decimal.Decimal `json:"min_amount,omitempty"`
	// MaxAmount holds the value of the "max_amount" field.
	MaxAmount decimal.Decimal `json:"max_amount,omitempty"`
	// RequiredLevels holds the value of the "required_levels" field.
	RequiredLevels int `json:"required_levels,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalPolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalpolicy.FieldMinAmount, approvalpolicy.FieldMaxAmount:
			values[i] = new(decimal.Decimal)
		case approvalpolicy.FieldActive:
			values[i] = new(sql.NullBool)
		case approvalpolicy.FieldRequiredLevels:
			values[i] = new(sql.NullInt64)
		case approvalpolicy.FieldID, approvalpolicy.FieldTitle, approvalpolicy.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case approvalpolicy.FieldCreatedAt, approvalpolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalPolicy fields.
func (_m *ApprovalPolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalpolicy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalpolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalpolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case approvalpolicy.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case approvalpolicy.FieldMinAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field min_amount", values[i])
			} else if value != nil {
				_m.MinAmount = *value
			}
		case approvalpolicy.FieldMaxAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field max_amount", values[i])
			} else if value != nil {
				_m.MaxAmount = *value
			}
		case approvalpolicy.FieldRequiredLevels:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_levels", values[i])
			} else if value.Valid {
				_m.RequiredLevels = int(value.Int64)
			}
		case approvalpolicy.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case approvalpolicy.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalPolicy.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalPolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApprovalPolicy.
// Note that you need to call ApprovalPolicy.Unwrap() before calling this method if this ApprovalPolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalPolicy) Update() *ApprovalPolicyUpdateOne {
	return NewApprovalPolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalPolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalPolicy) Unwrap() *ApprovalPolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalPolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalPolicy) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalPolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("min_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinAmount))
	builder.WriteString(", ")
	builder.WriteString("max_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAmount))
	builder.WriteString(", ")
	builder.WriteString("required_levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredLevels))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalPolicies is a parsable slice of ApprovalPolicy.
type ApprovalPolicies []*ApprovalPolicy
