// Code generated by ent, DO NOT EDIT.

package approvalstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the approvalstep type in the database.
	Label = "approval_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldApproverID holds the string denoting the approver_id field in the database.
	FieldApproverID = "approver_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// Table holds the table name of the approvalstep in the database.
	Table = "approval_steps"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "approval_steps"
	// RequestInverseTable is the table name for the PurchaseRequest entity.
	// It exists in this package in order to avoid circular dependency with the "purchaserequest" package.
	RequestInverseTable = "purchase_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for approvalstep fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldRequestID,
	FieldApproverID,
	FieldLevel,
	FieldDecision,
	FieldComment,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	RequestIDValidator func(string) error
	// ApproverIDValidator is a validator for the "approver_id" field. It is called by the builders before save.
	ApproverIDValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
)

// Decision defines the type for the "decision" enum field.
type Decision string

// Decision values.
const (
	DecisionAPPROVED Decision = "APPROVED"
	DecisionREJECTED Decision = "REJECTED"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionAPPROVED, DecisionREJECTED:
		return nil
	default:
		return fmt.Errorf("approvalstep: invalid enum value for decision field: %q", d)
	}
}

// OrderOption defines the ordering options for the ApprovalStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByApproverID orders the results by the approver_id field.
func ByApproverID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproverID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
