// Code generated by ent, DO NOT EDIT.

package purchaserequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the purchaserequest type in the database.
	Label = "purchase_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRequesterID holds the string denoting the requester_id field in the database.
	FieldRequesterID = "requester_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequiredLevels holds the string denoting the required_levels field in the database.
	FieldRequiredLevels = "required_levels"
	// FieldLastLevel holds the string denoting the last_level field in the database.
	FieldLastLevel = "last_level"
	// FieldProformaInvoice holds the string denoting the proforma_invoice field in the database.
	FieldProformaInvoice = "proforma_invoice"
	// FieldPurchaseOrder holds the string denoting the purchase_order field in the database.
	FieldPurchaseOrder = "purchase_order"
	// FieldReceipt holds the string denoting the receipt field in the database.
	FieldReceipt = "receipt"
	// EdgeRequester holds the string denoting the requester edge name in mutations.
	EdgeRequester = "requester"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeFinanceNotes holds the string denoting the finance_notes edge name in mutations.
	EdgeFinanceNotes = "finance_notes"
	// Table holds the table name of the purchaserequest in the database.
	Table = "purchase_requests"
	// RequesterTable is the table that holds the requester relation/edge.
	RequesterTable = "purchase_requests"
	// RequesterInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	RequesterInverseTable = "users"
	// RequesterColumn is the table column denoting the requester relation/edge.
	RequesterColumn = "requester_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "request_items"
	// ItemsInverseTable is the table name for the RequestItem entity.
	// It exists in this package in order to avoid circular dependency with the "requestitem" package.
	ItemsInverseTable = "request_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "request_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "approval_steps"
	// StepsInverseTable is the table name for the ApprovalStep entity.
	// It exists in this package in order to avoid circular dependency with the "approvalstep" package.
	StepsInverseTable = "approval_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "request_id"
	// FinanceNotesTable is the table that holds the finance_notes relation/edge.
	FinanceNotesTable = "finance_notes"
	// FinanceNotesInverseTable is the table name for the FinanceNote entity.
	// It exists in this package in order to avoid circular dependency with the "financenote" package.
	FinanceNotesInverseTable = "finance_notes"
	// FinanceNotesColumn is the table column denoting the finance_notes relation/edge.
	FinanceNotesColumn = "request_id"
)

// Columns holds all SQL columns for purchaserequest fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRequesterID,
	FieldTitle,
	FieldDescription,
	FieldAmount,
	FieldStatus,
	FieldRequiredLevels,
	FieldLastLevel,
	FieldProformaInvoice,
	FieldPurchaseOrder,
	FieldReceipt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// RequesterIDValidator is a validator for the "requester_id" field. It is called by the builders before save.
	RequesterIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultAmount holds the default value on creation for the "amount" field.
	DefaultAmount decimal.Decimal
	// DefaultRequiredLevels holds the default value on creation for the "required_levels" field.
	DefaultRequiredLevels int
	// RequiredLevelsValidator is a validator for the "required_levels" field. It is called by the builders before save.
	RequiredLevelsValidator func(int) error
	// DefaultLastLevel holds the default value on creation for the "last_level" field.
	DefaultLastLevel int
	// LastLevelValidator is a validator for the "last_level" field. It is called by the builders before save.
	LastLevelValidator func(int) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING  Status = "PENDING"
	StatusAPPROVED Status = "APPROVED"
	StatusREJECTED Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusAPPROVED, StatusREJECTED:
		return nil
	default:
		return fmt.Errorf("purchaserequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PurchaseRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRequesterID orders the results by the requester_id field.
func ByRequesterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRequiredLevels orders the results by the required_levels field.
func ByRequiredLevels(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredLevels, opts...).ToFunc()
}

// ByLastLevel orders the results by the last_level field.
func ByLastLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLevel, opts...).ToFunc()
}

// ByProformaInvoice orders the results by the proforma_invoice field.
func ByProformaInvoice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProformaInvoice, opts...).ToFunc()
}

// ByPurchaseOrder orders the results by the purchase_order field.
func ByPurchaseOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseOrder, opts...).ToFunc()
}

// ByReceipt orders the results by the receipt field.
func ByReceipt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceipt, opts...).ToFunc()
}

// ByRequesterField orders the results by requester field.
func ByRequesterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequesterStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFinanceNotesCount orders the results by finance_notes count.
func ByFinanceNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFinanceNotesStep(), opts...)
	}
}

// ByFinanceNotes orders the results by finance_notes terms.
func ByFinanceNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFinanceNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRequesterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequesterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequesterTable, RequesterColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newFinanceNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FinanceNotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FinanceNotesTable, FinanceNotesColumn),
	)
}
