// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalPolicy is the predicate function for approvalpolicy builders.
type ApprovalPolicy func(*sql.Selector)

// ApprovalStep is the predicate function for approvalstep builders.
type ApprovalStep func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// FinanceNote is the predicate function for financenote builders.
type FinanceNote func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// PurchaseRequest is the predicate function for purchaserequest builders.
type PurchaseRequest func(*sql.Selector)

// RequestItem is the predicate function for requestitem builders.
type RequestItem func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
