// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalPoliciesColumns holds the columns for the "approval_policies" table.
	ApprovalPoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "min_amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "max_amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "required_levels", Type: field.TypeInt, Default: 2},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// ApprovalPoliciesTable holds the schema information for the "approval_policies" table.
	ApprovalPoliciesTable = &schema.Table{
		Name:       "approval_policies",
		Columns:    ApprovalPoliciesColumns,
		PrimaryKey: []*schema.Column{ApprovalPoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalpolicy_active",
				Unique:  false,
				Columns: []*schema.Column{ApprovalPoliciesColumns[7]},
			},
		},
	}
	// ApprovalStepsColumns holds the columns for the "approval_steps" table.
	ApprovalStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "approver_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"APPROVED", "REJECTED"}},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "request_id", Type: field.TypeString},
	}
	// ApprovalStepsTable holds the schema information for the "approval_steps" table.
	ApprovalStepsTable = &schema.Table{
		Name:       "approval_steps",
		Columns:    ApprovalStepsColumns,
		PrimaryKey: []*schema.Column{ApprovalStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_steps_purchase_requests_steps",
				Columns:    []*schema.Column{ApprovalStepsColumns[6]},
				RefColumns: []*schema.Column{PurchaseRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvalstep_request_id_level",
				Unique:  true,
				Columns: []*schema.Column{ApprovalStepsColumns[6], ApprovalStepsColumns[3]},
			},
			{
				Name:    "approvalstep_approver_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalStepsColumns[2]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// FinanceNotesColumns holds the columns for the "finance_notes" table.
	FinanceNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "author_id", Type: field.TypeString},
		{Name: "note", Type: field.TypeString},
		{Name: "request_id", Type: field.TypeString},
	}
	// FinanceNotesTable holds the schema information for the "finance_notes" table.
	FinanceNotesTable = &schema.Table{
		Name:       "finance_notes",
		Columns:    FinanceNotesColumns,
		PrimaryKey: []*schema.Column{FinanceNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "finance_notes_purchase_requests_finance_notes",
				Columns:    []*schema.Column{FinanceNotesColumns[5]},
				RefColumns: []*schema.Column{PurchaseRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "financenote_request_id",
				Unique:  false,
				Columns: []*schema.Column{FinanceNotesColumns[5]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"DECISION_PENDING", "REQUEST_APPROVED", "REQUEST_REJECTED", "ARTIFACT_ATTACHED"}},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "recipient_id", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[8], NotificationsColumns[7]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// PurchaseRequestsColumns holds the columns for the "purchase_requests" table.
	PurchaseRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REJECTED"}, Default: "PENDING"},
		{Name: "required_levels", Type: field.TypeInt, Default: 2},
		{Name: "last_level", Type: field.TypeInt, Default: 0},
		{Name: "proforma_invoice", Type: field.TypeString, Nullable: true},
		{Name: "purchase_order", Type: field.TypeString, Nullable: true},
		{Name: "receipt", Type: field.TypeString, Nullable: true},
		{Name: "requester_id", Type: field.TypeString},
	}
	// PurchaseRequestsTable holds the schema information for the "purchase_requests" table.
	PurchaseRequestsTable = &schema.Table{
		Name:       "purchase_requests",
		Columns:    PurchaseRequestsColumns,
		PrimaryKey: []*schema.Column{PurchaseRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "purchase_requests_users_requests",
				Columns:    []*schema.Column{PurchaseRequestsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "purchaserequest_status",
				Unique:  false,
				Columns: []*schema.Column{PurchaseRequestsColumns[6]},
			},
			{
				Name:    "purchaserequest_requester_id",
				Unique:  false,
				Columns: []*schema.Column{PurchaseRequestsColumns[12]},
			},
		},
	}
	// RequestItemsColumns holds the columns for the "request_items" table.
	RequestItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "unit_price", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "request_id", Type: field.TypeString},
	}
	// RequestItemsTable holds the schema information for the "request_items" table.
	RequestItemsTable = &schema.Table{
		Name:       "request_items",
		Columns:    RequestItemsColumns,
		PrimaryKey: []*schema.Column{RequestItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "request_items_purchase_requests_items",
				Columns:    []*schema.Column{RequestItemsColumns[4]},
				RefColumns: []*schema.Column{PurchaseRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requestitem_request_id",
				Unique:  false,
				Columns: []*schema.Column{RequestItemsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"staff", "approver", "finance", "admin"}, Default: "staff"},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalPoliciesTable,
		ApprovalStepsTable,
		AuditLogsTable,
		FinanceNotesTable,
		NotificationsTable,
		PurchaseRequestsTable,
		RequestItemsTable,
		UsersTable,
	}
)

func init() {
	ApprovalStepsTable.ForeignKeys[0].RefTable = PurchaseRequestsTable
	FinanceNotesTable.ForeignKeys[0].RefTable = PurchaseRequestsTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	PurchaseRequestsTable.ForeignKeys[0].RefTable = UsersTable
	RequestItemsTable.ForeignKeys[0].RefTable = PurchaseRequestsTable
}
