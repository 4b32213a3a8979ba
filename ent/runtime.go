// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/approvalpolicy"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/auditlog"
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/notification"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/requestitem"
	"procureflow.io/procureflow/ent/schema"
	"procureflow.io/procureflow/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalpolicyMixin := schema.ApprovalPolicy{}.Mixin()
	approvalpolicyMixinFields0 := approvalpolicyMixin[0].Fields()
	_ = approvalpolicyMixinFields0
	approvalpolicyFields := schema.ApprovalPolicy{}.Fields()
	_ = approvalpolicyFields
	// approvalpolicyDescCreatedAt is the schema descriptor for created_at field.
	approvalpolicyDescCreatedAt := approvalpolicyMixinFields0[0].Descriptor()
	// approvalpolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalpolicy.DefaultCreatedAt = approvalpolicyDescCreatedAt.Default.(func() time.Time)
	// approvalpolicyDescUpdatedAt is the schema descriptor for updated_at field.
	approvalpolicyDescUpdatedAt := approvalpolicyMixinFields0[1].Descriptor()
	// approvalpolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approvalpolicy.DefaultUpdatedAt = approvalpolicyDescUpdatedAt.Default.(func() time.Time)
	// approvalpolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approvalpolicy.UpdateDefaultUpdatedAt = approvalpolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// approvalpolicyDescTitle is the schema descriptor for title field.
	approvalpolicyDescTitle := approvalpolicyFields[1].Descriptor()
	// approvalpolicy.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	approvalpolicy.TitleValidator = func() func(string) error {
		validators := approvalpolicyDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// approvalpolicyDescMinAmount is the schema descriptor for min_amount field.
	approvalpolicyDescMinAmount := approvalpolicyFields[2].Descriptor()
	// approvalpolicy.DefaultMinAmount holds the default value on creation for the min_amount field.
	approvalpolicy.DefaultMinAmount = approvalpolicyDescMinAmount.Default.(decimal.Decimal)
	// approvalpolicyDescMaxAmount is the schema descriptor for max_amount field.
	approvalpolicyDescMaxAmount := approvalpolicyFields[3].Descriptor()
	// approvalpolicy.DefaultMaxAmount holds the default value on creation for the max_amount field.
	approvalpolicy.DefaultMaxAmount = approvalpolicyDescMaxAmount.Default.(decimal.Decimal)
	// approvalpolicyDescRequiredLevels is the schema descriptor for required_levels field.
	approvalpolicyDescRequiredLevels := approvalpolicyFields[4].Descriptor()
	// approvalpolicy.DefaultRequiredLevels holds the default value on creation for the required_levels field.
	approvalpolicy.DefaultRequiredLevels = approvalpolicyDescRequiredLevels.Default.(int)
	// approvalpolicy.RequiredLevelsValidator is a validator for the "required_levels" field. It is called by the builders before save.
	approvalpolicy.RequiredLevelsValidator = approvalpolicyDescRequiredLevels.Validators[0].(func(int) error)
	// approvalpolicyDescActive is the schema descriptor for active field.
	approvalpolicyDescActive := approvalpolicyFields[5].Descriptor()
	// approvalpolicy.DefaultActive holds the default value on creation for the active field.
	approvalpolicy.DefaultActive = approvalpolicyDescActive.Default.(bool)
	// approvalpolicyDescCreatedBy is the schema descriptor for created_by field.
	approvalpolicyDescCreatedBy := approvalpolicyFields[6].Descriptor()
	// approvalpolicy.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	approvalpolicy.CreatedByValidator = approvalpolicyDescCreatedBy.Validators[0].(func(string) error)
	approvalstepMixin := schema.ApprovalStep{}.Mixin()
	approvalstepMixinFields0 := approvalstepMixin[0].Fields()
	_ = approvalstepMixinFields0
	approvalstepFields := schema.ApprovalStep{}.Fields()
	_ = approvalstepFields
	// approvalstepDescCreatedAt is the schema descriptor for created_at field.
	approvalstepDescCreatedAt := approvalstepMixinFields0[0].Descriptor()
	// approvalstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalstep.DefaultCreatedAt = approvalstepDescCreatedAt.Default.(func() time.Time)
	// approvalstepDescRequestID is the schema descriptor for request_id field.
	approvalstepDescRequestID := approvalstepFields[1].Descriptor()
	// approvalstep.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	approvalstep.RequestIDValidator = approvalstepDescRequestID.Validators[0].(func(string) error)
	// approvalstepDescApproverID is the schema descriptor for approver_id field.
	approvalstepDescApproverID := approvalstepFields[2].Descriptor()
	// approvalstep.ApproverIDValidator is a validator for the "approver_id" field. It is called by the builders before save.
	approvalstep.ApproverIDValidator = approvalstepDescApproverID.Validators[0].(func(string) error)
	// approvalstepDescLevel is the schema descriptor for level field.
	approvalstepDescLevel := approvalstepFields[3].Descriptor()
	// approvalstep.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	approvalstep.LevelValidator = approvalstepDescLevel.Validators[0].(func(int) error)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	financenoteMixin := schema.FinanceNote{}.Mixin()
	financenoteMixinFields0 := financenoteMixin[0].Fields()
	_ = financenoteMixinFields0
	financenoteFields := schema.FinanceNote{}.Fields()
	_ = financenoteFields
	// financenoteDescCreatedAt is the schema descriptor for created_at field.
	financenoteDescCreatedAt := financenoteMixinFields0[0].Descriptor()
	// financenote.DefaultCreatedAt holds the default value on creation for the created_at field.
	financenote.DefaultCreatedAt = financenoteDescCreatedAt.Default.(func() time.Time)
	// financenoteDescUpdatedAt is the schema descriptor for updated_at field.
	financenoteDescUpdatedAt := financenoteMixinFields0[1].Descriptor()
	// financenote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	financenote.DefaultUpdatedAt = financenoteDescUpdatedAt.Default.(func() time.Time)
	// financenote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	financenote.UpdateDefaultUpdatedAt = financenoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// financenoteDescRequestID is the schema descriptor for request_id field.
	financenoteDescRequestID := financenoteFields[1].Descriptor()
	// financenote.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	financenote.RequestIDValidator = financenoteDescRequestID.Validators[0].(func(string) error)
	// financenoteDescAuthorID is the schema descriptor for author_id field.
	financenoteDescAuthorID := financenoteFields[2].Descriptor()
	// financenote.AuthorIDValidator is a validator for the "author_id" field. It is called by the builders before save.
	financenote.AuthorIDValidator = financenoteDescAuthorID.Validators[0].(func(string) error)
	// financenoteDescNote is the schema descriptor for note field.
	financenoteDescNote := financenoteFields[3].Descriptor()
	// financenote.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	financenote.NoteValidator = financenoteDescNote.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescRecipientID is the schema descriptor for recipient_id field.
	notificationDescRecipientID := notificationFields[1].Descriptor()
	// notification.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	notification.RecipientIDValidator = notificationDescRecipientID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	purchaserequestMixin := schema.PurchaseRequest{}.Mixin()
	purchaserequestMixinFields0 := purchaserequestMixin[0].Fields()
	_ = purchaserequestMixinFields0
	purchaserequestFields := schema.PurchaseRequest{}.Fields()
	_ = purchaserequestFields
	// purchaserequestDescCreatedAt is the schema descriptor for created_at field.
	purchaserequestDescCreatedAt := purchaserequestMixinFields0[0].Descriptor()
	// purchaserequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	purchaserequest.DefaultCreatedAt = purchaserequestDescCreatedAt.Default.(func() time.Time)
	// purchaserequestDescUpdatedAt is the schema descriptor for updated_at field.
	purchaserequestDescUpdatedAt := purchaserequestMixinFields0[1].Descriptor()
	// purchaserequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	purchaserequest.DefaultUpdatedAt = purchaserequestDescUpdatedAt.Default.(func() time.Time)
	// purchaserequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	purchaserequest.UpdateDefaultUpdatedAt = purchaserequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// purchaserequestDescRequesterID is the schema descriptor for requester_id field.
	purchaserequestDescRequesterID := purchaserequestFields[1].Descriptor()
	// purchaserequest.RequesterIDValidator is a validator for the "requester_id" field. It is called by the builders before save.
	purchaserequest.RequesterIDValidator = purchaserequestDescRequesterID.Validators[0].(func(string) error)
	// purchaserequestDescTitle is the schema descriptor for title field.
	purchaserequestDescTitle := purchaserequestFields[2].Descriptor()
	// purchaserequest.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	purchaserequest.TitleValidator = func() func(string) error {
		validators := purchaserequestDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// purchaserequestDescAmount is the schema descriptor for amount field.
	purchaserequestDescAmount := purchaserequestFields[4].Descriptor()
	// purchaserequest.DefaultAmount holds the default value on creation for the amount field.
	purchaserequest.DefaultAmount = purchaserequestDescAmount.Default.(decimal.Decimal)
	// purchaserequestDescRequiredLevels is the schema descriptor for required_levels field.
	purchaserequestDescRequiredLevels := purchaserequestFields[6].Descriptor()
	// purchaserequest.DefaultRequiredLevels holds the default value on creation for the required_levels field.
	purchaserequest.DefaultRequiredLevels = purchaserequestDescRequiredLevels.Default.(int)
	// purchaserequest.RequiredLevelsValidator is a validator for the "required_levels" field. It is called by the builders before save.
	purchaserequest.RequiredLevelsValidator = purchaserequestDescRequiredLevels.Validators[0].(func(int) error)
	// purchaserequestDescLastLevel is the schema descriptor for last_level field.
	purchaserequestDescLastLevel := purchaserequestFields[7].Descriptor()
	// purchaserequest.DefaultLastLevel holds the default value on creation for the last_level field.
	purchaserequest.DefaultLastLevel = purchaserequestDescLastLevel.Default.(int)
	// purchaserequest.LastLevelValidator is a validator for the "last_level" field. It is called by the builders before save.
	purchaserequest.LastLevelValidator = purchaserequestDescLastLevel.Validators[0].(func(int) error)
	requestitemFields := schema.RequestItem{}.Fields()
	_ = requestitemFields
	// requestitemDescRequestID is the schema descriptor for request_id field.
	requestitemDescRequestID := requestitemFields[1].Descriptor()
	// requestitem.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	requestitem.RequestIDValidator = requestitemDescRequestID.Validators[0].(func(string) error)
	// requestitemDescName is the schema descriptor for name field.
	requestitemDescName := requestitemFields[2].Descriptor()
	// requestitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	requestitem.NameValidator = func() func(string) error {
		validators := requestitemDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// requestitemDescQuantity is the schema descriptor for quantity field.
	requestitemDescQuantity := requestitemFields[3].Descriptor()
	// requestitem.DefaultQuantity holds the default value on creation for the quantity field.
	requestitem.DefaultQuantity = requestitemDescQuantity.Default.(int)
	// requestitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	requestitem.QuantityValidator = requestitemDescQuantity.Validators[0].(func(int) error)
	// requestitemDescUnitPrice is the schema descriptor for unit_price field.
	requestitemDescUnitPrice := requestitemFields[4].Descriptor()
	// requestitem.DefaultUnitPrice holds the default value on creation for the unit_price field.
	requestitem.DefaultUnitPrice = requestitemDescUnitPrice.Default.(decimal.Decimal)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[2].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = func() func(string) error {
		validators := userDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[5].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
