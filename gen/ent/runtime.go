// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Lazzzer/structurizer-sub000/db/ent/schema"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardtransaction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoice"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoiceitem"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receipt"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receiptitem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardstatementFields := schema.CardStatement{}.Fields()
	_ = cardstatementFields
	// cardstatementDescFilePath is the schema descriptor for file_path field.
	cardstatementDescFilePath := cardstatementFields[3].Descriptor()
	// cardstatement.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	cardstatement.FilePathValidator = cardstatementDescFilePath.Validators[0].(func(string) error)
	// cardstatementDescIssuerName is the schema descriptor for issuer_name field.
	cardstatementDescIssuerName := cardstatementFields[4].Descriptor()
	// cardstatement.IssuerNameValidator is a validator for the "issuer_name" field. It is called by the builders before save.
	cardstatement.IssuerNameValidator = cardstatementDescIssuerName.Validators[0].(func(string) error)
	// cardstatementDescRecipientName is the schema descriptor for recipient_name field.
	cardstatementDescRecipientName := cardstatementFields[6].Descriptor()
	// cardstatement.RecipientNameValidator is a validator for the "recipient_name" field. It is called by the builders before save.
	cardstatement.RecipientNameValidator = cardstatementDescRecipientName.Validators[0].(func(string) error)
	// cardstatementDescCreatedAt is the schema descriptor for created_at field.
	cardstatementDescCreatedAt := cardstatementFields[13].Descriptor()
	// cardstatement.DefaultCreatedAt holds the default value on creation for the created_at field.
	cardstatement.DefaultCreatedAt = cardstatementDescCreatedAt.Default.(func() time.Time)
	// cardstatementDescUpdatedAt is the schema descriptor for updated_at field.
	cardstatementDescUpdatedAt := cardstatementFields[14].Descriptor()
	// cardstatement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cardstatement.DefaultUpdatedAt = cardstatementDescUpdatedAt.Default.(func() time.Time)
	// cardstatement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cardstatement.UpdateDefaultUpdatedAt = cardstatementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cardstatementDescID is the schema descriptor for id field.
	cardstatementDescID := cardstatementFields[0].Descriptor()
	// cardstatement.DefaultID holds the default value on creation for the id field.
	cardstatement.DefaultID = cardstatementDescID.Default.(func() uuid.UUID)
	cardtransactionFields := schema.CardTransaction{}.Fields()
	_ = cardtransactionFields
	// cardtransactionDescDescription is the schema descriptor for description field.
	cardtransactionDescDescription := cardtransactionFields[2].Descriptor()
	// cardtransaction.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	cardtransaction.DescriptionValidator = cardtransactionDescDescription.Validators[0].(func(string) error)
	// cardtransactionDescCategory is the schema descriptor for category field.
	cardtransactionDescCategory := cardtransactionFields[3].Descriptor()
	// cardtransaction.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	cardtransaction.CategoryValidator = cardtransactionDescCategory.Validators[0].(func(string) error)
	// cardtransactionDescID is the schema descriptor for id field.
	cardtransactionDescID := cardtransactionFields[0].Descriptor()
	// cardtransaction.DefaultID holds the default value on creation for the id field.
	cardtransaction.DefaultID = cardtransactionDescID.Default.(func() uuid.UUID)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescFilename is the schema descriptor for filename field.
	extractionDescFilename := extractionFields[2].Descriptor()
	// extraction.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	extraction.FilenameValidator = extractionDescFilename.Validators[0].(func(string) error)
	// extractionDescFilePath is the schema descriptor for file_path field.
	extractionDescFilePath := extractionFields[3].Descriptor()
	// extraction.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	extraction.FilePathValidator = extractionDescFilePath.Validators[0].(func(string) error)
	// extractionDescStatus is the schema descriptor for status field.
	extractionDescStatus := extractionFields[4].Descriptor()
	// extraction.DefaultStatus holds the default value on creation for the status field.
	extraction.DefaultStatus = extractionDescStatus.Default.(string)
	// extraction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extraction.StatusValidator = extractionDescStatus.Validators[0].(func(string) error)
	// extractionDescCategory is the schema descriptor for category field.
	extractionDescCategory := extractionFields[5].Descriptor()
	// extraction.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	extraction.CategoryValidator = extractionDescCategory.Validators[0].(func(string) error)
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[8].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	// extractionDescUpdatedAt is the schema descriptor for updated_at field.
	extractionDescUpdatedAt := extractionFields[9].Descriptor()
	// extraction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extraction.DefaultUpdatedAt = extractionDescUpdatedAt.Default.(func() time.Time)
	// extraction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extraction.UpdateDefaultUpdatedAt = extractionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionDescID is the schema descriptor for id field.
	extractionDescID := extractionFields[0].Descriptor()
	// extraction.DefaultID holds the default value on creation for the id field.
	extraction.DefaultID = extractionDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescFilePath is the schema descriptor for file_path field.
	invoiceDescFilePath := invoiceFields[3].Descriptor()
	// invoice.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	invoice.FilePathValidator = invoiceDescFilePath.Validators[0].(func(string) error)
	// invoiceDescFromName is the schema descriptor for from_name field.
	invoiceDescFromName := invoiceFields[4].Descriptor()
	// invoice.FromNameValidator is a validator for the "from_name" field. It is called by the builders before save.
	invoice.FromNameValidator = invoiceDescFromName.Validators[0].(func(string) error)
	// invoiceDescToName is the schema descriptor for to_name field.
	invoiceDescToName := invoiceFields[6].Descriptor()
	// invoice.ToNameValidator is a validator for the "to_name" field. It is called by the builders before save.
	invoice.ToNameValidator = invoiceDescToName.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[13].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[14].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[2].Descriptor()
	// invoiceitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceitem.DescriptionValidator = invoiceitemDescDescription.Validators[0].(func(string) error)
	// invoiceitemDescID is the schema descriptor for id field.
	invoiceitemDescID := invoiceitemFields[0].Descriptor()
	// invoiceitem.DefaultID holds the default value on creation for the id field.
	invoiceitem.DefaultID = invoiceitemDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescFilePath is the schema descriptor for file_path field.
	receiptDescFilePath := receiptFields[3].Descriptor()
	// receipt.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	receipt.FilePathValidator = receiptDescFilePath.Validators[0].(func(string) error)
	// receiptDescFrom is the schema descriptor for from field.
	receiptDescFrom := receiptFields[4].Descriptor()
	// receipt.FromValidator is a validator for the "from" field. It is called by the builders before save.
	receipt.FromValidator = receiptDescFrom.Validators[0].(func(string) error)
	// receiptDescCategory is the schema descriptor for category field.
	receiptDescCategory := receiptFields[5].Descriptor()
	// receipt.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	receipt.CategoryValidator = receiptDescCategory.Validators[0].(func(string) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[13].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[14].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	receiptitemFields := schema.ReceiptItem{}.Fields()
	_ = receiptitemFields
	// receiptitemDescDescription is the schema descriptor for description field.
	receiptitemDescDescription := receiptitemFields[2].Descriptor()
	// receiptitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	receiptitem.DescriptionValidator = receiptitemDescDescription.Validators[0].(func(string) error)
	// receiptitemDescID is the schema descriptor for id field.
	receiptitemDescID := receiptitemFields[0].Descriptor()
	// receiptitem.DefaultID holds the default value on creation for the id field.
	receiptitem.DefaultID = receiptitemDescID.Default.(func() uuid.UUID)
}
