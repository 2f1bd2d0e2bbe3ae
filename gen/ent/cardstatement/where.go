// Code generated by ent, DO NOT EDIT.

package cardstatement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldUserID, v))
}

// ExtractionID applies equality check predicate on the "extraction_id" field. It's identical to ExtractionIDEQ.
func ExtractionID(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldExtractionID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldFilePath, v))
}

// IssuerName applies equality check predicate on the "issuer_name" field. It's identical to IssuerNameEQ.
func IssuerName(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldIssuerName, v))
}

// IssuerAddress applies equality check predicate on the "issuer_address" field. It's identical to IssuerAddressEQ.
func IssuerAddress(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldIssuerAddress, v))
}

// RecipientName applies equality check predicate on the "recipient_name" field. It's identical to RecipientNameEQ.
func RecipientName(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldRecipientName, v))
}

// RecipientAddress applies equality check predicate on the "recipient_address" field. It's identical to RecipientAddressEQ.
func RecipientAddress(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldRecipientAddress, v))
}

// CardHolder applies equality check predicate on the "card_holder" field. It's identical to CardHolderEQ.
func CardHolder(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCardHolder, v))
}

// CardNumber applies equality check predicate on the "card_number" field. It's identical to CardNumberEQ.
func CardNumber(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCardNumber, v))
}

// CardType applies equality check predicate on the "card_type" field. It's identical to CardTypeEQ.
func CardType(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCardType, v))
}

// StatementDate applies equality check predicate on the "statement_date" field. It's identical to StatementDateEQ.
func StatementDate(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldStatementDate, v))
}

// TotalAmountDue applies equality check predicate on the "total_amount_due" field. It's identical to TotalAmountDueEQ.
func TotalAmountDue(v float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldTotalAmountDue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldUserID, v))
}

// ExtractionIDEQ applies the EQ predicate on the "extraction_id" field.
func ExtractionIDEQ(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldExtractionID, v))
}

// ExtractionIDNEQ applies the NEQ predicate on the "extraction_id" field.
func ExtractionIDNEQ(v uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldExtractionID, v))
}

// ExtractionIDIn applies the In predicate on the "extraction_id" field.
func ExtractionIDIn(vs ...uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldExtractionID, vs...))
}

// ExtractionIDNotIn applies the NotIn predicate on the "extraction_id" field.
func ExtractionIDNotIn(vs ...uuid.UUID) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldExtractionID, vs...))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldFilePath, v))
}

// IssuerNameEQ applies the EQ predicate on the "issuer_name" field.
func IssuerNameEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldIssuerName, v))
}

// IssuerNameNEQ applies the NEQ predicate on the "issuer_name" field.
func IssuerNameNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldIssuerName, v))
}

// IssuerNameIn applies the In predicate on the "issuer_name" field.
func IssuerNameIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldIssuerName, vs...))
}

// IssuerNameNotIn applies the NotIn predicate on the "issuer_name" field.
func IssuerNameNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldIssuerName, vs...))
}

// IssuerNameGT applies the GT predicate on the "issuer_name" field.
func IssuerNameGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldIssuerName, v))
}

// IssuerNameGTE applies the GTE predicate on the "issuer_name" field.
func IssuerNameGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldIssuerName, v))
}

// IssuerNameLT applies the LT predicate on the "issuer_name" field.
func IssuerNameLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldIssuerName, v))
}

// IssuerNameLTE applies the LTE predicate on the "issuer_name" field.
func IssuerNameLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldIssuerName, v))
}

// IssuerNameContains applies the Contains predicate on the "issuer_name" field.
func IssuerNameContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldIssuerName, v))
}

// IssuerNameHasPrefix applies the HasPrefix predicate on the "issuer_name" field.
func IssuerNameHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldIssuerName, v))
}

// IssuerNameHasSuffix applies the HasSuffix predicate on the "issuer_name" field.
func IssuerNameHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldIssuerName, v))
}

// IssuerNameEqualFold applies the EqualFold predicate on the "issuer_name" field.
func IssuerNameEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldIssuerName, v))
}

// IssuerNameContainsFold applies the ContainsFold predicate on the "issuer_name" field.
func IssuerNameContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldIssuerName, v))
}

// IssuerAddressEQ applies the EQ predicate on the "issuer_address" field.
func IssuerAddressEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldIssuerAddress, v))
}

// IssuerAddressNEQ applies the NEQ predicate on the "issuer_address" field.
func IssuerAddressNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldIssuerAddress, v))
}

// IssuerAddressIn applies the In predicate on the "issuer_address" field.
func IssuerAddressIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldIssuerAddress, vs...))
}

// IssuerAddressNotIn applies the NotIn predicate on the "issuer_address" field.
func IssuerAddressNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldIssuerAddress, vs...))
}

// IssuerAddressGT applies the GT predicate on the "issuer_address" field.
func IssuerAddressGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldIssuerAddress, v))
}

// IssuerAddressGTE applies the GTE predicate on the "issuer_address" field.
func IssuerAddressGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldIssuerAddress, v))
}

// IssuerAddressLT applies the LT predicate on the "issuer_address" field.
func IssuerAddressLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldIssuerAddress, v))
}

// IssuerAddressLTE applies the LTE predicate on the "issuer_address" field.
func IssuerAddressLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldIssuerAddress, v))
}

// IssuerAddressContains applies the Contains predicate on the "issuer_address" field.
func IssuerAddressContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldIssuerAddress, v))
}

// IssuerAddressHasPrefix applies the HasPrefix predicate on the "issuer_address" field.
func IssuerAddressHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldIssuerAddress, v))
}

// IssuerAddressHasSuffix applies the HasSuffix predicate on the "issuer_address" field.
func IssuerAddressHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldIssuerAddress, v))
}

// IssuerAddressIsNil applies the IsNil predicate on the "issuer_address" field.
func IssuerAddressIsNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIsNull(FieldIssuerAddress))
}

// IssuerAddressNotNil applies the NotNil predicate on the "issuer_address" field.
func IssuerAddressNotNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotNull(FieldIssuerAddress))
}

// IssuerAddressEqualFold applies the EqualFold predicate on the "issuer_address" field.
func IssuerAddressEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldIssuerAddress, v))
}

// IssuerAddressContainsFold applies the ContainsFold predicate on the "issuer_address" field.
func IssuerAddressContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldIssuerAddress, v))
}

// RecipientNameEQ applies the EQ predicate on the "recipient_name" field.
func RecipientNameEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldRecipientName, v))
}

// RecipientNameNEQ applies the NEQ predicate on the "recipient_name" field.
func RecipientNameNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldRecipientName, v))
}

// RecipientNameIn applies the In predicate on the "recipient_name" field.
func RecipientNameIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldRecipientName, vs...))
}

// RecipientNameNotIn applies the NotIn predicate on the "recipient_name" field.
func RecipientNameNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldRecipientName, vs...))
}

// RecipientNameGT applies the GT predicate on the "recipient_name" field.
func RecipientNameGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldRecipientName, v))
}

// RecipientNameGTE applies the GTE predicate on the "recipient_name" field.
func RecipientNameGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldRecipientName, v))
}

// RecipientNameLT applies the LT predicate on the "recipient_name" field.
func RecipientNameLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldRecipientName, v))
}

// RecipientNameLTE applies the LTE predicate on the "recipient_name" field.
func RecipientNameLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldRecipientName, v))
}

// RecipientNameContains applies the Contains predicate on the "recipient_name" field.
func RecipientNameContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldRecipientName, v))
}

// RecipientNameHasPrefix applies the HasPrefix predicate on the "recipient_name" field.
func RecipientNameHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldRecipientName, v))
}

// RecipientNameHasSuffix applies the HasSuffix predicate on the "recipient_name" field.
func RecipientNameHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldRecipientName, v))
}

// RecipientNameEqualFold applies the EqualFold predicate on the "recipient_name" field.
func RecipientNameEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldRecipientName, v))
}

// RecipientNameContainsFold applies the ContainsFold predicate on the "recipient_name" field.
func RecipientNameContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldRecipientName, v))
}

// RecipientAddressEQ applies the EQ predicate on the "recipient_address" field.
func RecipientAddressEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldRecipientAddress, v))
}

// RecipientAddressNEQ applies the NEQ predicate on the "recipient_address" field.
func RecipientAddressNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldRecipientAddress, v))
}

// RecipientAddressIn applies the In predicate on the "recipient_address" field.
func RecipientAddressIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldRecipientAddress, vs...))
}

// RecipientAddressNotIn applies the NotIn predicate on the "recipient_address" field.
func RecipientAddressNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldRecipientAddress, vs...))
}

// RecipientAddressGT applies the GT predicate on the "recipient_address" field.
func RecipientAddressGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldRecipientAddress, v))
}

// RecipientAddressGTE applies the GTE predicate on the "recipient_address" field.
func RecipientAddressGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldRecipientAddress, v))
}

// RecipientAddressLT applies the LT predicate on the "recipient_address" field.
func RecipientAddressLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldRecipientAddress, v))
}

// RecipientAddressLTE applies the LTE predicate on the "recipient_address" field.
func RecipientAddressLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldRecipientAddress, v))
}

// RecipientAddressContains applies the Contains predicate on the "recipient_address" field.
func RecipientAddressContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldRecipientAddress, v))
}

// RecipientAddressHasPrefix applies the HasPrefix predicate on the "recipient_address" field.
func RecipientAddressHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldRecipientAddress, v))
}

// RecipientAddressHasSuffix applies the HasSuffix predicate on the "recipient_address" field.
func RecipientAddressHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldRecipientAddress, v))
}

// RecipientAddressIsNil applies the IsNil predicate on the "recipient_address" field.
func RecipientAddressIsNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIsNull(FieldRecipientAddress))
}

// RecipientAddressNotNil applies the NotNil predicate on the "recipient_address" field.
func RecipientAddressNotNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotNull(FieldRecipientAddress))
}

// RecipientAddressEqualFold applies the EqualFold predicate on the "recipient_address" field.
func RecipientAddressEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldRecipientAddress, v))
}

// RecipientAddressContainsFold applies the ContainsFold predicate on the "recipient_address" field.
func RecipientAddressContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldRecipientAddress, v))
}

// CardHolderEQ applies the EQ predicate on the "card_holder" field.
func CardHolderEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCardHolder, v))
}

// CardHolderNEQ applies the NEQ predicate on the "card_holder" field.
func CardHolderNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldCardHolder, v))
}

// CardHolderIn applies the In predicate on the "card_holder" field.
func CardHolderIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldCardHolder, vs...))
}

// CardHolderNotIn applies the NotIn predicate on the "card_holder" field.
func CardHolderNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldCardHolder, vs...))
}

// CardHolderGT applies the GT predicate on the "card_holder" field.
func CardHolderGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldCardHolder, v))
}

// CardHolderGTE applies the GTE predicate on the "card_holder" field.
func CardHolderGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldCardHolder, v))
}

// CardHolderLT applies the LT predicate on the "card_holder" field.
func CardHolderLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldCardHolder, v))
}

// CardHolderLTE applies the LTE predicate on the "card_holder" field.
func CardHolderLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldCardHolder, v))
}

// CardHolderContains applies the Contains predicate on the "card_holder" field.
func CardHolderContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldCardHolder, v))
}

// CardHolderHasPrefix applies the HasPrefix predicate on the "card_holder" field.
func CardHolderHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldCardHolder, v))
}

// CardHolderHasSuffix applies the HasSuffix predicate on the "card_holder" field.
func CardHolderHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldCardHolder, v))
}

// CardHolderIsNil applies the IsNil predicate on the "card_holder" field.
func CardHolderIsNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIsNull(FieldCardHolder))
}

// CardHolderNotNil applies the NotNil predicate on the "card_holder" field.
func CardHolderNotNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotNull(FieldCardHolder))
}

// CardHolderEqualFold applies the EqualFold predicate on the "card_holder" field.
func CardHolderEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldCardHolder, v))
}

// CardHolderContainsFold applies the ContainsFold predicate on the "card_holder" field.
func CardHolderContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldCardHolder, v))
}

// CardNumberEQ applies the EQ predicate on the "card_number" field.
func CardNumberEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCardNumber, v))
}

// CardNumberNEQ applies the NEQ predicate on the "card_number" field.
func CardNumberNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldCardNumber, v))
}

// CardNumberIn applies the In predicate on the "card_number" field.
func CardNumberIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldCardNumber, vs...))
}

// CardNumberNotIn applies the NotIn predicate on the "card_number" field.
func CardNumberNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldCardNumber, vs...))
}

// CardNumberGT applies the GT predicate on the "card_number" field.
func CardNumberGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldCardNumber, v))
}

// CardNumberGTE applies the GTE predicate on the "card_number" field.
func CardNumberGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldCardNumber, v))
}

// CardNumberLT applies the LT predicate on the "card_number" field.
func CardNumberLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldCardNumber, v))
}

// CardNumberLTE applies the LTE predicate on the "card_number" field.
func CardNumberLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldCardNumber, v))
}

// CardNumberContains applies the Contains predicate on the "card_number" field.
func CardNumberContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldCardNumber, v))
}

// CardNumberHasPrefix applies the HasPrefix predicate on the "card_number" field.
func CardNumberHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldCardNumber, v))
}

// CardNumberHasSuffix applies the HasSuffix predicate on the "card_number" field.
func CardNumberHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldCardNumber, v))
}

// CardNumberIsNil applies the IsNil predicate on the "card_number" field.
func CardNumberIsNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIsNull(FieldCardNumber))
}

// CardNumberNotNil applies the NotNil predicate on the "card_number" field.
func CardNumberNotNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotNull(FieldCardNumber))
}

// CardNumberEqualFold applies the EqualFold predicate on the "card_number" field.
func CardNumberEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldCardNumber, v))
}

// CardNumberContainsFold applies the ContainsFold predicate on the "card_number" field.
func CardNumberContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldCardNumber, v))
}

// CardTypeEQ applies the EQ predicate on the "card_type" field.
func CardTypeEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCardType, v))
}

// CardTypeNEQ applies the NEQ predicate on the "card_type" field.
func CardTypeNEQ(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldCardType, v))
}

// CardTypeIn applies the In predicate on the "card_type" field.
func CardTypeIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldCardType, vs...))
}

// CardTypeNotIn applies the NotIn predicate on the "card_type" field.
func CardTypeNotIn(vs ...string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldCardType, vs...))
}

// CardTypeGT applies the GT predicate on the "card_type" field.
func CardTypeGT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldCardType, v))
}

// CardTypeGTE applies the GTE predicate on the "card_type" field.
func CardTypeGTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldCardType, v))
}

// CardTypeLT applies the LT predicate on the "card_type" field.
func CardTypeLT(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldCardType, v))
}

// CardTypeLTE applies the LTE predicate on the "card_type" field.
func CardTypeLTE(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldCardType, v))
}

// CardTypeContains applies the Contains predicate on the "card_type" field.
func CardTypeContains(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContains(FieldCardType, v))
}

// CardTypeHasPrefix applies the HasPrefix predicate on the "card_type" field.
func CardTypeHasPrefix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasPrefix(FieldCardType, v))
}

// CardTypeHasSuffix applies the HasSuffix predicate on the "card_type" field.
func CardTypeHasSuffix(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldHasSuffix(FieldCardType, v))
}

// CardTypeIsNil applies the IsNil predicate on the "card_type" field.
func CardTypeIsNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIsNull(FieldCardType))
}

// CardTypeNotNil applies the NotNil predicate on the "card_type" field.
func CardTypeNotNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotNull(FieldCardType))
}

// CardTypeEqualFold applies the EqualFold predicate on the "card_type" field.
func CardTypeEqualFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEqualFold(FieldCardType, v))
}

// CardTypeContainsFold applies the ContainsFold predicate on the "card_type" field.
func CardTypeContainsFold(v string) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldContainsFold(FieldCardType, v))
}

// StatementDateEQ applies the EQ predicate on the "statement_date" field.
func StatementDateEQ(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldStatementDate, v))
}

// StatementDateNEQ applies the NEQ predicate on the "statement_date" field.
func StatementDateNEQ(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldStatementDate, v))
}

// StatementDateIn applies the In predicate on the "statement_date" field.
func StatementDateIn(vs ...time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldStatementDate, vs...))
}

// StatementDateNotIn applies the NotIn predicate on the "statement_date" field.
func StatementDateNotIn(vs ...time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldStatementDate, vs...))
}

// StatementDateGT applies the GT predicate on the "statement_date" field.
func StatementDateGT(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldStatementDate, v))
}

// StatementDateGTE applies the GTE predicate on the "statement_date" field.
func StatementDateGTE(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldStatementDate, v))
}

// StatementDateLT applies the LT predicate on the "statement_date" field.
func StatementDateLT(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldStatementDate, v))
}

// StatementDateLTE applies the LTE predicate on the "statement_date" field.
func StatementDateLTE(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldStatementDate, v))
}

// StatementDateIsNil applies the IsNil predicate on the "statement_date" field.
func StatementDateIsNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIsNull(FieldStatementDate))
}

// StatementDateNotNil applies the NotNil predicate on the "statement_date" field.
func StatementDateNotNil() predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotNull(FieldStatementDate))
}

// TotalAmountDueEQ applies the EQ predicate on the "total_amount_due" field.
func TotalAmountDueEQ(v float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldTotalAmountDue, v))
}

// TotalAmountDueNEQ applies the NEQ predicate on the "total_amount_due" field.
func TotalAmountDueNEQ(v float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldTotalAmountDue, v))
}

// TotalAmountDueIn applies the In predicate on the "total_amount_due" field.
func TotalAmountDueIn(vs ...float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldTotalAmountDue, vs...))
}

// TotalAmountDueNotIn applies the NotIn predicate on the "total_amount_due" field.
func TotalAmountDueNotIn(vs ...float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldTotalAmountDue, vs...))
}

// TotalAmountDueGT applies the GT predicate on the "total_amount_due" field.
func TotalAmountDueGT(v float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldTotalAmountDue, v))
}

// TotalAmountDueGTE applies the GTE predicate on the "total_amount_due" field.
func TotalAmountDueGTE(v float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldTotalAmountDue, v))
}

// TotalAmountDueLT applies the LT predicate on the "total_amount_due" field.
func TotalAmountDueLT(v float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldTotalAmountDue, v))
}

// TotalAmountDueLTE applies the LTE predicate on the "total_amount_due" field.
func TotalAmountDueLTE(v float64) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldTotalAmountDue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CardStatement {
	return predicate.CardStatement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.CardStatement {
	return predicate.CardStatement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.Extraction) predicate.CardStatement {
	return predicate.CardStatement(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.CardStatement {
	return predicate.CardStatement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.CardTransaction) predicate.CardStatement {
	return predicate.CardStatement(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CardStatement) predicate.CardStatement {
	return predicate.CardStatement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CardStatement) predicate.CardStatement {
	return predicate.CardStatement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CardStatement) predicate.CardStatement {
	return predicate.CardStatement(sql.NotPredicates(p))
}
