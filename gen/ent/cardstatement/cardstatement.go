// Code generated by ent, DO NOT EDIT.

package cardstatement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the cardstatement type in the database.
	Label = "card_statement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExtractionID holds the string denoting the extraction_id field in the database.
	FieldExtractionID = "extraction_id"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldIssuerName holds the string denoting the issuer_name field in the database.
	FieldIssuerName = "issuer_name"
	// FieldIssuerAddress holds the string denoting the issuer_address field in the database.
	FieldIssuerAddress = "issuer_address"
	// FieldRecipientName holds the string denoting the recipient_name field in the database.
	FieldRecipientName = "recipient_name"
	// FieldRecipientAddress holds the string denoting the recipient_address field in the database.
	FieldRecipientAddress = "recipient_address"
	// FieldCardHolder holds the string denoting the card_holder field in the database.
	FieldCardHolder = "card_holder"
	// FieldCardNumber holds the string denoting the card_number field in the database.
	FieldCardNumber = "card_number"
	// FieldCardType holds the string denoting the card_type field in the database.
	FieldCardType = "card_type"
	// FieldStatementDate holds the string denoting the statement_date field in the database.
	FieldStatementDate = "statement_date"
	// FieldTotalAmountDue holds the string denoting the total_amount_due field in the database.
	FieldTotalAmountDue = "total_amount_due"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExtraction holds the string denoting the extraction edge name in mutations.
	EdgeExtraction = "extraction"
	// EdgeTransactions holds the string denoting the transactions edge name in mutations.
	EdgeTransactions = "transactions"
	// Table holds the table name of the cardstatement in the database.
	Table = "card_statements"
	// ExtractionTable is the table that holds the extraction relation/edge.
	ExtractionTable = "card_statements"
	// ExtractionInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionInverseTable = "extractions"
	// ExtractionColumn is the table column denoting the extraction relation/edge.
	ExtractionColumn = "extraction_id"
	// TransactionsTable is the table that holds the transactions relation/edge.
	TransactionsTable = "card_transactions"
	// TransactionsInverseTable is the table name for the CardTransaction entity.
	// It exists in this package in order to avoid circular dependency with the "cardtransaction" package.
	TransactionsInverseTable = "card_transactions"
	// TransactionsColumn is the table column denoting the transactions relation/edge.
	TransactionsColumn = "statement_id"
)

// Columns holds all SQL columns for cardstatement fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldExtractionID,
	FieldFilePath,
	FieldIssuerName,
	FieldIssuerAddress,
	FieldRecipientName,
	FieldRecipientAddress,
	FieldCardHolder,
	FieldCardNumber,
	FieldCardType,
	FieldStatementDate,
	FieldTotalAmountDue,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// IssuerNameValidator is a validator for the "issuer_name" field. It is called by the builders before save.
	IssuerNameValidator func(string) error
	// RecipientNameValidator is a validator for the "recipient_name" field. It is called by the builders before save.
	RecipientNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CardStatement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByExtractionID orders the results by the extraction_id field.
func ByExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionID, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByIssuerName orders the results by the issuer_name field.
func ByIssuerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuerName, opts...).ToFunc()
}

// ByIssuerAddress orders the results by the issuer_address field.
func ByIssuerAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuerAddress, opts...).ToFunc()
}

// ByRecipientName orders the results by the recipient_name field.
func ByRecipientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientName, opts...).ToFunc()
}

// ByRecipientAddress orders the results by the recipient_address field.
func ByRecipientAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientAddress, opts...).ToFunc()
}

// ByCardHolder orders the results by the card_holder field.
func ByCardHolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardHolder, opts...).ToFunc()
}

// ByCardNumber orders the results by the card_number field.
func ByCardNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardNumber, opts...).ToFunc()
}

// ByCardType orders the results by the card_type field.
func ByCardType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardType, opts...).ToFunc()
}

// ByStatementDate orders the results by the statement_date field.
func ByStatementDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatementDate, opts...).ToFunc()
}

// ByTotalAmountDue orders the results by the total_amount_due field.
func ByTotalAmountDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmountDue, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExtractionField orders the results by extraction field.
func ByExtractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionStep(), sql.OrderByField(field, opts...))
	}
}

// ByTransactionsCount orders the results by transactions count.
func ByTransactionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransactionsStep(), opts...)
	}
}

// ByTransactions orders the results by transactions terms.
func ByTransactions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExtractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ExtractionTable, ExtractionColumn),
	)
}
func newTransactionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
	)
}
