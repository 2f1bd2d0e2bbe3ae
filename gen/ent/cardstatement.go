// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/google/uuid"
)

// CardStatement is the model entity for the CardStatement schema.
type CardStatement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// ExtractionID holds the value of the "extraction_id" field.
	ExtractionID uuid.UUID `json:"extraction_id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// IssuerName holds the value of the "issuer_name" field.
	IssuerName string `json:"issuer_name,omitempty"`
	// IssuerAddress holds the value of the "issuer_address" field.
	IssuerAddress *string `json:"issuer_address,omitempty"`
	// RecipientName holds the value of the "recipient_name" field.
	RecipientName string `json:"recipient_name,omitempty"`
	// RecipientAddress holds the value of the "recipient_address" field.
	RecipientAddress *string `json:"recipient_address,omitempty"`
	// CardHolder holds the value of the "card_holder" field.
	CardHolder *string `json:"card_holder,omitempty"`
	// CardNumber holds the value of the "card_number" field.
	CardNumber *string `json:"card_number,omitempty"`
	// CardType holds the value of the "card_type" field.
	CardType *string `json:"card_type,omitempty"`
	// StatementDate holds the value of the "statement_date" field.
	StatementDate *time.Time `json:"statement_date,omitempty"`
	// TotalAmountDue holds the value of the "total_amount_due" field.
	TotalAmountDue float64 `json:"total_amount_due,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardStatementQuery when eager-loading is set.
	Edges        CardStatementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CardStatementEdges holds the relations/edges for other nodes in the graph.
type CardStatementEdges struct {
	// Extraction holds the value of the extraction edge.
	Extraction *Extraction `json:"extraction,omitempty"`
	// Transactions holds the value of the transactions edge.
	Transactions []*CardTransaction `json:"transactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardStatementEdges) ExtractionOrErr() (*Extraction, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extraction.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e CardStatementEdges) TransactionsOrErr() ([]*CardTransaction, error) {
	if e.loadedTypes[1] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardStatement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardstatement.FieldTotalAmountDue:
			values[i] = new(sql.NullFloat64)
		case cardstatement.FieldFilePath, cardstatement.FieldIssuerName, cardstatement.FieldIssuerAddress, cardstatement.FieldRecipientName, cardstatement.FieldRecipientAddress, cardstatement.FieldCardHolder, cardstatement.FieldCardNumber, cardstatement.FieldCardType:
			values[i] = new(sql.NullString)
		case cardstatement.FieldStatementDate, cardstatement.FieldCreatedAt, cardstatement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case cardstatement.FieldID, cardstatement.FieldUserID, cardstatement.FieldExtractionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardStatement fields.
func (_m *CardStatement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardstatement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cardstatement.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case cardstatement.FieldExtractionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_id", values[i])
			} else if value != nil {
				_m.ExtractionID = *value
			}
		case cardstatement.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case cardstatement.FieldIssuerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuer_name", values[i])
			} else if value.Valid {
				_m.IssuerName = value.String
			}
		case cardstatement.FieldIssuerAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuer_address", values[i])
			} else if value.Valid {
				_m.IssuerAddress = new(string)
				*_m.IssuerAddress = value.String
			}
		case cardstatement.FieldRecipientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_name", values[i])
			} else if value.Valid {
				_m.RecipientName = value.String
			}
		case cardstatement.FieldRecipientAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_address", values[i])
			} else if value.Valid {
				_m.RecipientAddress = new(string)
				*_m.RecipientAddress = value.String
			}
		case cardstatement.FieldCardHolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_holder", values[i])
			} else if value.Valid {
				_m.CardHolder = new(string)
				*_m.CardHolder = value.String
			}
		case cardstatement.FieldCardNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_number", values[i])
			} else if value.Valid {
				_m.CardNumber = new(string)
				*_m.CardNumber = value.String
			}
		case cardstatement.FieldCardType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_type", values[i])
			} else if value.Valid {
				_m.CardType = new(string)
				*_m.CardType = value.String
			}
		case cardstatement.FieldStatementDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field statement_date", values[i])
			} else if value.Valid {
				_m.StatementDate = new(time.Time)
				*_m.StatementDate = value.Time
			}
		case cardstatement.FieldTotalAmountDue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount_due", values[i])
			} else if value.Valid {
				_m.TotalAmountDue = value.Float64
			}
		case cardstatement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cardstatement.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CardStatement.
// This includes values selected through modifiers, order, etc.
func (_m *CardStatement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtraction queries the "extraction" edge of the CardStatement entity.
func (_m *CardStatement) QueryExtraction() *ExtractionQuery {
	return NewCardStatementClient(_m.config).QueryExtraction(_m)
}

// QueryTransactions queries the "transactions" edge of the CardStatement entity.
func (_m *CardStatement) QueryTransactions() *CardTransactionQuery {
	return NewCardStatementClient(_m.config).QueryTransactions(_m)
}

// Update returns a builder for updating this CardStatement.
// Note that you need to call CardStatement.Unwrap() before calling this method if this CardStatement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardStatement) Update() *CardStatementUpdateOne {
	return NewCardStatementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardStatement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardStatement) Unwrap() *CardStatement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardStatement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardStatement) String() string {
	var builder strings.Builder
	builder.WriteString("CardStatement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("extraction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionID))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("issuer_name=")
	builder.WriteString(_m.IssuerName)
	builder.WriteString(", ")
	if v := _m.IssuerAddress; v != nil {
		builder.WriteString("issuer_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("recipient_name=")
	builder.WriteString(_m.RecipientName)
	builder.WriteString(", ")
	if v := _m.RecipientAddress; v != nil {
		builder.WriteString("recipient_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CardHolder; v != nil {
		builder.WriteString("card_holder=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CardNumber; v != nil {
		builder.WriteString("card_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CardType; v != nil {
		builder.WriteString("card_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StatementDate; v != nil {
		builder.WriteString("statement_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_amount_due=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmountDue))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CardStatements is a parsable slice of CardStatement.
type CardStatements []*CardStatement
