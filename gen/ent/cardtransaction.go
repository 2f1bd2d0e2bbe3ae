// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardtransaction"
	"github.com/google/uuid"
)

// CardTransaction is the model entity for the CardTransaction schema.
type CardTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StatementID holds the value of the "statement_id" field.
	StatementID uuid.UUID `json:"statement_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardTransactionQuery when eager-loading is set.
	Edges        CardTransactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CardTransactionEdges holds the relations/edges for other nodes in the graph.
type CardTransactionEdges struct {
	// Statement holds the value of the statement edge.
	Statement *CardStatement `json:"statement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StatementOrErr returns the Statement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardTransactionEdges) StatementOrErr() (*CardStatement, error) {
	if e.Statement != nil {
		return e.Statement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cardstatement.Label}
	}
	return nil, &NotLoadedError{edge: "statement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardtransaction.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case cardtransaction.FieldDescription, cardtransaction.FieldCategory:
			values[i] = new(sql.NullString)
		case cardtransaction.FieldID, cardtransaction.FieldStatementID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardTransaction fields.
func (_m *CardTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardtransaction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cardtransaction.FieldStatementID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field statement_id", values[i])
			} else if value != nil {
				_m.StatementID = *value
			}
		case cardtransaction.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case cardtransaction.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case cardtransaction.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CardTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *CardTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStatement queries the "statement" edge of the CardTransaction entity.
func (_m *CardTransaction) QueryStatement() *CardStatementQuery {
	return NewCardTransactionClient(_m.config).QueryStatement(_m)
}

// Update returns a builder for updating this CardTransaction.
// Note that you need to call CardTransaction.Unwrap() before calling this method if this CardTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardTransaction) Update() *CardTransactionUpdateOne {
	return NewCardTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardTransaction) Unwrap() *CardTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("CardTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("statement_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatementID))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteByte(')')
	return builder.String()
}

// CardTransactions is a parsable slice of CardTransaction.
type CardTransactions []*CardTransaction
