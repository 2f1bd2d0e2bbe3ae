// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardtransaction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// CardStatementUpdate is the builder for updating CardStatement entities.
type CardStatementUpdate struct {
	config
	hooks    []Hook
	mutation *CardStatementMutation
}

// Where appends a list predicates to the CardStatementUpdate builder.
func (_u *CardStatementUpdate) Where(ps ...predicate.CardStatement) *CardStatementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CardStatementUpdate) SetUserID(v uuid.UUID) *CardStatementUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableUserID(v *uuid.UUID) *CardStatementUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *CardStatementUpdate) SetExtractionID(v uuid.UUID) *CardStatementUpdate {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableExtractionID(v *uuid.UUID) *CardStatementUpdate {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *CardStatementUpdate) SetFilePath(v string) *CardStatementUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableFilePath(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetIssuerName sets the "issuer_name" field.
func (_u *CardStatementUpdate) SetIssuerName(v string) *CardStatementUpdate {
	_u.mutation.SetIssuerName(v)
	return _u
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableIssuerName(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetIssuerName(*v)
	}
	return _u
}

// SetIssuerAddress sets the "issuer_address" field.
func (_u *CardStatementUpdate) SetIssuerAddress(v string) *CardStatementUpdate {
	_u.mutation.SetIssuerAddress(v)
	return _u
}

// SetNillableIssuerAddress sets the "issuer_address" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableIssuerAddress(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetIssuerAddress(*v)
	}
	return _u
}

// ClearIssuerAddress clears the value of the "issuer_address" field.
func (_u *CardStatementUpdate) ClearIssuerAddress() *CardStatementUpdate {
	_u.mutation.ClearIssuerAddress()
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *CardStatementUpdate) SetRecipientName(v string) *CardStatementUpdate {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableRecipientName(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// SetRecipientAddress sets the "recipient_address" field.
func (_u *CardStatementUpdate) SetRecipientAddress(v string) *CardStatementUpdate {
	_u.mutation.SetRecipientAddress(v)
	return _u
}

// SetNillableRecipientAddress sets the "recipient_address" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableRecipientAddress(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetRecipientAddress(*v)
	}
	return _u
}

// ClearRecipientAddress clears the value of the "recipient_address" field.
func (_u *CardStatementUpdate) ClearRecipientAddress() *CardStatementUpdate {
	_u.mutation.ClearRecipientAddress()
	return _u
}

// SetCardHolder sets the "card_holder" field.
func (_u *CardStatementUpdate) SetCardHolder(v string) *CardStatementUpdate {
	_u.mutation.SetCardHolder(v)
	return _u
}

// SetNillableCardHolder sets the "card_holder" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableCardHolder(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetCardHolder(*v)
	}
	return _u
}

// ClearCardHolder clears the value of the "card_holder" field.
func (_u *CardStatementUpdate) ClearCardHolder() *CardStatementUpdate {
	_u.mutation.ClearCardHolder()
	return _u
}

// SetCardNumber sets the "card_number" field.
func (_u *CardStatementUpdate) SetCardNumber(v string) *CardStatementUpdate {
	_u.mutation.SetCardNumber(v)
	return _u
}

// SetNillableCardNumber sets the "card_number" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableCardNumber(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetCardNumber(*v)
	}
	return _u
}

// ClearCardNumber clears the value of the "card_number" field.
func (_u *CardStatementUpdate) ClearCardNumber() *CardStatementUpdate {
	_u.mutation.ClearCardNumber()
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *CardStatementUpdate) SetCardType(v string) *CardStatementUpdate {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableCardType(v *string) *CardStatementUpdate {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// ClearCardType clears the value of the "card_type" field.
func (_u *CardStatementUpdate) ClearCardType() *CardStatementUpdate {
	_u.mutation.ClearCardType()
	return _u
}

// SetStatementDate sets the "statement_date" field.
func (_u *CardStatementUpdate) SetStatementDate(v time.Time) *CardStatementUpdate {
	_u.mutation.SetStatementDate(v)
	return _u
}

// SetNillableStatementDate sets the "statement_date" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableStatementDate(v *time.Time) *CardStatementUpdate {
	if v != nil {
		_u.SetStatementDate(*v)
	}
	return _u
}

// ClearStatementDate clears the value of the "statement_date" field.
func (_u *CardStatementUpdate) ClearStatementDate() *CardStatementUpdate {
	_u.mutation.ClearStatementDate()
	return _u
}

// SetTotalAmountDue sets the "total_amount_due" field.
func (_u *CardStatementUpdate) SetTotalAmountDue(v float64) *CardStatementUpdate {
	_u.mutation.ResetTotalAmountDue()
	_u.mutation.SetTotalAmountDue(v)
	return _u
}

// SetNillableTotalAmountDue sets the "total_amount_due" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableTotalAmountDue(v *float64) *CardStatementUpdate {
	if v != nil {
		_u.SetTotalAmountDue(*v)
	}
	return _u
}

// AddTotalAmountDue adds value to the "total_amount_due" field.
func (_u *CardStatementUpdate) AddTotalAmountDue(v float64) *CardStatementUpdate {
	_u.mutation.AddTotalAmountDue(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardStatementUpdate) SetCreatedAt(v time.Time) *CardStatementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardStatementUpdate) SetNillableCreatedAt(v *time.Time) *CardStatementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardStatementUpdate) SetUpdatedAt(v time.Time) *CardStatementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *CardStatementUpdate) SetExtraction(v *Extraction) *CardStatementUpdate {
	return _u.SetExtractionID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the CardTransaction entity by IDs.
func (_u *CardStatementUpdate) AddTransactionIDs(ids ...uuid.UUID) *CardStatementUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the CardTransaction entity.
func (_u *CardStatementUpdate) AddTransactions(v ...*CardTransaction) *CardStatementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the CardStatementMutation object of the builder.
func (_u *CardStatementUpdate) Mutation() *CardStatementMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *CardStatementUpdate) ClearExtraction() *CardStatementUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearTransactions clears all "transactions" edges to the CardTransaction entity.
func (_u *CardStatementUpdate) ClearTransactions() *CardStatementUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to CardTransaction entities by IDs.
func (_u *CardStatementUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *CardStatementUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to CardTransaction entities.
func (_u *CardStatementUpdate) RemoveTransactions(v ...*CardTransaction) *CardStatementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardStatementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardStatementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardStatementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardStatementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardStatementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cardstatement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardStatementUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := cardstatement.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "CardStatement.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssuerName(); ok {
		if err := cardstatement.IssuerNameValidator(v); err != nil {
			return &ValidationError{Name: "issuer_name", err: fmt.Errorf(`ent: validator failed for field "CardStatement.issuer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecipientName(); ok {
		if err := cardstatement.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`ent: validator failed for field "CardStatement.recipient_name": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardStatement.extraction"`)
	}
	return nil
}

func (_u *CardStatementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardstatement.Table, cardstatement.Columns, sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cardstatement.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(cardstatement.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuerName(); ok {
		_spec.SetField(cardstatement.FieldIssuerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuerAddress(); ok {
		_spec.SetField(cardstatement.FieldIssuerAddress, field.TypeString, value)
	}
	if _u.mutation.IssuerAddressCleared() {
		_spec.ClearField(cardstatement.FieldIssuerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(cardstatement.FieldRecipientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecipientAddress(); ok {
		_spec.SetField(cardstatement.FieldRecipientAddress, field.TypeString, value)
	}
	if _u.mutation.RecipientAddressCleared() {
		_spec.ClearField(cardstatement.FieldRecipientAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CardHolder(); ok {
		_spec.SetField(cardstatement.FieldCardHolder, field.TypeString, value)
	}
	if _u.mutation.CardHolderCleared() {
		_spec.ClearField(cardstatement.FieldCardHolder, field.TypeString)
	}
	if value, ok := _u.mutation.CardNumber(); ok {
		_spec.SetField(cardstatement.FieldCardNumber, field.TypeString, value)
	}
	if _u.mutation.CardNumberCleared() {
		_spec.ClearField(cardstatement.FieldCardNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(cardstatement.FieldCardType, field.TypeString, value)
	}
	if _u.mutation.CardTypeCleared() {
		_spec.ClearField(cardstatement.FieldCardType, field.TypeString)
	}
	if value, ok := _u.mutation.StatementDate(); ok {
		_spec.SetField(cardstatement.FieldStatementDate, field.TypeTime, value)
	}
	if _u.mutation.StatementDateCleared() {
		_spec.ClearField(cardstatement.FieldStatementDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmountDue(); ok {
		_spec.SetField(cardstatement.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmountDue(); ok {
		_spec.AddField(cardstatement.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cardstatement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cardstatement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   cardstatement.ExtractionTable,
			Columns: []string{cardstatement.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   cardstatement.ExtractionTable,
			Columns: []string{cardstatement.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardstatement.TransactionsTable,
			Columns: []string{cardstatement.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardstatement.TransactionsTable,
			Columns: []string{cardstatement.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardstatement.TransactionsTable,
			Columns: []string{cardstatement.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardstatement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardStatementUpdateOne is the builder for updating a single CardStatement entity.
type CardStatementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardStatementMutation
}

// SetUserID sets the "user_id" field.
func (_u *CardStatementUpdateOne) SetUserID(v uuid.UUID) *CardStatementUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableUserID(v *uuid.UUID) *CardStatementUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *CardStatementUpdateOne) SetExtractionID(v uuid.UUID) *CardStatementUpdateOne {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableExtractionID(v *uuid.UUID) *CardStatementUpdateOne {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *CardStatementUpdateOne) SetFilePath(v string) *CardStatementUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableFilePath(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetIssuerName sets the "issuer_name" field.
func (_u *CardStatementUpdateOne) SetIssuerName(v string) *CardStatementUpdateOne {
	_u.mutation.SetIssuerName(v)
	return _u
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableIssuerName(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetIssuerName(*v)
	}
	return _u
}

// SetIssuerAddress sets the "issuer_address" field.
func (_u *CardStatementUpdateOne) SetIssuerAddress(v string) *CardStatementUpdateOne {
	_u.mutation.SetIssuerAddress(v)
	return _u
}

// SetNillableIssuerAddress sets the "issuer_address" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableIssuerAddress(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetIssuerAddress(*v)
	}
	return _u
}

// ClearIssuerAddress clears the value of the "issuer_address" field.
func (_u *CardStatementUpdateOne) ClearIssuerAddress() *CardStatementUpdateOne {
	_u.mutation.ClearIssuerAddress()
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *CardStatementUpdateOne) SetRecipientName(v string) *CardStatementUpdateOne {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableRecipientName(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// SetRecipientAddress sets the "recipient_address" field.
func (_u *CardStatementUpdateOne) SetRecipientAddress(v string) *CardStatementUpdateOne {
	_u.mutation.SetRecipientAddress(v)
	return _u
}

// SetNillableRecipientAddress sets the "recipient_address" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableRecipientAddress(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetRecipientAddress(*v)
	}
	return _u
}

// ClearRecipientAddress clears the value of the "recipient_address" field.
func (_u *CardStatementUpdateOne) ClearRecipientAddress() *CardStatementUpdateOne {
	_u.mutation.ClearRecipientAddress()
	return _u
}

// SetCardHolder sets the "card_holder" field.
func (_u *CardStatementUpdateOne) SetCardHolder(v string) *CardStatementUpdateOne {
	_u.mutation.SetCardHolder(v)
	return _u
}

// SetNillableCardHolder sets the "card_holder" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableCardHolder(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetCardHolder(*v)
	}
	return _u
}

// ClearCardHolder clears the value of the "card_holder" field.
func (_u *CardStatementUpdateOne) ClearCardHolder() *CardStatementUpdateOne {
	_u.mutation.ClearCardHolder()
	return _u
}

// SetCardNumber sets the "card_number" field.
func (_u *CardStatementUpdateOne) SetCardNumber(v string) *CardStatementUpdateOne {
	_u.mutation.SetCardNumber(v)
	return _u
}

// SetNillableCardNumber sets the "card_number" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableCardNumber(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetCardNumber(*v)
	}
	return _u
}

// ClearCardNumber clears the value of the "card_number" field.
func (_u *CardStatementUpdateOne) ClearCardNumber() *CardStatementUpdateOne {
	_u.mutation.ClearCardNumber()
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *CardStatementUpdateOne) SetCardType(v string) *CardStatementUpdateOne {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableCardType(v *string) *CardStatementUpdateOne {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// ClearCardType clears the value of the "card_type" field.
func (_u *CardStatementUpdateOne) ClearCardType() *CardStatementUpdateOne {
	_u.mutation.ClearCardType()
	return _u
}

// SetStatementDate sets the "statement_date" field.
func (_u *CardStatementUpdateOne) SetStatementDate(v time.Time) *CardStatementUpdateOne {
	_u.mutation.SetStatementDate(v)
	return _u
}

// SetNillableStatementDate sets the "statement_date" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableStatementDate(v *time.Time) *CardStatementUpdateOne {
	if v != nil {
		_u.SetStatementDate(*v)
	}
	return _u
}

// ClearStatementDate clears the value of the "statement_date" field.
func (_u *CardStatementUpdateOne) ClearStatementDate() *CardStatementUpdateOne {
	_u.mutation.ClearStatementDate()
	return _u
}

// SetTotalAmountDue sets the "total_amount_due" field.
func (_u *CardStatementUpdateOne) SetTotalAmountDue(v float64) *CardStatementUpdateOne {
	_u.mutation.ResetTotalAmountDue()
	_u.mutation.SetTotalAmountDue(v)
	return _u
}

// SetNillableTotalAmountDue sets the "total_amount_due" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableTotalAmountDue(v *float64) *CardStatementUpdateOne {
	if v != nil {
		_u.SetTotalAmountDue(*v)
	}
	return _u
}

// AddTotalAmountDue adds value to the "total_amount_due" field.
func (_u *CardStatementUpdateOne) AddTotalAmountDue(v float64) *CardStatementUpdateOne {
	_u.mutation.AddTotalAmountDue(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardStatementUpdateOne) SetCreatedAt(v time.Time) *CardStatementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardStatementUpdateOne) SetNillableCreatedAt(v *time.Time) *CardStatementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardStatementUpdateOne) SetUpdatedAt(v time.Time) *CardStatementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *CardStatementUpdateOne) SetExtraction(v *Extraction) *CardStatementUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the CardTransaction entity by IDs.
func (_u *CardStatementUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *CardStatementUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the CardTransaction entity.
func (_u *CardStatementUpdateOne) AddTransactions(v ...*CardTransaction) *CardStatementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the CardStatementMutation object of the builder.
func (_u *CardStatementUpdateOne) Mutation() *CardStatementMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *CardStatementUpdateOne) ClearExtraction() *CardStatementUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearTransactions clears all "transactions" edges to the CardTransaction entity.
func (_u *CardStatementUpdateOne) ClearTransactions() *CardStatementUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to CardTransaction entities by IDs.
func (_u *CardStatementUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *CardStatementUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to CardTransaction entities.
func (_u *CardStatementUpdateOne) RemoveTransactions(v ...*CardTransaction) *CardStatementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the CardStatementUpdate builder.
func (_u *CardStatementUpdateOne) Where(ps ...predicate.CardStatement) *CardStatementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardStatementUpdateOne) Select(field string, fields ...string) *CardStatementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardStatement entity.
func (_u *CardStatementUpdateOne) Save(ctx context.Context) (*CardStatement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardStatementUpdateOne) SaveX(ctx context.Context) *CardStatement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardStatementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardStatementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardStatementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cardstatement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardStatementUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := cardstatement.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "CardStatement.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssuerName(); ok {
		if err := cardstatement.IssuerNameValidator(v); err != nil {
			return &ValidationError{Name: "issuer_name", err: fmt.Errorf(`ent: validator failed for field "CardStatement.issuer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecipientName(); ok {
		if err := cardstatement.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`ent: validator failed for field "CardStatement.recipient_name": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardStatement.extraction"`)
	}
	return nil
}

func (_u *CardStatementUpdateOne) sqlSave(ctx context.Context) (_node *CardStatement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardstatement.Table, cardstatement.Columns, sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardStatement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardstatement.FieldID)
		for _, f := range fields {
			if !cardstatement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardstatement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cardstatement.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(cardstatement.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuerName(); ok {
		_spec.SetField(cardstatement.FieldIssuerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuerAddress(); ok {
		_spec.SetField(cardstatement.FieldIssuerAddress, field.TypeString, value)
	}
	if _u.mutation.IssuerAddressCleared() {
		_spec.ClearField(cardstatement.FieldIssuerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(cardstatement.FieldRecipientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecipientAddress(); ok {
		_spec.SetField(cardstatement.FieldRecipientAddress, field.TypeString, value)
	}
	if _u.mutation.RecipientAddressCleared() {
		_spec.ClearField(cardstatement.FieldRecipientAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CardHolder(); ok {
		_spec.SetField(cardstatement.FieldCardHolder, field.TypeString, value)
	}
	if _u.mutation.CardHolderCleared() {
		_spec.ClearField(cardstatement.FieldCardHolder, field.TypeString)
	}
	if value, ok := _u.mutation.CardNumber(); ok {
		_spec.SetField(cardstatement.FieldCardNumber, field.TypeString, value)
	}
	if _u.mutation.CardNumberCleared() {
		_spec.ClearField(cardstatement.FieldCardNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(cardstatement.FieldCardType, field.TypeString, value)
	}
	if _u.mutation.CardTypeCleared() {
		_spec.ClearField(cardstatement.FieldCardType, field.TypeString)
	}
	if value, ok := _u.mutation.StatementDate(); ok {
		_spec.SetField(cardstatement.FieldStatementDate, field.TypeTime, value)
	}
	if _u.mutation.StatementDateCleared() {
		_spec.ClearField(cardstatement.FieldStatementDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmountDue(); ok {
		_spec.SetField(cardstatement.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmountDue(); ok {
		_spec.AddField(cardstatement.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cardstatement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cardstatement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   cardstatement.ExtractionTable,
			Columns: []string{cardstatement.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   cardstatement.ExtractionTable,
			Columns: []string{cardstatement.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardstatement.TransactionsTable,
			Columns: []string{cardstatement.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardstatement.TransactionsTable,
			Columns: []string{cardstatement.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardstatement.TransactionsTable,
			Columns: []string{cardstatement.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CardStatement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardstatement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
