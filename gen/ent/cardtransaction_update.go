// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardtransaction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// CardTransactionUpdate is the builder for updating CardTransaction entities.
type CardTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *CardTransactionMutation
}

// Where appends a list predicates to the CardTransactionUpdate builder.
func (_u *CardTransactionUpdate) Where(ps ...predicate.CardTransaction) *CardTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatementID sets the "statement_id" field.
func (_u *CardTransactionUpdate) SetStatementID(v uuid.UUID) *CardTransactionUpdate {
	_u.mutation.SetStatementID(v)
	return _u
}

// SetNillableStatementID sets the "statement_id" field if the given value is not nil.
func (_u *CardTransactionUpdate) SetNillableStatementID(v *uuid.UUID) *CardTransactionUpdate {
	if v != nil {
		_u.SetStatementID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CardTransactionUpdate) SetDescription(v string) *CardTransactionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CardTransactionUpdate) SetNillableDescription(v *string) *CardTransactionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CardTransactionUpdate) SetCategory(v string) *CardTransactionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CardTransactionUpdate) SetNillableCategory(v *string) *CardTransactionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CardTransactionUpdate) SetAmount(v float64) *CardTransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CardTransactionUpdate) SetNillableAmount(v *float64) *CardTransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CardTransactionUpdate) AddAmount(v float64) *CardTransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatement sets the "statement" edge to the CardStatement entity.
func (_u *CardTransactionUpdate) SetStatement(v *CardStatement) *CardTransactionUpdate {
	return _u.SetStatementID(v.ID)
}

// Mutation returns the CardTransactionMutation object of the builder.
func (_u *CardTransactionUpdate) Mutation() *CardTransactionMutation {
	return _u.mutation
}

// ClearStatement clears the "statement" edge to the CardStatement entity.
func (_u *CardTransactionUpdate) ClearStatement() *CardTransactionUpdate {
	_u.mutation.ClearStatement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardTransactionUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := cardtransaction.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "CardTransaction.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := cardtransaction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CardTransaction.category": %w`, err)}
		}
	}
	if _u.mutation.StatementCleared() && len(_u.mutation.StatementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardTransaction.statement"`)
	}
	return nil
}

func (_u *CardTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardtransaction.Table, cardtransaction.Columns, sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cardtransaction.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cardtransaction.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(cardtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(cardtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.StatementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardtransaction.StatementTable,
			Columns: []string{cardtransaction.StatementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardtransaction.StatementTable,
			Columns: []string{cardtransaction.StatementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardTransactionUpdateOne is the builder for updating a single CardTransaction entity.
type CardTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardTransactionMutation
}

// SetStatementID sets the "statement_id" field.
func (_u *CardTransactionUpdateOne) SetStatementID(v uuid.UUID) *CardTransactionUpdateOne {
	_u.mutation.SetStatementID(v)
	return _u
}

// SetNillableStatementID sets the "statement_id" field if the given value is not nil.
func (_u *CardTransactionUpdateOne) SetNillableStatementID(v *uuid.UUID) *CardTransactionUpdateOne {
	if v != nil {
		_u.SetStatementID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CardTransactionUpdateOne) SetDescription(v string) *CardTransactionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CardTransactionUpdateOne) SetNillableDescription(v *string) *CardTransactionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CardTransactionUpdateOne) SetCategory(v string) *CardTransactionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CardTransactionUpdateOne) SetNillableCategory(v *string) *CardTransactionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CardTransactionUpdateOne) SetAmount(v float64) *CardTransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CardTransactionUpdateOne) SetNillableAmount(v *float64) *CardTransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CardTransactionUpdateOne) AddAmount(v float64) *CardTransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatement sets the "statement" edge to the CardStatement entity.
func (_u *CardTransactionUpdateOne) SetStatement(v *CardStatement) *CardTransactionUpdateOne {
	return _u.SetStatementID(v.ID)
}

// Mutation returns the CardTransactionMutation object of the builder.
func (_u *CardTransactionUpdateOne) Mutation() *CardTransactionMutation {
	return _u.mutation
}

// ClearStatement clears the "statement" edge to the CardStatement entity.
func (_u *CardTransactionUpdateOne) ClearStatement() *CardTransactionUpdateOne {
	_u.mutation.ClearStatement()
	return _u
}

// Where appends a list predicates to the CardTransactionUpdate builder.
func (_u *CardTransactionUpdateOne) Where(ps ...predicate.CardTransaction) *CardTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardTransactionUpdateOne) Select(field string, fields ...string) *CardTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardTransaction entity.
func (_u *CardTransactionUpdateOne) Save(ctx context.Context) (*CardTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardTransactionUpdateOne) SaveX(ctx context.Context) *CardTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := cardtransaction.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "CardTransaction.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := cardtransaction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CardTransaction.category": %w`, err)}
		}
	}
	if _u.mutation.StatementCleared() && len(_u.mutation.StatementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardTransaction.statement"`)
	}
	return nil
}

func (_u *CardTransactionUpdateOne) sqlSave(ctx context.Context) (_node *CardTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardtransaction.Table, cardtransaction.Columns, sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardtransaction.FieldID)
		for _, f := range fields {
			if !cardtransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardtransaction.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cardtransaction.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cardtransaction.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(cardtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(cardtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.StatementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardtransaction.StatementTable,
			Columns: []string{cardtransaction.StatementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardtransaction.StatementTable,
			Columns: []string{cardtransaction.StatementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CardTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
