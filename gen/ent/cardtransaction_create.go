// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardtransaction"
	"github.com/google/uuid"
)

// CardTransactionCreate is the builder for creating a CardTransaction entity.
type CardTransactionCreate struct {
	config
	mutation *CardTransactionMutation
	hooks    []Hook
}

// SetStatementID sets the "statement_id" field.
func (_c *CardTransactionCreate) SetStatementID(v uuid.UUID) *CardTransactionCreate {
	_c.mutation.SetStatementID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CardTransactionCreate) SetDescription(v string) *CardTransactionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CardTransactionCreate) SetCategory(v string) *CardTransactionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CardTransactionCreate) SetAmount(v float64) *CardTransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CardTransactionCreate) SetID(v uuid.UUID) *CardTransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CardTransactionCreate) SetNillableID(v *uuid.UUID) *CardTransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStatement sets the "statement" edge to the CardStatement entity.
func (_c *CardTransactionCreate) SetStatement(v *CardStatement) *CardTransactionCreate {
	return _c.SetStatementID(v.ID)
}

// Mutation returns the CardTransactionMutation object of the builder.
func (_c *CardTransactionCreate) Mutation() *CardTransactionMutation {
	return _c.mutation
}

// Save creates the CardTransaction in the database.
func (_c *CardTransactionCreate) Save(ctx context.Context) (*CardTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardTransactionCreate) SaveX(ctx context.Context) *CardTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardTransactionCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := cardtransaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardTransactionCreate) check() error {
	if _, ok := _c.mutation.StatementID(); !ok {
		return &ValidationError{Name: "statement_id", err: errors.New(`ent: missing required field "CardTransaction.statement_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "CardTransaction.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := cardtransaction.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "CardTransaction.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CardTransaction.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := cardtransaction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CardTransaction.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CardTransaction.amount"`)}
	}
	if len(_c.mutation.StatementIDs()) == 0 {
		return &ValidationError{Name: "statement", err: errors.New(`ent: missing required edge "CardTransaction.statement"`)}
	}
	return nil
}

func (_c *CardTransactionCreate) sqlSave(ctx context.Context) (*CardTransaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardTransactionCreate) createSpec() (*CardTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &CardTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardtransaction.Table, sqlgraph.NewFieldSpec(cardtransaction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(cardtransaction.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(cardtransaction.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(cardtransaction.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if nodes := _c.mutation.StatementIDs(); len(nodes) > 0 {
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
		_node.StatementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardTransactionCreateBulk is the builder for creating many CardTransaction entities in bulk.
type CardTransactionCreateBulk struct {
	config
	err      error
	builders []*CardTransactionCreate
}

// Save creates the CardTransaction entities in the database.
func (_c *CardTransactionCreateBulk) Save(ctx context.Context) ([]*CardTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardTransactionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CardTransactionCreateBulk) SaveX(ctx context.Context) []*CardTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
