// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardtransaction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/google/uuid"
)

// CardStatementCreate is the builder for creating a CardStatement entity.
type CardStatementCreate struct {
	config
	mutation *CardStatementMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CardStatementCreate) SetUserID(v uuid.UUID) *CardStatementCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExtractionID sets the "extraction_id" field.
func (_c *CardStatementCreate) SetExtractionID(v uuid.UUID) *CardStatementCreate {
	_c.mutation.SetExtractionID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *CardStatementCreate) SetFilePath(v string) *CardStatementCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetIssuerName sets the "issuer_name" field.
func (_c *CardStatementCreate) SetIssuerName(v string) *CardStatementCreate {
	_c.mutation.SetIssuerName(v)
	return _c
}

// SetIssuerAddress sets the "issuer_address" field.
func (_c *CardStatementCreate) SetIssuerAddress(v string) *CardStatementCreate {
	_c.mutation.SetIssuerAddress(v)
	return _c
}

// SetNillableIssuerAddress sets the "issuer_address" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableIssuerAddress(v *string) *CardStatementCreate {
	if v != nil {
		_c.SetIssuerAddress(*v)
	}
	return _c
}

// SetRecipientName sets the "recipient_name" field.
func (_c *CardStatementCreate) SetRecipientName(v string) *CardStatementCreate {
	_c.mutation.SetRecipientName(v)
	return _c
}

// SetRecipientAddress sets the "recipient_address" field.
func (_c *CardStatementCreate) SetRecipientAddress(v string) *CardStatementCreate {
	_c.mutation.SetRecipientAddress(v)
	return _c
}

// SetNillableRecipientAddress sets the "recipient_address" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableRecipientAddress(v *string) *CardStatementCreate {
	if v != nil {
		_c.SetRecipientAddress(*v)
	}
	return _c
}

// SetCardHolder sets the "card_holder" field.
func (_c *CardStatementCreate) SetCardHolder(v string) *CardStatementCreate {
	_c.mutation.SetCardHolder(v)
	return _c
}

// SetNillableCardHolder sets the "card_holder" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableCardHolder(v *string) *CardStatementCreate {
	if v != nil {
		_c.SetCardHolder(*v)
	}
	return _c
}

// SetCardNumber sets the "card_number" field.
func (_c *CardStatementCreate) SetCardNumber(v string) *CardStatementCreate {
	_c.mutation.SetCardNumber(v)
	return _c
}

// SetNillableCardNumber sets the "card_number" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableCardNumber(v *string) *CardStatementCreate {
	if v != nil {
		_c.SetCardNumber(*v)
	}
	return _c
}

// SetCardType sets the "card_type" field.
func (_c *CardStatementCreate) SetCardType(v string) *CardStatementCreate {
	_c.mutation.SetCardType(v)
	return _c
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableCardType(v *string) *CardStatementCreate {
	if v != nil {
		_c.SetCardType(*v)
	}
	return _c
}

// SetStatementDate sets the "statement_date" field.
func (_c *CardStatementCreate) SetStatementDate(v time.Time) *CardStatementCreate {
	_c.mutation.SetStatementDate(v)
	return _c
}

// SetNillableStatementDate sets the "statement_date" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableStatementDate(v *time.Time) *CardStatementCreate {
	if v != nil {
		_c.SetStatementDate(*v)
	}
	return _c
}

// SetTotalAmountDue sets the "total_amount_due" field.
func (_c *CardStatementCreate) SetTotalAmountDue(v float64) *CardStatementCreate {
	_c.mutation.SetTotalAmountDue(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardStatementCreate) SetCreatedAt(v time.Time) *CardStatementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableCreatedAt(v *time.Time) *CardStatementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CardStatementCreate) SetUpdatedAt(v time.Time) *CardStatementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableUpdatedAt(v *time.Time) *CardStatementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardStatementCreate) SetID(v uuid.UUID) *CardStatementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CardStatementCreate) SetNillableID(v *uuid.UUID) *CardStatementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_c *CardStatementCreate) SetExtraction(v *Extraction) *CardStatementCreate {
	return _c.SetExtractionID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the CardTransaction entity by IDs.
func (_c *CardStatementCreate) AddTransactionIDs(ids ...uuid.UUID) *CardStatementCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the CardTransaction entity.
func (_c *CardStatementCreate) AddTransactions(v ...*CardTransaction) *CardStatementCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// Mutation returns the CardStatementMutation object of the builder.
func (_c *CardStatementCreate) Mutation() *CardStatementMutation {
	return _c.mutation
}

// Save creates the CardStatement in the database.
func (_c *CardStatementCreate) Save(ctx context.Context) (*CardStatement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardStatementCreate) SaveX(ctx context.Context) *CardStatement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardStatementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardStatementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardStatementCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cardstatement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cardstatement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cardstatement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardStatementCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CardStatement.user_id"`)}
	}
	if _, ok := _c.mutation.ExtractionID(); !ok {
		return &ValidationError{Name: "extraction_id", err: errors.New(`ent: missing required field "CardStatement.extraction_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "CardStatement.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := cardstatement.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "CardStatement.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssuerName(); !ok {
		return &ValidationError{Name: "issuer_name", err: errors.New(`ent: missing required field "CardStatement.issuer_name"`)}
	}
	if v, ok := _c.mutation.IssuerName(); ok {
		if err := cardstatement.IssuerNameValidator(v); err != nil {
			return &ValidationError{Name: "issuer_name", err: fmt.Errorf(`ent: validator failed for field "CardStatement.issuer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecipientName(); !ok {
		return &ValidationError{Name: "recipient_name", err: errors.New(`ent: missing required field "CardStatement.recipient_name"`)}
	}
	if v, ok := _c.mutation.RecipientName(); ok {
		if err := cardstatement.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`ent: validator failed for field "CardStatement.recipient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAmountDue(); !ok {
		return &ValidationError{Name: "total_amount_due", err: errors.New(`ent: missing required field "CardStatement.total_amount_due"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CardStatement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CardStatement.updated_at"`)}
	}
	if len(_c.mutation.ExtractionIDs()) == 0 {
		return &ValidationError{Name: "extraction", err: errors.New(`ent: missing required edge "CardStatement.extraction"`)}
	}
	return nil
}

func (_c *CardStatementCreate) sqlSave(ctx context.Context) (*CardStatement, error) {
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

func (_c *CardStatementCreate) createSpec() (*CardStatement, *sqlgraph.CreateSpec) {
	var (
		_node = &CardStatement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardstatement.Table, sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(cardstatement.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(cardstatement.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.IssuerName(); ok {
		_spec.SetField(cardstatement.FieldIssuerName, field.TypeString, value)
		_node.IssuerName = value
	}
	if value, ok := _c.mutation.IssuerAddress(); ok {
		_spec.SetField(cardstatement.FieldIssuerAddress, field.TypeString, value)
		_node.IssuerAddress = &value
	}
	if value, ok := _c.mutation.RecipientName(); ok {
		_spec.SetField(cardstatement.FieldRecipientName, field.TypeString, value)
		_node.RecipientName = value
	}
	if value, ok := _c.mutation.RecipientAddress(); ok {
		_spec.SetField(cardstatement.FieldRecipientAddress, field.TypeString, value)
		_node.RecipientAddress = &value
	}
	if value, ok := _c.mutation.CardHolder(); ok {
		_spec.SetField(cardstatement.FieldCardHolder, field.TypeString, value)
		_node.CardHolder = &value
	}
	if value, ok := _c.mutation.CardNumber(); ok {
		_spec.SetField(cardstatement.FieldCardNumber, field.TypeString, value)
		_node.CardNumber = &value
	}
	if value, ok := _c.mutation.CardType(); ok {
		_spec.SetField(cardstatement.FieldCardType, field.TypeString, value)
		_node.CardType = &value
	}
	if value, ok := _c.mutation.StatementDate(); ok {
		_spec.SetField(cardstatement.FieldStatementDate, field.TypeTime, value)
		_node.StatementDate = &value
	}
	if value, ok := _c.mutation.TotalAmountDue(); ok {
		_spec.SetField(cardstatement.FieldTotalAmountDue, field.TypeFloat64, value)
		_node.TotalAmountDue = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cardstatement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cardstatement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_node.ExtractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardStatementCreateBulk is the builder for creating many CardStatement entities in bulk.
type CardStatementCreateBulk struct {
	config
	err      error
	builders []*CardStatementCreate
}

// Save creates the CardStatement entities in the database.
func (_c *CardStatementCreateBulk) Save(ctx context.Context) ([]*CardStatement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardStatement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardStatementMutation)
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
func (_c *CardStatementCreateBulk) SaveX(ctx context.Context) []*CardStatement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardStatementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardStatementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
