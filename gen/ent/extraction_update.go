// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/cardstatement"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoice"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/predicate"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receipt"
	"github.com/google/uuid"
)

// ExtractionUpdate is the builder for updating Extraction entities.
type ExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionMutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdate) Where(ps ...predicate.Extraction) *ExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExtractionUpdate) SetUserID(v uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableUserID(v *uuid.UUID) *ExtractionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExtractionUpdate) SetFilename(v string) *ExtractionUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFilename(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ExtractionUpdate) SetFilePath(v string) *ExtractionUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFilePath(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdate) SetStatus(v string) *ExtractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableStatus(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractionUpdate) SetCategory(v string) *ExtractionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableCategory(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ExtractionUpdate) ClearCategory() *ExtractionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetText sets the "text" field.
func (_u *ExtractionUpdate) SetText(v string) *ExtractionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableText(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ExtractionUpdate) ClearText() *ExtractionUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetData sets the "data" field.
func (_u *ExtractionUpdate) SetData(v json.RawMessage) *ExtractionUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *ExtractionUpdate) AppendData(v json.RawMessage) *ExtractionUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ExtractionUpdate) ClearData() *ExtractionUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionUpdate) SetCreatedAt(v time.Time) *ExtractionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionUpdate) SetUpdatedAt(v time.Time) *ExtractionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *ExtractionUpdate) SetReceiptID(id uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetNillableReceiptID sets the "receipt" edge to the Receipt entity by ID if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableReceiptID(id *uuid.UUID) *ExtractionUpdate {
	if id != nil {
		_u = _u.SetReceiptID(*id)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ExtractionUpdate) SetReceipt(v *Receipt) *ExtractionUpdate {
	return _u.SetReceiptID(v.ID)
}

// SetInvoiceID sets the "invoice" edge to the Invoice entity by ID.
func (_u *ExtractionUpdate) SetInvoiceID(id uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetNillableInvoiceID sets the "invoice" edge to the Invoice entity by ID if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableInvoiceID(id *uuid.UUID) *ExtractionUpdate {
	if id != nil {
		_u = _u.SetInvoiceID(*id)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ExtractionUpdate) SetInvoice(v *Invoice) *ExtractionUpdate {
	return _u.SetInvoiceID(v.ID)
}

// SetCardStatementID sets the "card_statement" edge to the CardStatement entity by ID.
func (_u *ExtractionUpdate) SetCardStatementID(id uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetCardStatementID(id)
	return _u
}

// SetNillableCardStatementID sets the "card_statement" edge to the CardStatement entity by ID if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableCardStatementID(id *uuid.UUID) *ExtractionUpdate {
	if id != nil {
		_u = _u.SetCardStatementID(*id)
	}
	return _u
}

// SetCardStatement sets the "card_statement" edge to the CardStatement entity.
func (_u *ExtractionUpdate) SetCardStatement(v *CardStatement) *ExtractionUpdate {
	return _u.SetCardStatementID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdate) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ExtractionUpdate) ClearReceipt() *ExtractionUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ExtractionUpdate) ClearInvoice() *ExtractionUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// ClearCardStatement clears the "card_statement" edge to the CardStatement entity.
func (_u *ExtractionUpdate) ClearCardStatement() *ExtractionUpdate {
	_u.mutation.ClearCardStatement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extraction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := extraction.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Extraction.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := extraction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Extraction.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(extraction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(extraction.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extraction.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(extraction.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(extraction.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(extraction.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(extraction.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extraction.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(extraction.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extraction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.ReceiptTable,
			Columns: []string{extraction.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.ReceiptTable,
			Columns: []string{extraction.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.InvoiceTable,
			Columns: []string{extraction.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.InvoiceTable,
			Columns: []string{extraction.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CardStatementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.CardStatementTable,
			Columns: []string{extraction.CardStatementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardStatementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.CardStatementTable,
			Columns: []string{extraction.CardStatementColumn},
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
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionUpdateOne is the builder for updating a single Extraction entity.
type ExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExtractionUpdateOne) SetUserID(v uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableUserID(v *uuid.UUID) *ExtractionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExtractionUpdateOne) SetFilename(v string) *ExtractionUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFilename(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ExtractionUpdateOne) SetFilePath(v string) *ExtractionUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFilePath(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdateOne) SetStatus(v string) *ExtractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableStatus(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractionUpdateOne) SetCategory(v string) *ExtractionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableCategory(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ExtractionUpdateOne) ClearCategory() *ExtractionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetText sets the "text" field.
func (_u *ExtractionUpdateOne) SetText(v string) *ExtractionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableText(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ExtractionUpdateOne) ClearText() *ExtractionUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetData sets the "data" field.
func (_u *ExtractionUpdateOne) SetData(v json.RawMessage) *ExtractionUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *ExtractionUpdateOne) AppendData(v json.RawMessage) *ExtractionUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ExtractionUpdateOne) ClearData() *ExtractionUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionUpdateOne) SetCreatedAt(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionUpdateOne) SetUpdatedAt(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *ExtractionUpdateOne) SetReceiptID(id uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetNillableReceiptID sets the "receipt" edge to the Receipt entity by ID if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableReceiptID(id *uuid.UUID) *ExtractionUpdateOne {
	if id != nil {
		_u = _u.SetReceiptID(*id)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ExtractionUpdateOne) SetReceipt(v *Receipt) *ExtractionUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// SetInvoiceID sets the "invoice" edge to the Invoice entity by ID.
func (_u *ExtractionUpdateOne) SetInvoiceID(id uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetInvoiceID(id)
	return _u
}

// SetNillableInvoiceID sets the "invoice" edge to the Invoice entity by ID if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableInvoiceID(id *uuid.UUID) *ExtractionUpdateOne {
	if id != nil {
		_u = _u.SetInvoiceID(*id)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ExtractionUpdateOne) SetInvoice(v *Invoice) *ExtractionUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// SetCardStatementID sets the "card_statement" edge to the CardStatement entity by ID.
func (_u *ExtractionUpdateOne) SetCardStatementID(id uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetCardStatementID(id)
	return _u
}

// SetNillableCardStatementID sets the "card_statement" edge to the CardStatement entity by ID if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableCardStatementID(id *uuid.UUID) *ExtractionUpdateOne {
	if id != nil {
		_u = _u.SetCardStatementID(*id)
	}
	return _u
}

// SetCardStatement sets the "card_statement" edge to the CardStatement entity.
func (_u *ExtractionUpdateOne) SetCardStatement(v *CardStatement) *ExtractionUpdateOne {
	return _u.SetCardStatementID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdateOne) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ExtractionUpdateOne) ClearReceipt() *ExtractionUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ExtractionUpdateOne) ClearInvoice() *ExtractionUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// ClearCardStatement clears the "card_statement" edge to the CardStatement entity.
func (_u *ExtractionUpdateOne) ClearCardStatement() *ExtractionUpdateOne {
	_u.mutation.ClearCardStatement()
	return _u
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdateOne) Where(ps ...predicate.Extraction) *ExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionUpdateOne) Select(field string, fields ...string) *ExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Extraction entity.
func (_u *ExtractionUpdateOne) Save(ctx context.Context) (*Extraction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdateOne) SaveX(ctx context.Context) *Extraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extraction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := extraction.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Extraction.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := extraction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Extraction.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionUpdateOne) sqlSave(ctx context.Context) (_node *Extraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Extraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraction.FieldID)
		for _, f := range fields {
			if !extraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraction.FieldID {
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
		_spec.SetField(extraction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(extraction.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extraction.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(extraction.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(extraction.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(extraction.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(extraction.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extraction.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(extraction.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extraction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.ReceiptTable,
			Columns: []string{extraction.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.ReceiptTable,
			Columns: []string{extraction.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.InvoiceTable,
			Columns: []string{extraction.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.InvoiceTable,
			Columns: []string{extraction.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CardStatementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.CardStatementTable,
			Columns: []string{extraction.CardStatementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cardstatement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardStatementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   extraction.CardStatementTable,
			Columns: []string{extraction.CardStatementColumn},
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
	_node = &Extraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
