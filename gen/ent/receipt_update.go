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
	"github.com/Lazzzer/structurizer-sub000/gen/ent/extraction"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/predicate"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receipt"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/receiptitem"
	"github.com/google/uuid"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdate) SetUserID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableUserID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *ReceiptUpdate) SetExtractionID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableExtractionID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReceiptUpdate) SetFilePath(v string) *ReceiptUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableFilePath(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFrom sets the "from" field.
func (_u *ReceiptUpdate) SetFrom(v string) *ReceiptUpdate {
	_u.mutation.SetFrom(v)
	return _u
}

// SetNillableFrom sets the "from" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableFrom(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetFrom(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptUpdate) SetCategory(v string) *ReceiptUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCategory(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptUpdate) SetTotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptUpdate) AddTotal(v float64) *ReceiptUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetNumber sets the "number" field.
func (_u *ReceiptUpdate) SetNumber(v string) *ReceiptUpdate {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableNumber(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *ReceiptUpdate) ClearNumber() *ReceiptUpdate {
	_u.mutation.ClearNumber()
	return _u
}

// SetTime sets the "time" field.
func (_u *ReceiptUpdate) SetTime(v string) *ReceiptUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTime(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// ClearTime clears the value of the "time" field.
func (_u *ReceiptUpdate) ClearTime() *ReceiptUpdate {
	_u.mutation.ClearTime()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptUpdate) SetSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSubtotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ReceiptUpdate) AddSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *ReceiptUpdate) ClearSubtotal() *ReceiptUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *ReceiptUpdate) SetTax(v float64) *ReceiptUpdate {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTax(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *ReceiptUpdate) AddTax(v float64) *ReceiptUpdate {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *ReceiptUpdate) ClearTax() *ReceiptUpdate {
	_u.mutation.ClearTax()
	return _u
}

// SetTip sets the "tip" field.
func (_u *ReceiptUpdate) SetTip(v float64) *ReceiptUpdate {
	_u.mutation.ResetTip()
	_u.mutation.SetTip(v)
	return _u
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTip(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTip(*v)
	}
	return _u
}

// AddTip adds value to the "tip" field.
func (_u *ReceiptUpdate) AddTip(v float64) *ReceiptUpdate {
	_u.mutation.AddTip(v)
	return _u
}

// ClearTip clears the value of the "tip" field.
func (_u *ReceiptUpdate) ClearTip() *ReceiptUpdate {
	_u.mutation.ClearTip()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdate) SetCreatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdate) SetUpdatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *ReceiptUpdate) SetExtraction(v *Extraction) *ReceiptUpdate {
	return _u.SetExtractionID(v.ID)
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by IDs.
func (_u *ReceiptUpdate) AddItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdate) AddItems(v ...*ReceiptItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *ReceiptUpdate) ClearExtraction() *ReceiptUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearItems clears all "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdate) ClearItems() *ReceiptUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ReceiptItem entities by IDs.
func (_u *ReceiptUpdate) RemoveItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ReceiptItem entities.
func (_u *ReceiptUpdate) RemoveItems(v ...*ReceiptItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := receipt.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Receipt.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.From(); ok {
		if err := receipt.FromValidator(v); err != nil {
			return &ValidationError{Name: "from", err: fmt.Errorf(`ent: validator failed for field "Receipt.from": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := receipt.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Receipt.category": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.extraction"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(receipt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(receipt.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.From(); ok {
		_spec.SetField(receipt.FieldFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(receipt.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(receipt.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(receipt.FieldTime, field.TypeString, value)
	}
	if _u.mutation.TimeCleared() {
		_spec.ClearField(receipt.FieldTime, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(receipt.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(receipt.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(receipt.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(receipt.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tip(); ok {
		_spec.SetField(receipt.FieldTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTip(); ok {
		_spec.AddField(receipt.FieldTip, field.TypeFloat64, value)
	}
	if _u.mutation.TipCleared() {
		_spec.ClearField(receipt.FieldTip, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receipt.ExtractionTable,
			Columns: []string{receipt.ExtractionColumn},
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
			Table:   receipt.ExtractionTable,
			Columns: []string{receipt.ExtractionColumn},
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
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdateOne) SetUserID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableUserID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *ReceiptUpdateOne) SetExtractionID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableExtractionID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReceiptUpdateOne) SetFilePath(v string) *ReceiptUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableFilePath(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFrom sets the "from" field.
func (_u *ReceiptUpdateOne) SetFrom(v string) *ReceiptUpdateOne {
	_u.mutation.SetFrom(v)
	return _u
}

// SetNillableFrom sets the "from" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableFrom(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetFrom(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptUpdateOne) SetCategory(v string) *ReceiptUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCategory(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptUpdateOne) SetTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptUpdateOne) AddTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetNumber sets the "number" field.
func (_u *ReceiptUpdateOne) SetNumber(v string) *ReceiptUpdateOne {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableNumber(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *ReceiptUpdateOne) ClearNumber() *ReceiptUpdateOne {
	_u.mutation.ClearNumber()
	return _u
}

// SetTime sets the "time" field.
func (_u *ReceiptUpdateOne) SetTime(v string) *ReceiptUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTime(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// ClearTime clears the value of the "time" field.
func (_u *ReceiptUpdateOne) ClearTime() *ReceiptUpdateOne {
	_u.mutation.ClearTime()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptUpdateOne) SetSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSubtotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ReceiptUpdateOne) AddSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *ReceiptUpdateOne) ClearSubtotal() *ReceiptUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *ReceiptUpdateOne) SetTax(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTax(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *ReceiptUpdateOne) AddTax(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *ReceiptUpdateOne) ClearTax() *ReceiptUpdateOne {
	_u.mutation.ClearTax()
	return _u
}

// SetTip sets the "tip" field.
func (_u *ReceiptUpdateOne) SetTip(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTip()
	_u.mutation.SetTip(v)
	return _u
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTip(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTip(*v)
	}
	return _u
}

// AddTip adds value to the "tip" field.
func (_u *ReceiptUpdateOne) AddTip(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTip(v)
	return _u
}

// ClearTip clears the value of the "tip" field.
func (_u *ReceiptUpdateOne) ClearTip() *ReceiptUpdateOne {
	_u.mutation.ClearTip()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdateOne) SetCreatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdateOne) SetUpdatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *ReceiptUpdateOne) SetExtraction(v *Extraction) *ReceiptUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by IDs.
func (_u *ReceiptUpdateOne) AddItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdateOne) AddItems(v ...*ReceiptItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *ReceiptUpdateOne) ClearExtraction() *ReceiptUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearItems clears all "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdateOne) ClearItems() *ReceiptUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ReceiptItem entities by IDs.
func (_u *ReceiptUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ReceiptItem entities.
func (_u *ReceiptUpdateOne) RemoveItems(v ...*ReceiptItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := receipt.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Receipt.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.From(); ok {
		if err := receipt.FromValidator(v); err != nil {
			return &ValidationError{Name: "from", err: fmt.Errorf(`ent: validator failed for field "Receipt.from": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := receipt.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Receipt.category": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.extraction"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
		_spec.SetField(receipt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(receipt.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.From(); ok {
		_spec.SetField(receipt.FieldFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(receipt.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(receipt.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(receipt.FieldTime, field.TypeString, value)
	}
	if _u.mutation.TimeCleared() {
		_spec.ClearField(receipt.FieldTime, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(receipt.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(receipt.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(receipt.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(receipt.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tip(); ok {
		_spec.SetField(receipt.FieldTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTip(); ok {
		_spec.AddField(receipt.FieldTip, field.TypeFloat64, value)
	}
	if _u.mutation.TipCleared() {
		_spec.ClearField(receipt.FieldTip, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receipt.ExtractionTable,
			Columns: []string{receipt.ExtractionColumn},
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
			Table:   receipt.ExtractionTable,
			Columns: []string{receipt.ExtractionColumn},
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
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
