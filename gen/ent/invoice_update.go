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
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoice"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/invoiceitem"
	"github.com/Lazzzer/structurizer-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InvoiceUpdate) SetUserID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableUserID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *InvoiceUpdate) SetExtractionID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableExtractionID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdate) SetFilePath(v string) *InvoiceUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilePath(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFromName sets the "from_name" field.
func (_u *InvoiceUpdate) SetFromName(v string) *InvoiceUpdate {
	_u.mutation.SetFromName(v)
	return _u
}

// SetNillableFromName sets the "from_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFromName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFromName(*v)
	}
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *InvoiceUpdate) SetFromAddress(v string) *InvoiceUpdate {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFromAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// ClearFromAddress clears the value of the "from_address" field.
func (_u *InvoiceUpdate) ClearFromAddress() *InvoiceUpdate {
	_u.mutation.ClearFromAddress()
	return _u
}

// SetToName sets the "to_name" field.
func (_u *InvoiceUpdate) SetToName(v string) *InvoiceUpdate {
	_u.mutation.SetToName(v)
	return _u
}

// SetNillableToName sets the "to_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableToName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetToName(*v)
	}
	return _u
}

// SetToAddress sets the "to_address" field.
func (_u *InvoiceUpdate) SetToAddress(v string) *InvoiceUpdate {
	_u.mutation.SetToAddress(v)
	return _u
}

// SetNillableToAddress sets the "to_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableToAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetToAddress(*v)
	}
	return _u
}

// ClearToAddress clears the value of the "to_address" field.
func (_u *InvoiceUpdate) ClearToAddress() *InvoiceUpdate {
	_u.mutation.ClearToAddress()
	return _u
}

// SetNumber sets the "number" field.
func (_u *InvoiceUpdate) SetNumber(v string) *InvoiceUpdate {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *InvoiceUpdate) ClearNumber() *InvoiceUpdate {
	_u.mutation.ClearNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdate) SetCurrency(v string) *InvoiceUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrency(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InvoiceUpdate) ClearCurrency() *InvoiceUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetTotalAmountDue sets the "total_amount_due" field.
func (_u *InvoiceUpdate) SetTotalAmountDue(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmountDue()
	_u.mutation.SetTotalAmountDue(v)
	return _u
}

// SetNillableTotalAmountDue sets the "total_amount_due" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmountDue(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmountDue(*v)
	}
	return _u
}

// AddTotalAmountDue adds value to the "total_amount_due" field.
func (_u *InvoiceUpdate) AddTotalAmountDue(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalAmountDue(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *InvoiceUpdate) SetExtraction(v *Extraction) *InvoiceUpdate {
	return _u.SetExtractionID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *InvoiceUpdate) ClearExtraction() *InvoiceUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := invoice.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromName(); ok {
		if err := invoice.FromNameValidator(v); err != nil {
			return &ValidationError{Name: "from_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.from_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToName(); ok {
		if err := invoice.ToNameValidator(v); err != nil {
			return &ValidationError{Name: "to_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.to_name": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.extraction"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(invoice.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromName(); ok {
		_spec.SetField(invoice.FieldFromName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(invoice.FieldFromAddress, field.TypeString, value)
	}
	if _u.mutation.FromAddressCleared() {
		_spec.ClearField(invoice.FieldFromAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ToName(); ok {
		_spec.SetField(invoice.FieldToName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToAddress(); ok {
		_spec.SetField(invoice.FieldToAddress, field.TypeString, value)
	}
	if _u.mutation.ToAddressCleared() {
		_spec.ClearField(invoice.FieldToAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(invoice.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(invoice.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(invoice.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmountDue(); ok {
		_spec.SetField(invoice.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmountDue(); ok {
		_spec.AddField(invoice.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoice.ExtractionTable,
			Columns: []string{invoice.ExtractionColumn},
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
			Table:   invoice.ExtractionTable,
			Columns: []string{invoice.ExtractionColumn},
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
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
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
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetUserID sets the "user_id" field.
func (_u *InvoiceUpdateOne) SetUserID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableUserID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *InvoiceUpdateOne) SetExtractionID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableExtractionID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdateOne) SetFilePath(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilePath(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFromName sets the "from_name" field.
func (_u *InvoiceUpdateOne) SetFromName(v string) *InvoiceUpdateOne {
	_u.mutation.SetFromName(v)
	return _u
}

// SetNillableFromName sets the "from_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFromName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFromName(*v)
	}
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *InvoiceUpdateOne) SetFromAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFromAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// ClearFromAddress clears the value of the "from_address" field.
func (_u *InvoiceUpdateOne) ClearFromAddress() *InvoiceUpdateOne {
	_u.mutation.ClearFromAddress()
	return _u
}

// SetToName sets the "to_name" field.
func (_u *InvoiceUpdateOne) SetToName(v string) *InvoiceUpdateOne {
	_u.mutation.SetToName(v)
	return _u
}

// SetNillableToName sets the "to_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableToName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetToName(*v)
	}
	return _u
}

// SetToAddress sets the "to_address" field.
func (_u *InvoiceUpdateOne) SetToAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetToAddress(v)
	return _u
}

// SetNillableToAddress sets the "to_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableToAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetToAddress(*v)
	}
	return _u
}

// ClearToAddress clears the value of the "to_address" field.
func (_u *InvoiceUpdateOne) ClearToAddress() *InvoiceUpdateOne {
	_u.mutation.ClearToAddress()
	return _u
}

// SetNumber sets the "number" field.
func (_u *InvoiceUpdateOne) SetNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *InvoiceUpdateOne) ClearNumber() *InvoiceUpdateOne {
	_u.mutation.ClearNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdateOne) SetCurrency(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrency(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InvoiceUpdateOne) ClearCurrency() *InvoiceUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetTotalAmountDue sets the "total_amount_due" field.
func (_u *InvoiceUpdateOne) SetTotalAmountDue(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmountDue()
	_u.mutation.SetTotalAmountDue(v)
	return _u
}

// SetNillableTotalAmountDue sets the "total_amount_due" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmountDue(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmountDue(*v)
	}
	return _u
}

// AddTotalAmountDue adds value to the "total_amount_due" field.
func (_u *InvoiceUpdateOne) AddTotalAmountDue(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmountDue(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *InvoiceUpdateOne) SetExtraction(v *Extraction) *InvoiceUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *InvoiceUpdateOne) ClearExtraction() *InvoiceUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := invoice.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromName(); ok {
		if err := invoice.FromNameValidator(v); err != nil {
			return &ValidationError{Name: "from_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.from_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToName(); ok {
		if err := invoice.ToNameValidator(v); err != nil {
			return &ValidationError{Name: "to_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.to_name": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.extraction"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
		_spec.SetField(invoice.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromName(); ok {
		_spec.SetField(invoice.FieldFromName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(invoice.FieldFromAddress, field.TypeString, value)
	}
	if _u.mutation.FromAddressCleared() {
		_spec.ClearField(invoice.FieldFromAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ToName(); ok {
		_spec.SetField(invoice.FieldToName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToAddress(); ok {
		_spec.SetField(invoice.FieldToAddress, field.TypeString, value)
	}
	if _u.mutation.ToAddressCleared() {
		_spec.ClearField(invoice.FieldToAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(invoice.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(invoice.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(invoice.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmountDue(); ok {
		_spec.SetField(invoice.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmountDue(); ok {
		_spec.AddField(invoice.FieldTotalAmountDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoice.ExtractionTable,
			Columns: []string{invoice.ExtractionColumn},
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
			Table:   invoice.ExtractionTable,
			Columns: []string{invoice.ExtractionColumn},
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
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
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
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
