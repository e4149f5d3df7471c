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
	"github.com/google/uuid"
	"github.com/restoledger/invoice-pipeline/gen/ent/invoice"
	"github.com/restoledger/invoice-pipeline/gen/ent/lineitem"
	"github.com/restoledger/invoice-pipeline/gen/ent/predicate"
	"github.com/restoledger/invoice-pipeline/gen/ent/vendor"
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

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdate) SetFilename(v string) *InvoiceUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilename(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdate) SetVendorID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *string) *InvoiceUpdate {
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

// SetInvoiceTotalAmount sets the "invoice_total_amount" field.
func (_u *InvoiceUpdate) SetInvoiceTotalAmount(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceTotalAmount(v)
	return _u
}

// SetNillableInvoiceTotalAmount sets the "invoice_total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceTotalAmount(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceTotalAmount(*v)
	}
	return _u
}

// ClearInvoiceTotalAmount clears the value of the "invoice_total_amount" field.
func (_u *InvoiceUpdate) ClearInvoiceTotalAmount() *InvoiceUpdate {
	_u.mutation.ClearInvoiceTotalAmount()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *InvoiceUpdate) SetOrderDate(v string) *InvoiceUpdate {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableOrderDate(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *InvoiceUpdate) ClearOrderDate() *InvoiceUpdate {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetTextLength sets the "text_length" field.
func (_u *InvoiceUpdate) SetTextLength(v int) *InvoiceUpdate {
	_u.mutation.ResetTextLength()
	_u.mutation.SetTextLength(v)
	return _u
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTextLength(v *int) *InvoiceUpdate {
	if v != nil {
		_u.SetTextLength(*v)
	}
	return _u
}

// AddTextLength adds value to the "text_length" field.
func (_u *InvoiceUpdate) AddTextLength(v int) *InvoiceUpdate {
	_u.mutation.AddTextLength(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *InvoiceUpdate) SetPageCount(v int) *InvoiceUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePageCount(v *int) *InvoiceUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *InvoiceUpdate) AddPageCount(v int) *InvoiceUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetExtractionTimestamp sets the "extraction_timestamp" field.
func (_u *InvoiceUpdate) SetExtractionTimestamp(v time.Time) *InvoiceUpdate {
	_u.mutation.SetExtractionTimestamp(v)
	return _u
}

// SetNillableExtractionTimestamp sets the "extraction_timestamp" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableExtractionTimestamp(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetExtractionTimestamp(*v)
	}
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

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) SetVendor(v *Vendor) *InvoiceUpdate {
	return _u.SetVendorID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by IDs.
func (_u *InvoiceUpdate) AddLineItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdate) AddLineItems(v ...*LineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) ClearVendor() *InvoiceUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearLineItems clears all "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdate) ClearLineItems() *InvoiceUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to LineItem entities by IDs.
func (_u *InvoiceUpdate) RemoveLineItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to LineItem entities.
func (_u *InvoiceUpdate) RemoveLineItems(v ...*LineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
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

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.vendor"`)
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceTotalAmount(); ok {
		_spec.SetField(invoice.FieldInvoiceTotalAmount, field.TypeString, value)
	}
	if _u.mutation.InvoiceTotalAmountCleared() {
		_spec.ClearField(invoice.FieldInvoiceTotalAmount, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(invoice.FieldOrderDate, field.TypeString, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(invoice.FieldOrderDate, field.TypeString)
	}
	if value, ok := _u.mutation.TextLength(); ok {
		_spec.SetField(invoice.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLength(); ok {
		_spec.AddField(invoice.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(invoice.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(invoice.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionTimestamp(); ok {
		_spec.SetField(invoice.FieldExtractionTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
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

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdateOne) SetFilename(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilename(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdateOne) SetVendorID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *string) *InvoiceUpdateOne {
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

// SetInvoiceTotalAmount sets the "invoice_total_amount" field.
func (_u *InvoiceUpdateOne) SetInvoiceTotalAmount(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceTotalAmount(v)
	return _u
}

// SetNillableInvoiceTotalAmount sets the "invoice_total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceTotalAmount(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceTotalAmount(*v)
	}
	return _u
}

// ClearInvoiceTotalAmount clears the value of the "invoice_total_amount" field.
func (_u *InvoiceUpdateOne) ClearInvoiceTotalAmount() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceTotalAmount()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *InvoiceUpdateOne) SetOrderDate(v string) *InvoiceUpdateOne {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableOrderDate(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *InvoiceUpdateOne) ClearOrderDate() *InvoiceUpdateOne {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetTextLength sets the "text_length" field.
func (_u *InvoiceUpdateOne) SetTextLength(v int) *InvoiceUpdateOne {
	_u.mutation.ResetTextLength()
	_u.mutation.SetTextLength(v)
	return _u
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTextLength(v *int) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTextLength(*v)
	}
	return _u
}

// AddTextLength adds value to the "text_length" field.
func (_u *InvoiceUpdateOne) AddTextLength(v int) *InvoiceUpdateOne {
	_u.mutation.AddTextLength(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *InvoiceUpdateOne) SetPageCount(v int) *InvoiceUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePageCount(v *int) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *InvoiceUpdateOne) AddPageCount(v int) *InvoiceUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetExtractionTimestamp sets the "extraction_timestamp" field.
func (_u *InvoiceUpdateOne) SetExtractionTimestamp(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetExtractionTimestamp(v)
	return _u
}

// SetNillableExtractionTimestamp sets the "extraction_timestamp" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableExtractionTimestamp(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetExtractionTimestamp(*v)
	}
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

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) SetVendor(v *Vendor) *InvoiceUpdateOne {
	return _u.SetVendorID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by IDs.
func (_u *InvoiceUpdateOne) AddLineItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdateOne) AddLineItems(v ...*LineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) ClearVendor() *InvoiceUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearLineItems clears all "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdateOne) ClearLineItems() *InvoiceUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to LineItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveLineItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to LineItem entities.
func (_u *InvoiceUpdateOne) RemoveLineItems(v ...*LineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
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

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.vendor"`)
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceTotalAmount(); ok {
		_spec.SetField(invoice.FieldInvoiceTotalAmount, field.TypeString, value)
	}
	if _u.mutation.InvoiceTotalAmountCleared() {
		_spec.ClearField(invoice.FieldInvoiceTotalAmount, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(invoice.FieldOrderDate, field.TypeString, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(invoice.FieldOrderDate, field.TypeString)
	}
	if value, ok := _u.mutation.TextLength(); ok {
		_spec.SetField(invoice.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLength(); ok {
		_spec.AddField(invoice.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(invoice.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(invoice.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionTimestamp(); ok {
		_spec.SetField(invoice.FieldExtractionTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
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
