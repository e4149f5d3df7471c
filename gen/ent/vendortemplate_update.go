// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/restoledger/invoice-pipeline/gen/ent/predicate"
	"github.com/restoledger/invoice-pipeline/gen/ent/vendor"
	"github.com/restoledger/invoice-pipeline/gen/ent/vendortemplate"
)

// VendorTemplateUpdate is the builder for updating VendorTemplate entities.
type VendorTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *VendorTemplateMutation
}

// Where appends a list predicates to the VendorTemplateUpdate builder.
func (_u *VendorTemplateUpdate) Where(ps ...predicate.VendorTemplate) *VendorTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *VendorTemplateUpdate) SetVendorID(v uuid.UUID) *VendorTemplateUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *VendorTemplateUpdate) SetNillableVendorID(v *uuid.UUID) *VendorTemplateUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetPatterns sets the "patterns" field.
func (_u *VendorTemplateUpdate) SetPatterns(v []string) *VendorTemplateUpdate {
	_u.mutation.SetPatterns(v)
	return _u
}

// AppendPatterns appends value to the "patterns" field.
func (_u *VendorTemplateUpdate) AppendPatterns(v []string) *VendorTemplateUpdate {
	_u.mutation.AppendPatterns(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorTemplateUpdate) SetCreatedAt(v time.Time) *VendorTemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorTemplateUpdate) SetNillableCreatedAt(v *time.Time) *VendorTemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorTemplateUpdate) SetUpdatedAt(v time.Time) *VendorTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *VendorTemplateUpdate) SetVendor(v *Vendor) *VendorTemplateUpdate {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the VendorTemplateMutation object of the builder.
func (_u *VendorTemplateUpdate) Mutation() *VendorTemplateMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *VendorTemplateUpdate) ClearVendor() *VendorTemplateUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendortemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorTemplateUpdate) check() error {
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorTemplate.vendor"`)
	}
	return nil
}

func (_u *VendorTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendortemplate.Table, vendortemplate.Columns, sqlgraph.NewFieldSpec(vendortemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Patterns(); ok {
		_spec.SetField(vendortemplate.FieldPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendortemplate.FieldPatterns, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendortemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendortemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vendortemplate.VendorTable,
			Columns: []string{vendortemplate.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vendortemplate.VendorTable,
			Columns: []string{vendortemplate.VendorColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendortemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorTemplateUpdateOne is the builder for updating a single VendorTemplate entity.
type VendorTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorTemplateMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *VendorTemplateUpdateOne) SetVendorID(v uuid.UUID) *VendorTemplateUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *VendorTemplateUpdateOne) SetNillableVendorID(v *uuid.UUID) *VendorTemplateUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetPatterns sets the "patterns" field.
func (_u *VendorTemplateUpdateOne) SetPatterns(v []string) *VendorTemplateUpdateOne {
	_u.mutation.SetPatterns(v)
	return _u
}

// AppendPatterns appends value to the "patterns" field.
func (_u *VendorTemplateUpdateOne) AppendPatterns(v []string) *VendorTemplateUpdateOne {
	_u.mutation.AppendPatterns(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorTemplateUpdateOne) SetCreatedAt(v time.Time) *VendorTemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorTemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *VendorTemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorTemplateUpdateOne) SetUpdatedAt(v time.Time) *VendorTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *VendorTemplateUpdateOne) SetVendor(v *Vendor) *VendorTemplateUpdateOne {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the VendorTemplateMutation object of the builder.
func (_u *VendorTemplateUpdateOne) Mutation() *VendorTemplateMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *VendorTemplateUpdateOne) ClearVendor() *VendorTemplateUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// Where appends a list predicates to the VendorTemplateUpdate builder.
func (_u *VendorTemplateUpdateOne) Where(ps ...predicate.VendorTemplate) *VendorTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorTemplateUpdateOne) Select(field string, fields ...string) *VendorTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VendorTemplate entity.
func (_u *VendorTemplateUpdateOne) Save(ctx context.Context) (*VendorTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorTemplateUpdateOne) SaveX(ctx context.Context) *VendorTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendortemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorTemplateUpdateOne) check() error {
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorTemplate.vendor"`)
	}
	return nil
}

func (_u *VendorTemplateUpdateOne) sqlSave(ctx context.Context) (_node *VendorTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendortemplate.Table, vendortemplate.Columns, sqlgraph.NewFieldSpec(vendortemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VendorTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendortemplate.FieldID)
		for _, f := range fields {
			if !vendortemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendortemplate.FieldID {
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
	if value, ok := _u.mutation.Patterns(); ok {
		_spec.SetField(vendortemplate.FieldPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendortemplate.FieldPatterns, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendortemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendortemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vendortemplate.VendorTable,
			Columns: []string{vendortemplate.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vendortemplate.VendorTable,
			Columns: []string{vendortemplate.VendorColumn},
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
	_node = &VendorTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendortemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
