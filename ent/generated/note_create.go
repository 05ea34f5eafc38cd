// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/workbenchlabs/workbench/ent/generated/note"
	"github.com/workbenchlabs/workbench/ent/generated/user"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"
)

// NoteCreate is the builder for creating a Note entity.
type NoteCreate struct {
	config
	mutation *NoteMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (nc *NoteCreate) SetWorkspaceID(i int) *NoteCreate {
	nc.mutation.SetWorkspaceID(i)
	return nc
}

// SetTitle sets the "title" field.
func (nc *NoteCreate) SetTitle(s string) *NoteCreate {
	nc.mutation.SetTitle(s)
	return nc
}

// SetSource sets the "source" field.
func (nc *NoteCreate) SetSource(n note.Source) *NoteCreate {
	nc.mutation.SetSource(n)
	return nc
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (nc *NoteCreate) SetNillableSource(n *note.Source) *NoteCreate {
	if n != nil {
		nc.SetSource(*n)
	}
	return nc
}

// SetContentMd sets the "content_md" field.
func (nc *NoteCreate) SetContentMd(s string) *NoteCreate {
	nc.mutation.SetContentMd(s)
	return nc
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (nc *NoteCreate) SetNillableContentMd(s *string) *NoteCreate {
	if s != nil {
		nc.SetContentMd(*s)
	}
	return nc
}

// SetTranscriptText sets the "transcript_text" field.
func (nc *NoteCreate) SetTranscriptText(s string) *NoteCreate {
	nc.mutation.SetTranscriptText(s)
	return nc
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (nc *NoteCreate) SetNillableTranscriptText(s *string) *NoteCreate {
	if s != nil {
		nc.SetTranscriptText(*s)
	}
	return nc
}

// SetSummaryText sets the "summary_text" field.
func (nc *NoteCreate) SetSummaryText(s string) *NoteCreate {
	nc.mutation.SetSummaryText(s)
	return nc
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (nc *NoteCreate) SetNillableSummaryText(s *string) *NoteCreate {
	if s != nil {
		nc.SetSummaryText(*s)
	}
	return nc
}

// SetEntities sets the "entities" field.
func (nc *NoteCreate) SetEntities(m map[string]interface{}) *NoteCreate {
	nc.mutation.SetEntities(m)
	return nc
}

// SetCreatedBy sets the "created_by" field.
func (nc *NoteCreate) SetCreatedBy(i int) *NoteCreate {
	nc.mutation.SetCreatedBy(i)
	return nc
}

// SetCreatedAt sets the "created_at" field.
func (nc *NoteCreate) SetCreatedAt(t time.Time) *NoteCreate {
	nc.mutation.SetCreatedAt(t)
	return nc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (nc *NoteCreate) SetNillableCreatedAt(t *time.Time) *NoteCreate {
	if t != nil {
		nc.SetCreatedAt(*t)
	}
	return nc
}

// SetUpdatedAt sets the "updated_at" field.
func (nc *NoteCreate) SetUpdatedAt(t time.Time) *NoteCreate {
	nc.mutation.SetUpdatedAt(t)
	return nc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (nc *NoteCreate) SetNillableUpdatedAt(t *time.Time) *NoteCreate {
	if t != nil {
		nc.SetUpdatedAt(*t)
	}
	return nc
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (nc *NoteCreate) SetWorkspace(w *Workspace) *NoteCreate {
	return nc.SetWorkspaceID(w.ID)
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (nc *NoteCreate) SetCreatorID(id int) *NoteCreate {
	nc.mutation.SetCreatorID(id)
	return nc
}

// SetCreator sets the "creator" edge to the User entity.
func (nc *NoteCreate) SetCreator(u *User) *NoteCreate {
	return nc.SetCreatorID(u.ID)
}

// Mutation returns the NoteMutation object of the builder.
func (nc *NoteCreate) Mutation() *NoteMutation {
	return nc.mutation
}

// Save creates the Note in the database.
func (nc *NoteCreate) Save(ctx context.Context) (*Note, error) {
	nc.defaults()
	return withHooks(ctx, nc.sqlSave, nc.mutation, nc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (nc *NoteCreate) SaveX(ctx context.Context) *Note {
	v, err := nc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (nc *NoteCreate) Exec(ctx context.Context) error {
	_, err := nc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (nc *NoteCreate) ExecX(ctx context.Context) {
	if err := nc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (nc *NoteCreate) defaults() {
	if _, ok := nc.mutation.Source(); !ok {
		v := note.DefaultSource
		nc.mutation.SetSource(v)
	}
	if _, ok := nc.mutation.Entities(); !ok {
		v := note.DefaultEntities
		nc.mutation.SetEntities(v)
	}
	if _, ok := nc.mutation.CreatedAt(); !ok {
		v := note.DefaultCreatedAt()
		nc.mutation.SetCreatedAt(v)
	}
	if _, ok := nc.mutation.UpdatedAt(); !ok {
		v := note.DefaultUpdatedAt()
		nc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (nc *NoteCreate) check() error {
	if _, ok := nc.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`generated: missing required field "Note.workspace_id"`)}
	}
	if _, ok := nc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "Note.title"`)}
	}
	if v, ok := nc.mutation.Title(); ok {
		if err := note.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "Note.title": %w`, err)}
		}
	}
	if _, ok := nc.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`generated: missing required field "Note.source"`)}
	}
	if v, ok := nc.mutation.Source(); ok {
		if err := note.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`generated: validator failed for field "Note.source": %w`, err)}
		}
	}
	if _, ok := nc.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`generated: missing required field "Note.created_by"`)}
	}
	if _, ok := nc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Note.created_at"`)}
	}
	if _, ok := nc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Note.updated_at"`)}
	}
	if _, ok := nc.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace", err: errors.New(`generated: missing required edge "Note.workspace"`)}
	}
	if _, ok := nc.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator", err: errors.New(`generated: missing required edge "Note.creator"`)}
	}
	return nil
}

func (nc *NoteCreate) sqlSave(ctx context.Context) (*Note, error) {
	if err := nc.check(); err != nil {
		return nil, err
	}
	_node, _spec := nc.createSpec()
	if err := sqlgraph.CreateNode(ctx, nc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	nc.mutation.id = &_node.ID
	nc.mutation.done = true
	return _node, nil
}

func (nc *NoteCreate) createSpec() (*Note, *sqlgraph.CreateSpec) {
	var (
		_node = &Note{config: nc.config}
		_spec = sqlgraph.NewCreateSpec(note.Table, sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt))
	)
	if value, ok := nc.mutation.Title(); ok {
		_spec.SetField(note.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := nc.mutation.Source(); ok {
		_spec.SetField(note.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := nc.mutation.ContentMd(); ok {
		_spec.SetField(note.FieldContentMd, field.TypeString, value)
		_node.ContentMd = value
	}
	if value, ok := nc.mutation.TranscriptText(); ok {
		_spec.SetField(note.FieldTranscriptText, field.TypeString, value)
		_node.TranscriptText = &value
	}
	if value, ok := nc.mutation.SummaryText(); ok {
		_spec.SetField(note.FieldSummaryText, field.TypeString, value)
		_node.SummaryText = &value
	}
	if value, ok := nc.mutation.Entities(); ok {
		_spec.SetField(note.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := nc.mutation.CreatedAt(); ok {
		_spec.SetField(note.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := nc.mutation.UpdatedAt(); ok {
		_spec.SetField(note.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := nc.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   note.WorkspaceTable,
			Columns: []string{note.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := nc.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   note.CreatorTable,
			Columns: []string{note.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreatedBy = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NoteCreateBulk is the builder for creating many Note entities in bulk.
type NoteCreateBulk struct {
	config
	err      error
	builders []*NoteCreate
}

// Save creates the Note entities in the database.
func (ncb *NoteCreateBulk) Save(ctx context.Context) ([]*Note, error) {
	if ncb.err != nil {
		return nil, ncb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ncb.builders))
	nodes := make([]*Note, len(ncb.builders))
	mutators := make([]Mutator, len(ncb.builders))
	for i := range ncb.builders {
		func(i int, root context.Context) {
			builder := ncb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NoteMutation)
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
					_, err = mutators[i+1].Mutate(root, ncb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ncb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, ncb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ncb *NoteCreateBulk) SaveX(ctx context.Context) []*Note {
	v, err := ncb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ncb *NoteCreateBulk) Exec(ctx context.Context) error {
	_, err := ncb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ncb *NoteCreateBulk) ExecX(ctx context.Context) {
	if err := ncb.Exec(ctx); err != nil {
		panic(err)
	}
}
