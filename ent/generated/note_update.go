// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/workbenchlabs/workbench/ent/generated/note"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
	"github.com/workbenchlabs/workbench/ent/generated/user"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"
)

// NoteUpdate is the builder for updating Note entities.
type NoteUpdate struct {
	config
	hooks    []Hook
	mutation *NoteMutation
}

// Where appends a list predicates to the NoteUpdate builder.
func (nu *NoteUpdate) Where(ps ...predicate.Note) *NoteUpdate {
	nu.mutation.Where(ps...)
	return nu
}

// SetWorkspaceID sets the "workspace_id" field.
func (nu *NoteUpdate) SetWorkspaceID(i int) *NoteUpdate {
	nu.mutation.SetWorkspaceID(i)
	return nu
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (nu *NoteUpdate) SetNillableWorkspaceID(i *int) *NoteUpdate {
	if i != nil {
		nu.SetWorkspaceID(*i)
	}
	return nu
}

// SetTitle sets the "title" field.
func (nu *NoteUpdate) SetTitle(s string) *NoteUpdate {
	nu.mutation.SetTitle(s)
	return nu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (nu *NoteUpdate) SetNillableTitle(s *string) *NoteUpdate {
	if s != nil {
		nu.SetTitle(*s)
	}
	return nu
}

// SetSource sets the "source" field.
func (nu *NoteUpdate) SetSource(n note.Source) *NoteUpdate {
	nu.mutation.SetSource(n)
	return nu
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (nu *NoteUpdate) SetNillableSource(n *note.Source) *NoteUpdate {
	if n != nil {
		nu.SetSource(*n)
	}
	return nu
}

// SetContentMd sets the "content_md" field.
func (nu *NoteUpdate) SetContentMd(s string) *NoteUpdate {
	nu.mutation.SetContentMd(s)
	return nu
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (nu *NoteUpdate) SetNillableContentMd(s *string) *NoteUpdate {
	if s != nil {
		nu.SetContentMd(*s)
	}
	return nu
}

// ClearContentMd clears the value of the "content_md" field.
func (nu *NoteUpdate) ClearContentMd() *NoteUpdate {
	nu.mutation.ClearContentMd()
	return nu
}

// SetTranscriptText sets the "transcript_text" field.
func (nu *NoteUpdate) SetTranscriptText(s string) *NoteUpdate {
	nu.mutation.SetTranscriptText(s)
	return nu
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (nu *NoteUpdate) SetNillableTranscriptText(s *string) *NoteUpdate {
	if s != nil {
		nu.SetTranscriptText(*s)
	}
	return nu
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (nu *NoteUpdate) ClearTranscriptText() *NoteUpdate {
	nu.mutation.ClearTranscriptText()
	return nu
}

// SetSummaryText sets the "summary_text" field.
func (nu *NoteUpdate) SetSummaryText(s string) *NoteUpdate {
	nu.mutation.SetSummaryText(s)
	return nu
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (nu *NoteUpdate) SetNillableSummaryText(s *string) *NoteUpdate {
	if s != nil {
		nu.SetSummaryText(*s)
	}
	return nu
}

// ClearSummaryText clears the value of the "summary_text" field.
func (nu *NoteUpdate) ClearSummaryText() *NoteUpdate {
	nu.mutation.ClearSummaryText()
	return nu
}

// SetEntities sets the "entities" field.
func (nu *NoteUpdate) SetEntities(m map[string]interface{}) *NoteUpdate {
	nu.mutation.SetEntities(m)
	return nu
}

// ClearEntities clears the value of the "entities" field.
func (nu *NoteUpdate) ClearEntities() *NoteUpdate {
	nu.mutation.ClearEntities()
	return nu
}

// SetCreatedBy sets the "created_by" field.
func (nu *NoteUpdate) SetCreatedBy(i int) *NoteUpdate {
	nu.mutation.SetCreatedBy(i)
	return nu
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (nu *NoteUpdate) SetNillableCreatedBy(i *int) *NoteUpdate {
	if i != nil {
		nu.SetCreatedBy(*i)
	}
	return nu
}

// SetUpdatedAt sets the "updated_at" field.
func (nu *NoteUpdate) SetUpdatedAt(t time.Time) *NoteUpdate {
	nu.mutation.SetUpdatedAt(t)
	return nu
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (nu *NoteUpdate) SetWorkspace(w *Workspace) *NoteUpdate {
	return nu.SetWorkspaceID(w.ID)
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (nu *NoteUpdate) SetCreatorID(id int) *NoteUpdate {
	nu.mutation.SetCreatorID(id)
	return nu
}

// SetCreator sets the "creator" edge to the User entity.
func (nu *NoteUpdate) SetCreator(u *User) *NoteUpdate {
	return nu.SetCreatorID(u.ID)
}

// Mutation returns the NoteMutation object of the builder.
func (nu *NoteUpdate) Mutation() *NoteMutation {
	return nu.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (nu *NoteUpdate) ClearWorkspace() *NoteUpdate {
	nu.mutation.ClearWorkspace()
	return nu
}

// ClearCreator clears the "creator" edge to the User entity.
func (nu *NoteUpdate) ClearCreator() *NoteUpdate {
	nu.mutation.ClearCreator()
	return nu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (nu *NoteUpdate) Save(ctx context.Context) (int, error) {
	nu.defaults()
	return withHooks(ctx, nu.sqlSave, nu.mutation, nu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (nu *NoteUpdate) SaveX(ctx context.Context) int {
	affected, err := nu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (nu *NoteUpdate) Exec(ctx context.Context) error {
	_, err := nu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (nu *NoteUpdate) ExecX(ctx context.Context) {
	if err := nu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (nu *NoteUpdate) defaults() {
	if _, ok := nu.mutation.UpdatedAt(); !ok {
		v := note.UpdateDefaultUpdatedAt()
		nu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (nu *NoteUpdate) check() error {
	if v, ok := nu.mutation.Title(); ok {
		if err := note.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "Note.title": %w`, err)}
		}
	}
	if v, ok := nu.mutation.Source(); ok {
		if err := note.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`generated: validator failed for field "Note.source": %w`, err)}
		}
	}
	if _, ok := nu.mutation.WorkspaceID(); nu.mutation.WorkspaceCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Note.workspace"`)
	}
	if _, ok := nu.mutation.CreatorID(); nu.mutation.CreatorCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Note.creator"`)
	}
	return nil
}

func (nu *NoteUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := nu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(note.Table, note.Columns, sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt))
	if ps := nu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := nu.mutation.Title(); ok {
		_spec.SetField(note.FieldTitle, field.TypeString, value)
	}
	if value, ok := nu.mutation.Source(); ok {
		_spec.SetField(note.FieldSource, field.TypeEnum, value)
	}
	if value, ok := nu.mutation.ContentMd(); ok {
		_spec.SetField(note.FieldContentMd, field.TypeString, value)
	}
	if nu.mutation.ContentMdCleared() {
		_spec.ClearField(note.FieldContentMd, field.TypeString)
	}
	if value, ok := nu.mutation.TranscriptText(); ok {
		_spec.SetField(note.FieldTranscriptText, field.TypeString, value)
	}
	if nu.mutation.TranscriptTextCleared() {
		_spec.ClearField(note.FieldTranscriptText, field.TypeString)
	}
	if value, ok := nu.mutation.SummaryText(); ok {
		_spec.SetField(note.FieldSummaryText, field.TypeString, value)
	}
	if nu.mutation.SummaryTextCleared() {
		_spec.ClearField(note.FieldSummaryText, field.TypeString)
	}
	if value, ok := nu.mutation.Entities(); ok {
		_spec.SetField(note.FieldEntities, field.TypeJSON, value)
	}
	if nu.mutation.EntitiesCleared() {
		_spec.ClearField(note.FieldEntities, field.TypeJSON)
	}
	if value, ok := nu.mutation.UpdatedAt(); ok {
		_spec.SetField(note.FieldUpdatedAt, field.TypeTime, value)
	}
	if nu.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := nu.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if nu.mutation.CreatorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := nu.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, nu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{note.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	nu.mutation.done = true
	return n, nil
}

// NoteUpdateOne is the builder for updating a single Note entity.
type NoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NoteMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (nuo *NoteUpdateOne) SetWorkspaceID(i int) *NoteUpdateOne {
	nuo.mutation.SetWorkspaceID(i)
	return nuo
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (nuo *NoteUpdateOne) SetNillableWorkspaceID(i *int) *NoteUpdateOne {
	if i != nil {
		nuo.SetWorkspaceID(*i)
	}
	return nuo
}

// SetTitle sets the "title" field.
func (nuo *NoteUpdateOne) SetTitle(s string) *NoteUpdateOne {
	nuo.mutation.SetTitle(s)
	return nuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (nuo *NoteUpdateOne) SetNillableTitle(s *string) *NoteUpdateOne {
	if s != nil {
		nuo.SetTitle(*s)
	}
	return nuo
}

// SetSource sets the "source" field.
func (nuo *NoteUpdateOne) SetSource(n note.Source) *NoteUpdateOne {
	nuo.mutation.SetSource(n)
	return nuo
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (nuo *NoteUpdateOne) SetNillableSource(n *note.Source) *NoteUpdateOne {
	if n != nil {
		nuo.SetSource(*n)
	}
	return nuo
}

// SetContentMd sets the "content_md" field.
func (nuo *NoteUpdateOne) SetContentMd(s string) *NoteUpdateOne {
	nuo.mutation.SetContentMd(s)
	return nuo
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (nuo *NoteUpdateOne) SetNillableContentMd(s *string) *NoteUpdateOne {
	if s != nil {
		nuo.SetContentMd(*s)
	}
	return nuo
}

// ClearContentMd clears the value of the "content_md" field.
func (nuo *NoteUpdateOne) ClearContentMd() *NoteUpdateOne {
	nuo.mutation.ClearContentMd()
	return nuo
}

// SetTranscriptText sets the "transcript_text" field.
func (nuo *NoteUpdateOne) SetTranscriptText(s string) *NoteUpdateOne {
	nuo.mutation.SetTranscriptText(s)
	return nuo
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (nuo *NoteUpdateOne) SetNillableTranscriptText(s *string) *NoteUpdateOne {
	if s != nil {
		nuo.SetTranscriptText(*s)
	}
	return nuo
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (nuo *NoteUpdateOne) ClearTranscriptText() *NoteUpdateOne {
	nuo.mutation.ClearTranscriptText()
	return nuo
}

// SetSummaryText sets the "summary_text" field.
func (nuo *NoteUpdateOne) SetSummaryText(s string) *NoteUpdateOne {
	nuo.mutation.SetSummaryText(s)
	return nuo
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (nuo *NoteUpdateOne) SetNillableSummaryText(s *string) *NoteUpdateOne {
	if s != nil {
		nuo.SetSummaryText(*s)
	}
	return nuo
}

// ClearSummaryText clears the value of the "summary_text" field.
func (nuo *NoteUpdateOne) ClearSummaryText() *NoteUpdateOne {
	nuo.mutation.ClearSummaryText()
	return nuo
}

// SetEntities sets the "entities" field.
func (nuo *NoteUpdateOne) SetEntities(m map[string]interface{}) *NoteUpdateOne {
	nuo.mutation.SetEntities(m)
	return nuo
}

// ClearEntities clears the value of the "entities" field.
func (nuo *NoteUpdateOne) ClearEntities() *NoteUpdateOne {
	nuo.mutation.ClearEntities()
	return nuo
}

// SetCreatedBy sets the "created_by" field.
func (nuo *NoteUpdateOne) SetCreatedBy(i int) *NoteUpdateOne {
	nuo.mutation.SetCreatedBy(i)
	return nuo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (nuo *NoteUpdateOne) SetNillableCreatedBy(i *int) *NoteUpdateOne {
	if i != nil {
		nuo.SetCreatedBy(*i)
	}
	return nuo
}

// SetUpdatedAt sets the "updated_at" field.
func (nuo *NoteUpdateOne) SetUpdatedAt(t time.Time) *NoteUpdateOne {
	nuo.mutation.SetUpdatedAt(t)
	return nuo
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (nuo *NoteUpdateOne) SetWorkspace(w *Workspace) *NoteUpdateOne {
	return nuo.SetWorkspaceID(w.ID)
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (nuo *NoteUpdateOne) SetCreatorID(id int) *NoteUpdateOne {
	nuo.mutation.SetCreatorID(id)
	return nuo
}

// SetCreator sets the "creator" edge to the User entity.
func (nuo *NoteUpdateOne) SetCreator(u *User) *NoteUpdateOne {
	return nuo.SetCreatorID(u.ID)
}

// Mutation returns the NoteMutation object of the builder.
func (nuo *NoteUpdateOne) Mutation() *NoteMutation {
	return nuo.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (nuo *NoteUpdateOne) ClearWorkspace() *NoteUpdateOne {
	nuo.mutation.ClearWorkspace()
	return nuo
}

// ClearCreator clears the "creator" edge to the User entity.
func (nuo *NoteUpdateOne) ClearCreator() *NoteUpdateOne {
	nuo.mutation.ClearCreator()
	return nuo
}

// Where appends a list predicates to the NoteUpdate builder.
func (nuo *NoteUpdateOne) Where(ps ...predicate.Note) *NoteUpdateOne {
	nuo.mutation.Where(ps...)
	return nuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (nuo *NoteUpdateOne) Select(field string, fields ...string) *NoteUpdateOne {
	nuo.fields = append([]string{field}, fields...)
	return nuo
}

// Save executes the query and returns the updated Note entity.
func (nuo *NoteUpdateOne) Save(ctx context.Context) (*Note, error) {
	nuo.defaults()
	return withHooks(ctx, nuo.sqlSave, nuo.mutation, nuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (nuo *NoteUpdateOne) SaveX(ctx context.Context) *Note {
	node, err := nuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (nuo *NoteUpdateOne) Exec(ctx context.Context) error {
	_, err := nuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (nuo *NoteUpdateOne) ExecX(ctx context.Context) {
	if err := nuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (nuo *NoteUpdateOne) defaults() {
	if _, ok := nuo.mutation.UpdatedAt(); !ok {
		v := note.UpdateDefaultUpdatedAt()
		nuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (nuo *NoteUpdateOne) check() error {
	if v, ok := nuo.mutation.Title(); ok {
		if err := note.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "Note.title": %w`, err)}
		}
	}
	if v, ok := nuo.mutation.Source(); ok {
		if err := note.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`generated: validator failed for field "Note.source": %w`, err)}
		}
	}
	if _, ok := nuo.mutation.WorkspaceID(); nuo.mutation.WorkspaceCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Note.workspace"`)
	}
	if _, ok := nuo.mutation.CreatorID(); nuo.mutation.CreatorCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Note.creator"`)
	}
	return nil
}

func (nuo *NoteUpdateOne) sqlSave(ctx context.Context) (_node *Note, err error) {
	if err := nuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(note.Table, note.Columns, sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt))
	id, ok := nuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Note.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := nuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, note.FieldID)
		for _, f := range fields {
			if !note.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != note.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := nuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := nuo.mutation.Title(); ok {
		_spec.SetField(note.FieldTitle, field.TypeString, value)
	}
	if value, ok := nuo.mutation.Source(); ok {
		_spec.SetField(note.FieldSource, field.TypeEnum, value)
	}
	if value, ok := nuo.mutation.ContentMd(); ok {
		_spec.SetField(note.FieldContentMd, field.TypeString, value)
	}
	if nuo.mutation.ContentMdCleared() {
		_spec.ClearField(note.FieldContentMd, field.TypeString)
	}
	if value, ok := nuo.mutation.TranscriptText(); ok {
		_spec.SetField(note.FieldTranscriptText, field.TypeString, value)
	}
	if nuo.mutation.TranscriptTextCleared() {
		_spec.ClearField(note.FieldTranscriptText, field.TypeString)
	}
	if value, ok := nuo.mutation.SummaryText(); ok {
		_spec.SetField(note.FieldSummaryText, field.TypeString, value)
	}
	if nuo.mutation.SummaryTextCleared() {
		_spec.ClearField(note.FieldSummaryText, field.TypeString)
	}
	if value, ok := nuo.mutation.Entities(); ok {
		_spec.SetField(note.FieldEntities, field.TypeJSON, value)
	}
	if nuo.mutation.EntitiesCleared() {
		_spec.ClearField(note.FieldEntities, field.TypeJSON)
	}
	if value, ok := nuo.mutation.UpdatedAt(); ok {
		_spec.SetField(note.FieldUpdatedAt, field.TypeTime, value)
	}
	if nuo.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := nuo.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if nuo.mutation.CreatorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := nuo.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Note{config: nuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, nuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{note.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	nuo.mutation.done = true
	return _node, nil
}
