// Package editor implements the add/edit/delete workflow shared by the
// editable dashboard screens (courses, students, sessions, certifications):
// a table of persisted rows, a dialog holding a working copy, and
// insert/update/delete-by-id calls against the remote store.
package editor

import (
	"context"

	"github.com/pkg/errors"
)

// Store is the remote-table surface a screen drives for one record kind.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, fields T) (T, error)
	Update(ctx context.Context, id string, fields T) (T, error)
	Delete(ctx context.Context, id string) error
}

type State int

const (
	// Idle: table showing persisted rows, no dialog open.
	Idle State = iota
	// Editing: a dialog is open with a working copy.
	Editing
	// Submitting: a write is in flight.
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	}
	return "unknown"
}

var (
	ErrNotIdle    = errors.New("a dialog is already open")
	ErrNotEditing = errors.New("no dialog open")
)

// Editor owns one screen's state. Each screen instance owns an independent
// Editor; there is no shared global state.
type Editor[T any] struct {
	store Store[T]
	state State
	rows  []T
	draft WorkingCopy[T]
}

func New[T any](store Store[T]) *Editor[T] {
	return &Editor[T]{store: store}
}

func (e *Editor[T]) State() State          { return e.state }
func (e *Editor[T]) Rows() []T             { return e.rows }
func (e *Editor[T]) Draft() WorkingCopy[T] { return e.draft }

// Load fetches the full current record set from the store. Called on mount
// and again after every successful write; rows are never patched locally, so
// staleness is bounded by the time since the last reload.
func (e *Editor[T]) Load(ctx context.Context) error {
	rows, err := e.store.List(ctx)
	if err != nil {
		return errors.Wrap(err, "loading records")
	}
	e.rows = rows
	return nil
}

// BeginCreate opens the dialog with a blank template.
func (e *Editor[T]) BeginCreate(blank T) error {
	if e.state != Idle {
		return ErrNotIdle
	}
	e.draft = Draft[T]{Fields: blank}
	e.state = Editing
	return nil
}

// BeginEdit opens the dialog with a working copy of an existing record.
func (e *Editor[T]) BeginEdit(id string, fields T) error {
	if e.state != Idle {
		return ErrNotIdle
	}
	e.draft = Revision[T]{ID: id, Fields: fields}
	e.state = Editing
	return nil
}

// SetFields replaces the draft's fields with the dialog's current input.
func (e *Editor[T]) SetFields(fields T) error {
	switch wc := e.draft.(type) {
	case Draft[T]:
		wc.Fields = fields
		e.draft = wc
	case Revision[T]:
		wc.Fields = fields
		e.draft = wc
	default:
		return ErrNotEditing
	}
	return nil
}

// Cancel closes the dialog and discards the draft. No request is made; a
// write already in flight is not cancelled and will still reload the list.
func (e *Editor[T]) Cancel() error {
	if e.state != Editing {
		return ErrNotEditing
	}
	e.draft = nil
	e.state = Idle
	return nil
}

// Save commits the working copy: a Draft issues exactly one insert, a
// Revision exactly one update-by-id. On success the dialog closes and the
// list fully reloads. On failure the store's error is returned to the caller
// verbatim and the dialog stays open with the entered values intact.
func (e *Editor[T]) Save(ctx context.Context) error {
	if e.state != Editing {
		return ErrNotEditing
	}
	e.state = Submitting

	var err error
	switch wc := e.draft.(type) {
	case Draft[T]:
		_, err = e.store.Insert(ctx, wc.Fields)
	case Revision[T]:
		_, err = e.store.Update(ctx, wc.ID, wc.Fields)
	default:
		err = errors.Errorf("unexpected working copy %T", e.draft)
	}
	if err != nil {
		e.state = Editing
		return err
	}

	e.draft = nil
	e.state = Idle
	return e.Load(ctx)
}

// Delete removes a persisted row, gated on the confirm decision. Declined:
// no request is made and the list is untouched. Accepted: exactly one
// delete-by-id, then a full reload.
func (e *Editor[T]) Delete(ctx context.Context, id string, confirm func() bool) error {
	if e.state != Idle {
		return ErrNotIdle
	}
	if confirm != nil && !confirm() {
		return nil
	}
	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}
	return e.Load(ctx)
}
