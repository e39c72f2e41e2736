package editor

// WorkingCopy is the in-memory, user-editable draft behind an open dialog.
// It is a sealed variant so the two submission paths are checked exhaustively:
// a Draft commits as an insert, a Revision as an update-by-id. Presence of an
// id is a type, not a nullable field.
type WorkingCopy[T any] interface {
	workingCopy()
}

// Draft is a working copy of a record that does not exist yet.
type Draft[T any] struct {
	Fields T
}

// Revision is a working copy of an existing record, identified by its id.
type Revision[T any] struct {
	ID     string
	Fields T
}

func (Draft[T]) workingCopy()    {}
func (Revision[T]) workingCopy() {}
