package editor

import (
	"log/slog"

	"resume-builder/internal/model"

	"github.com/ecodeclub/ekit/slice"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Store is the editors' view of the model aggregator.
type Store interface {
	Document() model.ResumeDocument
	NextID() string
	ReplaceSlice(name model.SliceName, value any) error
}

// entitySpec describes one list slice to the generic editor.
type entitySpec[T any] struct {
	slice  model.SliceName
	list   func(model.ResumeDocument) []T
	blank  func() T
	clone  func(T) T
	fields map[string]func(*T, string)
	id     func(T) string
	setID  func(*T, string)
	// finalize prepares a copy of the draft for commit.
	finalize func(*T)
	// items points at the draft's free-text sub-list, nil when there is none.
	items func(*T) *[]string
}

// ListEditor composes one entry at a time in a draft and commits it to the
// document through the Store.
type ListEditor[T any] struct {
	store    Store
	validate *validator.Validate
	spec     entitySpec[T]
	draft    T
	log      *slog.Logger
}

func newListEditor[T any](store Store, v *validator.Validate, log *slog.Logger, spec entitySpec[T]) *ListEditor[T] {
	if v == nil {
		v = NewValidator()
	}
	if log == nil {
		log = slog.Default()
	}
	return &ListEditor[T]{
		store:    store,
		validate: v,
		spec:     spec,
		draft:    spec.blank(),
		log:      log.With("section", string(spec.slice)),
	}
}

// Draft returns a copy of the entry being composed.
func (e *ListEditor[T]) Draft() T {
	return e.spec.clone(e.draft)
}

// Entries returns the committed list.
func (e *ListEditor[T]) Entries() []T {
	return e.spec.list(e.store.Document())
}

// StageField sets one draft field without validation.
func (e *ListEditor[T]) StageField(field, value string) error {
	set, ok := e.spec.fields[field]
	if !ok {
		return errors.Wrapf(ErrUnknownField, "%s.%s", e.spec.slice, field)
	}
	set(&e.draft, value)
	return nil
}

// HasItems reports whether the entity carries a free-text sub-list.
func (e *ListEditor[T]) HasItems() bool {
	return e.spec.items != nil
}

// AppendItem adds one blank slot to the draft's sub-list.
func (e *ListEditor[T]) AppendItem() bool {
	if e.spec.items == nil {
		return false
	}
	items := e.spec.items(&e.draft)
	*items = append(*items, "")
	return true
}

// SetItem overwrites the sub-list slot at index. Out of range is a no-op.
func (e *ListEditor[T]) SetItem(index int, value string) bool {
	if e.spec.items == nil {
		return false
	}
	items := e.spec.items(&e.draft)
	if index < 0 || index >= len(*items) {
		return false
	}
	(*items)[index] = value
	return true
}

// RemoveItem drops the sub-list slot at index. Out of range is a no-op.
func (e *ListEditor[T]) RemoveItem(index int) bool {
	if e.spec.items == nil {
		return false
	}
	items := e.spec.items(&e.draft)
	if index < 0 || index >= len(*items) {
		return false
	}
	next := make([]string, 0, len(*items)-1)
	next = append(next, (*items)[:index]...)
	next = append(next, (*items)[index+1:]...)
	*items = next
	return true
}

// CommitCreate validates the draft and appends it to the list under a fresh
// id. A draft with a blank required field is rejected with
// ErrValidationRejected and nothing changes.
func (e *ListEditor[T]) CommitCreate() (string, error) {
	entry := e.spec.clone(e.draft)
	if e.spec.finalize != nil {
		e.spec.finalize(&entry)
	}
	if err := e.validate.Struct(entry); err != nil {
		err = rejected(err)
		e.log.Debug("commit rejected", "error", err)
		return "", err
	}

	id := e.store.NextID()
	e.spec.setID(&entry, id)
	list := append(e.Entries(), entry)
	if err := e.store.ReplaceSlice(e.spec.slice, list); err != nil {
		return "", err
	}
	e.draft = e.spec.blank()
	return id, nil
}

// CommitDelete removes the entry with the given id. An unknown id is a
// no-op and reports false.
func (e *ListEditor[T]) CommitDelete(id string) (bool, error) {
	current := e.Entries()
	kept := slice.FindAll(current, func(src T) bool {
		return e.spec.id(src) != id
	})
	if len(kept) == len(current) {
		return false, nil
	}
	if err := e.store.ReplaceSlice(e.spec.slice, kept); err != nil {
		return false, err
	}
	return true, nil
}
