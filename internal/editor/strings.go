package editor

import (
	"log/slog"
	"strings"

	"resume-builder/internal/model"

	"github.com/pkg/errors"
)

// StringListEditor edits a flat list of strings such as certifications or
// languages. Entries have no id and are deleted by position.
type StringListEditor struct {
	store Store
	slice model.SliceName
	list  func(model.ResumeDocument) []string
	draft string
	log   *slog.Logger
}

func NewCertificationsEditor(store Store, log *slog.Logger) *StringListEditor {
	return newStringListEditor(store, log, model.SliceCertifications,
		func(d model.ResumeDocument) []string { return d.Certifications })
}

func NewLanguagesEditor(store Store, log *slog.Logger) *StringListEditor {
	return newStringListEditor(store, log, model.SliceLanguages,
		func(d model.ResumeDocument) []string { return d.Languages })
}

func newStringListEditor(store Store, log *slog.Logger, name model.SliceName, list func(model.ResumeDocument) []string) *StringListEditor {
	if log == nil {
		log = slog.Default()
	}
	return &StringListEditor{
		store: store,
		slice: name,
		list:  list,
		log:   log.With("section", string(name)),
	}
}

func (e *StringListEditor) Draft() string { return e.draft }

func (e *StringListEditor) Entries() []string { return e.list(e.store.Document()) }

// Stage replaces the draft text.
func (e *StringListEditor) Stage(value string) {
	e.draft = value
}

// CommitCreate appends the trimmed draft and returns its index. A blank
// draft is rejected with ErrValidationRejected. Duplicates are allowed.
func (e *StringListEditor) CommitCreate() (int, error) {
	value := strings.TrimSpace(e.draft)
	if value == "" {
		err := errors.Wrap(ErrValidationRejected, string(e.slice))
		e.log.Debug("commit rejected", "error", err)
		return -1, err
	}
	list := append(e.Entries(), value)
	if err := e.store.ReplaceSlice(e.slice, list); err != nil {
		return -1, err
	}
	e.draft = ""
	return len(list) - 1, nil
}

// CommitDelete removes the entry at index. Out of range is a no-op.
func (e *StringListEditor) CommitDelete(index int) (bool, error) {
	current := e.Entries()
	if index < 0 || index >= len(current) {
		return false, nil
	}
	next := make([]string, 0, len(current)-1)
	next = append(next, current[:index]...)
	next = append(next, current[index+1:]...)
	if err := e.store.ReplaceSlice(e.slice, next); err != nil {
		return false, err
	}
	return true, nil
}
