package usecase

import (
	"log/slog"
	"strconv"
	"sync"

	"resume-builder/internal/aggregator"
	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// SectionEditor is the section-agnostic view of an editor used by the
// transport layer. Keys are entry ids, or positions for string lists.
type SectionEditor interface {
	DraftValue() any
	StageField(field, value string) error
	HasItems() bool
	AppendItem() bool
	SetItem(index int, value string) bool
	RemoveItem(index int) bool
	Commit() (string, error)
	Delete(key string) (bool, error)
}

type listSection[T any] struct {
	*editor.ListEditor[T]
}

func (s listSection[T]) DraftValue() any { return s.Draft() }

func (s listSection[T]) Commit() (string, error) { return s.CommitCreate() }

func (s listSection[T]) Delete(key string) (bool, error) { return s.CommitDelete(key) }

type stringSection struct {
	*editor.StringListEditor
}

func (s stringSection) DraftValue() any { return map[string]string{"value": s.Draft()} }

func (s stringSection) StageField(field, value string) error {
	if field != "value" {
		return errors.Wrapf(editor.ErrUnknownField, "%s", field)
	}
	s.Stage(value)
	return nil
}

func (stringSection) HasItems() bool { return false }

func (stringSection) AppendItem() bool { return false }

func (stringSection) SetItem(int, string) bool { return false }

func (stringSection) RemoveItem(int) bool { return false }

func (s stringSection) Commit() (string, error) {
	idx, err := s.CommitCreate()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(idx), nil
}

func (s stringSection) Delete(key string) (bool, error) {
	idx, err := strconv.Atoi(key)
	if err != nil {
		return false, nil
	}
	return s.CommitDelete(idx)
}

// Session is one editing session: the document, its aggregator and one
// editor per section. Do runs user actions one at a time.
type Session struct {
	mu sync.Mutex

	Store          *aggregator.Aggregator
	Personal       *editor.PersonalEditor
	Education      *editor.EducationEditor
	Experience     *editor.ExperienceEditor
	Skills         *editor.SkillsEditor
	Projects       *editor.ProjectsEditor
	Certifications *editor.StringListEditor
	Languages      *editor.StringListEditor

	sections map[string]SectionEditor
	validate *validator.Validate
	log      *slog.Logger
}

func NewSession(ids aggregator.IDGenerator, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	store := aggregator.New(ids, log)
	v := editor.NewValidator()
	s := &Session{
		Store:          store,
		Personal:       editor.NewPersonalEditor(store, log),
		Education:      editor.NewEducationEditor(store, v, log),
		Experience:     editor.NewExperienceEditor(store, v, log),
		Skills:         editor.NewSkillsEditor(store, v, log),
		Projects:       editor.NewProjectsEditor(store, v, log),
		Certifications: editor.NewCertificationsEditor(store, log),
		Languages:      editor.NewLanguagesEditor(store, log),
		validate:       v,
		log:            log,
	}
	s.sections = map[string]SectionEditor{
		string(model.SliceEducation):      listSection[model.Education]{s.Education},
		string(model.SliceExperience):     listSection[model.Experience]{s.Experience},
		string(model.SliceSkills):         listSection[model.Skill]{s.Skills},
		string(model.SliceProjects):       listSection[model.Project]{s.Projects},
		string(model.SliceCertifications): stringSection{s.Certifications},
		string(model.SliceLanguages):      stringSection{s.Languages},
	}
	return s
}

// Do runs fn with exclusive access to the session. Actions never overlap.
func (s *Session) Do(fn func(s *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Section returns the editor for a list section by its document field name.
func (s *Session) Section(name string) (SectionEditor, bool) {
	sec, ok := s.sections[name]
	return sec, ok
}

// Snapshot returns a copy of the current document.
func (s *Session) Snapshot() model.ResumeDocument {
	var doc model.ResumeDocument
	_ = s.Do(func(s *Session) error {
		doc = s.Store.Document()
		return nil
	})
	return doc
}

func (s *Session) Preview() preview.VisualDocument {
	return preview.Project(s.Snapshot())
}

// Load replaces the whole document. Entries must pass the same rules a
// commit enforces; otherwise nothing is installed.
func (s *Session) Load(doc model.ResumeDocument) error {
	return s.Do(func(s *Session) error {
		if err := editor.ValidateDocument(s.validate, doc); err != nil {
			return err
		}
		return s.Store.Load(doc)
	})
}
