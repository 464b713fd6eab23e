package aggregator

import (
	"log/slog"
	"strings"

	"resume-builder/internal/model"

	"github.com/pkg/errors"
)

var (
	ErrUnknownSlice = errors.New("unknown slice")
	ErrSliceType    = errors.New("slice value has wrong type")
	ErrDuplicateID  = errors.New("duplicate entry id")
)

// Aggregator owns the session's single ResumeDocument and is the only code
// path that writes it.
type Aggregator struct {
	doc *model.ResumeDocument
	ids IDGenerator
	log *slog.Logger
}

func New(ids IDGenerator, log *slog.Logger) *Aggregator {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if log == nil {
		log = slog.Default()
	}
	doc := model.NewResumeDocument()
	return &Aggregator{doc: &doc, ids: ids, log: log}
}

// Document returns a deep copy of the current document.
func (a *Aggregator) Document() model.ResumeDocument {
	return a.doc.Clone()
}

// NextID returns a fresh list-entry id.
func (a *Aggregator) NextID() string {
	return a.ids.NextID()
}

// ReplaceSlice swaps exactly one top-level field of the document. The new
// document is built aside and installed in one assignment, so readers see
// either the old or the new slice, never a mix.
func (a *Aggregator) ReplaceSlice(name model.SliceName, value any) error {
	next := *a.doc
	switch name {
	case model.SlicePersonalInfo:
		v, ok := value.(model.PersonalInfo)
		if !ok {
			return sliceTypeErr(name, value)
		}
		next.PersonalInfo = v
	case model.SliceEducation:
		v, ok := value.([]model.Education)
		if !ok {
			return sliceTypeErr(name, value)
		}
		if err := uniqueIDs(name, v, func(e model.Education) string { return e.ID }); err != nil {
			return err
		}
		next.Education = model.CloneEducation(v)
	case model.SliceExperience:
		v, ok := value.([]model.Experience)
		if !ok {
			return sliceTypeErr(name, value)
		}
		if err := uniqueIDs(name, v, func(e model.Experience) string { return e.ID }); err != nil {
			return err
		}
		next.Experience = model.CloneExperience(v)
	case model.SliceSkills:
		v, ok := value.([]model.Skill)
		if !ok {
			return sliceTypeErr(name, value)
		}
		if err := uniqueIDs(name, v, func(s model.Skill) string { return s.ID }); err != nil {
			return err
		}
		next.Skills = model.CloneSkills(v)
	case model.SliceProjects:
		v, ok := value.([]model.Project)
		if !ok {
			return sliceTypeErr(name, value)
		}
		if err := uniqueIDs(name, v, func(p model.Project) string { return p.ID }); err != nil {
			return err
		}
		next.Projects = model.CloneProjects(v)
	case model.SliceCertifications:
		v, ok := value.([]string)
		if !ok {
			return sliceTypeErr(name, value)
		}
		next.Certifications = model.CloneStrings(v)
	case model.SliceLanguages:
		v, ok := value.([]string)
		if !ok {
			return sliceTypeErr(name, value)
		}
		next.Languages = model.CloneStrings(v)
	default:
		return errors.Wrapf(ErrUnknownSlice, "%q", name)
	}
	a.doc = &next
	a.log.Debug("slice replaced", "slice", string(name))
	return nil
}

// Load installs doc slice by slice. Entries without an id get one, blank
// achievements and technologies are dropped, skill names and the flat
// string lists are trimmed, and duplicate ids are rejected before anything
// is written.
func (a *Aggregator) Load(doc model.ResumeDocument) error {
	doc = doc.Clone()
	for i := range doc.Education {
		if doc.Education[i].ID == "" {
			doc.Education[i].ID = a.NextID()
		}
	}
	for i := range doc.Experience {
		if doc.Experience[i].ID == "" {
			doc.Experience[i].ID = a.NextID()
		}
		doc.Experience[i].Achievements = model.NonBlank(doc.Experience[i].Achievements)
	}
	for i := range doc.Skills {
		if doc.Skills[i].ID == "" {
			doc.Skills[i].ID = a.NextID()
		}
		doc.Skills[i].Name = strings.TrimSpace(doc.Skills[i].Name)
		if doc.Skills[i].Level == "" {
			doc.Skills[i].Level = model.LevelIntermediate
		}
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == "" {
			doc.Projects[i].ID = a.NextID()
		}
		doc.Projects[i].Technologies = model.NonBlank(doc.Projects[i].Technologies)
	}

	if err := uniqueIDs(model.SliceEducation, doc.Education, func(e model.Education) string { return e.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(model.SliceExperience, doc.Experience, func(e model.Experience) string { return e.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(model.SliceSkills, doc.Skills, func(s model.Skill) string { return s.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(model.SliceProjects, doc.Projects, func(p model.Project) string { return p.ID }); err != nil {
		return err
	}

	values := map[model.SliceName]any{
		model.SlicePersonalInfo:   doc.PersonalInfo,
		model.SliceEducation:      doc.Education,
		model.SliceExperience:     doc.Experience,
		model.SliceSkills:         doc.Skills,
		model.SliceProjects:       doc.Projects,
		model.SliceCertifications: model.Trimmed(doc.Certifications),
		model.SliceLanguages:      model.Trimmed(doc.Languages),
	}
	for _, name := range model.Slices {
		if err := a.ReplaceSlice(name, values[name]); err != nil {
			return err
		}
	}
	a.log.Info("document loaded",
		"education", len(doc.Education),
		"experience", len(doc.Experience),
		"skills", len(doc.Skills),
		"projects", len(doc.Projects))
	return nil
}

func uniqueIDs[T any](name model.SliceName, list []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(list))
	for _, e := range list {
		k := id(e)
		if _, ok := seen[k]; ok {
			return errors.Wrapf(ErrDuplicateID, "%s: %q", name, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func sliceTypeErr(name model.SliceName, value any) error {
	return errors.Wrapf(ErrSliceType, "%s: got %T", name, value)
}
