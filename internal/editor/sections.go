package editor

import (
	"log/slog"
	"strings"

	"resume-builder/internal/model"

	"github.com/go-playground/validator/v10"
)

type (
	EducationEditor  = ListEditor[model.Education]
	ExperienceEditor = ListEditor[model.Experience]
	SkillsEditor     = ListEditor[model.Skill]
	ProjectsEditor   = ListEditor[model.Project]
)

func NewEducationEditor(store Store, v *validator.Validate, log *slog.Logger) *EducationEditor {
	return newListEditor(store, v, log, entitySpec[model.Education]{
		slice: model.SliceEducation,
		list:  func(d model.ResumeDocument) []model.Education { return d.Education },
		blank: func() model.Education { return model.Education{} },
		clone: func(e model.Education) model.Education { return e },
		fields: map[string]func(*model.Education, string){
			"school":    func(e *model.Education, v string) { e.School = v },
			"degree":    func(e *model.Education, v string) { e.Degree = v },
			"field":     func(e *model.Education, v string) { e.Field = v },
			"startDate": func(e *model.Education, v string) { e.StartDate = v },
			"endDate":   func(e *model.Education, v string) { e.EndDate = v },
			"gpa":       func(e *model.Education, v string) { e.GPA = v },
			"location":  func(e *model.Education, v string) { e.Location = v },
		},
		id:    func(e model.Education) string { return e.ID },
		setID: func(e *model.Education, id string) { e.ID = id },
	})
}

func NewExperienceEditor(store Store, v *validator.Validate, log *slog.Logger) *ExperienceEditor {
	return newListEditor(store, v, log, entitySpec[model.Experience]{
		slice: model.SliceExperience,
		list:  func(d model.ResumeDocument) []model.Experience { return d.Experience },
		blank: func() model.Experience { return model.Experience{Achievements: []string{""}} },
		clone: func(e model.Experience) model.Experience {
			e.Achievements = model.CloneStrings(e.Achievements)
			return e
		},
		fields: map[string]func(*model.Experience, string){
			"company":     func(e *model.Experience, v string) { e.Company = v },
			"position":    func(e *model.Experience, v string) { e.Position = v },
			"startDate":   func(e *model.Experience, v string) { e.StartDate = v },
			"endDate":     func(e *model.Experience, v string) { e.EndDate = v },
			"location":    func(e *model.Experience, v string) { e.Location = v },
			"description": func(e *model.Experience, v string) { e.Description = v },
		},
		id:    func(e model.Experience) string { return e.ID },
		setID: func(e *model.Experience, id string) { e.ID = id },
		finalize: func(e *model.Experience) {
			e.Achievements = model.NonBlank(e.Achievements)
		},
		items: func(e *model.Experience) *[]string { return &e.Achievements },
	})
}

func NewSkillsEditor(store Store, v *validator.Validate, log *slog.Logger) *SkillsEditor {
	return newListEditor(store, v, log, entitySpec[model.Skill]{
		slice: model.SliceSkills,
		list:  func(d model.ResumeDocument) []model.Skill { return d.Skills },
		blank: func() model.Skill { return model.Skill{Level: model.LevelIntermediate} },
		clone: func(s model.Skill) model.Skill { return s },
		fields: map[string]func(*model.Skill, string){
			"name":  func(s *model.Skill, v string) { s.Name = v },
			"level": func(s *model.Skill, v string) { s.Level = model.SkillLevel(v) },
		},
		id:    func(s model.Skill) string { return s.ID },
		setID: func(s *model.Skill, id string) { s.ID = id },
		finalize: func(s *model.Skill) {
			s.Name = strings.TrimSpace(s.Name)
			if s.Level == "" {
				s.Level = model.LevelIntermediate
			}
		},
	})
}

func NewProjectsEditor(store Store, v *validator.Validate, log *slog.Logger) *ProjectsEditor {
	return newListEditor(store, v, log, entitySpec[model.Project]{
		slice: model.SliceProjects,
		list:  func(d model.ResumeDocument) []model.Project { return d.Projects },
		blank: func() model.Project { return model.Project{Technologies: []string{""}} },
		clone: func(p model.Project) model.Project {
			p.Technologies = model.CloneStrings(p.Technologies)
			return p
		},
		fields: map[string]func(*model.Project, string){
			"name":        func(p *model.Project, v string) { p.Name = v },
			"description": func(p *model.Project, v string) { p.Description = v },
			"link":        func(p *model.Project, v string) { p.Link = v },
			"startDate":   func(p *model.Project, v string) { p.StartDate = v },
			"endDate":     func(p *model.Project, v string) { p.EndDate = v },
		},
		id:    func(p model.Project) string { return p.ID },
		setID: func(p *model.Project, id string) { p.ID = id },
		finalize: func(p *model.Project) {
			p.Technologies = model.NonBlank(p.Technologies)
		},
		items: func(p *model.Project) *[]string { return &p.Technologies },
	})
}
