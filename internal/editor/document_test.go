package editor

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	valid := func() model.ResumeDocument {
		doc := model.NewResumeDocument()
		doc.Education = []model.Education{{School: "MIT", Degree: "BSc"}}
		doc.Experience = []model.Experience{{Company: "Acme", Position: "Engineer"}}
		doc.Skills = []model.Skill{{Name: "Go"}}
		doc.Projects = []model.Project{{Name: "CLI", Description: "A tool"}}
		return doc
	}
	require.NoError(t, ValidateDocument(nil, valid()))

	testCases := []struct {
		name   string
		mutate func(*model.ResumeDocument)
		where  string
	}{
		{"blank school", func(d *model.ResumeDocument) { d.Education[0].School = "   " }, "education[0]"},
		{"blank degree", func(d *model.ResumeDocument) { d.Education[0].Degree = " " }, "education[0]"},
		{"blank position", func(d *model.ResumeDocument) { d.Experience[0].Position = "\t" }, "experience[0]"},
		{"blank skill name", func(d *model.ResumeDocument) {
			d.Skills = append(d.Skills, model.Skill{Name: "  "})
		}, "skills[1]"},
		{"unknown level", func(d *model.ResumeDocument) { d.Skills[0].Level = "guru" }, "skills[0]"},
		{"blank description", func(d *model.ResumeDocument) { d.Projects[0].Description = "" }, "projects[0]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := valid()
			tc.mutate(&doc)
			err := ValidateDocument(NewValidator(), doc)
			assert.ErrorIs(t, err, ErrValidationRejected)
			assert.Contains(t, err.Error(), tc.where)
		})
	}
}
