package preview

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() model.ResumeDocument {
	doc := model.NewResumeDocument()
	doc.PersonalInfo = model.PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		City:      "Springfield",
		State:     "IL",
		LinkedIn:  "https://www.linkedin.com/in/janedoe",
		Summary:   "Backend engineer.",
	}
	doc.Experience = []model.Experience{{
		ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2020-01",
		Location: "Remote", Achievements: []string{"Shipped v1"},
	}}
	doc.Education = []model.Education{{
		ID: "d1", School: "MIT", Degree: "BSc", Field: "CS",
		StartDate: "2014-09", EndDate: "2018-06", GPA: "3.9",
	}}
	doc.Skills = []model.Skill{{ID: "s1", Name: "Go", Level: model.LevelExpert}}
	doc.Projects = []model.Project{{
		ID: "p1", Name: "resume-builder", Description: "Builds resumes",
		Technologies: []string{"Go", "Chrome"}, Link: "github.com/jane/resume-builder",
	}}
	doc.Certifications = []string{"CKA"}
	doc.Languages = []string{"English", "German"}
	return doc
}

func TestProjectSectionOrder(t *testing.T) {
	got := Project(fullDocument())
	assert.Equal(t, []SectionKind{
		KindHeader, KindSummary, KindExperience, KindEducation,
		KindSkills, KindProjects, KindCertifications, KindLanguages,
	}, got.Kinds())
}

func TestProjectHeaderOnly(t *testing.T) {
	doc := model.NewResumeDocument()
	doc.PersonalInfo = model.PersonalInfo{FirstName: "Jane", LastName: "Doe"}

	got := Project(doc)

	require.Len(t, got.Sections, 1)
	assert.Equal(t, KindHeader, got.Sections[0].Kind)
	assert.Equal(t, "Jane Doe", got.Sections[0].Header.Name)
	assert.Empty(t, got.Sections[0].Header.Lines)
	assert.Empty(t, got.Sections[0].Header.Links)
}

func TestProjectIsIdempotent(t *testing.T) {
	doc := fullDocument()
	assert.Equal(t, Project(doc), Project(doc))
}

func TestProjectExperiencePresent(t *testing.T) {
	doc := model.NewResumeDocument()
	doc.PersonalInfo = model.PersonalInfo{FirstName: "Jane", LastName: "Doe"}
	doc.Experience = []model.Experience{{ID: "1", Company: "Acme", Position: "Engineer", StartDate: "2020-01"}}

	got := Project(doc)

	require.Len(t, got.Sections, 2)
	exp := got.Sections[1]
	assert.Equal(t, "Professional Experience", exp.Heading)
	require.Len(t, exp.Entries, 1)
	assert.Equal(t, "Engineer", exp.Entries[0].Title)
	assert.Equal(t, "Acme", exp.Entries[0].Subtitle)
	assert.Equal(t, "Jan 2020 - Present", exp.Entries[0].Dates)
}

func TestProjectFields(t *testing.T) {
	got := Project(fullDocument())

	h := got.Sections[0].Header
	assert.Equal(t, []string{"jane@example.com", "Springfield, IL"}, h.Lines)
	require.Len(t, h.Links, 1)
	assert.Equal(t, Link{Label: "LinkedIn", URL: "https://www.linkedin.com/in/janedoe", Host: "linkedin.com"}, h.Links[0])

	edu := got.Sections[3].Entries[0]
	assert.Equal(t, "Sep 2014 - Jun 2018", edu.Dates)
	assert.Equal(t, []string{"CS", "GPA: 3.9"}, edu.Details)

	assert.Equal(t, []SkillLine{{Name: "Go", Level: "Expert"}}, got.Sections[4].Skills)

	proj := got.Sections[5].Entries[0]
	assert.Equal(t, "Go, Chrome", proj.Technologies)
	require.NotNil(t, proj.Link)
	assert.Equal(t, "View Project", proj.Link.Label)
	assert.Equal(t, "github.com", proj.Link.Host)

	assert.Equal(t, []string{"CKA"}, got.Sections[6].Items)
	assert.Equal(t, "English, German", got.Sections[7].Inline)
}

func TestProjectDoesNotAliasDocument(t *testing.T) {
	doc := fullDocument()
	got := Project(doc)
	got.Sections[2].Entries[0].Bullets[0] = "changed"
	got.Sections[6].Items[0] = "changed"
	assert.Equal(t, "Shipped v1", doc.Experience[0].Achievements[0])
	assert.Equal(t, "CKA", doc.Certifications[0])
}

func TestFormatDate(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "2020-01", want: "Jan 2020"},
		{raw: "1999-12", want: "Dec 1999"},
		{raw: "2021-07-15", want: "Jul 2021"},
		{raw: "sometime", want: "sometime"},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDate(tc.raw))
		})
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Mar 2022", DateRange("2020-01", "2022-03"))
	assert.Equal(t, "Jan 2020 - Present", DateRange("2020-01", ""))
	assert.Equal(t, " - Present", DateRange("", ""))
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "", Address(model.PersonalInfo{}))
	assert.Equal(t, "1 Main St, 94105", Address(model.PersonalInfo{Address: "1 Main St", ZipCode: "94105"}))
	assert.Equal(t, "1 Main St, Springfield, IL, 62701",
		Address(model.PersonalInfo{Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"}))
}

func TestEmptySectionsOmitted(t *testing.T) {
	doc := model.NewResumeDocument()
	doc.Languages = []string{"English"}
	got := Project(doc)
	assert.Equal(t, []SectionKind{KindHeader, KindLanguages}, got.Kinds())
}
