package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeDocumentIsBlank(t *testing.T) {
	doc := NewResumeDocument()

	assert.Equal(t, PersonalInfo{}, doc.PersonalInfo)
	assert.NotNil(t, doc.Education)
	assert.Empty(t, doc.Education)
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Skills)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.Certifications)
	assert.Empty(t, doc.Languages)
}

func TestCloneDoesNotShareLists(t *testing.T) {
	doc := NewResumeDocument()
	doc.Experience = []Experience{{ID: "1", Company: "Acme", Achievements: []string{"a"}}}
	doc.Projects = []Project{{ID: "2", Name: "P", Technologies: []string{"Go"}}}
	doc.Languages = []string{"English"}

	cp := doc.Clone()
	cp.Experience[0].Achievements[0] = "changed"
	cp.Projects[0].Technologies[0] = "Rust"
	cp.Languages[0] = "French"

	assert.Equal(t, "a", doc.Experience[0].Achievements[0])
	assert.Equal(t, "Go", doc.Projects[0].Technologies[0])
	assert.Equal(t, "English", doc.Languages[0])
}

func TestSkillLevelValid(t *testing.T) {
	for _, l := range Levels {
		assert.True(t, l.Valid(), string(l))
	}
	assert.False(t, SkillLevel("guru").Valid())
	assert.False(t, SkillLevel("").Valid())
}

func TestParseDocument(t *testing.T) {
	raw := []byte(`{
		"personalInfo": {"firstName": "Jane", "lastName": "Doe"},
		"experience": [{"company": "Acme", "position": "Engineer", "startDate": "2020-01", "endDate": ""}],
		"skills": [{"name": "Go", "level": "expert"}],
		"languages": ["English"]
	}`)

	doc, err := ParseDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, "Jane", doc.PersonalInfo.FirstName)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
	assert.NotNil(t, doc.Experience[0].Achievements)
	assert.Equal(t, LevelExpert, doc.Skills[0].Level)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Certifications)
	assert.Equal(t, []string{"English"}, doc.Languages)
}

func TestParseDocumentRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "missing company", raw: `{"experience": [{"position": "Engineer"}]}`},
		{name: "unknown level", raw: `{"skills": [{"name": "Go", "level": "guru"}]}`},
		{name: "numeric date", raw: `{"education": [{"school": "MIT", "degree": "BSc", "startDate": 2020}]}`},
		{name: "wrong type", raw: `{"languages": "English"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tc.raw))
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestParseDocumentKeepsFreeformDates(t *testing.T) {
	// editors accept any date text, so exported documents must import again
	doc, err := ParseDocument([]byte(`{"experience": [{"company": "Acme", "position": "Engineer", "startDate": "Summer 2020", "endDate": "2021-06"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "Summer 2020", doc.Experience[0].StartDate)
	assert.Equal(t, "2021-06", doc.Experience[0].EndDate)
}

func TestParseDocumentMalformedJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`{"personalInfo":`))
	assert.Error(t, err)
}
