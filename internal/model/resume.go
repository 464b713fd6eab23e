package model

// Go models for the resume document edited during a session. The JSON shape
// matches schema/resume.schema.json used when a document is imported.

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
	Summary   string `json:"summary"`
}

type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	GPA       string `json:"gpa"`
	Location  string `json:"location"`
}

type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// Levels lists the skill levels in ascending order.
var Levels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Valid reports whether l is one of the known levels.
func (l SkillLevel) Valid() bool {
	for _, v := range Levels {
		if l == v {
			return true
		}
	}
	return false
}

type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// ResumeDocument is the aggregate root. It always carries exactly one
// PersonalInfo; lists keep insertion order.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Skills         []Skill      `json:"skills"`
	Projects       []Project    `json:"projects"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
}

// NewResumeDocument returns a blank document: empty strings and empty lists.
func NewResumeDocument() ResumeDocument {
	return ResumeDocument{
		Education:      []Education{},
		Experience:     []Experience{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []string{},
		Languages:      []string{},
	}
}
