package model

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// SliceName identifies one top-level field of a ResumeDocument.
type SliceName string

const (
	SlicePersonalInfo   SliceName = "personalInfo"
	SliceEducation      SliceName = "education"
	SliceExperience     SliceName = "experience"
	SliceSkills         SliceName = "skills"
	SliceProjects       SliceName = "projects"
	SliceCertifications SliceName = "certifications"
	SliceLanguages      SliceName = "languages"
)

// Slices lists every slice of the document.
var Slices = []SliceName{
	SlicePersonalInfo,
	SliceEducation,
	SliceExperience,
	SliceSkills,
	SliceProjects,
	SliceCertifications,
	SliceLanguages,
}

// Clone returns a deep copy of d. Lists in the copy never share backing
// arrays with d.
func (d ResumeDocument) Clone() ResumeDocument {
	out := ResumeDocument{
		PersonalInfo:   d.PersonalInfo,
		Education:      CloneEducation(d.Education),
		Experience:     CloneExperience(d.Experience),
		Skills:         CloneSkills(d.Skills),
		Projects:       CloneProjects(d.Projects),
		Certifications: CloneStrings(d.Certifications),
		Languages:      CloneStrings(d.Languages),
	}
	return out
}

func CloneStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func CloneEducation(src []Education) []Education {
	out := make([]Education, len(src))
	copy(out, src)
	return out
}

func CloneSkills(src []Skill) []Skill {
	out := make([]Skill, len(src))
	copy(out, src)
	return out
}

func CloneExperience(src []Experience) []Experience {
	out := make([]Experience, len(src))
	for i, e := range src {
		e.Achievements = CloneStrings(e.Achievements)
		out[i] = e
	}
	return out
}

func CloneProjects(src []Project) []Project {
	out := make([]Project, len(src))
	for i, p := range src {
		p.Technologies = CloneStrings(p.Technologies)
		out[i] = p
	}
	return out
}

// Trimmed returns the non-blank entries of src with surrounding space removed.
func Trimmed(src []string) []string {
	return slice.Map(NonBlank(src), func(_ int, s string) string { return strings.TrimSpace(s) })
}

// NonBlank returns the entries of src that are not whitespace-only, in order.
func NonBlank(src []string) []string {
	return slice.FindAll(src, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}
