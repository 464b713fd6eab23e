// Package preview turns a ResumeDocument into the ordered Visual Document
// shown in the preview and handed to the rasterizer.
package preview

import (
	"net/url"
	"strings"
	"time"

	"resume-builder/internal/model"

	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SectionKind string

const (
	KindHeader         SectionKind = "header"
	KindSummary        SectionKind = "summary"
	KindExperience     SectionKind = "experience"
	KindEducation      SectionKind = "education"
	KindSkills         SectionKind = "skills"
	KindProjects       SectionKind = "projects"
	KindCertifications SectionKind = "certifications"
	KindLanguages      SectionKind = "languages"
)

// Present stands in for an empty end date.
const Present = "Present"

var headings = map[SectionKind]string{
	KindSummary:        "Professional Summary",
	KindExperience:     "Professional Experience",
	KindEducation:      "Education",
	KindSkills:         "Skills",
	KindProjects:       "Projects",
	KindCertifications: "Certifications",
	KindLanguages:      "Languages",
}

type VisualDocument struct {
	Sections []Section `json:"sections"`
}

// Kinds lists the section kinds in output order.
func (v VisualDocument) Kinds() []SectionKind {
	return slice.Map(v.Sections, func(_ int, s Section) SectionKind { return s.Kind })
}

// Section is one block of the Visual Document. Only the fields that belong
// to its Kind are set.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Heading string      `json:"heading,omitempty"`
	Header  *Header     `json:"header,omitempty"`
	Text    string      `json:"text,omitempty"`
	Entries []Entry     `json:"entries,omitempty"`
	Skills  []SkillLine `json:"skills,omitempty"`
	Items   []string    `json:"items,omitempty"`
	Inline  string      `json:"inline,omitempty"`
}

type Header struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines,omitempty"`
	Links []Link   `json:"links,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Host  string `json:"host,omitempty"`
}

// Entry is one experience, education or project block.
type Entry struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Dates        string   `json:"dates"`
	Details      []string `json:"details,omitempty"`
	Description  string   `json:"description,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Technologies string   `json:"technologies,omitempty"`
	Link         *Link    `json:"link,omitempty"`
}

type SkillLine struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Project derives the Visual Document from doc. It has no side effects and
// returns equal output for equal input.
func Project(doc model.ResumeDocument) VisualDocument {
	out := VisualDocument{Sections: []Section{{Kind: KindHeader, Header: header(doc.PersonalInfo)}}}

	if doc.PersonalInfo.Summary != "" {
		out.Sections = append(out.Sections, section(KindSummary, func(s *Section) {
			s.Text = doc.PersonalInfo.Summary
		}))
	}
	if len(doc.Experience) > 0 {
		out.Sections = append(out.Sections, section(KindExperience, func(s *Section) {
			s.Entries = slice.Map(doc.Experience, func(_ int, e model.Experience) Entry {
				return Entry{
					Title:       e.Position,
					Subtitle:    e.Company,
					Dates:       DateRange(e.StartDate, e.EndDate),
					Details:     nonEmpty(e.Location),
					Description: e.Description,
					Bullets:     model.CloneStrings(e.Achievements),
				}
			})
		}))
	}
	if len(doc.Education) > 0 {
		out.Sections = append(out.Sections, section(KindEducation, func(s *Section) {
			s.Entries = slice.Map(doc.Education, func(_ int, e model.Education) Entry {
				gpa := ""
				if e.GPA != "" {
					gpa = "GPA: " + e.GPA
				}
				return Entry{
					Title:    e.Degree,
					Subtitle: e.School,
					Dates:    DateRange(e.StartDate, e.EndDate),
					Details:  nonEmpty(e.Field, e.Location, gpa),
				}
			})
		}))
	}
	if len(doc.Skills) > 0 {
		out.Sections = append(out.Sections, section(KindSkills, func(s *Section) {
			s.Skills = slice.Map(doc.Skills, func(_ int, sk model.Skill) SkillLine {
				return SkillLine{Name: sk.Name, Level: levelLabel(sk.Level)}
			})
		}))
	}
	if len(doc.Projects) > 0 {
		out.Sections = append(out.Sections, section(KindProjects, func(s *Section) {
			s.Entries = slice.Map(doc.Projects, func(_ int, p model.Project) Entry {
				e := Entry{
					Title:        p.Name,
					Dates:        DateRange(p.StartDate, p.EndDate),
					Description:  p.Description,
					Technologies: strings.Join(p.Technologies, ", "),
				}
				if p.Link != "" {
					e.Link = &Link{Label: "View Project", URL: p.Link, Host: linkHost(p.Link)}
				}
				return e
			})
		}))
	}
	if len(doc.Certifications) > 0 {
		out.Sections = append(out.Sections, section(KindCertifications, func(s *Section) {
			s.Items = model.CloneStrings(doc.Certifications)
		}))
	}
	if len(doc.Languages) > 0 {
		out.Sections = append(out.Sections, section(KindLanguages, func(s *Section) {
			s.Inline = strings.Join(doc.Languages, ", ")
		}))
	}
	return out
}

func section(kind SectionKind, fill func(*Section)) Section {
	s := Section{Kind: kind, Heading: headings[kind]}
	fill(&s)
	return s
}

func header(p model.PersonalInfo) *Header {
	h := &Header{
		Name:  strings.TrimSpace(p.FirstName + " " + p.LastName),
		Lines: nonEmpty(p.Email, p.Phone, Address(p)),
	}
	if p.LinkedIn != "" {
		h.Links = append(h.Links, Link{Label: "LinkedIn", URL: p.LinkedIn, Host: linkHost(p.LinkedIn)})
	}
	if p.Website != "" {
		h.Links = append(h.Links, Link{Label: "Website", URL: p.Website, Host: linkHost(p.Website)})
	}
	return h
}

// Address joins the non-blank address parts with ", ". It is empty when
// every part is blank.
func Address(p model.PersonalInfo) string {
	return strings.Join(nonEmpty(p.Address, p.City, p.State, p.ZipCode), ", ")
}

// FormatDate renders "YYYY-MM" (or "YYYY-MM-DD") as "Jan 2006". Empty input
// gives "". Anything else is returned unchanged.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return raw
}

// DateRange renders "start - end", with Present for an empty end.
func DateRange(start, end string) string {
	to := Present
	if strings.TrimSpace(end) != "" {
		to = FormatDate(end)
	}
	return FormatDate(start) + " - " + to
}

func levelLabel(l model.SkillLevel) string {
	if l == "" {
		l = model.LevelIntermediate
	}
	// a Caser is stateful, so each call gets its own
	return cases.Title(language.English).String(string(l))
}

// linkHost returns a short registrable-domain label for u, or "" when u has
// no usable host.
func linkHost(u string) string {
	candidate := u
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return ""
	}
	host := parsed.Hostname()
	if host == "" {
		return ""
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return strings.TrimPrefix(host, "www.")
}

func nonEmpty(parts ...string) []string {
	return slice.FindAll(parts, func(s string) bool { return s != "" })
}
