package model

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

// ErrSchema is returned when an imported document does not match the schema.
var ErrSchema = errors.New("schema validation failed")

// Validate checks raw JSON against the embedded resume schema.
func Validate(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return errors.Wrap(err, "load document")
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.Wrap(ErrSchema, strings.Join(msgs, "; "))
}

// ParseDocument validates raw JSON and decodes it. Missing lists decode as
// empty lists, never nil.
func ParseDocument(raw []byte) (ResumeDocument, error) {
	if err := Validate(raw); err != nil {
		return ResumeDocument{}, err
	}
	doc := NewResumeDocument()
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ResumeDocument{}, errors.Wrap(err, "decode document")
	}
	return doc.normalized(), nil
}

func (d ResumeDocument) normalized() ResumeDocument {
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}
	for i := range d.Experience {
		if d.Experience[i].Achievements == nil {
			d.Experience[i].Achievements = []string{}
		}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
	return d
}
