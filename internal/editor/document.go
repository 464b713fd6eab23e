package editor

import (
	"resume-builder/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidateDocument applies the commit rules to every list entry of an
// imported document. The first failing entry is reported as
// ErrValidationRejected, prefixed with its slice and position.
func ValidateDocument(v *validator.Validate, doc model.ResumeDocument) error {
	if v == nil {
		v = NewValidator()
	}
	if err := validateEntries(v, model.SliceEducation, doc.Education); err != nil {
		return err
	}
	if err := validateEntries(v, model.SliceExperience, doc.Experience); err != nil {
		return err
	}
	if err := validateEntries(v, model.SliceSkills, doc.Skills); err != nil {
		return err
	}
	return validateEntries(v, model.SliceProjects, doc.Projects)
}

func validateEntries[T any](v *validator.Validate, name model.SliceName, list []T) error {
	for i, entry := range list {
		if err := v.Struct(entry); err != nil {
			return errors.Wrapf(rejected(err), "%s[%d]", name, i)
		}
	}
	return nil
}
