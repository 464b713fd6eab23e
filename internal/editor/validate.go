package editor

import (
	"strings"

	"resume-builder/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	// ErrValidationRejected marks a commit that was dropped because a
	// required field is blank. The draft is left untouched.
	ErrValidationRejected = errors.New("required field missing")
	ErrUnknownField       = errors.New("unknown field")
)

// Required-field rules live here, at the editor boundary, not on the model.
var entityRules = []struct {
	rules map[string]string
	typ   any
}{
	{rules: map[string]string{"School": "notblank", "Degree": "notblank"}, typ: model.Education{}},
	{rules: map[string]string{"Company": "notblank", "Position": "notblank"}, typ: model.Experience{}},
	{rules: map[string]string{"Name": "notblank", "Level": "omitempty,oneof=beginner intermediate advanced expert"}, typ: model.Skill{}},
	{rules: map[string]string{"Name": "notblank", "Description": "notblank"}, typ: model.Project{}},
}

// NewValidator returns a validator carrying the per-entity required-field
// rules.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", NotBlank)
	for _, r := range entityRules {
		v.RegisterStructValidationMapRules(r.rules, r.typ)
	}
	return v
}

// NotBlank rejects strings that are empty after trimming.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// rejected turns validator output into ErrValidationRejected naming the
// failing fields.
func rejected(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(ErrValidationRejected, err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return errors.Wrap(ErrValidationRejected, strings.Join(fields, ", "))
}
