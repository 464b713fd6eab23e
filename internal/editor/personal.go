package editor

import (
	"log/slog"

	"resume-builder/internal/model"

	"github.com/pkg/errors"
)

var personalFields = map[string]func(*model.PersonalInfo, string){
	"firstName": func(p *model.PersonalInfo, v string) { p.FirstName = v },
	"lastName":  func(p *model.PersonalInfo, v string) { p.LastName = v },
	"email":     func(p *model.PersonalInfo, v string) { p.Email = v },
	"phone":     func(p *model.PersonalInfo, v string) { p.Phone = v },
	"address":   func(p *model.PersonalInfo, v string) { p.Address = v },
	"city":      func(p *model.PersonalInfo, v string) { p.City = v },
	"state":     func(p *model.PersonalInfo, v string) { p.State = v },
	"zipCode":   func(p *model.PersonalInfo, v string) { p.ZipCode = v },
	"linkedin":  func(p *model.PersonalInfo, v string) { p.LinkedIn = v },
	"website":   func(p *model.PersonalInfo, v string) { p.Website = v },
	"summary":   func(p *model.PersonalInfo, v string) { p.Summary = v },
}

// PersonalEditor has no draft: each field edit is committed at once.
type PersonalEditor struct {
	store Store
	log   *slog.Logger
}

func NewPersonalEditor(store Store, log *slog.Logger) *PersonalEditor {
	if log == nil {
		log = slog.Default()
	}
	return &PersonalEditor{store: store, log: log.With("section", string(model.SlicePersonalInfo))}
}

func (e *PersonalEditor) Info() model.PersonalInfo {
	return e.store.Document().PersonalInfo
}

// SetField replaces one PersonalInfo field in the document.
func (e *PersonalEditor) SetField(field, value string) error {
	set, ok := personalFields[field]
	if !ok {
		return errors.Wrapf(ErrUnknownField, "personalInfo.%s", field)
	}
	info := e.Info()
	set(&info, value)
	return e.store.ReplaceSlice(model.SlicePersonalInfo, info)
}
