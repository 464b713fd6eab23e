package cli

import (
	"os"

	"resume-builder/internal/model"

	"github.com/pkg/errors"
)

// readDocument loads and validates a resume JSON file.
func readDocument(path string) (model.ResumeDocument, error) {
	if path == "" {
		return model.ResumeDocument{}, errors.New("--data is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ResumeDocument{}, errors.Wrapf(err, "read %s", path)
	}
	doc, err := model.ParseDocument(raw)
	if err != nil {
		return model.ResumeDocument{}, errors.Wrapf(err, "parse %s", path)
	}
	return doc, nil
}
