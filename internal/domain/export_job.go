package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExportPending   = "pending"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ExportJob tracks one background export of the document.
type ExportJob struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path,omitempty"`
	Pages     int       `json:"pages"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewExportJob(filename string) *ExportJob {
	now := time.Now()
	return &ExportJob{
		ID:        uuid.New(),
		Status:    ExportPending,
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (j *ExportJob) Complete(path string, pages int) {
	j.Status = ExportCompleted
	j.Path = path
	j.Pages = pages
	j.Error = ""
	j.UpdatedAt = time.Now()
}

func (j *ExportJob) Fail(err error) {
	j.Status = ExportFailed
	j.Error = err.Error()
	j.UpdatedAt = time.Now()
}
