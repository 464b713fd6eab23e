package usecase

import (
	"context"
	"log/slog"
	"sync"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// ExportTracker starts exports in the background and keeps their latest
// state for polling.
type ExportTracker struct {
	exporter *Exporter
	repo     ExportsRepo
	log      *slog.Logger

	mu   sync.RWMutex
	jobs map[uuid.UUID]domain.ExportJob
	wg   sync.WaitGroup
}

func NewExportTracker(x *Exporter, repo ExportsRepo, log *slog.Logger) *ExportTracker {
	if log == nil {
		log = slog.Default()
	}
	return &ExportTracker{exporter: x, repo: repo, log: log, jobs: map[uuid.UUID]domain.ExportJob{}}
}

// Start registers a pending job for doc and exports it in a goroutine. doc
// must be a snapshot the caller no longer mutates.
func (t *ExportTracker) Start(ctx context.Context, doc model.ResumeDocument) domain.ExportJob {
	job := domain.NewExportJob(Filename(doc.PersonalInfo))
	pending := *job
	t.put(pending)

	// persist initial job (best-effort)
	if t.repo != nil {
		if err := t.repo.Save(ctx, job); err != nil {
			t.log.Warn("failed to save export job", "export_id", job.ID.String(), "error", err)
		}
	}

	t.wg.Add(1)
	go func(j *domain.ExportJob) {
		defer t.wg.Done()
		// the export outlives the request that started it
		_ = t.exporter.Export(context.WithoutCancel(ctx), doc, j)
		t.put(*j)
	}(job)

	return pending
}

func (t *ExportTracker) Get(id uuid.UUID) (domain.ExportJob, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	j, ok := t.jobs[id]
	return j, ok
}

// Wait blocks until every started export has finished.
func (t *ExportTracker) Wait() {
	t.wg.Wait()
}

func (t *ExportTracker) put(j domain.ExportJob) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs[j.ID] = j
}
