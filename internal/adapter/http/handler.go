package http

import (
	"context"
	"log/slog"

	"resume-builder/internal/aggregator"
	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ExportHistory lists past exports.
type ExportHistory interface {
	Recent(ctx context.Context, limit int) ([]domain.ExportJob, error)
}

type Handler struct {
	session    *usecase.Session
	exports    *usecase.ExportTracker
	rasterizer usecase.Rasterizer
	capture    domain.CaptureOptions
	history    ExportHistory
	log        *slog.Logger
}

type Options struct {
	// Rasterizer serves preview thumbnails. Nil disables them.
	Rasterizer usecase.Rasterizer
	Capture    domain.CaptureOptions
	History    ExportHistory
	Log        *slog.Logger
}

func NewHandler(s *usecase.Session, exports *usecase.ExportTracker, opts Options) *Handler {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		session:    s,
		exports:    exports,
		rasterizer: opts.Rasterizer,
		capture:    opts.Capture,
		history:    opts.History,
		log:        log,
	}
}

// Register mounts the routes. Fixed paths go first so they win over the
// :section patterns.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/preview", h.PreviewHTML)

	api := app.Group("/api")
	api.Get("/document", h.GetDocument)
	api.Put("/document", h.PutDocument)
	api.Put("/personal/:field", h.SetPersonalField)
	api.Get("/preview", h.Preview)
	api.Get("/preview.png", h.PreviewThumbnail)
	api.Get("/exports", h.ListExports)
	api.Post("/exports", h.StartExport)
	api.Get("/exports/:id", h.GetExport)

	api.Get("/:section/draft", h.GetDraft)
	api.Put("/:section/draft/:field", h.StageField)
	api.Post("/:section/draft/items", h.AppendItem)
	api.Put("/:section/draft/items/:index", h.SetItem)
	api.Delete("/:section/draft/items/:index", h.RemoveItem)
	api.Post("/:section/commit", h.Commit)
	api.Delete("/:section/:id", h.Delete)
}

type valueReq struct {
	Value string `json:"value"`
}

func (h *Handler) GetDocument(c *fiber.Ctx) error {
	return c.JSON(h.session.Snapshot())
}

func (h *Handler) PutDocument(c *fiber.Ctx) error {
	doc, err := model.ParseDocument(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.session.Load(doc); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.session.Snapshot())
}

func (h *Handler) SetPersonalField(c *fiber.Ctx) error {
	var req valueReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	var info model.PersonalInfo
	err := h.session.Do(func(s *usecase.Session) error {
		if err := s.Personal.SetField(c.Params("field"), req.Value); err != nil {
			return err
		}
		info = s.Personal.Info()
		return nil
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(info)
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	return h.withSection(c, func(sec usecase.SectionEditor) (fiber.Map, error) {
		return fiber.Map{"draft": sec.DraftValue()}, nil
	})
}

func (h *Handler) StageField(c *fiber.Ctx) error {
	var req valueReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.withSection(c, func(sec usecase.SectionEditor) (fiber.Map, error) {
		if err := sec.StageField(c.Params("field"), req.Value); err != nil {
			return nil, err
		}
		return fiber.Map{"draft": sec.DraftValue()}, nil
	})
}

func (h *Handler) AppendItem(c *fiber.Ctx) error {
	return h.withSection(c, func(sec usecase.SectionEditor) (fiber.Map, error) {
		if !sec.HasItems() {
			return nil, errNoItems
		}
		sec.AppendItem()
		return fiber.Map{"draft": sec.DraftValue()}, nil
	})
}

func (h *Handler) SetItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	var req valueReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.withSection(c, func(sec usecase.SectionEditor) (fiber.Map, error) {
		if !sec.HasItems() {
			return nil, errNoItems
		}
		changed := sec.SetItem(index, req.Value)
		return fiber.Map{"changed": changed, "draft": sec.DraftValue()}, nil
	})
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	return h.withSection(c, func(sec usecase.SectionEditor) (fiber.Map, error) {
		if !sec.HasItems() {
			return nil, errNoItems
		}
		changed := sec.RemoveItem(index)
		return fiber.Map{"changed": changed, "draft": sec.DraftValue()}, nil
	})
}

// Commit answers a rejected commit with committed=false and the kept draft.
// A rejection is not an error for the client.
func (h *Handler) Commit(c *fiber.Ctx) error {
	return h.withSection(c, func(sec usecase.SectionEditor) (fiber.Map, error) {
		key, err := sec.Commit()
		if errors.Is(err, editor.ErrValidationRejected) {
			return fiber.Map{"committed": false, "draft": sec.DraftValue()}, nil
		}
		if err != nil {
			return nil, err
		}
		return fiber.Map{"committed": true, "id": key}, nil
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	return h.withSection(c, func(sec usecase.SectionEditor) (fiber.Map, error) {
		removed, err := sec.Delete(c.Params("id"))
		if err != nil {
			return nil, err
		}
		return fiber.Map{"removed": removed}, nil
	})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	return c.JSON(h.session.Preview())
}

func (h *Handler) PreviewHTML(c *fiber.Ctx) error {
	html, err := preview.Render(h.session.Preview())
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (h *Handler) PreviewThumbnail(c *fiber.Ctx) error {
	if h.rasterizer == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "thumbnails disabled"})
	}
	width := c.QueryInt("width", 400)
	if width <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid width"})
	}
	html, err := preview.Render(h.session.Preview())
	if err != nil {
		return h.fail(c, err)
	}
	img, err := h.rasterizer.Capture(c.UserContext(), html, h.capture)
	if err != nil {
		h.log.Error("thumbnail capture failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "capture failed"})
	}
	thumb, err := infra.Thumbnail(img.Data, width)
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("png")
	return c.Send(thumb)
}

func (h *Handler) StartExport(c *fiber.Ctx) error {
	job := h.exports.Start(c.UserContext(), h.session.Snapshot())
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": job.Status, "filename": job.Filename})
}

func (h *Handler) GetExport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid export id"})
	}
	job, ok := h.exports.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "export not found"})
	}
	return c.JSON(job)
}

func (h *Handler) ListExports(c *fiber.Ctx) error {
	if h.history == nil {
		return c.JSON([]domain.ExportJob{})
	}
	jobs, err := h.history.Recent(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		return h.fail(c, err)
	}
	if jobs == nil {
		jobs = []domain.ExportJob{}
	}
	return c.JSON(jobs)
}

var (
	errUnknownSection = errors.New("unknown section")
	errNoItems        = errors.New("section has no item list")
)

// withSection runs fn inside one session action and writes its result.
func (h *Handler) withSection(c *fiber.Ctx, fn func(sec usecase.SectionEditor) (fiber.Map, error)) error {
	var out fiber.Map
	err := h.session.Do(func(s *usecase.Session) error {
		sec, ok := s.Section(c.Params("section"))
		if !ok {
			return errors.Wrap(errUnknownSection, c.Params("section"))
		}
		var err error
		out, err = fn(sec)
		return err
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errUnknownSection):
		status = fiber.StatusNotFound
	case errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, errNoItems),
		errors.Is(err, aggregator.ErrDuplicateID),
		errors.Is(err, model.ErrSchema),
		errors.Is(err, editor.ErrValidationRejected):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		h.log.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
