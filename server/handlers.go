package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"prosong/config"
	"prosong/convert"
	"prosong/misc"
	"prosong/song"
)

type handlers struct {
	cfg *config.Config
	log *zap.Logger
}

// fail renders an error response body compatible with what API consumers
// already expect.
func fail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}

func (h *handlers) info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": misc.GetAppName() + " - lyrics to presentation document converter",
		"version": misc.GetVersion(),
		"endpoints": fiber.Map{
			"convert": "/convert",
			"parse":   "/parse",
			"health":  "/health",
		},
	})
}

func (h *handlers) health(c *fiber.Ctx) error {
	templatePath := h.cfg.Document.TemplatePath

	configured := false
	if len(templatePath) > 0 {
		_, err := os.Stat(templatePath)
		configured = err == nil
	}

	status := "healthy"
	if len(templatePath) > 0 && !configured {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":              status,
		"template_configured": configured,
		"template_path":       templatePath,
	})
}

// formFileBytes reads one uploaded multipart file fully into memory.
func formFileBytes(c *fiber.Ctx, name string) ([]byte, string, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

func (h *handlers) parse(c *fiber.Ctx) error {
	data, name, err := formFileBytes(c, "file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "lyrics file is required")
	}
	if !strings.HasSuffix(name, ".txt") {
		return fail(c, fiber.StatusBadRequest, "input file must be a .txt file")
	}

	s := song.Parse(string(data))

	type slideInfo struct {
		Line1 string `json:"line1"`
		Line2 string `json:"line2"`
	}
	type sectionInfo struct {
		Name       string      `json:"name"`
		SlideCount int         `json:"slide_count"`
		Slides     []slideInfo `json:"slides"`
	}

	sections := make([]sectionInfo, 0, len(s.Sections))
	for i := range s.Sections {
		sec := &s.Sections[i]
		info := sectionInfo{Name: sec.Name, SlideCount: len(sec.Slides)}
		for _, sl := range sec.Slides {
			info.Slides = append(info.Slides, slideInfo{Line1: sl.Line1, Line2: sl.Line2})
		}
		sections = append(sections, info)
	}

	return c.JSON(fiber.Map{
		"title":    s.Title,
		"sections": sections,
		"statistics": fiber.Map{
			"section_count": len(s.Sections),
			"total_slides":  s.SlideCount(),
		},
	})
}

func (h *handlers) convert(c *fiber.Ctx) error {
	data, name, err := formFileBytes(c, "file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "lyrics file is required")
	}
	if !strings.HasSuffix(name, ".txt") {
		return fail(c, fiber.StatusBadRequest, "input file must be a .txt file")
	}

	template, err := h.templateBytes(c)
	if err != nil {
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return fail(c, ferr.Code, ferr.Message)
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	text := string(data)
	out, err := convert.Convert(c.UserContext(), text, template, convert.WithLogger(h.log))
	switch {
	case errors.Is(err, convert.ErrEmptySong):
		return fail(c, fiber.StatusBadRequest, "input contains no convertible lyrics")
	case errors.Is(err, convert.ErrBadTemplate):
		return fail(c, fiber.StatusUnprocessableEntity, err.Error())
	case err != nil:
		h.log.Error("Conversion failed", zap.String("file", name), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "conversion failed")
	}

	fileName := convert.OutputFileName(song.Parse(text).Title, h.cfg.Document.FileNameTransliterate)
	h.log.Info("Document converted",
		zap.String("input", name),
		zap.String("output", fileName),
		zap.Int("size", len(out)),
		zap.Bool("template", template != nil))

	c.Set(fiber.HeaderContentType, "application/octet-stream")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	return c.Send(out)
}

// templateBytes picks the template for one conversion: an uploaded document
// wins, otherwise the configured default is used when present. No template at
// all selects the from-scratch strategy.
func (h *handlers) templateBytes(c *fiber.Ctx) ([]byte, error) {
	if data, name, err := formFileBytes(c, "template"); err == nil {
		if !strings.HasSuffix(name, ".pro") {
			return nil, fiber.NewError(fiber.StatusBadRequest, "template file must be a .pro file")
		}
		return data, nil
	}

	path := h.cfg.Document.TemplatePath
	if len(path) == 0 {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		h.log.Warn("Configured template is not readable, building from scratch", zap.String("path", path), zap.Error(err))
		return nil, nil
	}
	return data, nil
}
