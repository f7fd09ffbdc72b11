package handlers

import (
	"mime/multipart"
	"time"

	"specs-nexus-web/internal/adapters/nexus"

	"github.com/gofiber/fiber/v2"
)

// datetime-local inputs submit this layout, without a zone.
const dateTimeLocal = "2006-01-02T15:04"

// timeNow is swappable in tests.
var timeNow = time.Now

func parseLocalTime(s string) (time.Time, error) {
	return time.ParseInLocation(dateTimeLocal, s, time.Local)
}

func parseOptionalLocalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseLocalTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// optionalUpload opens a multipart file field that may be absent. The
// returned close func is a no-op when no file was sent.
func optionalUpload(c *fiber.Ctx, field string) (*nexus.File, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	return openUpload(header, field)
}

// requiredUpload opens a multipart file field that must be present.
func requiredUpload(c *fiber.Ctx, field string) (*nexus.File, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, fiber.ErrBadRequest
	}
	return openUpload(header, field)
}

func openUpload(header *multipart.FileHeader, field string) (*nexus.File, func(), error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, fiber.ErrBadRequest
	}
	file := &nexus.File{Field: field, Name: header.Filename, Content: f}
	return file, func() { f.Close() }, nil
}
