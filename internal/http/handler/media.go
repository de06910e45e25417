package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"triptogether/internal/logger"
	"triptogether/internal/service"
)

const mediaCacheControl = "public, max-age=86400"

// Media serves a stored image, or redirects to a pre-signed URL when presign is set.
//
// @Summary Program and gallery images
// @Tags    media
// @Param   key path string true "Object key"
// @Success 200
// @Success 302
// @Failure 404 {object} errorPayload
// @Router  /media/{key} [get]
func Media(media service.MediaService, presign bool, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("*")

		if presign {
			u, err := media.Presign(c.UserContext(), key)
			if err != nil {
				return mediaError(c, log, err)
			}
			return c.Redirect(u, fiber.StatusFound)
		}

		rc, info, err := media.Open(c.UserContext(), key)
		if err != nil {
			return mediaError(c, log, err)
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		c.Set(fiber.HeaderCacheControl, mediaCacheControl)

		size := int(info.Size)
		if info.Size <= 0 {
			size = -1
		}
		// fasthttp closes rc once the body is written.
		return c.Status(fiber.StatusOK).SendStream(rc, size)
	}
}

func mediaError(c *fiber.Ctx, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrMediaDisabled), errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "media not found")
	case errors.Is(err, service.ErrInvalidKey):
		return writeError(c, fiber.StatusBadRequest, "INVALID_KEY", "invalid media key")
	default:
		log.ErrorContext(c.UserContext(), "media request failed",
			slog.String("request_id", requestIDFromCtx(c)),
			logger.Error(err))
		return writeError(c, fiber.StatusBadGateway, "STORAGE_UNAVAILABLE", "storage unavailable")
	}
}
