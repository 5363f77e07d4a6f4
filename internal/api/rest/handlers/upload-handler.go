package handlers

import (
	"path/filepath"
	"strings"

	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/campusgig/gig_service/internal/interfaces"
	pkgutils "github.com/campusgig/gig_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadSize = 5 * 1024 * 1024

var allowedUploadExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".pdf": true,
}

// UploadHandler takes multipart files (avatars, resumes) and stores them on
// the media host, returning the hosted URL for the client to attach elsewhere.
type UploadHandler struct {
	up interfaces.Uploader
}

func NewUploadHandler(up interfaces.Uploader) *UploadHandler {
	return &UploadHandler{up: up}
}

func (h *UploadHandler) SetupRoutes(api fiber.Router, authMw fiber.Handler) {
	api.Post("/upload/avatar", authMw, h.upload("avatars"))
	api.Post("/upload/resume", authMw, h.upload("resumes"))
}

func (h *UploadHandler) upload(folder string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if h.up == nil {
			return utils.ResponseError(ctx, fiber.StatusServiceUnavailable, "file uploads are not available")
		}

		file, err := ctx.FormFile("file")
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedUploadExt[ext] {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "only jpg/jpeg/png/webp/pdf allowed")
		}
		if file.Size > maxUploadSize {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
		}

		f, err := file.Open()
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
		}
		defer f.Close()

		b, err := pkgutils.ReadAllLimit(f, maxUploadSize)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}

		url, err := h.up.UploadBytes(ctx.Context(), folder, uuid.NewString(), b)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "upload failed")
		}

		return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"url": url})
	}
}
