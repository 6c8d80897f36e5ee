package handler

import (
	"context"
	"io"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const uploadField = "file"

type UploadHandler struct {
	uc       usecase.DatasetUsecase
	maxBytes int64
}

func NewUploadHandler(uc usecase.DatasetUsecase, maxBytes int) *UploadHandler {
	return &UploadHandler{uc: uc, maxBytes: int64(maxBytes)}
}

func (h *UploadHandler) RegisterRoutes(r fiber.Router, admin fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/upload-users", admin, h.UploadUsers)
	r.Post("/upload-jobs", admin, h.UploadJobs)
}

func (h *UploadHandler) UploadUsers(c fiber.Ctx) error {
	return h.upload(c, h.uc.UploadUsers, "Users data uploaded successfully")
}

func (h *UploadHandler) UploadJobs(c fiber.Ctx) error {
	return h.upload(c, h.uc.UploadJobs, "Jobs data uploaded successfully")
}

type uploadFunc func(ctx context.Context, filename string, raw []byte) error

func (h *UploadHandler) upload(c fiber.Ctx, fn uploadFunc, okMessage string) error {
	filename, raw, err := h.readFilePart(c)
	if err != nil {
		return err
	}

	if err := fn(c.Context(), filename, raw); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.MessageResponse{Status: "success", Message: okMessage})
}

func (h *UploadHandler) readFilePart(c fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		// A part sent with an empty filename arrives as a plain form value.
		if form, ferr := c.MultipartForm(); ferr == nil {
			if _, ok := form.Value[uploadField]; ok {
				return "", nil, middleware.NewAppError(fiber.StatusBadRequest, msgNoSelectedFile, nil, err)
			}
		}
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, msgNoFilePart, nil, err)
	}
	if fh.Filename == "" {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, msgNoSelectedFile, nil, nil)
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return "", nil, middleware.NewAppError(fiber.StatusRequestEntityTooLarge, response.MessageTooLarge, nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, msgNoFilePart, nil, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, msgNoFilePart, nil, err)
	}
	return fh.Filename, raw, nil
}
