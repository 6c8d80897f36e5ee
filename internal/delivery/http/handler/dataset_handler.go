package handler

import (
	"strconv"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DatasetHandler struct {
	uc usecase.DatasetUsecase
}

func NewDatasetHandler(uc usecase.DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// RegisterRoutes mounts the dataset routes. admin guards the mutating ones.
func (h *DatasetHandler) RegisterRoutes(r fiber.Router, admin fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Get("/users/:limit<int;min(0)>", h.ListUsers)
	r.Get("/jobs", h.ListJobs)
	r.Get("/jobs/:limit<int;min(0)>", h.ListJobs)
	r.Get("/status", h.Status)
	r.Post("/refresh-recommender", admin, h.Refresh)
}

func (h *DatasetHandler) ListUsers(c fiber.Ctx) error {
	limit, err := parseLimitParam(c)
	if err != nil {
		return err
	}
	users, err := h.uc.ListUsers(c.Context(), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.UsersResponse{Count: len(users), Users: users})
}

func (h *DatasetHandler) ListJobs(c fiber.Ctx) error {
	limit, err := parseLimitParam(c)
	if err != nil {
		return err
	}
	jobs, err := h.uc.ListJobs(c.Context(), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.JobsResponse{Count: len(jobs), Jobs: jobs})
}

// parseLimitParam returns -1 when the route has no limit segment.
func parseLimitParam(c fiber.Ctx) (int, error) {
	s := c.Params("limit")
	if s == "" {
		return -1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fiber.ErrNotFound
	}
	return v, nil
}

func (h *DatasetHandler) Status(c fiber.Ctx) error {
	st, err := h.uc.Status(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	if !st.Ready {
		return response.Success(c, fiber.StatusOK, dto.StatusNotInitializedResponse{
			Status:  "not_initialized",
			Message: msgStatusNotReady,
		})
	}

	out := dto.StatusReadyResponse{
		Status:     "ready",
		UsersCount: st.UsersCount,
		JobsCount:  st.JobsCount,
		LoadedAt:   st.LoadedAt,
	}
	for _, u := range st.RecentUploads {
		out.RecentUploads = append(out.RecentUploads, dto.UploadRecordResponse{
			ID:          u.ID,
			Kind:        u.Kind,
			Filename:    u.Filename,
			RecordCount: u.RecordCount,
			SizeBytes:   u.SizeBytes,
			SnapshotID:  u.SnapshotID,
			UploadedAt:  u.UploadedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, out)
}

func (h *DatasetHandler) Refresh(c fiber.Ctx) error {
	hasData, err := h.uc.Refresh(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.RefreshResponse{
		Status:  "success",
		Message: msgRecommenderRefreshed,
		HasData: hasData,
	})
}
