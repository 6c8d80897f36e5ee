package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

// user_id 0 is treated as missing, like an absent field.
type recommendRequest struct {
	UserID int `json:"user_id" validate:"required"`
}

type skillGapsRequest struct {
	UserID int  `json:"user_id" validate:"required"`
	JobID  *int `json:"job_id"`
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/recommend-skills", h.RecommendSkills)
	r.Post("/analyze-skill-gaps", h.AnalyzeSkillGaps)
}

func (h *RecommendationHandler) RecommendSkills(c fiber.Ctx) error {
	var req recommendRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	rec, err := h.uc.RecommendSkills(c.Context(), req.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.RecommendationResponse{
		MarketRecommendations:        rec.MarketRecommendations,
		CollaborativeRecommendations: rec.CollaborativeRecommendations,
		Analysis:                     rec.Analysis,
		JobMatches:                   make([]dto.JobMatchResponse, 0, len(rec.JobMatches)),
	}
	for _, m := range rec.JobMatches {
		out.JobMatches = append(out.JobMatches, dto.JobMatchResponse{
			ID:         m.ID,
			Title:      m.Title,
			Company:    m.Company,
			MatchScore: m.MatchScore,
		})
	}
	return response.Success(c, fiber.StatusOK, out)
}

func (h *RecommendationHandler) AnalyzeSkillGaps(c fiber.Ctx) error {
	var req skillGapsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	gaps, err := h.uc.AnalyzeSkillGaps(c.Context(), req.UserID, req.JobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.SkillGapsResponse{SkillGaps: make([]dto.SkillGapResponse, 0, len(gaps))}
	for _, g := range gaps {
		out.SkillGaps = append(out.SkillGaps, dto.SkillGapResponse{Skill: g.Skill, Importance: g.Importance})
	}
	return response.Success(c, fiber.StatusOK, out)
}

// bindBody decodes the JSON body into a struct carrying a required user_id.
func bindBody(c fiber.Ctx, req any) error {
	if len(c.Body()) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, msgUserIDRequired, nil, nil)
	}
	if err := c.Bind().JSON(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidRequestBody, nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgUserIDRequired, nil, err)
	}
	return nil
}
