package handlers

import (
	"github.com/campusgig/gig_service/internal/api/rest/middleware"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/campusgig/gig_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PortfolioHandler struct {
	svc *services.PortfolioService
}

func NewPortfolioHandler(svc *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

func (h *PortfolioHandler) SetupRoutes(api fiber.Router, authMw fiber.Handler) {
	student := middleware.RequireRoles(domain.RoleStudent)

	api.Get("/portfolio", authMw, student, h.Get)
	api.Post("/portfolio", authMw, student, h.Update)

	// public view for anyone browsing a student's showcase
	api.Get("/portfolio/:id", h.GetByUser)
}

func (h *PortfolioHandler) Get(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	p, svcErr := h.svc.Get(user.ID)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"portfolio": p})
}

func (h *PortfolioHandler) GetByUser(ctx *fiber.Ctx) error {
	userID, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	p, svcErr := h.svc.Get(userID)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"portfolio": p})
}

func (h *PortfolioHandler) Update(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var body dto.UpdatePortfolioRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	p, svcErr := h.svc.Update(ctx.Context(), user.ID, body)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"portfolio": p})
}
