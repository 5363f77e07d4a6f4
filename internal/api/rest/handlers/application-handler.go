package handlers

import (
	"github.com/campusgig/gig_service/internal/api/rest/middleware"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/campusgig/gig_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	svc *services.ApplicationService
}

func NewApplicationHandler(svc *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) SetupRoutes(api fiber.Router, authMw fiber.Handler) {
	api.Post("/createApplication/:id", authMw, middleware.RequireRoles(domain.RoleStudent), h.Create)
	api.Get("/singleApplication/:id", authMw, h.Get)
	api.Get("/getAllApplication", authMw, h.List)
	api.Put("/updateApplicationStatus/:id", authMw, middleware.RequireRoles(domain.RoleRecruiter), h.UpdateStatus)
	api.Delete("/deleteApplication/:id", authMw, h.Delete)
}

func (h *ApplicationHandler) Create(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	jobID, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var body dto.CreateApplicationRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	app, svcErr := h.svc.Create(ctx.Context(), user, jobID, body)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusCreated, fiber.Map{"application": app})
}

func (h *ApplicationHandler) Get(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	view, svcErr := h.svc.Get(user, id)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"application": view})
}

func (h *ApplicationHandler) List(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	views, svcErr := h.svc.ListForActor(user)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"applications": views})
}

func (h *ApplicationHandler) UpdateStatus(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateApplicationStatusRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	view, svcErr := h.svc.UpdateStatus(user, id, body.Status)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"application": view})
}

func (h *ApplicationHandler) Delete(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(user, id); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "application deleted")
}
