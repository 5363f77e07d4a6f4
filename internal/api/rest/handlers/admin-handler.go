package handlers

import (
	"github.com/campusgig/gig_service/internal/api/rest/middleware"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/campusgig/gig_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler groups the moderation surface: user management, listing
// approval, and full visibility over gigs and applications.
type AdminHandler struct {
	users *services.UserService
	jobs  *services.JobService
	apps  *services.ApplicationService
}

func NewAdminHandler(users *services.UserService, jobs *services.JobService, apps *services.ApplicationService) *AdminHandler {
	return &AdminHandler{users: users, jobs: jobs, apps: apps}
}

func (h *AdminHandler) SetupRoutes(api fiber.Router, authMw fiber.Handler) {
	g := api.Group("/admin", authMw, middleware.RequireRoles(domain.RoleAdmin))

	g.Get("/users", h.ListUsers)
	g.Get("/users/:id", h.GetUser)
	g.Put("/users/:id/role", h.UpdateUserRole)
	g.Put("/users/:id/verify", h.VerifyRecruiter)
	g.Delete("/users/:id", h.DeleteUser)

	g.Get("/jobs", h.ListJobs)
	g.Put("/jobs/:id/approve", h.ApproveJob)
	g.Delete("/jobs/:id", h.DeleteJob)

	g.Get("/applications", h.ListApplications)
	g.Delete("/applications/:id", h.DeleteApplication)
}

func (h *AdminHandler) ListUsers(ctx *fiber.Ctx) error {
	users, err := h.users.ListUsers()
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"users": users})
}

func (h *AdminHandler) GetUser(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	user, svcErr := h.users.GetProfile(id)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"user": user})
}

func (h *AdminHandler) UpdateUserRole(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateUserRoleRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "role is required")
	}

	user, svcErr := h.users.UpdateUserRole(id, body.Role)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"user": user})
}

func (h *AdminHandler) VerifyRecruiter(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var body struct {
		Verified bool `json:"verified"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "verified flag is required")
	}

	user, svcErr := h.users.SetRecruiterVerification(id, body.Verified)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"user": user})
}

func (h *AdminHandler) DeleteUser(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	if err := h.users.DeleteUser(id); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "user deleted")
}

func (h *AdminHandler) ListJobs(ctx *fiber.Ctx) error {
	jobs, err := h.jobs.ListAll()
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"jobs": jobs})
}

func (h *AdminHandler) ApproveJob(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var body struct {
		Approved bool `json:"approved"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "approved flag is required")
	}

	job, svcErr := h.jobs.SetJobApproval(id, body.Approved)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"job": job})
}

func (h *AdminHandler) DeleteJob(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	if err := h.jobs.DeleteJob(user, id); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "gig deleted")
}

func (h *AdminHandler) ListApplications(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	views, svcErr := h.apps.ListForActor(user)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"applications": views})
}

func (h *AdminHandler) DeleteApplication(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	if err := h.apps.Delete(user, id); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "application deleted")
}
