package handlers

import (
	"github.com/campusgig/gig_service/internal/api/rest/middleware"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/campusgig/gig_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	svc *services.JobService
}

func NewJobHandler(svc *services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) SetupRoutes(api fiber.Router, authMw fiber.Handler) {
	// browsing is public
	api.Get("/jobs", h.List)
	api.Get("/job/:id", h.Get)

	recruiter := middleware.RequireRoles(domain.RoleRecruiter)
	student := middleware.RequireRoles(domain.RoleStudent)

	api.Post("/create/job", authMw, recruiter, h.Create)
	api.Get("/myJobs", authMw, recruiter, h.MyJobs)
	api.Put("/updateJob/:id", authMw, recruiter, h.Update)
	api.Put("/updateJobStatus/:id", authMw, recruiter, h.SetStatus)
	api.Delete("/deleteJob/:id", authMw, recruiter, h.Delete)

	api.Get("/saveJob/:id", authMw, student, h.ToggleSave)
	api.Get("/getSavedJobs", authMw, student, h.SavedJobs)
}

func (h *JobHandler) List(ctx *fiber.Ctx) error {
	res, err := h.svc.List(dto.ParseJobQuery(ctx))
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{
		"total":   res.Total,
		"page":    res.Page,
		"perPage": res.PerPage,
		"jobs":    res.Jobs,
	})
}

func (h *JobHandler) Get(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	job, svcErr := h.svc.GetJob(id)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"job": job})
}

func (h *JobHandler) Create(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var body dto.CreateJobRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	job, svcErr := h.svc.CreateJob(ctx.Context(), user, body)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusCreated, fiber.Map{"job": job})
}

func (h *JobHandler) MyJobs(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	jobs, svcErr := h.svc.MyJobs(user)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"jobs": jobs})
}

func (h *JobHandler) Update(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateJobRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	job, svcErr := h.svc.UpdateJob(ctx.Context(), user, id, body)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"job": job})
}

func (h *JobHandler) SetStatus(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	job, svcErr := h.svc.SetJobStatus(user, id, body.Status)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"job": job})
}

func (h *JobHandler) Delete(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteJob(user, id); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "gig deleted")
}

func (h *JobHandler) ToggleSave(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	saved, svcErr := h.svc.ToggleSave(user, id)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"saved": saved})
}

func (h *JobHandler) SavedJobs(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	jobs, svcErr := h.svc.SavedJobs(user.ID)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"jobs": jobs})
}
