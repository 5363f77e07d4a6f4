package handlers

import (
	"time"

	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/campusgig/gig_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) SetupRoutes(api fiber.Router, authMw fiber.Handler) {
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)

	api.Get("/isLogin", authMw, h.IsLogin)
	api.Get("/me", authMw, h.Me)
	api.Put("/changePassword", authMw, h.ChangePassword)
	api.Put("/updateProfile", authMw, h.UpdateProfile)
	api.Delete("/deleteAccount", authMw, h.DeleteAccount)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	token, user, err := h.svc.Register(ctx.Context(), body)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}

	setAuthCookie(ctx, token)
	return utils.ResponseData(ctx, fiber.StatusCreated, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var body dto.UserLogin
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	token, user, err := h.svc.Login(body)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}

	setAuthCookie(ctx, token)
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *UserHandler) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return utils.ResponseMessage(ctx, fiber.StatusOK, "logged out")
}

func (h *UserHandler) IsLogin(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"user": user})
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	profile, svcErr := h.svc.GetProfile(user.ID)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"user": profile})
}

func (h *UserHandler) ChangePassword(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var body dto.ChangePasswordRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	if err := h.svc.ChangePassword(user.ID, body); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "password updated")
}

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var body dto.UpdateProfileRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	updated, svcErr := h.svc.UpdateProfile(ctx.Context(), user.ID, body)
	if svcErr != nil {
		return utils.ResponseServiceError(ctx, svcErr)
	}
	return utils.ResponseData(ctx, fiber.StatusOK, fiber.Map{"user": updated})
}

func (h *UserHandler) DeleteAccount(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var body dto.DeleteAccountRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "password is required")
	}

	if err := h.svc.DeleteAccount(user.ID, body); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return utils.ResponseMessage(ctx, fiber.StatusOK, "account deleted")
}

func setAuthCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(5 * 24 * time.Hour),
		HTTPOnly: true,
	})
}
