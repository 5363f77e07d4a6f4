package handlers

import (
	"errors"

	"github.com/campusgig/gig_service/internal/api/rest/middleware"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler turns route errors into the shared response envelope. It is
// installed as the app-level fiber error handler, so the helpers below abort
// a handler by returning a non-nil error instead of writing the response
// themselves.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ResponseError(ctx, fe.Code, fe.Message)
	}
	return utils.ResponseServiceError(ctx, err)
}

func parseID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// currentUser returns the authenticated account; routes behind AuthMiddleware
// always have one, so a miss means the route is wired wrong.
func currentUser(ctx *fiber.Ctx) (*domain.User, error) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return user, nil
}
