package middleware

import (
	"strings"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/helper"
	"github.com/campusgig/gig_service/internal/helper/utils"
	"github.com/campusgig/gig_service/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// AuthMiddleware verifies the bearer token (cookie first, then the
// Authorization header) and loads the account into the request context, so
// role checks downstream see the current role rather than the one baked into
// the token.
func AuthMiddleware(auth helper.Auth, users repository.UserRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		user, err := users.FindUserByID(claims.UserID)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		ctx.Locals("claims", claims)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// RequireRoles lets only the listed roles through. Admins pass every gate.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := CurrentUser(ctx)
		if !ok {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}
		if user.IsAdmin() || lo.Contains(roles, user.Role) {
			return ctx.Next()
		}
		return utils.ResponseError(ctx, fiber.StatusForbidden, "you do not have permission to perform this action")
	}
}

// CurrentUser returns the account AuthMiddleware stored on the context.
func CurrentUser(ctx *fiber.Ctx) (*domain.User, bool) {
	user, ok := ctx.Locals("user").(*domain.User)
	return user, ok
}
