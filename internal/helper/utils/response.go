package utils

import (
	"github.com/campusgig/gig_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with the same envelope: {success, message?, <data>}.

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

func ResponseMessage(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"message": msg,
	})
}

// ResponseData merges the given fields into a success envelope.
func ResponseData(ctx *fiber.Ctx, status int, data fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range data {
		body[k] = v
	}
	return ctx.Status(status).JSON(body)
}

// ResponseServiceError maps a service error onto its HTTP status; anything
// that is not a *services.Error becomes a generic 500.
func ResponseServiceError(ctx *fiber.Ctx, err error) error {
	if svcErr, ok := services.AsError(err); ok {
		return ResponseError(ctx, svcErr.Status, svcErr.Message)
	}
	return ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
}
