package handlers

import (
	"errors"

	"handiva/internal/repositories"
	"handiva/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// errorBody is the JSON shape of every failure response.
func errorBody(msg string) fiber.Map {
	return fiber.Map{"error": msg}
}

// respondError maps err onto an HTTP status: caller mistakes are 400,
// lookup misses 404 and anything else 500.
func respondError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(ve.Message))
	case errors.Is(err, services.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("Invalid id"))
	case services.IsClientError(err):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(err.Error()))
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody("Not found"))
	}
	zap.L().Error("request failed",
		zap.String("method", utils.CopyString(c.Method())),
		zap.String("path", utils.CopyString(c.Path())),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody("Internal server error"))
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes, in the same JSON shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		zap.L().Error("unhandled error", zap.String("path", utils.CopyString(c.Path())), zap.Error(err))
	}
	return c.Status(code).JSON(errorBody(msg))
}
