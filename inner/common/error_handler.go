package common

import (
	"errors"

	"employees/inner/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	RouteNotFoundMessage = "Route not found!"
	InternalErrorMessage = "Something went wrong, please try again later!"
)

// ErrorHandler единая точка преобразования ошибок в JSON-ответ.
// Обработчики возвращают ошибку как есть, тело ответа формируется только здесь
func ErrorHandler(logger *Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code, message := MapError(err)
		if code >= fiber.StatusInternalServerError {
			logger.ErrorCtx(ctx, "request failed",
				zap.Error(err),
				zap.String("method", ctx.Method()),
				zap.String("path", ctx.Path()),
				zap.String("ip", ctx.IP()))
		} else {
			logger.DebugCtx(ctx, "request rejected",
				zap.Int("status", code),
				zap.String("message", message),
				zap.String("path", ctx.Path()))
		}
		return ErrResponse(ctx, code, message)
	}
}

// MapError определяет http-статус и сообщение для ошибки
func MapError(err error) (int, string) {
	var (
		badRequest    RequestValidationError
		alreadyExists AlreadyExistsError
		schemaErr     validator.ValidationErrors
		duplicate     DuplicateKeyError
		notFound      NotFoundError
		fiberErr      *fiber.Error
	)
	switch {
	case errors.As(err, &badRequest):
		return fiber.StatusBadRequest, badRequest.Message
	case errors.As(err, &alreadyExists):
		return fiber.StatusBadRequest, alreadyExists.Message
	case errors.As(err, &schemaErr):
		return fiber.StatusBadRequest, schemaErr.Error()
	case errors.As(err, &duplicate):
		return fiber.StatusBadRequest, duplicate.Error()
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, notFound.Message
	case errors.As(err, &fiberErr):
		if fiberErr.Code == fiber.StatusNotFound {
			return fiber.StatusNotFound, RouteNotFoundMessage
		}
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, InternalErrorMessage
		}
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, InternalErrorMessage
	}
}
