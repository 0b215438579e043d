package common

import (
	"github.com/gofiber/fiber/v2"
)

// Response конверт успешного ответа
type Response[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
} // @name Response

// PageResponse конверт ответа со страницей данных
type PageResponse[T any] struct {
	StatusCode  int    `json:"statusCode"`
	Message     string `json:"message"`
	CurrentPage int    `json:"currentPage"`
	TotalPage   int    `json:"totalPage"`
	TotalData   int64  `json:"totalData"`
	Data        []T    `json:"data"`
} // @name PageResponse

// ErrorResponse конверт ответа с ошибкой, без данных
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
} // @name ErrorResponse

func ErrResponse(
	c *fiber.Ctx,
	code int,
	message string,
) error {
	return c.Status(code).JSON(ErrorResponse{
		StatusCode: code,
		Message:    message,
	})
}

func OkResponse[T any](
	c *fiber.Ctx,
	code int,
	message string,
	data T,
) error {
	return c.Status(code).JSON(&Response[T]{
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

func PageOkResponse[T any](
	c *fiber.Ctx,
	message string,
	currentPage int,
	totalPage int,
	totalData int64,
	data []T,
) error {
	if data == nil {
		data = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(&PageResponse[T]{
		StatusCode:  fiber.StatusOK,
		Message:     message,
		CurrentPage: currentPage,
		TotalPage:   totalPage,
		TotalData:   totalData,
		Data:        data,
	})
}
