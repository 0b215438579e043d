package web

import (
	"github.com/gofiber/swagger"
)

// возвращает конфигурацию Swagger UI
func GetSwaggerConfig(appName string) swagger.Config {
	return swagger.Config{
		// URL для получения OpenAPI спецификации
		URL: "/swagger/doc.json",

		DeepLinking:  true,
		DocExpansion: "list",

		DefaultModelsExpandDepth: 1,
		DefaultModelExpandDepth:  1,
		DefaultModelRendering:    "model",

		SupportedSubmitMethods: []string{
			"get", "post", "put", "delete",
		},
		Layout: "StandaloneLayout",

		Title: appName + " API Documentation",
	}
}

// InitSwagger подключает Swagger UI по пути /swagger/*
func (s *Server) InitSwagger(appName string) {
	s.App.Get("/swagger/*", swagger.New(GetSwaggerConfig(appName)))
}
