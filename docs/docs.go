// Package docs описание API для swag, поддерживается вручную вместе с аннотациями контроллеров
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/employees/get": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Список сотрудников",
                "parameters": [
                    {"type": "string", "description": "подстрока id, имени или email", "name": "keyword", "in": "query"},
                    {"type": "string", "description": "поле сортировки", "name": "sortByField", "in": "query"},
                    {"type": "string", "description": "asc или desc", "name": "valueSort", "in": "query"},
                    {"type": "integer", "default": 1, "description": "номер страницы", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "размер страницы", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PageResponse-Employee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/employees/detail/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Сотрудник по идентификатору",
                "parameters": [
                    {"type": "string", "description": "идентификатор YYMMNNNN", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response-Employee"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/employees/create": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Создание сотрудника",
                "parameters": [
                    {"description": "данные сотрудника", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEmployeeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Response-Employee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/employees/update/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Изменение сотрудника",
                "parameters": [
                    {"type": "string", "description": "идентификатор YYMMNNNN", "name": "id", "in": "path", "required": true},
                    {"description": "данные сотрудника", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEmployeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response-Employee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/employees/destroy/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Удаление сотрудника",
                "parameters": [
                    {"type": "string", "description": "идентификатор YYMMNNNN", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response-Employee"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Employee": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "24070001"},
                "name": {"type": "string", "example": "John Doe"},
                "email": {"type": "string", "example": "john.doe@example.com"},
                "mobile": {"type": "string", "example": "081234567890"},
                "birthDate": {"type": "string", "example": "1990-01-31"},
                "address": {"type": "string", "example": "Street 1, City"}
            }
        },
        "CreateEmployeeRequest": {
            "type": "object",
            "required": ["name", "email", "mobile", "birthDate", "address"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "mobile": {"type": "string"},
                "birthDate": {"type": "string"},
                "address": {"type": "string", "example": "[\"Street 1\",\"City\"]"}
            }
        },
        "UpdateEmployeeRequest": {
            "$ref": "#/definitions/CreateEmployeeRequest"
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "Response-Employee": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/Employee"}
            }
        },
        "PageResponse-Employee": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "message": {"type": "string"},
                "currentPage": {"type": "integer"},
                "totalPage": {"type": "integer"},
                "totalData": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/Employee"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Employees API",
	Description:      "CRUD API справочника сотрудников",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
