// Package docs holds the OpenAPI document served under /swagger.
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
        "/payments": {
            "get": {
                "description": "Filtered, paginated payments ordered by scheduled date, newest first",
                "produces": ["application/json"],
                "tags": ["Payments"],
                "summary": "List payments",
                "parameters": [
                    {"type": "string", "description": "Recipient substring; comma-separated values match any", "name": "recipient", "in": "query"},
                    {"type": "string", "description": "Inclusive lower bound (YYYY-MM-DD or RFC 3339)", "name": "scheduledDateFrom", "in": "query"},
                    {"type": "string", "description": "Inclusive upper bound (YYYY-MM-DD or RFC 3339)", "name": "scheduledDateTo", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Rows to skip (default 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/query.ResultPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/payments/recipients": {
            "get": {
                "description": "Every distinct recipient, ascending",
                "produces": ["application/json"],
                "tags": ["Payments"],
                "summary": "List recipients",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List active users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "description": "Registers a user; the password is stored as a bcrypt hash",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/command.CreateUserCommand"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "description": "Returns the user whether or not it is active",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get a user",
                "parameters": [{"type": "string", "description": "User ID (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "put": {
                "description": "Partial update; omitted fields keep their value",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "description": "User ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/command.UpdateUserCommand"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "description": "Marks the user inactive",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Soft delete a user",
                "parameters": [{"type": "string", "description": "User ID (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"message": {"type": "string"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Database reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Status"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/health.Status"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "query.PaymentItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "amount": {"type": "string", "example": "2500.00"},
                "currency": {"type": "string", "example": "USD"},
                "scheduledDate": {"type": "string", "example": "2025-09-15"},
                "recipient": {"type": "string"},
                "status": {"type": "string", "example": "pending"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "query.ResultPage": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/query.PaymentItem"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "count": {"type": "integer"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "bio": {"type": "string"},
                "avatar": {"type": "string"},
                "isVerified": {"type": "boolean"},
                "isActive": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "command.CreateUserCommand": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string", "minLength": 3, "maxLength": 50},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "bio": {"type": "string"},
                "avatar": {"type": "string"}
            }
        },
        "command.UpdateUserCommand": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "minLength": 3, "maxLength": 50},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "bio": {"type": "string"},
                "avatar": {"type": "string"},
                "isVerified": {"type": "boolean"},
                "isActive": {"type": "boolean"}
            }
        },
        "health.Status": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Payments API",
	Description:      "Payments listing with filtering and pagination, plus user management",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
