// Package swagger registers the OpenAPI document served at /api/docs.
// Regenerate with: swag init -g internal/api/main_annotations.go -o docs/swagger
package swagger

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
        "/posts": {
            "post": {
                "description": "Generates 1-10 posts. Theme and campus may be forced; save also writes JSON files and archives them.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Posts"],
                "summary": "Generate posts",
                "parameters": [
                    {
                        "description": "Generation options",
                        "name": "body",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/api.GenerateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.PostListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/posts/week": {
            "get": {
                "description": "Generates seven posts dated today through today+6.",
                "produces": ["application/json"],
                "tags": ["Posts"],
                "summary": "Weekly schedule",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.PostListResponse"}}
                }
            }
        },
        "/saved": {
            "get": {
                "description": "Returns up to limit archived posts, newest first.",
                "produces": ["application/json"],
                "tags": ["Archive"],
                "summary": "List saved posts",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Maximum rows (default 50, max 200)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SavedListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/themes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "List themes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/api.ThemeResponse"}}
                    }
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Generation statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatsResponse"}}
                }
            }
        },
        "/probe": {
            "get": {
                "description": "Reports whether the Ollama server answers and which models it has. Post generation never depends on it.",
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Ollama status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ProbeResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "api.GenerateRequest": {
            "type": "object",
            "properties": {
                "campus": {"type": "string"},
                "count": {"type": "integer"},
                "save": {"type": "boolean"},
                "theme": {"type": "string"}
            }
        },
        "api.PostListResponse": {
            "type": "object",
            "properties": {
                "files": {"type": "array", "items": {"type": "string"}},
                "posts": {"type": "array", "items": {"$ref": "#/definitions/posts.Post"}}
            }
        },
        "api.ProbeResponse": {
            "type": "object",
            "properties": {
                "model": {"type": "string"},
                "models": {"type": "array", "items": {"type": "string"}},
                "reachable": {"type": "boolean"},
                "url": {"type": "string"}
            }
        },
        "api.SavedListResponse": {
            "type": "object",
            "properties": {
                "saved": {"type": "array", "items": {"$ref": "#/definitions/store.SavedPost"}}
            }
        },
        "api.StatsResponse": {
            "type": "object",
            "properties": {
                "amenities": {"type": "integer"},
                "campuses": {"type": "array", "items": {"$ref": "#/definitions/posts.CampusWeight"}},
                "fallback_templates": {"type": "integer"},
                "features": {"type": "integer"},
                "main_templates": {"type": "integer"},
                "model": {"type": "string"},
                "pricing_error": {"type": "string"},
                "saved": {"$ref": "#/definitions/store.Counts"},
                "themes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "api.ThemeResponse": {
            "type": "object",
            "properties": {
                "fallback_templates": {"type": "integer"},
                "label": {"type": "string"},
                "main_templates": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "posts.CampusWeight": {
            "type": "object",
            "properties": {
                "campus": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "posts.Post": {
            "type": "object",
            "properties": {
                "character_count": {"type": "integer"},
                "content": {"type": "string"},
                "creative_style": {"type": "string"},
                "date": {"type": "string"},
                "model_used": {"type": "string"},
                "target_campus": {"type": "string"},
                "theme": {"type": "string"}
            }
        },
        "store.Counts": {
            "type": "object",
            "properties": {
                "by_campus": {"type": "object", "additionalProperties": {"type": "integer"}},
                "by_model": {"type": "object", "additionalProperties": {"type": "integer"}},
                "by_theme": {"type": "object", "additionalProperties": {"type": "integer"}},
                "total": {"type": "integer"}
            }
        },
        "store.SavedPost": {
            "type": "object",
            "properties": {
                "character_count": {"type": "integer"},
                "content": {"type": "string"},
                "creative_style": {"type": "string"},
                "date": {"type": "string"},
                "file_path": {"type": "string"},
                "id": {"type": "string"},
                "model_used": {"type": "string"},
                "saved_at": {"type": "string"},
                "source": {"type": "string"},
                "target_campus": {"type": "string"},
                "theme": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "rental-agent API",
	Description:      "Generate and archive marketing posts for the Del Playa listing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
