// Package swagger holds the generated OpenAPI description served at /swagger.
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
        "/lists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "List Sections",
                "responses": {"200": {"description": "Sections", "schema": {"type": "array", "items": {"$ref": "#/definitions/lists.SectionView"}}}}
            }
        },
        "/lists/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Batch Mutations",
                "parameters": [{"description": "Operations", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.BatchRequest"}}],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/items": {
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Remove Entries",
                "parameters": [{"description": "Entry IDs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.RemoveRequest"}}],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/items/insert": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Insert Entry",
                "parameters": [{"description": "Position and entry", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.InsertRequest"}}],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/items/move": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Move Entry",
                "parameters": [{"description": "Source and destination", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.MoveRequest"}}],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/items/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Replace Entry",
                "parameters": [
                    {"type": "string", "description": "Entry ID", "name": "id", "in": "path", "required": true},
                    {"description": "New content", "name": "entry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.Input"}}
                ],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/items/{id}/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Reload Entry",
                "parameters": [{"type": "string", "description": "Entry ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Search Entries",
                "parameters": [
                    {"type": "string", "description": "Query", "name": "q", "in": "query"},
                    {"type": "integer", "description": "0 title contains, 1 fuzzy title and detail", "name": "scope", "in": "query"}
                ],
                "responses": {"200": {"description": "Matching sections", "schema": {"type": "array", "items": {"$ref": "#/definitions/lists.SectionView"}}}}
            }
        },
        "/lists/sections": {
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Delete Sections",
                "parameters": [{"description": "Section indices", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.DeleteSectionsRequest"}}],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/sections/{section}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Set Section Entries",
                "parameters": [
                    {"type": "integer", "description": "Section index", "name": "section", "in": "path", "required": true},
                    {"description": "Entries", "name": "entries", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/lists.Input"}}}
                ],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/sections/{section}/header": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Set Section Header",
                "parameters": [
                    {"type": "integer", "description": "Section index", "name": "section", "in": "path", "required": true},
                    {"description": "Header", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.HeaderRequest"}}
                ],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/sections/{section}/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Add Entries",
                "parameters": [
                    {"type": "integer", "description": "Section index", "name": "section", "in": "path", "required": true},
                    {"description": "Entries", "name": "entries", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/lists.Input"}}}
                ],
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/lists.Result"}}}
            }
        },
        "/lists/snapshot": {
            "post": {
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Snapshot Lists",
                "responses": {"200": {"description": "Snapshot object", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/feed": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "Get Feed",
                "responses": {"200": {"description": "Channels", "schema": {"type": "array", "items": {"$ref": "#/definitions/feed.ChannelView"}}}}
            }
        },
        "/feed/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "Search Feed",
                "parameters": [{"type": "string", "description": "Query", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "Matching channels", "schema": {"type": "array", "items": {"$ref": "#/definitions/feed.ChannelView"}}}}
            }
        },
        "/feed/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "Refresh Feed",
                "responses": {"200": {"description": "Delivered change", "schema": {"$ref": "#/definitions/notify.Delivery"}}}
            }
        }
    },
    "definitions": {
        "update.IndexPath": {"type": "object", "properties": {"section": {"type": "integer"}, "item": {"type": "integer"}}},
        "update.ItemMove": {"type": "object", "properties": {"from": {"$ref": "#/definitions/update.IndexPath"}, "to": {"$ref": "#/definitions/update.IndexPath"}}},
        "update.SectionMove": {"type": "object", "properties": {"from": {"type": "integer"}, "to": {"type": "integer"}}},
        "update.Update": {
            "type": "object",
            "properties": {
                "deleted_sections": {"type": "array", "items": {"type": "integer"}},
                "inserted_sections": {"type": "array", "items": {"type": "integer"}},
                "updated_sections": {"type": "array", "items": {"type": "integer"}},
                "moved_sections": {"type": "array", "items": {"$ref": "#/definitions/update.SectionMove"}},
                "deleted_items": {"type": "array", "items": {"$ref": "#/definitions/update.IndexPath"}},
                "inserted_items": {"type": "array", "items": {"$ref": "#/definitions/update.IndexPath"}},
                "updated_items": {"type": "array", "items": {"$ref": "#/definitions/update.IndexPath"}},
                "moved_items": {"type": "array", "items": {"$ref": "#/definitions/update.ItemMove"}}
            }
        },
        "notify.Delivery": {"type": "object", "properties": {"reload": {"type": "boolean"}, "update": {"$ref": "#/definitions/update.Update"}}},
        "lists.Entry": {"type": "object", "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "detail": {"type": "string"}}},
        "lists.Input": {"type": "object", "properties": {"title": {"type": "string"}, "detail": {"type": "string"}}},
        "lists.SectionView": {"type": "object", "properties": {"index": {"type": "integer"}, "header": {}, "items": {"type": "array", "items": {"$ref": "#/definitions/lists.Entry"}}}},
        "lists.Result": {
            "type": "object",
            "properties": {
                "reload": {"type": "boolean"},
                "update": {"$ref": "#/definitions/update.Update"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/lists.Entry"}}
            }
        },
        "lists.InsertRequest": {"type": "object", "properties": {"path": {"$ref": "#/definitions/update.IndexPath"}, "entry": {"$ref": "#/definitions/lists.Input"}}},
        "lists.MoveRequest": {"type": "object", "properties": {"from": {"$ref": "#/definitions/update.IndexPath"}, "to": {"$ref": "#/definitions/update.IndexPath"}}},
        "lists.RemoveRequest": {"type": "object", "properties": {"ids": {"type": "array", "items": {"type": "string"}}}},
        "lists.DeleteSectionsRequest": {"type": "object", "properties": {"sections": {"type": "array", "items": {"type": "integer"}}}},
        "lists.HeaderRequest": {"type": "object", "properties": {"header": {"type": "string"}}},
        "lists.BatchOp": {
            "type": "object",
            "properties": {
                "op": {"type": "string"},
                "section": {"type": "integer"},
                "path": {"$ref": "#/definitions/update.IndexPath"},
                "to": {"$ref": "#/definitions/update.IndexPath"},
                "id": {"type": "string"},
                "entry": {"$ref": "#/definitions/lists.Input"},
                "header": {"type": "string"}
            }
        },
        "lists.BatchRequest": {"type": "object", "properties": {"ops": {"type": "array", "items": {"$ref": "#/definitions/lists.BatchOp"}}}},
        "feed.Story": {"type": "object", "properties": {"id": {"type": "integer"}, "channel": {"type": "string"}, "title": {"type": "string"}, "position": {"type": "integer"}, "updated_at": {"type": "string"}}},
        "feed.ChannelView": {"type": "object", "properties": {"index": {"type": "integer"}, "name": {"type": "string"}, "stories": {"type": "array", "items": {"$ref": "#/definitions/feed.Story"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Model Storage API",
	Description:      "Sectioned model storages reporting their changes as update descriptors.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
