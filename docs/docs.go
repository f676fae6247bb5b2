// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/home": {
            "get": {
                "produces": ["application/json"],
                "summary": "Listing cards ranked by distance from the saved device location",
                "parameters": [
                    {"type": "string", "description": "device id", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HomeFeed"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/home/focus": {
            "get": {
                "produces": ["application/json"],
                "summary": "Card focused at a carousel scroll offset",
                "parameters": [
                    {"type": "number", "description": "horizontal scroll offset", "name": "offset", "in": "query", "required": true},
                    {"type": "number", "description": "viewport width", "name": "viewport", "in": "query", "required": true},
                    {"type": "string", "description": "device id", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Focus"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/location": {
            "put": {
                "consumes": ["application/json"],
                "summary": "Store the device's last-known location",
                "parameters": [
                    {"type": "string", "description": "device id", "name": "device", "in": "query"},
                    {"description": "location", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Coordinate"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "summary": "Forget the device's last-known location",
                "parameters": [
                    {"type": "string", "description": "device id", "name": "device", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/tabs": {
            "get": {
                "produces": ["application/json"],
                "summary": "Bottom tabs with icons for the active tab",
                "parameters": [
                    {"type": "string", "description": "active tab label", "name": "active", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/tabbar.Item"}}}
                }
            }
        },
        "/tabs/press": {
            "post": {
                "produces": ["application/json"],
                "summary": "Apply a tap on a bottom tab",
                "parameters": [
                    {"type": "string", "description": "active tab label", "name": "active", "in": "query"},
                    {"type": "integer", "description": "pressed tab index", "name": "index", "in": "query", "required": true},
                    {"type": "boolean", "description": "press default was prevented", "name": "prevented", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pressResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.pressResponse": {
            "type": "object",
            "properties": {
                "navigate": {"type": "boolean"},
                "focused": {"type": "string"},
                "pulses": {"type": "integer"},
                "pulse_duration_ms": {"type": "integer"},
                "pressed_scale": {"type": "number"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/tabbar.Item"}}
            }
        },
        "models.Coordinate": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        },
        "models.FeedCard": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "price": {"type": "integer"},
                "price_label": {"type": "string"},
                "location": {"$ref": "#/definitions/models.Coordinate"},
                "geohash": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "distance_km": {"type": "number"}
            }
        },
        "models.HomeFeed": {
            "type": "object",
            "properties": {
                "ranked": {"type": "boolean"},
                "origin": {"$ref": "#/definitions/models.Coordinate"},
                "nearest_id": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.FeedCard"}}
            }
        },
        "models.Focus": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "in_range": {"type": "boolean"},
                "id": {"type": "integer"}
            }
        },
        "tabbar.Item": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "icon": {"type": "string"},
                "focused": {"type": "boolean"}
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
	Title:            "Listing API",
	Description:      "Home screen listings ranked by distance from the device's last-known location.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
