// Package docs registers the gateway's Swagger spec with swag.
// Keep in sync with the handler annotations in internal/httpapi. Only the
// swagger build of internal/httpapi imports it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/predict": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predict"],
                "summary": "Predict from tabular features",
                "parameters": [
                    {"type": "number", "description": "pregnancies", "name": "preg", "in": "query", "required": true},
                    {"type": "number", "description": "plasma glucose", "name": "plas", "in": "query", "required": true},
                    {"type": "number", "description": "blood pressure", "name": "pres", "in": "query", "required": true},
                    {"type": "number", "description": "skin fold thickness", "name": "skin", "in": "query", "required": true},
                    {"type": "number", "description": "serum insulin", "name": "insu", "in": "query", "required": true},
                    {"type": "number", "description": "body mass index", "name": "mass", "in": "query", "required": true},
                    {"type": "number", "description": "pedigree function", "name": "pedi", "in": "query", "required": true},
                    {"type": "number", "description": "age", "name": "age", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictionResponse"}},
                    "400": {"description": "missing or invalid parameter", "schema": {"type": "string"}},
                    "500": {"description": "Classifier not ready", "schema": {"type": "string"}}
                }
            }
        },
        "/predict-ps": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predict"],
                "summary": "Predict from a protein sequence",
                "parameters": [
                    {"type": "string", "description": "amino-acid sequence", "name": "seq", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictionResponse"}},
                    "400": {"description": "missing parameter", "schema": {"type": "string"}},
                    "500": {"description": "Classifier not ready", "schema": {"type": "string"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Model readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.PredictionResponse": {
            "type": "object",
            "properties": {"result": {"type": "integer", "example": 1}}
        },
        "types.SlotStatus": {
            "type": "object",
            "properties": {
                "slot": {"type": "string", "example": "tabular"},
                "state": {"type": "string", "example": "ready"},
                "run_id": {"type": "string"},
                "samples": {"type": "integer", "example": 768},
                "training_ms": {"type": "integer", "example": 42},
                "ready_since_unix": {"type": "integer", "example": 1700000000},
                "error": {"type": "string"}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "models": {"type": "array", "items": {"$ref": "#/definitions/types.SlotStatus"}},
                "ready": {"type": "boolean", "example": true},
                "uptime_seconds": {"type": "integer", "example": 3600},
                "server_time_unix": {"type": "integer", "example": 1700000000}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "mecjd API",
	Description:      "HTTP gateway serving the tabular and sequence classifiers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
