// Package docs registers the OpenAPI description of the /v1 API with swag so
// gin-swagger can serve it. The template is maintained by hand alongside the
// handlers.
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
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/stages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stages"],
                "summary": "List stages",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.Stage"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stages"],
                "summary": "Create a stage",
                "parameters": [
                    {"in": "body", "name": "stage", "required": true, "schema": {"$ref": "#/definitions/request.StageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entities.Stage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/stages/{code}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stages"],
                "summary": "Replace a stage",
                "parameters": [
                    {"type": "string", "name": "code", "in": "path", "required": true},
                    {"in": "body", "name": "stage", "required": true, "schema": {"$ref": "#/definitions/request.StageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Stage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/consultants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["consultants"],
                "summary": "List consultants",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.Consultant"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["consultants"],
                "summary": "Create a consultant",
                "parameters": [
                    {"in": "body", "name": "consultant", "required": true, "schema": {"$ref": "#/definitions/request.ConsultantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entities.Consultant"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/consultants/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["consultants"],
                "summary": "Get a consultant",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Consultant"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["consultants"],
                "summary": "Replace a consultant and refresh the engagements that reference it",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true},
                    {"in": "body", "name": "consultant", "required": true, "schema": {"$ref": "#/definitions/request.ConsultantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Consultant"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/proposals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "List proposals",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.Proposal"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Create a proposal",
                "parameters": [
                    {"in": "body", "name": "proposal", "required": true, "schema": {"$ref": "#/definitions/request.ProposalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entities.Proposal"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/proposals/{number}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Get a proposal",
                "parameters": [{"type": "string", "name": "number", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Proposal"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Replace a proposal and refresh the engagements that reference it",
                "parameters": [
                    {"type": "string", "name": "number", "in": "path", "required": true},
                    {"in": "body", "name": "proposal", "required": true, "schema": {"$ref": "#/definitions/request.ProposalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Proposal"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/engagements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["engagements"],
                "summary": "List engagements",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "consultant", "in": "query"},
                    {"type": "string", "name": "stage", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.EngagementResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["engagements"],
                "summary": "Create an engagement",
                "parameters": [
                    {"in": "body", "name": "engagement", "required": true, "schema": {"$ref": "#/definitions/request.EngagementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.EngagementWriteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/engagements/with-proposal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["engagements"],
                "summary": "Create a proposal and an engagement referencing it in one write",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/request.EngagementWithProposalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.EngagementWriteResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/engagements/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["engagements"],
                "summary": "Get an engagement",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.EngagementResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["engagements"],
                "summary": "Replace an engagement",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "engagement", "required": true, "schema": {"$ref": "#/definitions/request.EngagementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.EngagementWriteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["engagements"],
                "summary": "Values offered by the engagement filters and forms",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.OptionsResponse"}}}
            }
        },
        "/export": {
            "get": {
                "produces": ["application/json"],
                "tags": ["export"],
                "summary": "Download the whole dataset as a JSON document",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/export/publish": {
            "post": {
                "produces": ["application/json"],
                "tags": ["export"],
                "summary": "Publish a timestamped export to the configured destination",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.PublishResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["export"],
                "summary": "Record counts per collection",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.StatsResponse"}}}
            }
        }
    },
    "definitions": {
        "entities.Stage": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "description": {"type": "string"}}
        },
        "entities.Consultant": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "taxId": {"type": "string"}}
        },
        "entities.Proposal": {
            "type": "object",
            "properties": {
                "number": {"type": "string"},
                "companyName": {"type": "string"},
                "taxId": {"type": "string"},
                "product": {"type": "string"},
                "contractedHours": {"type": "integer"},
                "date": {"type": "string", "example": "2024-03-01"}
            }
        },
        "request.StageRequest": {
            "type": "object",
            "required": ["code", "description"],
            "properties": {"code": {"type": "string"}, "description": {"type": "string"}}
        },
        "request.ConsultantRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "taxId": {"type": "string"}}
        },
        "request.ProposalRequest": {
            "type": "object",
            "properties": {
                "number": {"type": "string"},
                "companyName": {"type": "string"},
                "taxId": {"type": "string"},
                "product": {"type": "string"},
                "contractedHours": {"type": "integer"},
                "date": {"type": "string", "example": "2024-03-01"}
            }
        },
        "request.EngagementRequest": {
            "type": "object",
            "properties": {
                "checkStatus": {"type": "string", "example": "Não Lançado"},
                "proposalNumber": {"type": "string"},
                "companyName": {"type": "string"},
                "stageCode": {"type": "string"},
                "notes": {"type": "string"},
                "visitTime": {"type": "string", "example": "14:30"},
                "visitDate": {"type": "string", "example": "2024-03-02"},
                "consultantName": {"type": "string"},
                "engagementTaxId": {"type": "string"},
                "cnpj": {"type": "string"},
                "product": {"type": "string"},
                "engagementTime": {"type": "string"},
                "date": {"type": "string", "example": "2024-03-02"}
            }
        },
        "request.EngagementWithProposalRequest": {
            "type": "object",
            "properties": {
                "proposal": {"$ref": "#/definitions/request.ProposalRequest"},
                "engagement": {"$ref": "#/definitions/request.EngagementRequest"}
            }
        },
        "response.EngagementResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "checkStatus": {"type": "string"},
                "proposalNumber": {"type": "string"},
                "companyName": {"type": "string"},
                "stageCode": {"type": "string"},
                "notes": {"type": "string"},
                "visitTime": {"type": "string"},
                "visitDate": {"type": "string"},
                "consultantName": {"type": "string"},
                "engagementTaxId": {"type": "string"},
                "cnpj": {"type": "string"},
                "product": {"type": "string"},
                "engagementTime": {"type": "string"},
                "date": {"type": "string"},
                "proposalSnapshot": {"$ref": "#/definitions/entities.Proposal"},
                "consultantSnapshot": {"$ref": "#/definitions/entities.Consultant"},
                "stageLabel": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "response.EngagementWriteResponse": {
            "type": "object",
            "properties": {
                "engagement": {"$ref": "#/definitions/response.EngagementResponse"},
                "warnings": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.OptionsResponse": {
            "type": "object",
            "properties": {
                "allFilter": {"type": "string"},
                "statuses": {"type": "array", "items": {"type": "string"}},
                "consultantNames": {"type": "array", "items": {"type": "string"}},
                "proposalNumbers": {"type": "array", "items": {"type": "string"}},
                "stageLabels": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.PublishResponse": {
            "type": "object",
            "properties": {"location": {"type": "string"}}
        },
        "response.StatsResponse": {
            "type": "object",
            "properties": {
                "engagements": {"type": "integer"},
                "consultants": {"type": "integer"},
                "stages": {"type": "integer"},
                "proposals": {"type": "integer"}
            }
        },
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Gestão de Atendimentos API",
	Description:      "Engagement tracking for consultancy teams: stages, consultants, proposals and engagements kept in one dataset document.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
