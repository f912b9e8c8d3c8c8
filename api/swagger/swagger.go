package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SGI Admin Gateway",
        "description": "Backend-for-frontend gateway for the SGI maintenance admin application",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Entities", "description": "Generic entity listing and two-stage mutation workflow"},
        {"name": "Maintenance", "description": "Per-user maintenance listings"},
        {"name": "Review", "description": "Maintenance review lifecycle"},
        {"name": "Reference", "description": "Reference lists for form selects"},
        {"name": "Notices", "description": "Notification feed"},
        {"name": "Exports", "description": "Report downloads"},
        {"name": "Observability", "description": "Gateway metrics"}
    ],
    "paths": {
        "/{entity}": {
            "get": {
                "tags": ["Entities"],
                "summary": "List one entity collection",
                "parameters": [
                    {"name": "entity", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/{entity}/prepare": {
            "post": {
                "tags": ["Entities"],
                "summary": "Validate a draft and build the confirmation summary",
                "parameters": [
                    {"name": "entity", "in": "path", "required": true, "type": "string"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WorkflowRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/{entity}/commit": {
            "post": {
                "tags": ["Entities"],
                "summary": "Perform the confirmed mutation",
                "parameters": [
                    {"name": "entity", "in": "path", "required": true, "type": "string"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WorkflowRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/{entity}/{id}/toggle-status": {
            "patch": {
                "tags": ["Entities"],
                "summary": "Flip one record's enabled/disabled state",
                "parameters": [
                    {"name": "entity", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/equipment/with-maintenances": {
            "post": {
                "tags": ["Entities"],
                "summary": "Create an equipment record with its scheduled services atomically",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance": {
            "get": {
                "tags": ["Maintenance"],
                "summary": "List the caller's maintenance records",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/created-by-me": {
            "get": {
                "tags": ["Maintenance"],
                "summary": "List maintenance records the caller created",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/assigned-to-me": {
            "get": {
                "tags": ["Maintenance"],
                "summary": "List maintenance records assigned to the caller",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/prepare": {
            "post": {
                "tags": ["Entities"],
                "summary": "Validate a maintenance draft and build the confirmation summary",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WorkflowRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/commit": {
            "post": {
                "tags": ["Entities"],
                "summary": "Perform the confirmed maintenance mutation",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WorkflowRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/{id}/status": {
            "put": {
                "tags": ["Review"],
                "summary": "Ask the backend to recompute a record's status",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/{id}/in-progress": {
            "post": {
                "tags": ["Review"],
                "summary": "Move a maintenance record into IN_PROGRESS",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/{id}/submit-for-review": {
            "post": {
                "tags": ["Review"],
                "summary": "Send finished work to the reviewers",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/{id}/approve": {
            "post": {
                "tags": ["Review"],
                "summary": "Approve a PENDING maintenance record",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/maintenance/{id}/reject": {
            "post": {
                "tags": ["Review"],
                "summary": "Reject a PENDING maintenance record with a mandatory reason",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/units-of-measurement": {
            "get": {
                "tags": ["Reference"],
                "summary": "List units of measurement",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/warehouse-types": {
            "get": {
                "tags": ["Reference"],
                "summary": "List warehouse types",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List the caller's notifications",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/exports/maintenance": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the caller's maintenance report",
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "File download"}}
            }
        },
        "/exports/scheduled-maintenance": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the scheduled-maintenance report",
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "File download"}}
            }
        },
        "/metrics/snapshot": {
            "get": {
                "tags": ["Observability"],
                "summary": "Aggregated gateway metrics for the admin dashboard",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        }
    },
    "definitions": {
        "WorkflowRequest": {
            "type": "object",
            "required": ["action", "draft"],
            "properties": {
                "action": {"type": "string", "enum": ["create", "update"]},
                "recordId": {"type": "string"},
                "draft": {"type": "object", "additionalProperties": {"type": "string"}},
                "original": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["SUCCESS", "ERROR"]},
                "data": {"type": "object"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
