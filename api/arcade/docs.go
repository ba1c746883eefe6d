// Package arcade holds the generated Swagger document for the arcade API.
package arcade

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "AussieBroadWAN Team",
			"url": "https://github.com/aussiebroadwan/arcade"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/v1/register": {
			"post": {
				"description": "Create a player account. Usernames are case-sensitive and unique.",
				"consumes": [
					"application/x-www-form-urlencoded"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Accounts"
				],
				"summary": "Register",
				"parameters": [
					{
						"type": "string",
						"description": "Desired username",
						"name": "username",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Password",
						"name": "password",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "user_id, username",
						"schema": {
							"$ref": "#/definitions/arcadesdk.RegisterResponse"
						}
					},
					"400": {
						"description": "error, error_description",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"409": {
						"description": "username taken",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"503": {
						"description": "storage unavailable",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/login": {
			"post": {
				"description": "Exchange credentials for a session token. The token is returned in the body and also set as the arcade_session cookie.\nUnknown usernames and wrong passwords produce the same response.",
				"consumes": [
					"application/x-www-form-urlencoded"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Accounts"
				],
				"summary": "Log in",
				"parameters": [
					{
						"type": "string",
						"description": "Username",
						"name": "username",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Password",
						"name": "password",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "session_token, token_type, expires_in, user_id, username",
						"schema": {
							"$ref": "#/definitions/arcadesdk.LoginResponse"
						},
						"headers": {
							"Set-Cookie": {
								"type": "string",
								"description": "arcade_session"
							}
						}
					},
					"400": {
						"description": "error, error_description",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"401": {
						"description": "invalid credentials",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"503": {
						"description": "storage unavailable",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/logout": {
			"post": {
				"description": "Clear the session cookie. Sessions are stateless, so a bearer token stays valid until it expires.",
				"tags": [
					"Accounts"
				],
				"summary": "Log out",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/profile": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "The logged-in player.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Accounts"
				],
				"summary": "Profile",
				"responses": {
					"200": {
						"description": "user_id, username, created_at",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ProfileResponse"
						}
					},
					"401": {
						"description": "invalid session",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/scores": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Best score per level for the logged-in player. Levels never played are absent.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Scores"
				],
				"summary": "All best scores",
				"responses": {
					"200": {
						"description": "scores",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ScoresResponse"
						}
					},
					"401": {
						"description": "invalid session",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"503": {
						"description": "storage unavailable",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/scores/{level}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns 0 when the player has not submitted a score for the level yet.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Scores"
				],
				"summary": "Best score for a level",
				"parameters": [
					{
						"type": "integer",
						"description": "Level, starting at 1",
						"name": "level",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "level, best_score",
						"schema": {
							"$ref": "#/definitions/arcadesdk.BestScoreResponse"
						}
					},
					"400": {
						"description": "invalid level",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"401": {
						"description": "invalid session",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Raises the stored best for the level when the score is higher. accepted is false when the stored best was not beaten; best_score is the stored best either way.",
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Scores"
				],
				"summary": "Submit a score",
				"parameters": [
					{
						"type": "integer",
						"description": "Level, starting at 1",
						"name": "level",
						"in": "path",
						"required": true
					},
					{
						"description": "score (also accepted as a form field)",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/arcadesdk.SubmitScoreRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "level, accepted, best_score",
						"schema": {
							"$ref": "#/definitions/arcadesdk.SubmitScoreResponse"
						}
					},
					"400": {
						"description": "invalid level or score",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"401": {
						"description": "invalid session",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					},
					"503": {
						"description": "storage unavailable",
						"schema": {
							"$ref": "#/definitions/arcadesdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/livez": {
			"get": {
				"description": "Always 200 while the process is serving.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Liveness",
				"responses": {
					"200": {
						"description": "status, uptime, version",
						"schema": {
							"$ref": "#/definitions/arcadesdk.HealthResponse"
						}
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"description": "503 while the store cannot be reached.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Readiness",
				"responses": {
					"200": {
						"description": "status, uptime, version, checks",
						"schema": {
							"$ref": "#/definitions/arcadesdk.HealthResponse"
						}
					},
					"503": {
						"description": "service not ready",
						"schema": {
							"$ref": "#/definitions/arcadesdk.HealthResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"arcadesdk.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "invalid_request"
				},
				"error_description": {
					"type": "string",
					"example": "level must be a positive integer"
				}
			}
		},
		"arcadesdk.RegisterResponse": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string",
					"example": "01JAB3XQ6T4E2K9V8N5M7P1R0S"
				},
				"username": {
					"type": "string",
					"example": "alice"
				}
			}
		},
		"arcadesdk.LoginResponse": {
			"type": "object",
			"properties": {
				"session_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string",
					"example": "Bearer"
				},
				"expires_in": {
					"description": "ExpiresIn is the token lifetime in seconds",
					"type": "integer",
					"example": 86400
				},
				"user_id": {
					"type": "string",
					"example": "01JAB3XQ6T4E2K9V8N5M7P1R0S"
				},
				"username": {
					"type": "string",
					"example": "alice"
				}
			}
		},
		"arcadesdk.ProfileResponse": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string",
					"example": "01JAB3XQ6T4E2K9V8N5M7P1R0S"
				},
				"username": {
					"type": "string",
					"example": "alice"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"arcadesdk.ScoresResponse": {
			"type": "object",
			"properties": {
				"scores": {
					"type": "object",
					"additionalProperties": {
						"type": "integer",
						"format": "int64"
					}
				}
			}
		},
		"arcadesdk.BestScoreResponse": {
			"type": "object",
			"properties": {
				"level": {
					"type": "integer",
					"example": 3
				},
				"best_score": {
					"type": "integer",
					"example": 1200
				}
			}
		},
		"arcadesdk.SubmitScoreRequest": {
			"type": "object",
			"properties": {
				"score": {
					"type": "integer",
					"example": 1200
				}
			}
		},
		"arcadesdk.SubmitScoreResponse": {
			"type": "object",
			"properties": {
				"level": {
					"type": "integer",
					"example": 3
				},
				"accepted": {
					"type": "boolean",
					"example": true
				},
				"best_score": {
					"type": "integer",
					"example": 1200
				}
			}
		},
		"arcadesdk.HealthChecks": {
			"type": "object",
			"properties": {
				"database": {
					"type": "string",
					"example": "ok"
				}
			}
		},
		"arcadesdk.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "ok"
				},
				"uptime": {
					"type": "string",
					"example": "1h23m45s"
				},
				"version": {
					"type": "string",
					"example": "v1.0.0"
				},
				"checks": {
					"$ref": "#/definitions/arcadesdk.HealthChecks"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Session token. Format: \"Bearer {token}\".",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Arcade API",
	Description:      "Accounts and per-level best scores for the arcade browser game.\n\nSessions are Ed25519-signed JWTs, sent either as the arcade_session cookie or as a bearer token.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
