package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Doubt Tracker API",
        "description": "Backend for the digital doubt tracker: students raise doubts, teachers resolve them.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login and student registration"},
        {"name": "Student", "description": "Student dashboard"},
        {"name": "Teacher", "description": "Teacher dashboard"},
        {"name": "Doubt", "description": "Doubt lifecycle"},
        {"name": "Admin", "description": "Account management and platform stats"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate a student, teacher or admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResult"}},
                    "400": {"description": "Missing fields or malformed JSON", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a student account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessMessage"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/student/doubts": {
            "get": {
                "tags": ["Student"],
                "summary": "List the student's doubts, newest first",
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "integer", "required": true},
                    {"name": "status", "in": "query", "type": "string", "default": "All"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Doubt"}}},
                    "400": {"description": "student_id required", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/student/stats": {
            "get": {
                "tags": ["Student"],
                "summary": "The student's doubt counts",
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentStats"}}
                }
            }
        },
        "/api/teacher/doubts": {
            "get": {
                "tags": ["Teacher"],
                "summary": "List every student's doubts, newest first",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "default": "All"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Doubt"}}}
                }
            }
        },
        "/api/teacher/stats": {
            "get": {
                "tags": ["Teacher"],
                "summary": "Global status counts plus the teacher's response tally",
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TeacherStats"}}
                }
            }
        },
        "/api/doubt/details": {
            "get": {
                "tags": ["Doubt"],
                "summary": "A doubt with its responses, newest first",
                "parameters": [
                    {"name": "doubt_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DoubtDetails"}},
                    "404": {"description": "Doubt not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/doubt/add": {
            "post": {
                "tags": ["Doubt"],
                "summary": "Submit a new doubt",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitDoubtRequest"}}
                ],
                "responses": {
                    "200": {"description": "Submitted", "schema": {"$ref": "#/definitions/SuccessMessage"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/doubt/respond": {
            "post": {
                "tags": ["Doubt"],
                "summary": "Record a teacher response and move the doubt's status",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RespondRequest"}}
                ],
                "responses": {
                    "200": {"description": "Submitted", "schema": {"$ref": "#/definitions/SuccessMessage"}},
                    "400": {"description": "Missing fields or invalid status", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Doubt not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/admin/stats": {
            "get": {
                "tags": ["Admin"],
                "summary": "Platform-wide counts and resolution percentage",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AdminStats"}}
                }
            }
        },
        "/api/admin/teachers": {
            "get": {
                "tags": ["Admin"],
                "summary": "All teacher accounts, passwords omitted",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TeacherRecord"}}}
                }
            }
        },
        "/api/admin/students": {
            "get": {
                "tags": ["Admin"],
                "summary": "All students with their doubt counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentRecord"}}}
                }
            }
        },
        "/api/admin/teacher/add": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create a teacher account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddTeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessMessage"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "Email already exists", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/admin/teacher/delete": {
            "post": {
                "tags": ["Admin"],
                "summary": "Delete a non-admin teacher account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteTeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/SuccessMessage"}},
                    "403": {"description": "Admin account protected", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/admin/export/doubts": {
            "get": {
                "tags": ["Admin"],
                "summary": "Download the doubt list as CSV or PDF",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "default": "All"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Report file"},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "teacher"]}
            }
        },
        "LoginResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SubmitDoubtRequest": {
            "type": "object",
            "required": ["student_id", "subject", "doubt_text"],
            "properties": {
                "student_id": {"type": "integer"},
                "subject": {"type": "string"},
                "doubt_text": {"type": "string"}
            }
        },
        "RespondRequest": {
            "type": "object",
            "required": ["doubt_id", "teacher_id", "response_text"],
            "properties": {
                "doubt_id": {"type": "integer"},
                "teacher_id": {"type": "integer"},
                "response_text": {"type": "string"},
                "status": {"type": "string", "enum": ["Pending", "In Progress", "Resolved"]}
            }
        },
        "AddTeacherRequest": {
            "type": "object",
            "required": ["name", "subject", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "subject": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "DeleteTeacherRequest": {
            "type": "object",
            "required": ["teacher_id"],
            "properties": {
                "teacher_id": {"type": "integer"}
            }
        },
        "Doubt": {
            "type": "object",
            "properties": {
                "doubt_id": {"type": "integer"},
                "student_id": {"type": "integer"},
                "student_name": {"type": "string"},
                "subject": {"type": "string"},
                "doubt_text": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "DoubtResponse": {
            "type": "object",
            "properties": {
                "response_id": {"type": "integer"},
                "doubt_id": {"type": "integer"},
                "teacher_id": {"type": "integer"},
                "teacher_name": {"type": "string"},
                "response_text": {"type": "string"},
                "response_date": {"type": "string", "format": "date-time"}
            }
        },
        "DoubtDetails": {
            "type": "object",
            "properties": {
                "doubt": {"$ref": "#/definitions/Doubt"},
                "responses": {"type": "array", "items": {"$ref": "#/definitions/DoubtResponse"}}
            }
        },
        "StudentStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "pending": {"type": "integer"},
                "resolved": {"type": "integer"}
            }
        },
        "TeacherStats": {
            "type": "object",
            "properties": {
                "pending": {"type": "integer"},
                "in_progress": {"type": "integer"},
                "resolved": {"type": "integer"},
                "my_responses": {"type": "integer"}
            }
        },
        "AdminStats": {
            "type": "object",
            "properties": {
                "students": {"type": "integer"},
                "teachers": {"type": "integer"},
                "total_doubts": {"type": "integer"},
                "resolved": {"type": "integer"},
                "pending": {"type": "integer"},
                "resolution_pct": {"type": "integer"}
            }
        },
        "TeacherRecord": {
            "type": "object",
            "properties": {
                "teacher_id": {"type": "integer"},
                "name": {"type": "string"},
                "subject": {"type": "string"},
                "email": {"type": "string"},
                "is_admin": {"type": "boolean"}
            }
        },
        "StudentRecord": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "doubt_count": {"type": "integer"}
            }
        },
        "SuccessMessage": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
