package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Impact Gym API",
        "description": "Gym membership administration and student self-service",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": ["http", "https"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header", "description": "Bearer <token>"}},
    "tags": [
        {"name": "Authentication"},
        {"name": "Students"},
        {"name": "Payments"},
        {"name": "Workouts"},
        {"name": "Dashboard"},
        {"name": "Client", "description": "Student self-service"},
        {"name": "Health"}
    ],
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Administrator login",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/AdminLoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AdminLoginResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "429": {"description": "Too many login attempts", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/verify": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Validate an administrator token",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/VerifyResponse"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/client/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Student login with CPF or email",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/StudentLoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentLoginResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "429": {"description": "Too many login attempts", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/client/auth/verify": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Validate a student token",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/VerifyResponse"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students with latest payment and workout",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "search", "in": "query", "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentSummary"}}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register student, workout and first pending payment",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CreateStudentRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/search/{query}": {
            "get": {
                "tags": ["Students"],
                "summary": "Search students by name",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "query", "in": "path", "required": true, "type": "string", "description": "Name fragment"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentSummary"}}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Student with workout and payments",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentDetail"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpdateStudentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student and dependent rows",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/{id}/measurements": {
            "get": {
                "tags": ["Students"],
                "summary": "Measurement history, newest first",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/BodyMeasurement"}}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Record a measurement",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/RecordMeasurementRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/BodyMeasurement"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments": {
            "get": {
                "tags": ["Payments"],
                "summary": "List payments with student",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Payment"}}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Payments"],
                "summary": "Record a payment and open the next pending cycle",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/RecordPaymentRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Paid and next pending rows"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/export": {
            "get": {
                "tags": ["Payments"],
                "summary": "Download payments",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}],
                "produces": ["text/csv", "application/pdf"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/student/{id}": {
            "get": {
                "tags": ["Payments"],
                "summary": "Payment history of a student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Payment"}}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/{id}/status": {
            "put": {
                "tags": ["Payments"],
                "summary": "Overwrite payment status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpdatePaymentStatusRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/{id}": {
            "delete": {
                "tags": ["Payments"],
                "summary": "Delete a payment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/workouts": {
            "get": {
                "tags": ["Workouts"],
                "summary": "List workouts with student",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/workouts/{student_id}": {
            "get": {
                "tags": ["Workouts"],
                "summary": "Workout and exercises",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string", "description": "ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WorkoutDetail"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Workouts"],
                "summary": "Create or replace workout",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string", "description": "ID"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpsertWorkoutRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Workouts"],
                "summary": "Delete workout",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string", "description": "ID"}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/dashboard/summary": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Students by latest payment status",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaymentSummary"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/client/profile": {
            "get": {
                "tags": ["Client"],
                "summary": "Own profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/client/payments": {
            "get": {
                "tags": ["Client"],
                "summary": "Latest ten payments",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Payment"}}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/client/workout": {
            "get": {
                "tags": ["Client"],
                "summary": "Own workout",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WorkoutDetail"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/client/measurements": {
            "get": {
                "tags": ["Client"],
                "summary": "Own measurements, newest first",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/BodyMeasurement"}}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/client/progress": {
            "get": {
                "tags": ["Client"],
                "summary": "First versus latest measurements",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ProgressSummary"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Token of the other realm", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "errors": {
                    "type": "array",
                    "items": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}}
                }
            }
        },
        "AdminLoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string", "minLength": 6}},
            "required": ["username", "password"]
        },
        "StudentLoginRequest": {
            "type": "object",
            "properties": {
                "login": {"type": "string", "description": "CPF or email"},
                "password": {"type": "string", "minLength": 6}
            },
            "required": ["login", "password"]
        },
        "AdminLoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "admin": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}}}
            }
        },
        "StudentLoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "student": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "name": {"type": "string"},
                        "cpf": {"type": "string"},
                        "email": {"type": "string"}
                    }
                }
            }
        },
        "VerifyResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "role": {"type": "string", "enum": ["admin", "student"]},
                "user": {"type": "object"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cpf": {"type": "string"},
                "birth_date": {"type": "string", "format": "date"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "start_date": {"type": "string", "format": "date"},
                "weight": {"type": "number", "x-nullable": true},
                "height": {"type": "number", "x-nullable": true},
                "chest_circumference": {"type": "number", "x-nullable": true},
                "waist_circumference": {"type": "number", "x-nullable": true},
                "hip_circumference": {"type": "number", "x-nullable": true},
                "arm_circumference": {"type": "number", "x-nullable": true},
                "thigh_circumference": {"type": "number", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "StudentSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cpf": {"type": "string"},
                "birth_date": {"type": "string", "format": "date"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "start_date": {"type": "string", "format": "date"},
                "weight": {"type": "number", "x-nullable": true},
                "height": {"type": "number", "x-nullable": true},
                "chest_circumference": {"type": "number", "x-nullable": true},
                "waist_circumference": {"type": "number", "x-nullable": true},
                "hip_circumference": {"type": "number", "x-nullable": true},
                "arm_circumference": {"type": "number", "x-nullable": true},
                "thigh_circumference": {"type": "number", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"},
                "last_payment_date": {"type": "string", "format": "date"},
                "payment_status": {"type": "string", "enum": ["paid", "pending", "overdue"]},
                "next_due_date": {"type": "string", "format": "date"},
                "payment_status_text": {"type": "string", "enum": ["Em Dia", "Pendente", "Vencido", "Atrasado"]},
                "workout_name": {"type": "string"},
                "workout_type": {"type": "string"},
                "workout_frequency": {"type": "string"}
            }
        },
        "StudentDetail": {
            "type": "object",
            "properties": {
                "student": {"$ref": "#/definitions/Student"},
                "workout": {"$ref": "#/definitions/Workout"},
                "payments": {"type": "array", "items": {"$ref": "#/definitions/Payment"}}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "cpf": {"type": "string", "pattern": "^(\\d{3}\\.\\d{3}\\.\\d{3}-\\d{2}|\\d{11})$"},
                "birth_date": {"type": "string", "format": "date"},
                "phone": {"type": "string"},
                "email": {"type": "string", "maxLength": 100},
                "address": {"type": "string"},
                "start_date": {"type": "string", "format": "date"},
                "password": {"type": "string", "minLength": 6},
                "workout_name": {"type": "string"},
                "workout_type": {"type": "string"},
                "workout_frequency": {"type": "string"},
                "workout_description": {"type": "string"},
                "weight": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "height": {"type": "number", "maximum": 9.99, "x-nullable": true},
                "chest_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "waist_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "hip_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "arm_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "thigh_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true}
            },
            "required": ["name", "cpf", "birth_date", "phone", "start_date", "workout_name", "workout_type", "workout_frequency"]
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "cpf": {"type": "string"},
                "birth_date": {"type": "string", "format": "date"},
                "phone": {"type": "string"},
                "email": {"type": "string", "maxLength": 100},
                "address": {"type": "string"},
                "start_date": {"type": "string", "format": "date"},
                "password": {"type": "string", "minLength": 6},
                "weight": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "height": {"type": "number", "maximum": 9.99, "x-nullable": true},
                "chest_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "waist_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "hip_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "arm_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "thigh_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true}
            },
            "required": ["name", "cpf", "birth_date", "phone"]
        },
        "BodyMeasurement": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "student_id": {"type": "string"},
                "measurement_date": {"type": "string", "format": "date"},
                "weight": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "height": {"type": "number", "maximum": 9.99, "x-nullable": true},
                "chest_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "waist_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "hip_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "arm_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "thigh_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "notes": {"type": "string"}
            }
        },
        "RecordMeasurementRequest": {
            "type": "object",
            "properties": {
                "measurement_date": {"type": "string", "format": "date"},
                "notes": {"type": "string"},
                "weight": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "height": {"type": "number", "maximum": 9.99, "x-nullable": true},
                "chest_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "waist_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "hip_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "arm_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true},
                "thigh_circumference": {"type": "number", "maximum": 999.99, "x-nullable": true}
            },
            "required": ["measurement_date"]
        },
        "Payment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "student_id": {"type": "string"},
                "amount": {"type": "number"},
                "payment_date": {"type": "string", "format": "date"},
                "due_date": {"type": "string", "format": "date"},
                "status": {"type": "string", "enum": ["paid", "pending", "overdue"]},
                "payment_method": {"type": "string"},
                "notes": {"type": "string"},
                "status_text": {"type": "string", "enum": ["Em Dia", "Pendente", "Vencido", "Atrasado"]},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "RecordPaymentRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string", "format": "uuid"},
                "amount": {"type": "number", "maximum": 99999999.99},
                "payment_date": {"type": "string", "format": "date"},
                "payment_method": {"type": "string", "maxLength": 50},
                "notes": {"type": "string"}
            },
            "required": ["student_id", "amount", "payment_date", "payment_method"]
        },
        "UpdatePaymentStatusRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["paid", "pending", "overdue"]}},
            "required": ["status"]
        },
        "Workout": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "student_id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "frequency": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "Exercise": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "sets": {"type": "integer"},
                "reps": {"type": "string"},
                "weight": {"type": "string"},
                "rest_seconds": {"type": "integer"},
                "notes": {"type": "string"},
                "order_index": {"type": "integer"}
            }
        },
        "WorkoutDetail": {
            "type": "object",
            "properties": {
                "workout": {"$ref": "#/definitions/Workout"},
                "exercises": {"type": "array", "items": {"$ref": "#/definitions/Exercise"}}
            }
        },
        "UpsertWorkoutRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "frequency": {"type": "string"},
                "description": {"type": "string"},
                "exercises": {"type": "array", "items": {"$ref": "#/definitions/Exercise"}}
            },
            "required": ["name", "type", "frequency"]
        },
        "PaymentSummary": {
            "type": "object",
            "properties": {
                "total_students": {"type": "integer"},
                "up_to_date": {"type": "integer"},
                "pending": {"type": "integer"},
                "expired": {"type": "integer"},
                "overdue": {"type": "integer"},
                "no_payments": {"type": "integer"},
                "generated_at": {"type": "string", "format": "date-time"}
            }
        },
        "ProgressSummary": {
            "type": "object",
            "properties": {
                "measurements": {
                    "type": "object",
                    "properties": {
                        "initial_weight": {"type": "number", "x-nullable": true},
                        "current_weight": {"type": "number", "x-nullable": true},
                        "initial_chest": {"type": "number", "x-nullable": true},
                        "current_chest": {"type": "number", "x-nullable": true},
                        "initial_waist": {"type": "number", "x-nullable": true},
                        "current_waist": {"type": "number", "x-nullable": true},
                        "initial_arm": {"type": "number", "x-nullable": true},
                        "current_arm": {"type": "number", "x-nullable": true}
                    }
                },
                "weightHistory": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"measurement_date": {"type": "string", "format": "date"}, "weight": {"type": "number"}}
                    }
                }
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
