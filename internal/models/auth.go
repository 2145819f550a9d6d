package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role discriminates the two authentication realms.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Principal is the authenticated identity attached to a request.
// Implementations are AdminPrincipal and StudentPrincipal.
type Principal interface {
	Role() Role
	SubjectID() string
	principal()
}

// AdminPrincipal identifies an authenticated administrator.
type AdminPrincipal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (p AdminPrincipal) Role() Role        { return RoleAdmin }
func (p AdminPrincipal) SubjectID() string { return p.ID }
func (AdminPrincipal) principal()          {}

// StudentPrincipal identifies an authenticated student.
type StudentPrincipal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

func (p StudentPrincipal) Role() Role        { return RoleStudent }
func (p StudentPrincipal) SubjectID() string { return p.ID }
func (StudentPrincipal) principal()          {}

// TokenClaims is the JWT payload shared by both realms; Role selects which fields are meaningful.
type TokenClaims struct {
	Role     Role   `json:"role"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	CPF      string `json:"cpf,omitempty"`
	jwt.RegisteredClaims
}

// AdminLoginRequest holds administrator credentials.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// StudentLoginRequest holds student credentials; Login is a CPF or an email.
type StudentLoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// AdminLoginResponse is returned after a successful admin login.
type AdminLoginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Admin   AdminPrincipal `json:"admin"`
}

// StudentInfo is the student view returned after login.
type StudentInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	CPF   string  `json:"cpf"`
	Email *string `json:"email"`
}

// StudentLoginResponse is returned after a successful student login.
type StudentLoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	Student StudentInfo `json:"student"`
}

// VerifyResponse reports the decoded principal of a valid token.
type VerifyResponse struct {
	Valid bool      `json:"valid"`
	Role  Role      `json:"role"`
	User  Principal `json:"user"`
}
