package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role representa o papel de permissão atribuído a um usuário.
// Os valores em inglês são o conjunto original; os valores em português
// foram introduzidos em uma revisão posterior do produto e são sinônimos
// de domínio dos papéis equivalentes.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleEditor  Role = "editor"
	RoleAnalyst Role = "analyst"
	RoleViewer  Role = "viewer"

	RoleGerenteMarketing    Role = "gerente_marketing"
	RoleAnalistaMarketing   Role = "analista_marketing"
	RoleAssistenteMarketing Role = "assistente_marketing"
)

// DefaultRole é o papel atribuído quando o usuário não possui papel
// explícito ou quando a consulta do papel falha (menor privilégio).
const DefaultRole = RoleViewer

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	Role         Role       `json:"role"`
	AvatarURL    *string    `json:"avatar_url"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	Role      *Role   `json:"role"`
	AvatarURL *string `json:"avatar_url"`
	Deleted   *bool   `json:"deleted"`
}

type Claims struct {
	UserID        string
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRole      Role
	UserAvatarURL *string
	jwt.RegisteredClaims
}
