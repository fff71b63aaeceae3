package domain

import (
	"encoding/json"
	"time"
)

// Persona representa uma persona de marketing: o perfil semifictício de um
// segmento de clientes-alvo
type Persona struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	PersonaName   string          `json:"persona_name"`
	Role          *string         `json:"role"`
	Demographics  json.RawMessage `json:"demographics"`
	Goals         *string         `json:"goals"`
	PainPoints    *string         `json:"pain_points"`
	WateringHoles *string         `json:"watering_holes"`
	AvatarURL     *string         `json:"avatar_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
