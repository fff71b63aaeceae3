package domain

import (
	"time"
)

// SwotAnalysis representa a análise SWOT de um usuário. Cada usuário possui
// no máximo uma análise; salvar novamente substitui a existente.
type SwotAnalysis struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Strengths     *string   `json:"strengths"`
	Weaknesses    *string   `json:"weaknesses"`
	Opportunities *string   `json:"opportunities"`
	Threats       *string   `json:"threats"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
