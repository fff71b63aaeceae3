package domain

import (
	"time"
)

// BrandIdentity representa a identidade da marca de um usuário: missão,
// visão, posicionamento, valores e persona da marca. Assim como a análise
// SWOT, cada usuário possui no máximo uma identidade; salvar novamente
// substitui a existente.
type BrandIdentity struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Mission      *string   `json:"mission"`
	Vision       *string   `json:"vision"`
	Positioning  *string   `json:"positioning"`
	Values       *string   `json:"values"`
	BrandPersona *string   `json:"brand_persona"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
